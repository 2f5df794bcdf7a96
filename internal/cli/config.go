package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/necklace/pkg/errors"
	"github.com/matzehuels/necklace/pkg/layout"
	"github.com/matzehuels/necklace/pkg/render/tikz"
)

// config is the contents of necklace.toml:
//
//	[report]
//	dir = "results"
//
//	[layout]
//	spacing = 1.5
//	left_x  = 0.0
//	inner_x = 1.5
//	right_x = 3.0
//
//	[tikz]
//	node_style = "shape=circle,draw=black"
//	edge_style = "->"
//
// Every key is optional; missing keys keep their defaults.
type config struct {
	Report reportConfig    `toml:"report"`
	Layout layout.Geometry `toml:"layout"`
	TikZ   tikz.Options    `toml:"tikz"`

	path string // file the config was loaded from, empty for defaults
}

type reportConfig struct {
	Dir string `toml:"dir"`
}

func defaultConfig() config {
	return config{
		Report: reportConfig{Dir: "."},
		Layout: layout.DefaultGeometry(),
		TikZ:   tikz.DefaultOptions(),
	}
}

// loadConfig decodes path over the defaults. With an empty path it tries
// ./necklace.toml and then the user config directory, falling back to the
// defaults when neither exists. An explicit path must exist.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	candidates := []string{path}
	if !explicit {
		candidates = []string{configFile}
		if dir, err := configDir(); err == nil {
			candidates = append(candidates, filepath.Join(dir, "config.toml"))
		}
	}

	for _, p := range candidates {
		md, err := toml.DecodeFile(p, &cfg)
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			continue
		}
		if err != nil {
			return config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "load %s", p)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return config{}, errs.New(errs.ErrCodeInvalidConfig, "%s: unknown keys %s", p, strings.Join(keys, ", "))
		}
		cfg.path = p
		break
	}

	if err := cfg.Layout.Validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// configDir returns the config directory using XDG standard (~/.config/necklace/).
func configDir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
