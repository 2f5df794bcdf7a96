// Package cli implements the necklace command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/necklace/pkg/buildinfo"
	"github.com/matzehuels/necklace/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "necklace"

	// configFile is looked up in the working directory before the XDG
	// config directory.
	configFile = appName + ".toml"
)

// Log levels for New and SetLogLevel.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // drawing output; stdout unless replaced in tests
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself draws one record:
//
//	necklace <cycleSize> <connectingVertices> <permIdx>
func (c *CLI) RootCommand() *cobra.Command {
	var (
		opts    drawOpts
		verbose bool
	)

	root := &cobra.Command{
		Use:   "necklace <cycleSize> <connectingVertices> <permIdx>",
		Short: "Necklace draws vertex-magic search results as TikZ",
		Long: `Necklace reads output_<cycleSize>_<connectingVertices>.txt, selects the
permIdx-th permutation record after the adjacency matrix and prints a TikZ
picture of the labeled graph to stdout.`,
		Version:      buildinfo.Version,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			observability.SetPipelineHooks(&logHooks{logger: c.Logger})
			c.Logger.Debug("starting", "version", buildinfo.String())
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDraw(cmd, args, &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	opts.bindFlags(root.Flags())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().String("config", "", "config file (default ./"+configFile+" or the user config dir)")

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}
