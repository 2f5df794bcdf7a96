package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	errs "github.com/matzehuels/necklace/pkg/errors"
	"github.com/matzehuels/necklace/pkg/layout"
	"github.com/matzehuels/necklace/pkg/pipeline"
)

// drawOpts holds the command-line flags for drawing a record.
type drawOpts struct {
	dir          string // directory holding the report (overrides config)
	input        string // explicit report path (overrides dir)
	noShapeCheck bool   // draw even if the matrix does not fit the layout
}

func (o *drawOpts) bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.dir, "dir", "d", "", "directory containing the report (default from config, else .)")
	fs.StringVarP(&o.input, "input", "i", "", "report file, overriding output_<cycleSize>_<connectingVertices>.txt")
	fs.BoolVar(&o.noShapeCheck, "no-shape-check", false, "draw even if the matrix size does not match the layout")
}

// parseParams parses the cycle size and connecting vertex arguments.
func parseParams(cycleArg, connectingArg string) (layout.Params, error) {
	cycle, err := errs.ParseCount("cycleSize", cycleArg, 1, -1)
	if err != nil {
		return layout.Params{}, err
	}
	connecting, err := errs.ParseCount("connectingVertices", connectingArg, 0, cycle)
	if err != nil {
		return layout.Params{}, err
	}
	return layout.Params{CycleSize: cycle, Connecting: connecting}, nil
}

// runDraw draws the selected record. Nothing is written to c.Out unless the
// whole picture was produced.
func (c *CLI) runDraw(cmd *cobra.Command, args []string, opts *drawOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	params, err := parseParams(args[0], args[1])
	if err != nil {
		return err
	}
	idx, err := errs.ParseCount("permIdx", args[2], 1, -1)
	if err != nil {
		return err
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	if cfg.path != "" {
		logger.Debug("loaded config", "path", cfg.path)
	}

	popts := pipeline.Options{
		Params:         params,
		Index:          idx,
		Dir:            cfg.Report.Dir,
		Path:           opts.input,
		Geometry:       cfg.Layout,
		TikZ:           cfg.TikZ,
		SkipShapeCheck: opts.noShapeCheck,
	}
	if opts.dir != "" {
		popts.Dir = opts.dir
	}

	prog := newProgress(logger)
	res, err := pipeline.NewRunner(logger).Execute(ctx, popts)
	if err != nil {
		return err
	}
	if err := writeOutput(c.Out, res.TikZ); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Drew record %d: %d nodes, %d edges", idx, res.Stats.Nodes, res.Stats.Edges))
	return nil
}

func writeOutput(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "write output")
	}
	return nil
}
