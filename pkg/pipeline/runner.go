package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/necklace/pkg/errors"
	"github.com/matzehuels/necklace/pkg/layout"
	"github.com/matzehuels/necklace/pkg/observability"
	"github.com/matzehuels/necklace/pkg/perm"
	"github.com/matzehuels/necklace/pkg/render/tikz"
	"github.com/matzehuels/necklace/pkg/report"
)

// Runner executes the pipeline. It holds no per-run state, so one Runner
// can serve any number of sequential or concurrent runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs parse → layout → render. On any failure it returns an error
// and no output.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hooks := observability.Pipeline()
	result := &Result{}

	// Stage 1: Parse
	path := opts.ReportPath()
	parseStart := time.Now()
	hooks.OnParseStart(ctx, path, opts.Index)
	rep, err := report.Open(path, opts.Index)
	result.Stats.ParseTime = time.Since(parseStart)
	if err != nil {
		hooks.OnParseComplete(ctx, path, 0, 0, result.Stats.ParseTime, err)
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Report = rep
	result.Stats.Vertices = rep.Matrix.Size()
	result.Stats.Edges = rep.Matrix.EdgeCount()
	result.Stats.LabelsAvailable = len(rep.Record.Labels)
	hooks.OnParseComplete(ctx, path, result.Stats.Vertices, result.Stats.Edges, result.Stats.ParseTime, nil)

	r.Logger.Debug("read report",
		"path", path,
		"record", rep.Record.ID,
		"vertices", result.Stats.Vertices,
		"edges", result.Stats.Edges,
		"labels", result.Stats.LabelsAvailable,
		"duration", result.Stats.ParseTime)
	r.checkHeader(rep.Header, opts.Params)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, opts.Params.CycleSize, opts.Params.Connecting)
	nodes := layout.Place(opts.Params, opts.Geometry)
	err = checkShape(len(nodes), rep.Matrix.Size(), opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, len(nodes), result.Stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Nodes = nodes
	result.Stats.Nodes = len(nodes)

	off := layout.ComputeOffsets(opts.Params, opts.Geometry)
	r.Logger.Debug("computed layout",
		"outer", opts.Params.Outer(),
		"connecting", opts.Params.Connecting,
		"outer_offset", off.Outer,
		"inner_offset", off.Inner)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, result.Stats.LabelsAvailable)
	cur := perm.NewCursor(rep.Record.Labels)
	out, err := tikz.ToTikZ(rep.Matrix, nodes, cur, opts.TikZ)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, len(out), result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.TikZ = out
	result.Stats.LabelsUsed = len(cur.Consumed())

	if extra := cur.Remaining(); extra > 0 {
		r.Logger.Warn("record has unused labels", "unused", extra, "used", result.Stats.LabelsUsed)
	}
	r.Logger.Debug("rendered tikz", "bytes", len(out), "duration", result.Stats.RenderTime)

	return result, nil
}

// checkHeader logs when the report header names different parameters than
// the ones requested. The header is informational and never fails a run.
func (r *Runner) checkHeader(h report.Header, p layout.Params) {
	if !h.HasParams {
		r.Logger.Debug("report header has no parameters", "line", h.Params)
		return
	}
	if h.CycleSize != p.CycleSize || h.Connecting != p.Connecting {
		r.Logger.Warn("report header disagrees with arguments",
			"header_cycle_size", h.CycleSize,
			"header_connecting", h.Connecting,
			"cycle_size", p.CycleSize,
			"connecting", p.Connecting)
	}
}

func checkShape(nodes, vertices int, opts Options) error {
	if opts.SkipShapeCheck || nodes == vertices {
		return nil
	}
	return errs.New(errs.ErrCodeShapeMismatch,
		"matrix has %d vertices but cycle size %d with %d connecting vertices places %d",
		vertices, opts.Params.CycleSize, opts.Params.Connecting, nodes)
}
