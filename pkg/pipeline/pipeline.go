// Package pipeline runs the report → layout → TikZ pipeline.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: read the header, the adjacency matrix and one permutation record
//  2. Layout: place the vertices of the three columns
//  3. Render: emit the TikZ picture, labeling nodes then edges
//
// Between layout and render the runner asserts that the matrix has exactly
// one row per placed vertex, unless [Options.SkipShapeCheck] is set.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Params: layout.Params{CycleSize: 4, Connecting: 2},
//	    Index:  3,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res.TikZ)
package pipeline

import (
	"path/filepath"
	"time"

	errs "github.com/matzehuels/necklace/pkg/errors"
	"github.com/matzehuels/necklace/pkg/layout"
	"github.com/matzehuels/necklace/pkg/render/tikz"
	"github.com/matzehuels/necklace/pkg/report"
)

// Options contains all configuration for one drawing.
type Options struct {
	Params layout.Params
	Index  int // 1-based record position after the matrix

	// Dir holds the report when Path is empty; the file name is derived
	// from Params. Defaults to the working directory.
	Dir  string
	Path string

	Geometry layout.Geometry
	TikZ     tikz.Options

	// SkipShapeCheck draws even when the matrix size differs from
	// Params.Vertices().
	SkipShapeCheck bool

	validated bool
}

// ValidateAndSetDefaults checks the parameters and fills unset geometry and
// styles with their defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.Params.Validate(); err != nil {
		return err
	}
	if o.Index < 1 {
		return errs.New(errs.ErrCodeInvalidArgument, "record index must be at least 1, got %d", o.Index)
	}
	if o.Geometry == (layout.Geometry{}) {
		o.Geometry = layout.DefaultGeometry()
	}
	if err := o.Geometry.Validate(); err != nil {
		return err
	}
	if o.TikZ.NodeStyle == "" {
		o.TikZ.NodeStyle = tikz.DefaultNodeStyle
	}
	if o.TikZ.EdgeStyle == "" {
		o.TikZ.EdgeStyle = tikz.DefaultEdgeStyle
	}
	if err := errs.ValidatePath(o.ReportPath()); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ReportPath returns Path, or the derived report file name inside Dir.
func (o *Options) ReportPath() string {
	if o.Path != "" {
		return o.Path
	}
	name := report.Filename(o.Params.CycleSize, o.Params.Connecting)
	if o.Dir == "" {
		return name
	}
	return filepath.Join(o.Dir, name)
}

// Stats summarizes one run.
type Stats struct {
	Vertices        int // matrix size
	Edges           int // positive matrix cells
	Nodes           int // placed vertices
	LabelsUsed      int
	LabelsAvailable int

	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// Result is the outcome of a successful run.
type Result struct {
	TikZ   string
	Report *report.Report
	Nodes  []layout.Position
	Stats  Stats
}
