package layout

import (
	errs "github.com/matzehuels/necklace/pkg/errors"
)

// Default geometry in TikZ units.
const (
	DefaultSpacing = 1.5
	DefaultLeftX   = 0.0
	DefaultInnerX  = 1.5
	DefaultRightX  = 3.0
)

// Column identifies one of the three vertex columns.
type Column int

const (
	ColumnLeft Column = iota
	ColumnInner
	ColumnRight
)

func (c Column) String() string {
	switch c {
	case ColumnLeft:
		return "left"
	case ColumnInner:
		return "inner"
	case ColumnRight:
		return "right"
	}
	return "unknown"
}

// Params are the graph parameters a report was produced for.
type Params struct {
	CycleSize  int // vertices per outer arc plus connecting vertices
	Connecting int // vertices in the inner column
}

// Validate checks CycleSize >= 1 and 0 <= Connecting <= CycleSize.
func (p Params) Validate() error {
	if p.CycleSize < 1 {
		return errs.New(errs.ErrCodeInvalidArgument, "cycle size must be positive, got %d", p.CycleSize)
	}
	if p.Connecting < 0 || p.Connecting > p.CycleSize {
		return errs.New(errs.ErrCodeInvalidArgument,
			"connecting vertices must be between 0 and %d, got %d", p.CycleSize, p.Connecting)
	}
	return nil
}

// Outer returns the number of vertices on each outer arc.
func (p Params) Outer() int { return p.CycleSize - p.Connecting }

// Vertices returns the total number of placed vertices: two outer arcs and
// the inner column.
func (p Params) Vertices() int { return 2*p.Outer() + p.Connecting }

// Geometry holds the spacing and column positions.
type Geometry struct {
	Spacing float64 `toml:"spacing"`
	LeftX   float64 `toml:"left_x"`
	InnerX  float64 `toml:"inner_x"`
	RightX  float64 `toml:"right_x"`
}

// DefaultGeometry returns the standard three-column geometry.
func DefaultGeometry() Geometry {
	return Geometry{
		Spacing: DefaultSpacing,
		LeftX:   DefaultLeftX,
		InnerX:  DefaultInnerX,
		RightX:  DefaultRightX,
	}
}

// Validate rejects a non-positive spacing.
func (g Geometry) Validate() error {
	if g.Spacing <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "spacing must be positive, got %g", g.Spacing)
	}
	return nil
}

// Offsets are the vertical shifts applied to the outer and inner columns.
// At most one of them is non-zero.
type Offsets struct {
	Outer float64
	Inner float64
}

// ComputeOffsets raises the shorter column by half a slot per vertex of
// difference.
func ComputeOffsets(p Params, g Geometry) Offsets {
	half := g.Spacing / 2
	outer, inner := p.Outer(), p.Connecting
	switch {
	case inner > outer:
		return Offsets{Outer: half * float64(inner-outer)}
	case inner < outer:
		return Offsets{Inner: half * float64(outer-inner)}
	}
	return Offsets{}
}

// Position is a placed vertex.
type Position struct {
	ID     int    // 1-based node id; vertex index ID-1 in the matrix
	Column Column // column the vertex belongs to
	Slot   int    // slot within the column counted from the bottom
	X, Y   float64
}

// Place returns the positions of all p.Vertices() vertices in drawing order.
func Place(p Params, g Geometry) []Position {
	off := ComputeOffsets(p, g)
	out := make([]Position, 0, p.Vertices())
	add := func(col Column, slot int, x, shift float64) {
		out = append(out, Position{
			ID:     len(out) + 1,
			Column: col,
			Slot:   slot,
			X:      x,
			Y:      float64(slot)*g.Spacing + shift,
		})
	}

	for k := p.Outer() - 1; k >= 0; k-- {
		add(ColumnLeft, k, g.LeftX, off.Outer)
	}
	for k := 0; k < p.Connecting; k++ {
		add(ColumnInner, k, g.InnerX, off.Inner)
	}
	for k := p.Outer() - 1; k >= 0; k-- {
		add(ColumnRight, k, g.RightX, off.Outer)
	}
	return out
}
