// Package layout places necklace vertices in three vertical columns.
//
// # Columns
//
// A necklace with cycle size C and K connecting vertices has two outer arcs
// of C-K vertices each and one inner column of K vertices. Vertices are
// numbered in a fixed order that also matches the adjacency matrix:
//
//  1. left outer arc, top to bottom
//  2. inner column, bottom to top
//  3. right outer arc, top to bottom
//
// # Offsets
//
// Every vertex slot is [Geometry.Spacing] units tall. When one column is
// shorter than the other, it is raised by half the height difference so
// both columns share a vertical center. With the default spacing of 1.5 the
// shift is 0.75 per missing vertex.
//
// # Usage
//
//	p := layout.Params{CycleSize: 5, Connecting: 3}
//	for _, pos := range layout.Place(p, layout.DefaultGeometry()) {
//	    fmt.Println(pos.ID, pos.X, pos.Y)
//	}
package layout
