// Package graph provides the adjacency matrix read from a search report.
//
// A [Matrix] is a square grid of integers where a positive cell (i, j) is a
// directed edge from vertex i to vertex j. Vertex indices are zero-based and
// follow the fixed drawing order: left outer arc, inner column, right outer
// arc. Zero and negative cells are not edges.
//
// # Usage
//
//	m, err := graph.NewMatrix([][]int{
//	    {0, 1},
//	    {1, 0},
//	})
//	for _, e := range m.Edges() {
//	    fmt.Println(e.From, "->", e.To)
//	}
//
// [Matrix.Edges] always scans row-major, so edge order is stable and matches
// the order in which edge labels are consumed from a permutation record.
package graph
