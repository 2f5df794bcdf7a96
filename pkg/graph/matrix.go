package graph

import (
	"fmt"
)

// Matrix is a square adjacency matrix. Cell [i][j] > 0 is an edge i→j.
type Matrix [][]int

// Edge is a directed edge between zero-based vertex indices.
type Edge struct {
	From int
	To   int
}

// NewMatrix validates that rows form a non-empty square grid and returns
// them as a Matrix. The rows are not copied.
func NewMatrix(rows [][]int) (Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("matrix is empty")
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i+1, len(row), n)
		}
	}
	return Matrix(rows), nil
}

// Size returns the number of vertices.
func (m Matrix) Size() int { return len(m) }

// HasEdge reports whether cell (i, j) is an edge. Out-of-range indices are
// never edges.
func (m Matrix) HasEdge(i, j int) bool {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[i]) {
		return false
	}
	return m[i][j] > 0
}

// EdgeCount returns the number of positive cells.
func (m Matrix) EdgeCount() int {
	count := 0
	for _, row := range m {
		for _, v := range row {
			if v > 0 {
				count++
			}
		}
	}
	return count
}

// Edges returns every positive cell in row-major order.
func (m Matrix) Edges() []Edge {
	edges := make([]Edge, 0, m.EdgeCount())
	for i, row := range m {
		for j, v := range row {
			if v > 0 {
				edges = append(edges, Edge{From: i, To: j})
			}
		}
	}
	return edges
}

// DegreeRange returns the smallest and largest value of degree over all
// vertices. An empty matrix yields zeros.
func (m Matrix) DegreeRange(degree func(int) int) (lo, hi int) {
	for i := range m {
		d := degree(i)
		if i == 0 || d < lo {
			lo = d
		}
		if i == 0 || d > hi {
			hi = d
		}
	}
	return lo, hi
}

// OutDegree returns the number of edges leaving vertex i.
func (m Matrix) OutDegree(i int) int {
	if i < 0 || i >= len(m) {
		return 0
	}
	d := 0
	for _, v := range m[i] {
		if v > 0 {
			d++
		}
	}
	return d
}

// InDegree returns the number of edges entering vertex j.
func (m Matrix) InDegree(j int) int {
	d := 0
	for i := range m {
		if m.HasEdge(i, j) {
			d++
		}
	}
	return d
}
