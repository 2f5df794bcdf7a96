// Package tikz renders a placed necklace graph as a TikZ picture.
//
// # Output
//
// [ToTikZ] produces one tikzpicture environment:
//
//	\begin{tikzpicture}
//	\node[shape=circle,draw=black] (1) at (0, 1.5) {a};
//	...
//	\path[->] (1) edge node {e} (2);
//	\end{tikzpicture}
//
// Node statements come first, in layout order, followed by one edge
// statement per positive matrix cell in row-major order. Node and edge
// labels are drawn from a single [perm.Cursor], so node labels use the
// first labels of a record and edge labels the ones after them.
//
// The picture is assembled in memory and returned only when complete. A
// failure never produces a partial environment.
//
// # Number format
//
// x coordinates are printed in shortest form ("0", "1.5", "3"). y
// coordinates always carry a fractional part ("0.0", "1.5", "3.0") so
// output stays byte-compatible with figures generated from earlier runs.
package tikz
