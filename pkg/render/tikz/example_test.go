package tikz_test

import (
	"fmt"

	"github.com/matzehuels/necklace/pkg/graph"
	"github.com/matzehuels/necklace/pkg/layout"
	"github.com/matzehuels/necklace/pkg/perm"
	"github.com/matzehuels/necklace/pkg/render/tikz"
)

func ExampleToTikZ() {
	m := graph.Matrix{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	}
	nodes := layout.Place(layout.Params{CycleSize: 2, Connecting: 1}, layout.DefaultGeometry())
	rec, _ := perm.ParseRecord("1: {5, 1, 3, 2, 6, 4} Magic Number: 9")

	out, err := tikz.ToTikZ(m, nodes, perm.NewCursor(rec.Labels), tikz.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(out)
	// Output:
	// \begin{tikzpicture}
	// \node[shape=circle,draw=black] (1) at (0, 0.0) {5};
	// \node[shape=circle,draw=black] (2) at (1.5, 0.0) {1};
	// \node[shape=circle,draw=black] (3) at (3, 0.0) {3};
	// \path[->] (1) edge node {2} (2);
	// \path[->] (2) edge node {6} (3);
	// \path[->] (3) edge node {4} (1);
	// \end{tikzpicture}
}
