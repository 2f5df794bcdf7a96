package tikz

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/necklace/pkg/graph"
	"github.com/matzehuels/necklace/pkg/layout"
	"github.com/matzehuels/necklace/pkg/perm"
)

// Default TikZ styles.
const (
	DefaultNodeStyle = "shape=circle,draw=black"
	DefaultEdgeStyle = "->"
)

// Options configures the emitted statements.
type Options struct {
	NodeStyle string `toml:"node_style"` // options of every \node
	EdgeStyle string `toml:"edge_style"` // options of every \path
}

// DefaultOptions returns the standard circle nodes and arrow edges.
func DefaultOptions() Options {
	return Options{NodeStyle: DefaultNodeStyle, EdgeStyle: DefaultEdgeStyle}
}

// ToTikZ renders nodes and the edges of m, labeling them from labels.
// It fails before writing anything if labels cannot cover every node and
// edge.
func ToTikZ(m graph.Matrix, nodes []layout.Position, labels *perm.Cursor, opts Options) (string, error) {
	edges := m.Edges()
	if err := labels.Require(len(nodes) + len(edges)); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("\\begin{tikzpicture}\n")

	for _, n := range nodes {
		label, err := labels.Next()
		if err != nil {
			return "", fmt.Errorf("node %d: %w", n.ID, err)
		}
		fmt.Fprintf(&buf, "\\node[%s] (%d) at (%s, %s) {%s};\n",
			opts.NodeStyle, n.ID, fmtX(n.X), fmtY(n.Y), label)
	}

	for _, e := range edges {
		label, err := labels.Next()
		if err != nil {
			return "", fmt.Errorf("edge %d->%d: %w", e.From+1, e.To+1, err)
		}
		fmt.Fprintf(&buf, "\\path[%s] (%d) edge node {%s} (%d);\n",
			opts.EdgeStyle, e.From+1, label, e.To+1)
	}

	buf.WriteString("\\end{tikzpicture}\n")
	return buf.String(), nil
}

func fmtX(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fmtY(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
