package css

import (
	"strconv"

	"cssm/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns a readable tree of the parsed document.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}
	tw := treeWriter{debug.NewTreeWriter()}
	tw.Line(0, "Document nodes=%d", len(d.Nodes))
	tw.nodes(1, d.Nodes)
	if len(d.Warnings) > 0 {
		tw.Line(1, "Warnings: %d", len(d.Warnings))
		for i, w := range d.Warnings {
			tw.TextBlock(2, "Warning["+strconv.Itoa(i)+"]", w)
		}
	}
	return tw.String()
}

func (tw treeWriter) nodes(depth int, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Rule:
			tw.Line(depth, "Rule selectors=%d declarations=%d", len(n.Selectors), n.Declarations)
			for _, s := range n.Selectors {
				tw.TextBlock(depth+1, "Selector", s)
			}
		case *Container:
			tw.Line(depth, "@%s %q children=%d", n.Name, n.Prelude, len(n.Children))
			tw.nodes(depth+1, n.Children)
		case *Other:
			tw.Line(depth, "Other %s", n.Name)
		}
	}
}
