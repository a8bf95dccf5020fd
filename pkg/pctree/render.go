package pctree

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the tree, generalizing the
// teacher's PQTree.ToDOT (pkg/core/dag/perm/dot.go) from P/Q nodes to P/C
// nodes. labels, if non-nil, supplies display names for leaves by position;
// an empty entry or a leaf beyond len(labels) falls back to its leaf
// position.
func (t *Tree) ToDOT(labels []string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph PCTree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	if t.root != nil {
		writeDOTNode(&buf, t.root, labels)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeDOTNode(buf *bytes.Buffer, n *node, labels []string) {
	nodeID := fmt.Sprintf("n%d", n.idx)

	switch n.kind {
	case Leaf:
		label := fmt.Sprintf("%d", n.leafPos)
		if labels != nil && n.leafPos < len(labels) && labels[n.leafPos] != "" {
			label = labels[n.leafPos]
		}
		fmt.Fprintf(buf, "  %s [label=%q, shape=box, style=\"filled,rounded\"];\n", nodeID, label)
	case PNode:
		fmt.Fprintf(buf, "  %s [label=\"P\", shape=ellipse];\n", nodeID)
		for _, c := range n.children {
			fmt.Fprintf(buf, "  %s -> n%d;\n", nodeID, c.idx)
			writeDOTNode(buf, c, labels)
		}
	case CNode:
		fmt.Fprintf(buf, "  %s [label=\"C\", shape=box];\n", nodeID)
		for _, c := range n.children {
			fmt.Fprintf(buf, "  %s -> n%d;\n", nodeID, c.idx)
			writeDOTNode(buf, c, labels)
		}
	}
}

// RenderSVG renders the tree as an SVG document via ToDOT and Graphviz.
func (t *Tree) RenderSVG(labels []string) ([]byte, error) {
	dot := t.ToDOT(labels)

	gv, err := graphviz.New(context.Background())
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var out bytes.Buffer
	if err := gv.Render(context.Background(), g, graphviz.SVG, &out); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return out.Bytes(), nil
}
