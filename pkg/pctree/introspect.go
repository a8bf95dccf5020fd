package pctree

// NodeInfo returns node idx's kind and the indices of its direct children,
// in their current structural order. It is a read-only introspection
// surface for callers (the CLI's node browser, debugging tools) that have
// no business holding a *node.
func (t *Tree) NodeInfo(idx int) (Kind, []int) {
	n := t.mustNode(idx)
	children := make([]int, len(n.children))
	for i, c := range n.children {
		children[i] = c.idx
	}
	return n.kind, children
}

// LeafPosition returns node idx's position in the ground set, or -1 if idx
// does not name a Leaf.
func (t *Tree) LeafPosition(idx int) int {
	n := t.mustNode(idx)
	if n.kind != Leaf {
		return -1
	}
	return n.leafPos
}

// ParentOf returns the index of node idx's structural parent, or -1 if idx
// is the root.
func (t *Tree) ParentOf(idx int) int {
	n := t.mustNode(idx)
	p := t.parentOf(n)
	if p == nil {
		return -1
	}
	return p.idx
}
