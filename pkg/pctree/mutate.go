package pctree

import (
	"slices"
	"sort"

	pcerrors "github.com/matzehuels/pctree/pkg/errors"
)

// Clone returns a deep copy of the tree. Every node of the copy keeps
// its original's index; scratch state is not copied (a freshly cloned
// tree behaves as if no MakeConsecutive call has ever touched it).
func (t *Tree) Clone() *Tree {
	out := newTree()
	if t.root == nil {
		return out
	}
	out.leaves = make([]*node, len(t.leaves))
	var copyNode func(n *node, parent *node) *node
	copyNode = func(n *node, parent *node) *node {
		c := out.newNode(n.kind, parent, n.idx)
		if n.kind == Leaf {
			c.leafPos = n.leafPos
			out.leaves[n.leafPos] = c
		}
		for _, ch := range n.children {
			copyNode(ch, c)
		}
		return c
	}
	out.root = copyNode(t.root, nil)
	return out
}

// InsertLeaves allocates count fresh leaves as new children of parent
// (identified by node index) and returns their indices.
func (t *Tree) InsertLeaves(count int, parent int) []int {
	p := t.mustNode(parent)
	added := make([]int, 0, count)
	for i := 0; i < count; i++ {
		leaf := t.newNode(Leaf, p, -1)
		leaf.leafPos = len(t.leaves)
		t.leaves = append(t.leaves, leaf)
		added = append(added, leaf.idx)
	}
	return added
}

// ReplaceLeaf replaces the leaf at node index leaf with a fresh P-node
// holding count new leaves, returning their indices. Pre: leaf names a
// Leaf node.
func (t *Tree) ReplaceLeaf(count int, leaf int) []int {
	old := t.mustNode(leaf)
	if old.kind != Leaf {
		panic(pcerrors.New(pcerrors.ErrCodeBug, "pctree: ReplaceLeaf on non-leaf node %d", leaf))
	}
	wrapper := t.newNode(PNode, nil, -1)
	t.replaceWith(old, wrapper)
	pos := old.leafPos
	t.leaves = slices.Delete(t.leaves, pos, pos+1)
	for _, ln := range t.leaves[pos:] {
		ln.leafPos--
	}
	t.destroyNode(old)
	return t.InsertLeaves(count, wrapper.idx)
}

// MergeLeaves collapses the given leaves (by node index) into a single
// leaf, returning its index, or -1 if leaves is empty. If
// assumeConsecutive is false, MergeLeaves first calls MakeConsecutive on
// the set and returns -1 if that fails.
func (t *Tree) MergeLeaves(leaves []int, assumeConsecutive bool) int {
	if len(leaves) == 0 {
		return -1
	}
	if len(leaves) == 1 {
		return leaves[0]
	}
	if !assumeConsecutive {
		positions := make([]int, len(leaves))
		for i, idx := range leaves {
			positions[i] = t.mustNode(idx).leafPos
		}
		if !t.MakeConsecutive(positions) {
			return -1
		}
	}

	first := t.mustNode(leaves[0])
	parent := t.parentOf(first)

	positions := make([]int, 0, len(leaves)-1)
	for _, idx := range leaves[1:] {
		positions = append(positions, t.mustNode(idx).leafPos)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(positions)))

	for _, idx := range leaves[1:] {
		n := t.mustNode(idx)
		t.detach(n)
		t.destroyNode(n)
	}
	for _, pos := range positions {
		t.leaves = slices.Delete(t.leaves, pos, pos+1)
		for _, ln := range t.leaves[pos:] {
			ln.leafPos--
		}
	}

	t.collapseDegreeTwo(parent)
	return first.idx
}

// DestroyLeaf removes the leaf at node index leaf, collapsing any
// resulting degree-2 parent per invariant 3.
func (t *Tree) DestroyLeaf(leaf int) {
	n := t.mustNode(leaf)
	if n.kind != Leaf {
		panic(pcerrors.New(pcerrors.ErrCodeBug, "pctree: DestroyLeaf on non-leaf node %d", leaf))
	}
	parent := t.parentOf(n)
	t.leaves = slices.Delete(t.leaves, n.leafPos, n.leafPos+1)
	for _, ln := range t.leaves[n.leafPos:] {
		ln.leafPos--
	}
	if n == t.root {
		t.root = nil
		t.destroyNode(n)
		return
	}
	t.detach(n)
	t.destroyNode(n)
	if parent != nil {
		t.collapseDegreeTwo(parent)
	}
}

// SetRoot makes node idx the tree's new root, reversing the
// chain of parent links between the old root and that node so the tree
// remains a single rooted structure.
func (t *Tree) SetRoot(idx int) {
	n := t.mustNode(idx)
	if n == t.root {
		return
	}
	// Walk from n up to the old root, then reverse each parent edge on
	// that path, working from the old root down toward n: each node's
	// own parent pointer is still its pre-reversal value at the moment
	// it is processed, since only a node's *child* role is mutated by
	// an earlier iteration, never the node's own parent link.
	var chain []*node
	for x := n; x != nil; x = t.parentOf(x) {
		chain = append(chain, x)
	}
	for i := len(chain) - 1; i >= 1; i-- {
		cur, newParent := chain[i], chain[i-1]
		t.detach(cur)
		t.appendChild(newParent, cur, false)
	}
	t.detach(n)
	t.root = n
}

// ChangeNodeType converts node (by index) between PNode and CNode in
// place, preserving its current children and their relative order. It
// panics if node names a Leaf.
func (t *Tree) ChangeNodeType(node int, newType Kind) {
	n := t.mustNode(node)
	if n.kind == Leaf || newType == Leaf {
		panic(pcerrors.New(pcerrors.ErrCodeBug, "pctree: ChangeNodeType cannot target or produce a Leaf"))
	}
	if n.kind == newType {
		return
	}
	if newType == CNode {
		t.ufParent[n.idx] = n.idx
	}
	n.kind = newType
	for _, c := range n.children {
		t.setParent(c, n)
	}
}
