package pctree

import (
	"slices"

	pcerrors "github.com/matzehuels/pctree/pkg/errors"
)

// ExternalArray is implemented by caller-owned tables that are indexed by
// node index. Tree notifies registered arrays when the node-index space
// grows past their current capacity, per spec.md §5's "Registered external
// arrays are notified when the key-space grows and must resize; this is the
// only outward callback."
type ExternalArray interface {
	// Grow is called with the new minimum capacity the array must support.
	Grow(capacity int)
}

// Tree is a PC-tree over a fixed ground set of leaves. The zero value is not
// usable; construct one with [New], [NewTrivial], or [Parse].
//
// Tree is not safe for concurrent use. If multiple goroutines access a Tree,
// they must be synchronized with external locking.
type Tree struct {
	root   *node
	nodes  []*node // idx -> node, nil once a destroyed index has not been reused
	leaves []*node // leaf position -> node

	ufParent []int // idx -> union-find parent slot, meaningful for CNode indices only

	timestamp uint64
	nextIdx   int
	freeList  []int
	reuseIdx  bool

	externalArrays []ExternalArray

	observer Observer

	idFunc func() string // optional external-id generator, see WithNodeIDFunc
	extIDs []string      // idx -> generated external id, parallel to nodes
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithNodeReuse enables recycling of destroyed node indices via a freelist.
// Off by default: reused indices are observable through node identity, so
// this is a deliberate opt-in rather than automatic behavior (spec.md §9).
func WithNodeReuse() Option {
	return func(t *Tree) { t.reuseIdx = true }
}

// WithObserver attaches an [Observer] to this tree only, without touching
// the process-wide registry consulted by trees constructed without this
// option.
func WithObserver(o Observer) Option {
	return func(t *Tree) {
		if o != nil {
			t.observer = o
		}
	}
}

// WithNodeIDFunc attaches an external-id generator: f is called once per
// newly allocated node, and its result is retrievable via (*Tree).ExternalID.
// The dense integer index remains the node's real identity throughout this
// package; external ids are a caller-facing display label only (spec.md §3:
// "does not guarantee deterministic node identifiers across runs unless the
// caller provides them"). The CLI's "build --ids=uuid" flag passes
// uuid.NewString here.
func WithNodeIDFunc(f func() string) Option {
	return func(t *Tree) { t.idFunc = f }
}

// ExternalID returns the external id generated for node idx by the
// [WithNodeIDFunc] generator, or "" if none was configured.
func (t *Tree) ExternalID(idx int) string {
	if idx < 0 || idx >= len(t.extIDs) {
		return ""
	}
	return t.extIDs[idx]
}

func newTree(opts ...Option) *Tree {
	t := &Tree{observer: nil}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// New returns an empty PC-tree with no leaves, representing the single
// (trivial) empty permutation.
func New(opts ...Option) *Tree {
	return newTree(opts...)
}

// NewTrivial returns a PC-tree representing all (n-1)! cyclic permutations
// of n leaves: a single P-node root with n leaf children.
//
// For n == 0 the tree is empty. For n == 1 the tree is a single leaf (its
// own root).
func NewTrivial(n int, opts ...Option) *Tree {
	t := newTree(opts...)
	if n <= 0 {
		return t
	}
	if n == 1 {
		leaf := t.newNode(Leaf, nil, -1)
		leaf.leafPos = 0
		t.leaves = append(t.leaves, leaf)
		t.root = leaf
		return t
	}

	root := t.newNode(PNode, nil, -1)
	t.root = root
	for i := 0; i < n; i++ {
		leaf := t.newNode(Leaf, root, -1)
		leaf.leafPos = i
		t.leaves = append(t.leaves, leaf)
	}
	return t
}

// NumLeaves reports the size of the ground set.
func (t *Tree) NumLeaves() int { return len(t.leaves) }

// Root returns the index of the tree's root node, or -1 if the tree is
// empty.
func (t *Tree) Root() int {
	if t.root == nil {
		return -1
	}
	return t.root.idx
}

// growNodes extends the node pool so index idx is addressable, notifying
// every registered external array.
func (t *Tree) growNodes(idx int) {
	if idx < len(t.nodes) {
		return
	}
	cap := idx + 1
	grown := make([]*node, cap)
	copy(grown, t.nodes)
	t.nodes = grown
	if t.idFunc != nil && cap > len(t.extIDs) {
		idsGrown := make([]string, cap)
		copy(idsGrown, t.extIDs)
		t.extIDs = idsGrown
	}
	if cap > len(t.ufParent) {
		ufGrown := make([]int, cap)
		copy(ufGrown, t.ufParent)
		for i := len(t.ufParent); i < cap; i++ {
			ufGrown[i] = i
		}
		t.ufParent = ufGrown
	}
	for _, ea := range t.externalArrays {
		ea.Grow(cap)
	}
}

// RegisterArray subscribes ea to future node-index growth notifications and
// immediately grows it to the tree's current capacity.
func (t *Tree) RegisterArray(ea ExternalArray) {
	t.externalArrays = append(t.externalArrays, ea)
	ea.Grow(len(t.nodes))
}

// newNode allocates a node of the given kind, optionally attaching it as a
// child of parent. If id >= 0, id is used as the node's index
// (caller-supplied stable identifiers); otherwise a fresh index is
// assigned, taken from the freelist when reuseIdx is set.
func (t *Tree) newNode(kind Kind, parent *node, id int) *node {
	idx := id
	if idx < 0 {
		if t.reuseIdx && len(t.freeList) > 0 {
			idx = t.freeList[len(t.freeList)-1]
			t.freeList = t.freeList[:len(t.freeList)-1]
		} else {
			idx = t.nextIdx
			t.nextIdx++
		}
	} else if idx >= t.nextIdx {
		t.nextIdx = idx + 1
	}
	t.growNodes(idx)

	n := &node{idx: idx, kind: kind, parentUF: -1, leafPos: -1}
	t.nodes[idx] = n
	if t.idFunc != nil {
		t.extIDs[idx] = t.idFunc()
	}
	if kind == CNode {
		t.ufParent[idx] = idx
	}
	if parent != nil {
		t.appendChild(parent, n, false)
	}
	return n
}

// NewNode allocates a node of the given kind and returns its index. When
// parent >= 0 the node is attached as an (unordered, for a P-node parent;
// trailing, for a C-node parent) child of that node. Pass id >= 0 to reuse
// a caller-chosen stable index.
func (t *Tree) NewNode(kind Kind, parent int, id int) int {
	var p *node
	if parent >= 0 {
		p = t.mustNode(parent)
	}
	return t.newNode(kind, p, id).idx
}

func (t *Tree) mustNode(idx int) *node {
	if idx < 0 || idx >= len(t.nodes) || t.nodes[idx] == nil {
		panic(pcerrors.New(pcerrors.ErrCodeBug, "pctree: reference to unknown or destroyed node %d", idx))
	}
	return t.nodes[idx]
}

// ---------------------------------------------------------------------
// Union-find over C-nodes (§4.1)
// ---------------------------------------------------------------------

// find returns the representative slot of the union-find class containing
// slot, path-compressing along the way.
func (t *Tree) find(slot int) int {
	for t.ufParent[slot] != slot {
		t.ufParent[slot] = t.ufParent[t.ufParent[slot]]
		slot = t.ufParent[slot]
	}
	return slot
}

// link merges the union-find class of "absorbed" into that of "survivor".
// survivor's slot becomes the representative of the merged class.
func (t *Tree) link(absorbed, survivor int) {
	a, s := t.find(absorbed), t.find(survivor)
	if a == s {
		return
	}
	t.ufParent[a] = s
}

// cnodeAt resolves a union-find slot to its live C-node.
func (t *Tree) cnodeAt(slot int) *node {
	return t.nodes[t.find(slot)]
}

// ---------------------------------------------------------------------
// Parent / sibling resolution
// ---------------------------------------------------------------------

// parentOf returns n's structural parent, resolving through the union-find
// table when that parent is a C-node that has since absorbed other C-nodes.
func (t *Tree) parentOf(n *node) *node {
	if n.parentUF >= 0 {
		return t.cnodeAt(n.parentUF)
	}
	return n.parent
}

// setParent records p as n's parent, choosing the direct-pointer or
// union-find representation according to p's kind.
func (t *Tree) setParent(n, p *node) {
	if p != nil && p.kind == CNode {
		n.parent = nil
		n.parentUF = p.idx
	} else {
		n.parent = p
		n.parentUF = -1
	}
}

// ---------------------------------------------------------------------
// Structural mutators (§4.1)
// ---------------------------------------------------------------------

// appendChild attaches child as an outer child of parent. Pre: child is
// detached. When atBegin is true and parent is a C-node, child becomes the
// new first element of the circular order instead of the last.
func (t *Tree) appendChild(parent, child *node, atBegin bool) {
	t.setParent(child, parent)
	if parent.kind == PNode || !atBegin {
		parent.children = append(parent.children, child)
	} else {
		parent.children = append([]*node{child}, parent.children...)
	}
}

// detach removes node from its parent's child list. Safe to call on an
// already-detached node.
func (t *Tree) detach(n *node) {
	p := t.parentOf(n)
	if p == nil {
		n.parent = nil
		n.parentUF = -1
		return
	}
	idx := slices.Index(p.children, n)
	if idx >= 0 {
		p.children = slices.Delete(p.children, idx, idx+1)
	}
	n.parent = nil
	n.parentUF = -1
}

// replaceWith splices other into self's place in self's parent's child
// list. Pre: other is detached.
func (t *Tree) replaceWith(self, other *node) {
	p := t.parentOf(self)
	if p == nil {
		t.root = other
		other.parent = nil
		other.parentUF = -1
		return
	}
	idx := slices.Index(p.children, self)
	if idx < 0 {
		return
	}
	p.children[idx] = other
	t.setParent(other, p)
	self.parent = nil
	self.parentUF = -1
}

// mergeIntoParent absorbs self's children into its C-node parent, in
// self's existing circular order, then destroys self. Pre: self and its
// parent are both C-nodes.
func (t *Tree) mergeIntoParent(self *node) {
	parent := t.parentOf(self)
	if parent == nil || parent.kind != CNode || self.kind != CNode {
		panic(pcerrors.New(pcerrors.ErrCodeBug, "pctree: mergeIntoParent requires a C-node child of a C-node"))
	}
	idx := slices.Index(parent.children, self)
	if idx < 0 {
		panic(pcerrors.New(pcerrors.ErrCodeBug, "pctree: mergeIntoParent: self not found in parent"))
	}
	replacement := make([]*node, 0, len(parent.children)-1+len(self.children))
	replacement = append(replacement, parent.children[:idx]...)
	replacement = append(replacement, self.children...)
	replacement = append(replacement, parent.children[idx+1:]...)
	for _, c := range self.children {
		t.setParent(c, parent)
	}
	parent.children = replacement
	t.link(self.idx, parent.idx)
	t.destroyNode(self)
}

// flip reverses the circular order of n's children. Only observable for
// C-nodes, but harmless (and a no-op in effect) on a P-node.
func (t *Tree) flip(n *node) {
	slices.Reverse(n.children)
}

// destroyNode frees n's index. Pre: n is detached and has no children.
func (t *Tree) destroyNode(n *node) {
	t.nodes[n.idx] = nil
	if t.reuseIdx {
		t.freeList = append(t.freeList, n.idx)
	}
}

// collapseDegreeTwo enforces invariant 3 (§3): the root is never a P- or
// C-node of degree 2 (invariant 2 only sets a floor of 2 children away
// from the root, so a non-root degree-2 node is left untouched — e.g. a
// P-node with exactly two children is a perfectly admissible grouping).
// Called after any mutation that could have left the root at degree 2.
func (t *Tree) collapseDegreeTwo(n *node) {
	if n == nil || n.kind == Leaf || len(n.children) != 2 || t.parentOf(n) != nil {
		return
	}
	// Splice the two children together under a fresh C-node so the root
	// itself is never a bare 2-cycle; for two elements a C-node's two
	// arrangements equal the P-node's, so this preserves the represented
	// order family.
	a, b := n.children[0], n.children[1]
	repl := t.newNode(CNode, nil, -1)
	t.root = repl
	repl.children = []*node{a, b}
	t.setParent(a, repl)
	t.setParent(b, repl)
	t.destroyNode(n)
}
