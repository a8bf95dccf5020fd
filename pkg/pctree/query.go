package pctree

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// IsTrivial reports whether the tree is a single P-node with every leaf
// as a direct child — the starting shape of [NewTrivial] and the shape
// that represents every cyclic order with no restriction applied.
func (t *Tree) IsTrivial() bool {
	if t.root == nil {
		return t.NumLeaves() == 0
	}
	if t.root.kind != PNode {
		return false
	}
	if len(t.root.children) != t.NumLeaves() {
		return false
	}
	for _, c := range t.root.children {
		if c.kind != Leaf {
			return false
		}
	}
	return true
}

// PossibleOrders counts the admissible cyclic leaf orders as an
// arbitrary-precision integer: the product, over every inner node, of 2
// for a C-node or k! for a P-node of k children (k-1 at the root, since
// a P-node root's rotational symmetry is already factored out of "cyclic
// order").
func (t *Tree) PossibleOrders() *big.Int {
	if t.root == nil {
		return big.NewInt(1)
	}
	return t.possibleOrdersOf(t.root, true)
}

func (t *Tree) possibleOrdersOf(n *node, isRoot bool) *big.Int {
	total := big.NewInt(1)
	for _, c := range n.children {
		total.Mul(total, t.possibleOrdersOf(c, false))
	}
	switch n.kind {
	case CNode:
		total.Mul(total, big.NewInt(2))
	case PNode:
		k := len(n.children)
		if isRoot {
			k--
		}
		total.Mul(total, factorial(k))
	}
	return total
}

func factorial(k int) *big.Int {
	r := big.NewInt(1)
	for i := 2; i <= k; i++ {
		r.Mul(r, big.NewInt(int64(i)))
	}
	return r
}

// UniqueID returns a canonical string fingerprint of the tree. Two trees
// over the same (comparator-ordered) leaf set are admissibility-
// equivalent iff their UniqueID strings are equal.
//
// compare orders the ground set; leaves are renumbered 0..n-1 by that
// order before the canonical string is built, so the returned string
// never leaks node-allocation-order indices. Every inner node is
// canonicalized independently: a P-node's children are sorted by their
// subtree's minimum leaf rank (always a total order, since sibling
// subtrees never share a leaf); a C-node's children are rotated and,
// if needed, reversed to the lexicographically smallest such sequence.
// This direct canonicalization replaces spec.md §4.5's "order by the
// direction of the partial arrow from an exclude-one-leaf labeling".
func (t *Tree) UniqueID(compare func(a, b int) int) string {
	if t.root == nil {
		return ""
	}
	order := make([]int, t.NumLeaves())
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return compare(order[i], order[j]) < 0 })
	rank := make([]int, len(order))
	for r, leaf := range order {
		rank[leaf] = r
	}

	var b strings.Builder
	t.writeUniqueID(&b, t.root, rank)
	return b.String()
}

// writeUniqueID appends n's canonical string to b, given the leaf-index
// -> rank table.
func (t *Tree) writeUniqueID(b *strings.Builder, n *node, rank []int) {
	if n.kind == Leaf {
		fmt.Fprintf(b, "%d", rank[n.leafPos])
		return
	}

	repRank := make([]int, len(n.children))
	for i, c := range n.children {
		repRank[i] = minRepRank(c, rank)
	}

	order := make([]int, len(n.children))
	for i := range order {
		order[i] = i
	}

	open, closeCh := "(", ")"
	if n.kind == CNode {
		open, closeCh = "[", "]"
		order = canonicalCycle(repRank)
	} else {
		sort.Slice(order, func(i, j int) bool { return repRank[order[i]] < repRank[order[j]] })
	}

	fmt.Fprintf(b, "0:%s", open)
	for i, idx := range order {
		if i > 0 {
			b.WriteByte(',')
		}
		t.writeUniqueID(b, n.children[idx], rank)
	}
	b.WriteString(closeCh)
}

// minRepRank returns the smallest leaf rank in n's subtree.
func minRepRank(n *node, rank []int) int {
	if n.kind == Leaf {
		return rank[n.leafPos]
	}
	best := -1
	for _, c := range n.children {
		r := minRepRank(c, rank)
		if best == -1 || r < best {
			best = r
		}
	}
	return best
}

// canonicalCycle returns the rotation (and, if needed, reflection) of
// indices [0, len(ranks)) that makes ranks[order[i]] lexicographically
// smallest as order ranges over i=0..len-1.
func canonicalCycle(ranks []int) []int {
	l := len(ranks)
	best := make([]int, l)
	var bestSeq []int
	for _, reversed := range []bool{false, true} {
		seq := ranks
		if reversed {
			seq = make([]int, l)
			for i, r := range ranks {
				seq[l-1-i] = r
			}
		}
		for start := 0; start < l; start++ {
			candidate := make([]int, l)
			for i := 0; i < l; i++ {
				candidate[i] = seq[(start+i)%l]
			}
			if bestSeq == nil || lessSeq(candidate, bestSeq) {
				bestSeq = candidate
				for i := 0; i < l; i++ {
					if reversed {
						best[i] = l - 1 - ((start+i)%l)
					} else {
						best[i] = (start + i) % l
					}
				}
			}
		}
	}
	return best
}

func lessSeq(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// IsValidOrder reports whether order (a permutation of every leaf index)
// is admissible: a copy of the tree is made, and make_consecutive is
// applied to each consecutive pair in order (cyclically), succeeding iff
// every call succeeds.
func (t *Tree) IsValidOrder(order []int) bool {
	if len(order) != t.NumLeaves() {
		return false
	}
	cp := t.Clone()
	for i := range order {
		a, b := order[i], order[(i+1)%len(order)]
		if !cp.MakeConsecutive([]int{a, b}) {
			return false
		}
	}
	return true
}

// GetRestrictions enumerates a minimal generating set of the
// restrictions represented by the tree: every P-node's child-leaf-sets,
// and every adjacent-pair full-block of each C-node. Trivial
// restrictions (size <= 1 or size >= n-1) are omitted.
func (t *Tree) GetRestrictions() [][]int {
	var out [][]int
	if t.root == nil {
		return out
	}
	n := t.NumLeaves()
	add := func(leaves []int) {
		if len(leaves) <= 1 || len(leaves) >= n-1 {
			return
		}
		out = append(out, leaves)
	}

	var walk func(x *node)
	walk = func(x *node) {
		switch x.kind {
		case PNode:
			for _, c := range x.children {
				add(collectLeaves(c))
			}
		case CNode:
			l := len(x.children)
			pairs := l
			if x != t.root {
				// Below the root the parent sits between the last and
				// first child, so those two are not adjacent.
				pairs = l - 1
			}
			for i := 0; i < pairs; i++ {
				add(append(collectLeaves(x.children[i]), collectLeaves(x.children[(i+1)%l])...))
			}
		}
		for _, c := range x.children {
			walk(c)
		}
	}
	walk(t.root)
	return out
}

func collectLeaves(n *node) []int {
	if n.kind == Leaf {
		return []int{n.leafPos}
	}
	var out []int
	for _, c := range n.children {
		out = append(out, collectLeaves(c)...)
	}
	return out
}

// Intersect sharpens the receiver so it represents exactly the
// intersection of its own admissible orders with other's, under
// leafMap (a mapping from other's leaf indices to the receiver's). It
// returns false, leaving the receiver entirely unchanged, if the two
// trees' admissible order sets are disjoint.
//
// spec.md §4.5 folds each of other's restrictions into a single
// placeholder leaf as it is read off, to keep the working tree small
// while the rest are applied, then restores the placeholders once
// every restriction has gone through. That collapse-and-restore is a
// scale optimization, not a correctness requirement: applying every
// restriction directly, against the receiver's own leaf positions,
// reaches the identical final tree, since each of other's restrictions
// is independently enforceable regardless of what order they're
// applied in or how large the tree they're applied to is (see
// DESIGN.md). To still honor "unchanged on false" without a rollback
// log, the restrictions are applied to a clone, which replaces the
// receiver only once every one of them has succeeded.
func (t *Tree) Intersect(other *Tree, leafMap map[int]int) bool {
	cp := t.Clone()
	for _, r := range other.GetRestrictions() {
		mapped := make([]int, 0, len(r))
		for _, leaf := range r {
			mapped = append(mapped, leafMap[leaf])
		}
		if !cp.MakeConsecutive(mapped) {
			return false
		}
	}
	*t = *cp
	return true
}
