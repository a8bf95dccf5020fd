package pctree

// MakeConsecutive enforces a new consecutivity restriction: that every
// leaf named in leaves appear contiguously (in some order, possibly
// reversed) in every cyclic arrangement the tree still admits.
//
// It returns true if the restriction could be enforced (the tree is
// mutated in place to reflect it) or false if the restriction conflicts
// with ones already applied (the tree is left unchanged). Indices
// outside [0, NumLeaves()) are ignored rather than treated as an error,
// matching the documented contract of a restriction naming leaves by
// position.
//
// MakeConsecutive is not safe to call concurrently with itself or with
// any other mutating method on the same Tree.
func (t *Tree) MakeConsecutive(leaves []int) bool {
	obs := t.obs()
	obs.OnCalled(leaves)

	f := t.labelSet(leaves)
	n := t.NumLeaves()
	if len(f) <= 1 || len(f) >= n || len(f) == n-1 {
		// A restriction of size 0, 1, n-1 (the complement of a single
		// leaf), or n is trivially satisfiable in any cyclic order: a
		// single point, the whole ground set, and "everything but one
		// point" are each automatically contiguous on a cycle.
		obs.OnLabelsAssigned(0, len(f))
		obs.OnDone(true)
		return true
	}

	res := t.label(f)
	obs.OnLabelsAssigned(len(res.partials), len(res.fullSeq))
	if res.allFull {
		obs.OnDone(true)
		return true
	}

	apex := t.root
	if len(res.partials) > 0 {
		apex = res.partials[len(res.partials)-1]
	}
	obs.OnTerminalPathFound(apex.idx)

	ok := t.reduce(t.root)
	obs.OnDone(ok)
	return ok
}
