package pctree

import pcerrors "github.com/matzehuels/pctree/pkg/errors"

// reduce resolves n's subtree so that every Full descendant of n is
// reachable through a single contiguous path, generalizing the
// teacher's bubbleUp/reduce pass (pkg/dag/perm/pqtree.go) from P/Q-nodes
// to P/C-nodes. It runs in two passes: checkReduce determines whether
// the restriction is feasible anywhere in n's subtree without mutating
// anything, and applyReduce — run only once checkReduce has returned
// true for the whole subtree — performs every structural change. This
// split is what lets an Infeasible result leave the tree provably
// unchanged (§7): no mutation is ever attempted until every feasibility
// check the update could possibly depend on has already passed.
func (t *Tree) reduce(n *node) bool {
	if !t.checkReduce(n) {
		return false
	}
	t.applyReduce(n)
	return true
}

// checkReduce reports whether n's subtree can be reduced, without
// mutating anything.
func (t *Tree) checkReduce(n *node) bool {
	switch t.markOf(n) {
	case full, empty:
		return true
	}
	switch n.kind {
	case PNode:
		return t.checkReducePNode(n)
	case CNode:
		return t.checkReduceCNode(n)
	default: // Leaf: never partial
		return true
	}
}

// applyReduce performs the structural update for n's subtree. Pre:
// checkReduce(n) has already returned true.
func (t *Tree) applyReduce(n *node) {
	switch t.markOf(n) {
	case full, empty:
		return
	}
	switch n.kind {
	case PNode:
		t.applyReducePNode(n)
	case CNode:
		t.applyReduceCNode(n)
	}
}

// checkReducePNode reports whether a Partial P-node n can be reduced. A
// P-node's children have no fixed order, so the only structural
// requirement at this level is on the count of Partial children: one
// forms the simple single-sided case, two form the "A-shape" apex of
// §4.3 step 5 (two terminal-path predecessors merging at n), and more
// than two is never feasible (more than two predecessors on any node is
// a feasibility rule from §4.3). Each Partial child must itself check
// out.
func (t *Tree) checkReducePNode(n *node) bool {
	var partialCh []*node
	for _, c := range n.children {
		if t.markOf(c) == partial {
			partialCh = append(partialCh, c)
		}
	}
	if len(partialCh) > 2 {
		return false
	}
	for _, c := range partialCh {
		if !t.checkReduce(c) {
			return false
		}
	}
	return true
}

// applyReducePNode handles a Partial P-node: its Full children need
// only be grouped together (no adjacency concerns), and its Partial
// children (one or two, per checkReducePNode) carry the boundary with
// further Full content one level down.
func (t *Tree) applyReducePNode(n *node) {
	var fullCh, partialCh []*node
	for _, c := range n.children {
		switch t.markOf(c) {
		case full:
			fullCh = append(fullCh, c)
		case partial:
			partialCh = append(partialCh, c)
		}
	}
	switch len(partialCh) {
	case 0:
		if len(fullCh) == 0 {
			return
		}
		t.groupChildren(n, fullCh)
	case 1:
		if len(fullCh) > 0 {
			t.extendPartialChild(n, partialCh[0], fullCh)
		} else {
			t.applyReduce(partialCh[0])
		}
	case 2:
		t.mergeTwoPartial(n, partialCh[0], partialCh[1], fullCh)
	}
	t.collapseDegreeTwo(n)
}

// groupChildren wraps group (at least one of n's current children) in a
// fresh P-node child of n, unless group has only one member, in which
// case no wrapping is needed.
func (t *Tree) groupChildren(n *node, group []*node) {
	if len(group) <= 1 {
		return
	}
	wrapper := t.newNode(PNode, nil, -1)
	for _, c := range group {
		t.detach(c)
		t.appendChild(wrapper, c, false)
	}
	t.appendChild(n, wrapper, false)
	t.refresh(wrapper)
	wrapper.mark = full
	t.obs().OnFullNodeSplit(n.idx, wrapper.idx)
}

// extendPartialChild dissolves n's unique Partial child x, attaching x's
// own Full-ward content together with n's other Full children under a
// fresh central C-node that replaces x in n's child list. fullSiblings
// are detached from n as part of this call. Pre: checkReduce(x) has
// already returned true.
func (t *Tree) extendPartialChild(n, x *node, fullSiblings []*node) {
	t.applyReduce(x)
	emptyPart, fullPart := splitPartial(t, x)
	if len(emptyPart) == 0 {
		// x is marked Partial, so its subtree must contain genuine Empty
		// content; reaching here means labeling mis-marked it.
		panic(pcerrors.New(pcerrors.ErrCodeBug, "pctree: partial node %d has no empty content", x.idx))
	}

	for _, c := range fullSiblings {
		t.detach(c)
	}

	central := t.newNode(CNode, nil, -1)
	t.obs().OnCentralCreated(central.idx)
	t.obs().BeforeMerge(central.idx, x.idx)
	for _, c := range emptyPart {
		t.appendChild(central, c, false)
	}
	for _, c := range fullPart {
		t.appendChild(central, c, false)
	}
	for _, c := range fullSiblings {
		t.appendChild(central, c, false)
	}
	t.obs().AfterMerge(central.idx)
	t.refresh(central)
	central.mark = partial // still carries emptyPart: not yet full from an ancestor's view

	t.replaceWith(x, central)
	t.destroyNode(x)
}

// mergeTwoPartial handles the A-shape when apex n is a P-node: two of
// its children, x1 and x2, are the terminal path's two predecessors and
// must be merged under a fresh central C-node. n itself has no fixed
// order, so (unlike a C-node apex, which is reused in place per §4.4
// point 4) the boundary cannot be carried by n directly; instead a new
// C-node is built per §4.4 point 3, with circular order [x1's empty
// part, x1's full part, n's own full children, x2's full part, x2's
// empty part] — x1's and x2's empty parts meet across the circular
// seam, so the new node's one full block and one empty block both stay
// contiguous. Pre: checkReduce(x1) and checkReduce(x2) have already
// returned true.
func (t *Tree) mergeTwoPartial(n, x1, x2 *node, fullSiblings []*node) {
	t.applyReduce(x1)
	t.applyReduce(x2)

	empty1, full1 := splitPartial(t, x1)
	empty2, full2 := splitPartial(t, x2)
	if len(empty1) == 0 || len(empty2) == 0 {
		panic(pcerrors.New(pcerrors.ErrCodeBug, "pctree: A-shape predecessor has no empty content"))
	}

	for _, c := range fullSiblings {
		t.detach(c)
	}

	central := t.newNode(CNode, nil, -1)
	t.obs().OnCentralCreated(central.idx)
	t.obs().BeforeMerge(central.idx, x1.idx)
	for _, c := range empty1 {
		t.appendChild(central, c, false)
	}
	for _, c := range full1 {
		t.appendChild(central, c, false)
	}
	for _, c := range fullSiblings {
		t.appendChild(central, c, false)
	}
	for _, c := range full2 {
		t.appendChild(central, c, false)
	}
	t.obs().BeforeMerge(central.idx, x2.idx)
	for _, c := range empty2 {
		t.appendChild(central, c, false)
	}
	t.obs().AfterMerge(central.idx)
	t.refresh(central)
	central.mark = partial // both flanks' empty parts still live on the seam

	t.replaceWith(x1, central)
	t.destroyNode(x1)
	t.detach(x2)
	t.destroyNode(x2)
}

// splitPartial classifies x's direct children into its Empty-ward and
// Full-ward groups (a nested Partial child, if any, counts as Full-ward:
// it is the continuation toward further Full content, already resolved
// by the applyReduce call that ran on x before this is called) and
// detaches them all from x, leaving x childless and ready to be
// discarded.
func splitPartial(t *Tree, x *node) (emptyPart, fullPart []*node) {
	for _, c := range x.children {
		if t.markOf(c) == empty {
			emptyPart = append(emptyPart, c)
		} else {
			fullPart = append(fullPart, c)
		}
	}
	for _, c := range append(append([]*node{}, emptyPart...), fullPart...) {
		t.detach(c)
	}
	return emptyPart, fullPart
}

// cnodeIndices partitions n's children by label, returning the indices
// (into n.children) marked Full and Partial respectively.
func cnodeIndices(t *Tree, n *node) (fullIdx, partialIdx []int) {
	for i, c := range n.children {
		switch t.markOf(c) {
		case full:
			fullIdx = append(fullIdx, i)
		case partial:
			partialIdx = append(partialIdx, i)
		}
	}
	return fullIdx, partialIdx
}

// cnodeZone locates the positions (among l circular children) that a
// C-node reduction must splice, given which are Full and which are
// Partial. If n has Full children of its own, they must already form
// one contiguous run, and the zone is that run plus whichever of its
// two flanking positions are themselves Partial (§4.3 step 4). If n has
// no Full children of its own but exactly two Partial children, the
// "empty apex" case of §4.3 step 5 applies: the zone is just those two
// children, which must be mutually adjacent (the Full run between them
// is empty but must still sit between them). ok is false whenever the
// restriction is infeasible at this node; hasZone is false when there
// is nothing to splice (0 or 1 Partial child and no Full run).
func cnodeZone(l int, fullIdx, partialIdx []int) (zlo, zhi int, beforeConsumed, afterConsumed, hasZone, ok bool) {
	if len(fullIdx) > 0 {
		fullMask := make([]bool, l)
		for _, i := range fullIdx {
			fullMask[i] = true
		}
		partialMask := make([]bool, l)
		for _, i := range partialIdx {
			partialMask[i] = true
		}

		start := fullIdx[0]
		lo, hi := start, start
		for fullMask[(lo-1+l)%l] && (lo-1+l)%l != hi {
			lo = (lo - 1 + l) % l
		}
		for fullMask[(hi+1)%l] && (hi+1)%l != lo {
			hi = (hi + 1) % l
		}
		if (hi-lo+l)%l+1 != len(fullIdx) {
			return 0, 0, false, false, false, false // Full children are not contiguous.
		}

		zlo, zhi = lo, hi
		beforeIdx := (lo - 1 + l) % l
		afterIdx := (hi + 1) % l
		if (zhi-zlo+l)%l+1 < l {
			if partialMask[beforeIdx] {
				beforeConsumed = true
				zlo = beforeIdx
			}
			if afterIdx != beforeIdx && partialMask[afterIdx] {
				afterConsumed = true
				zhi = afterIdx
			}
		}
		for _, i := range partialIdx {
			switch {
			case i == beforeIdx && beforeConsumed:
			case i == afterIdx && afterConsumed:
			default:
				return 0, 0, false, false, false, false // Partial child not adjacent to the Full run.
			}
		}
		return zlo, zhi, beforeConsumed, afterConsumed, true, true
	}

	if len(partialIdx) != 2 {
		return 0, 0, false, false, false, true
	}
	i, j := partialIdx[0], partialIdx[1]
	if (j-i+l)%l != 1 {
		i, j = j, i
	}
	if (j-i+l)%l != 1 {
		return 0, 0, false, false, false, false // the empty apex's two predecessors must be adjacent
	}
	return i, j, true, true, true, true
}

// checkReduceCNode reports whether a Partial C-node n can be reduced;
// see cnodeZone for the feasibility rule.
func (t *Tree) checkReduceCNode(n *node) bool {
	l := len(n.children)
	fullIdx, partialIdx := cnodeIndices(t, n)
	if len(partialIdx) > 2 {
		return false
	}
	if _, _, _, _, _, ok := cnodeZone(l, fullIdx, partialIdx); !ok {
		return false
	}
	for _, i := range partialIdx {
		if !t.checkReduce(n.children[i]) {
			return false
		}
	}
	return true
}

// applyReduceCNode handles a Partial C-node n by reusing it as the
// central node per §4.4 point 4: the zone identified by cnodeZone is
// rotated to the front, its Partial flanks (if any) are dissolved via
// splitPartial and spliced in full/empty order, and everything outside
// the zone is left untouched in its original relative order.
func (t *Tree) applyReduceCNode(n *node) {
	l := len(n.children)
	fullIdx, partialIdx := cnodeIndices(t, n)
	for _, i := range partialIdx {
		t.applyReduce(n.children[i])
	}

	zlo, zhi, beforeConsumed, afterConsumed, hasZone, _ := cnodeZone(l, fullIdx, partialIdx)
	if !hasZone {
		return
	}

	zoneLen := (zhi-zlo+l)%l + 1
	rotated := make([]*node, l)
	for i := 0; i < l; i++ {
		rotated[i] = n.children[(zlo+i)%l]
	}
	hotZone := rotated[:zoneLen]
	rest := rotated[zoneLen:]

	t.obs().OnCentralCreated(n.idx)
	expanded := make([]*node, 0, zoneLen+2)
	for i, c := range hotZone {
		switch {
		case beforeConsumed && i == 0:
			t.obs().BeforeMerge(n.idx, c.idx)
			e, f := splitPartial(t, c)
			expanded = append(expanded, e...)
			expanded = append(expanded, f...)
			t.destroyNode(c)
		case afterConsumed && i == len(hotZone)-1:
			t.obs().BeforeMerge(n.idx, c.idx)
			e, f := splitPartial(t, c)
			expanded = append(expanded, f...)
			expanded = append(expanded, e...)
			t.destroyNode(c)
		default:
			expanded = append(expanded, c)
		}
	}
	t.obs().AfterMerge(n.idx)

	n.children = append(expanded, rest...)
	for _, c := range n.children {
		t.setParent(c, n)
	}
	t.collapseDegreeTwo(n)
}
