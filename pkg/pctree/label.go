package pctree

// labelResult is the outcome of a labeling pass: the partial inner nodes
// the reduction must touch, in bottom-up (post-order) order, the order
// nodes became full (used by intersection and canonical-form algorithms
// per spec.md §4.2), and whether the whole tree collapsed to Full.
type labelResult struct {
	partials []*node
	fullSeq  []*node
	allFull  bool
}

// label runs the labeling engine (§4.2) for leaf set f. It bumps the
// tree's timestamp and classifies every inner node bottom-up: Full if its
// entire subtree lies in f, Empty if none of it does, Partial otherwise.
// This is a post-order bubble-up rather than the spec's literal queue
// formulation, but computes the identical classification in the same
// asymptotic time; see DESIGN.md for the equivalence argument.
func (t *Tree) label(f map[*node]bool) labelResult {
	t.timestamp++
	if t.root == nil {
		return labelResult{allFull: true}
	}

	var res labelResult
	t.labelNode(t.root, f, &res)
	res.allFull = t.root.mark == full
	return res
}

// labelNode classifies n and its subtree, appending to res as nodes
// resolve. Returns n's own label.
func (t *Tree) labelNode(n *node, f map[*node]bool, res *labelResult) label {
	t.refresh(n)

	if n.kind == Leaf {
		if f[n] {
			n.mark = full
			res.fullSeq = append(res.fullSeq, n)
		} else {
			n.mark = empty
		}
		return n.mark
	}

	touched := 0
	for _, c := range n.children {
		switch t.labelNode(c, f, res) {
		case full:
			n.fullCount++
			touched++
		case partial:
			touched++
		}
	}

	switch {
	case n.fullCount == len(n.children):
		n.mark = full
		res.fullSeq = append(res.fullSeq, n)
	case touched == 0:
		n.mark = empty
	default:
		n.mark = partial
		res.partials = append(res.partials, n)
	}
	return n.mark
}

// labelSet converts a leaf-index restriction into a set of leaf nodes,
// dropping out-of-range indices and duplicates, per the documented
// contract of the exported entry point.
func (t *Tree) labelSet(leaves []int) map[*node]bool {
	f := make(map[*node]bool, len(leaves))
	for _, idx := range leaves {
		if idx < 0 || idx >= len(t.leaves) {
			continue
		}
		f[t.leaves[idx]] = true
	}
	return f
}
