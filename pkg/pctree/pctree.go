// Package pctree implements a PC-tree: a data structure that compactly
// represents every cyclic permutation of a ground set of leaves that
// remains admissible under a growing collection of consecutivity
// restrictions.
//
// A restriction names a subset S of leaves and requires that S appear
// contiguously in every admissible cyclic order. [Tree.MakeConsecutive]
// either sharpens the tree to enforce a new restriction, or reports that
// the restriction is inconsistent with restrictions applied earlier.
//
// # Node kinds
//
//   - Leaf: degree-1 external element of the ground set.
//   - P-node: children may appear in any cyclic order (n! arrangements).
//   - C-node: children have a fixed circular order, up to reversal (2
//     arrangements once the order is fixed).
//
// # Concurrency
//
// Tree is not safe for concurrent use. A single logical owner must hold the
// tree for the duration of any mutating call; synchronize externally if
// multiple goroutines need access.
//
// # Observability
//
// [MakeConsecutive] reports its progress through the optional [Observer]
// registered with [SetObserver]. This mirrors the no-hard-dependency hooks
// pattern used elsewhere in this module's ancestry: libraries stay free of
// any specific metrics/tracing backend, and callers opt in at startup.
package pctree

import "fmt"

// Kind identifies the structural role of a node.
type Kind uint8

const (
	// Leaf is a degree-1 node naming one element of the ground set.
	Leaf Kind = iota
	// PNode permits its children in any cyclic order.
	PNode
	// CNode fixes its children's circular order, up to reversal.
	CNode
)

// String returns a short display name for the kind: "leaf", "P" or "C".
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case PNode:
		return "P"
	case CNode:
		return "C"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// label classifies a node with respect to the leaf set F of the restriction
// currently being applied.
type label uint8

const (
	// empty is the zero value: a node the current restriction does not
	// touch at all. Nodes whose scratch state is stale (stamp doesn't
	// match the tree's timestamp) are treated as empty without needing to
	// be visited; see (*Tree).markOf.
	empty label = iota
	full
	partial
)

func (l label) String() string {
	switch l {
	case full:
		return "full"
	case partial:
		return "partial"
	default:
		return "empty"
	}
}

// node is one element of the tree's node pool. Every field below the
// "structural" group is scratch state valid only while node.stamp equals
// the owning tree's timestamp; see (*Tree).refresh.
type node struct {
	idx    int
	kind   Kind
	parent *node // direct pointer; nil when parent is a C-node (see parentUF) or node is root
	parentUF int // union-find slot of the parent C-node; -1 when not applicable

	children []*node // circular order for CNode, arbitrary order for PNode; unused for Leaf
	leafPos  int     // index into tree.leaves, valid for Leaf nodes only

	// scratch state for the in-flight MakeConsecutive call
	stamp     uint64
	mark      label
	fullCount int // number of Full children
}

// degree returns the number of children (0 for a leaf).
func (n *node) degree() int { return len(n.children) }

// markOf reports n's current label without mutating scratch state: nodes
// untouched by the in-flight operation (stale stamp) are implicitly empty.
func (t *Tree) markOf(n *node) label {
	if n.stamp != t.timestamp {
		return empty
	}
	return n.mark
}

// refresh lazily resets a node's scratch fields the first time it is
// touched during a new operation, keyed on the tree's monotone timestamp.
func (t *Tree) refresh(n *node) {
	if n.stamp == t.timestamp {
		return
	}
	n.stamp = t.timestamp
	n.mark = empty
	n.fullCount = 0
}
