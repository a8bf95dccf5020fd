package pctree

import "testing"

func TestNewTrivial(t *testing.T) {
	tests := []struct {
		n        int
		wantRoot bool
	}{
		{0, false},
		{1, true},
		{5, true},
	}
	for _, tt := range tests {
		tr := NewTrivial(tt.n)
		if tr.NumLeaves() != tt.n {
			t.Errorf("NewTrivial(%d).NumLeaves() = %d", tt.n, tr.NumLeaves())
		}
		if (tr.Root() >= 0) != tt.wantRoot {
			t.Errorf("NewTrivial(%d).Root() = %d, wantRoot %v", tt.n, tr.Root(), tt.wantRoot)
		}
	}

	tr := NewTrivial(4)
	if !tr.IsTrivial() {
		t.Error("freshly built NewTrivial(4) should be trivial")
	}
}

func TestNewEmpty(t *testing.T) {
	tr := New()
	if tr.NumLeaves() != 0 || tr.Root() != -1 {
		t.Errorf("New() should be empty, got leaves=%d root=%d", tr.NumLeaves(), tr.Root())
	}
}

func TestInsertLeavesAndDestroyLeaf(t *testing.T) {
	tr := NewTrivial(3)
	added := tr.InsertLeaves(2, tr.Root())
	if len(added) != 2 {
		t.Fatalf("InsertLeaves returned %d indices, want 2", len(added))
	}
	if tr.NumLeaves() != 5 {
		t.Fatalf("NumLeaves() = %d, want 5", tr.NumLeaves())
	}

	tr.DestroyLeaf(added[0])
	if tr.NumLeaves() != 4 {
		t.Fatalf("NumLeaves() after DestroyLeaf = %d, want 4", tr.NumLeaves())
	}
}

func TestReplaceLeaf(t *testing.T) {
	tr := NewTrivial(3)
	_, leaves := tr.NodeInfo(tr.Root())
	added := tr.ReplaceLeaf(2, leaves[0])
	if len(added) != 2 {
		t.Fatalf("ReplaceLeaf returned %d indices, want 2", len(added))
	}
	if tr.NumLeaves() != 4 {
		t.Fatalf("NumLeaves() = %d, want 4", tr.NumLeaves())
	}
	for _, idx := range added {
		kind, _ := tr.NodeInfo(idx)
		if kind != Leaf {
			t.Errorf("replacement node %d has kind %v, want Leaf", idx, kind)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tr := NewTrivial(6)
	if !tr.MakeConsecutive([]int{0, 1, 2}) {
		t.Fatal("MakeConsecutive should succeed on a fresh trivial tree")
	}
	clone := tr.Clone()
	if clone.String() != tr.String() {
		t.Fatalf("clone diverges from original: %q vs %q", clone.String(), tr.String())
	}
	if !clone.MakeConsecutive([]int{3, 4}) {
		t.Fatal("MakeConsecutive on the clone should succeed")
	}
	if clone.String() == tr.String() {
		t.Error("mutating the clone should not affect the original")
	}
}

func TestSetRoot(t *testing.T) {
	tr := NewTrivial(5)
	tr.MakeConsecutive([]int{0, 1, 2})
	before := tr.PossibleOrders()

	// Re-root at some non-root node; the tree's represented order family
	// is unchanged by choice of root.
	kind, children := tr.NodeInfo(tr.Root())
	if kind != PNode || len(children) == 0 {
		t.Fatal("expected the root to be a P-node with children")
	}
	tr.SetRoot(children[0])
	if tr.Root() != children[0] {
		t.Fatalf("Root() = %d, want %d", tr.Root(), children[0])
	}
	if tr.PossibleOrders().Cmp(before) != 0 {
		t.Errorf("PossibleOrders changed after SetRoot: %s vs %s", tr.PossibleOrders(), before)
	}
}

func TestChangeNodeType(t *testing.T) {
	tr := NewTrivial(4)
	root := tr.Root()
	tr.ChangeNodeType(root, CNode)
	kind, _ := tr.NodeInfo(root)
	if kind != CNode {
		t.Fatalf("ChangeNodeType did not update kind, got %v", kind)
	}
}

func TestMergeLeavesAssumedConsecutive(t *testing.T) {
	tr := NewTrivial(4)
	_, leaves := tr.NodeInfo(tr.Root())
	merged := tr.MergeLeaves(leaves[:2], true)
	if merged < 0 {
		t.Fatal("MergeLeaves should succeed for an assumed-consecutive pair")
	}
	if tr.NumLeaves() != 3 {
		t.Fatalf("NumLeaves() after merge = %d, want 3", tr.NumLeaves())
	}
}
