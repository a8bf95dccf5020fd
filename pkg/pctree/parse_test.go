package pctree

import "testing"

func TestParseLeaf(t *testing.T) {
	tr, err := Parse("0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tr.NumLeaves() != 1 {
		t.Fatalf("NumLeaves() = %d, want 1", tr.NumLeaves())
	}
	kind, _ := tr.NodeInfo(tr.Root())
	if kind != Leaf {
		t.Errorf("root kind = %v, want Leaf", kind)
	}
}

func TestParsePNodeAndCNode(t *testing.T) {
	tr, err := Parse("0:[1:(2,3,4), 5, 6:[7,8,9]]", WithKeepIDs())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tr.NumLeaves() != 7 {
		t.Fatalf("NumLeaves() = %d, want 7", tr.NumLeaves())
	}
	kind, children := tr.NodeInfo(tr.Root())
	if kind != CNode || len(children) != 3 {
		t.Fatalf("root = %v with %d children, want CNode with 3", kind, len(children))
	}
}

func TestParseRejectsDegreeTwo(t *testing.T) {
	_, err := Parse("0:(1,2)")
	if err == nil {
		t.Error("Parse should reject a degree-2 root")
	}
}

func TestParseAcceptsNonRootDegreeTwo(t *testing.T) {
	// A degree-2 P-node below the root is a perfectly admissible grouping;
	// only the root itself is restricted to never rest at degree 2.
	tr, err := Parse("0:(1:(2,3),4,5)", WithKeepIDs())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	kind, children := tr.NodeInfo(1)
	if kind != PNode || len(children) != 2 {
		t.Fatalf("node 1 = %v with %d children, want PNode with 2", kind, len(children))
	}
}

func TestParseRejectsTrailingInput(t *testing.T) {
	_, err := Parse("0 1")
	if err == nil {
		t.Error("Parse should reject unexpected trailing input")
	}
}

func TestParseRootLeafWrapper(t *testing.T) {
	tr, err := Parse("9:{0:(1,2,3)}", WithKeepIDs())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	kind, children := tr.NodeInfo(tr.Root())
	if kind != PNode || len(children) != 3 {
		t.Fatalf("root = %v with %d children, want PNode with 3", kind, len(children))
	}
}

func TestParseRootLeafWrapperRejectsNested(t *testing.T) {
	_, err := Parse("0:(1:(9:{2:[3,4,5]}))")
	if err == nil {
		t.Error("Parse should reject root_leaf_wrapper anywhere but the entire input")
	}
}

func TestStringRoundTrip(t *testing.T) {
	tr := NewTrivial(4)
	tr.MakeConsecutive([]int{0, 1})

	s := tr.String()
	reparsed, err := Parse(s, WithKeepIDs())
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	if got := reparsed.String(); got != s {
		t.Errorf("round trip mismatch: got %q, want %q", got, s)
	}
}
