package pctree

import (
	"math/big"
	"testing"
)

func TestMakeConsecutiveTrivialSizes(t *testing.T) {
	tests := []struct {
		name    string
		leaves  []int
		wantErr bool
	}{
		{"empty restriction", nil, false},
		{"singleton", []int{2}, false},
		{"whole ground set", []int{0, 1, 2, 3, 4}, false},
		{"all but one", []int{0, 1, 2, 3}, false},
		{"out of range indices ignored", []int{0, 99}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTrivial(5)
			if ok := tr.MakeConsecutive(tt.leaves); !ok {
				t.Errorf("MakeConsecutive(%v) = false, want true", tt.leaves)
			}
		})
	}
}

// TestMakeConsecutiveScenarioA mirrors the worked example: build a trivial
// tree over 10 leaves, apply four compatible restrictions, then one that
// conflicts with them.
func TestMakeConsecutiveScenarioA(t *testing.T) {
	tr := NewTrivial(10)

	steps := [][]int{
		{0, 1},
		{2, 3},
		{1, 2},
		{3, 4, 5},
	}
	for _, s := range steps {
		if !tr.MakeConsecutive(s) {
			t.Fatalf("MakeConsecutive(%v) = false, want true", s)
		}
	}

	want := big.NewInt(1)
	want.Mul(want, big.NewInt(2))
	six := factorial(6)
	want.Mul(want, six)
	want.Mul(want, big.NewInt(2))
	if got := tr.PossibleOrders(); got.Cmp(want) != 0 {
		t.Errorf("PossibleOrders() = %s, want %s", got, want)
	}

	// {1,3}: leaf 1 is now interior to the {0,1,2,3,4,5} block and leaf 3
	// is elsewhere inside it in a way that is not consecutive with 1 under
	// the restrictions already applied.
	if tr.MakeConsecutive([]int{1, 3}) {
		t.Error("MakeConsecutive({1,3}) = true, want false (conflicts with earlier restrictions)")
	}
}

// TestMakeConsecutiveScenarioB parses a tree with a known shape and checks
// its order count and that a further restriction succeeds.
func TestMakeConsecutiveScenarioB(t *testing.T) {
	tr, err := Parse("0:[1:(2,3,4), 5, 6:[7,8,9]]", WithKeepIDs())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := big.NewInt(2 * 2 * 6)
	if got := tr.PossibleOrders(); got.Cmp(want) != 0 {
		t.Errorf("PossibleOrders() = %s, want %s", got, want)
	}

	if !tr.MakeConsecutive([]int{2, 3}) {
		t.Fatal("MakeConsecutive({2,3}) = false, want true")
	}
}

func TestMakeConsecutiveConflictLeavesTreeUnchanged(t *testing.T) {
	tr := NewTrivial(6)
	for _, s := range [][]int{{0, 1}, {2, 3}, {1, 2}} {
		if !tr.MakeConsecutive(s) {
			t.Fatalf("setup restriction %v should succeed", s)
		}
	}
	// 0,1,2,3 now sit in a fixed 4-cycle (the {1,2} step merged the two
	// pairs under a C-node), with 1 and 3 two positions apart: no rotation
	// or reflection of that cycle puts them next to each other.
	before := tr.String()

	if tr.MakeConsecutive([]int{1, 3}) {
		t.Fatal("MakeConsecutive({1,3}) = true, want false (not adjacent in the fixed cycle)")
	}
	if tr.String() != before {
		t.Errorf("tree mutated after a failed MakeConsecutive: got %q, want %q", tr.String(), before)
	}
}

func TestIsValidOrderAfterRestriction(t *testing.T) {
	tr := NewTrivial(5)
	tr.MakeConsecutive([]int{0, 1, 2})

	if !tr.IsValidOrder([]int{3, 4, 0, 1, 2}) {
		t.Error("IsValidOrder should accept an order keeping 0,1,2 consecutive")
	}
	if tr.IsValidOrder([]int{0, 3, 1, 4, 2}) {
		t.Error("IsValidOrder should reject an order breaking up 0,1,2")
	}
}
