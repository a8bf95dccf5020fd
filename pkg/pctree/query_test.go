package pctree

import "testing"

func natural(a, b int) int { return a - b }

func TestUniqueIDStableUnderRelabeling(t *testing.T) {
	a, err := Parse("0:[1:(2,3,4), 5, 6:[7,8,9]]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := Parse("0:[6:[9,8,7], 5, 1:(4,3,2)]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// Parse numbers leaves in reading order, so b's leaves are ranked by the
	// integers written for them, which name the same leaves as in a.
	bNames := []int{9, 8, 7, 5, 4, 3, 2}
	byName := func(x, y int) int { return bNames[x] - bNames[y] }
	if a.UniqueID(natural) != b.UniqueID(byName) {
		t.Errorf("UniqueID differs for a reversed/rotated-equivalent C-node: %q vs %q", a.UniqueID(natural), b.UniqueID(byName))
	}
}

func TestUniqueIDDiffersForDistinctTrees(t *testing.T) {
	a := NewTrivial(4)
	b := NewTrivial(4)
	b.MakeConsecutive([]int{0, 1})
	if a.UniqueID(natural) == b.UniqueID(natural) {
		t.Error("UniqueID should differ once a restriction has been applied")
	}
}

// TestIntersectScenarioD mirrors the worked intersection example: intersect
// a trivial tree over 10 leaves with a tree already encoding restrictions,
// and check the two end up with the same canonical fingerprint.
func TestIntersectScenarioD(t *testing.T) {
	t1 := NewTrivial(10)
	t2, err := Parse("0:(14:[15:(6,5), 4, 3, 2, 1], 10, 9, 8, 7)", WithKeepIDs())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	identity := make(map[int]int, 10)
	for i := 0; i < 10; i++ {
		identity[i] = i
	}

	if !t1.Intersect(t2, identity) {
		t.Fatal("Intersect should succeed: t2's restrictions are self-consistent")
	}
	if t1.UniqueID(natural) != t2.UniqueID(natural) {
		t.Errorf("UniqueID after Intersect = %q, want %q", t1.UniqueID(natural), t2.UniqueID(natural))
	}
}

// TestGetRestrictionsRoundTripScenarioF applies a tree's own restriction set
// to a fresh trivial tree and checks the result is equivalent.
func TestGetRestrictionsRoundTripScenarioF(t *testing.T) {
	src, err := Parse("0:[1:(2,3,4), 5, 6:[7,8,9]]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	restrictions := src.GetRestrictions()
	if len(restrictions) == 0 {
		t.Fatal("GetRestrictions returned nothing for a non-trivial tree")
	}

	dst := NewTrivial(src.NumLeaves())
	for _, r := range restrictions {
		if !dst.MakeConsecutive(r) {
			t.Fatalf("MakeConsecutive(%v) = false, want true", r)
		}
	}

	if src.UniqueID(natural) != dst.UniqueID(natural) {
		t.Errorf("UniqueID after replaying restrictions = %q, want %q", dst.UniqueID(natural), src.UniqueID(natural))
	}
}

func TestIsTrivial(t *testing.T) {
	tr := NewTrivial(5)
	if !tr.IsTrivial() {
		t.Error("fresh NewTrivial should be trivial")
	}
	tr.MakeConsecutive([]int{0, 1})
	if tr.IsTrivial() {
		t.Error("tree with an applied restriction should not be trivial")
	}
}

func TestPossibleOrdersTrivial(t *testing.T) {
	tr := NewTrivial(5)
	want := factorial(4) // (n-1)! cyclic orders
	if got := tr.PossibleOrders(); got.Cmp(want) != 0 {
		t.Errorf("PossibleOrders() = %s, want %s", got, want)
	}
}
