package pctree

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Leaf, "leaf"},
		{PNode, "P"},
		{CNode, "C"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestLabelString(t *testing.T) {
	tests := []struct {
		l    label
		want string
	}{
		{empty, "empty"},
		{full, "full"},
		{partial, "partial"},
	}
	for _, tt := range tests {
		if got := tt.l.String(); got != tt.want {
			t.Errorf("label.String() = %q, want %q", got, tt.want)
		}
	}
}
