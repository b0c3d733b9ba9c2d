package compare

import (
	"reflect"
	"testing"
)

// TestToggleInvolution verifies toggling twice restores the empty set.
func TestToggleInvolution(t *testing.T) {
	set := NewSet()

	if !set.Toggle("PTXprint") {
		t.Error("first toggle should add")
	}
	if set.Toggle("PTXprint") {
		t.Error("second toggle should remove")
	}

	if set.Len() != 0 {
		t.Errorf("expected empty set, got %v", set.Members())
	}
}

// TestToggleOrder verifies first-added-first ordering.
func TestToggleOrder(t *testing.T) {
	set := NewSet()
	set.Toggle("A")
	set.Toggle("B")

	if got := set.Members(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("expected [A B], got %v", got)
	}

	// Removing A keeps B's position.
	set.Toggle("A")
	if got := set.Members(); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("expected [B], got %v", got)
	}

	// Re-adding A appends at the end.
	set.Toggle("A")
	if got := set.Members(); !reflect.DeepEqual(got, []string{"B", "A"}) {
		t.Errorf("expected [B A], got %v", got)
	}
}

// TestClear verifies Clear empties the set.
func TestClear(t *testing.T) {
	set := NewSet()
	set.Toggle("A")
	set.Toggle("B")
	set.Clear()

	if set.Len() != 0 {
		t.Errorf("expected empty set after Clear, got %v", set.Members())
	}
	if set.Contains("A") {
		t.Error("cleared set should not contain A")
	}
}

// TestMembersIsACopy verifies callers cannot mutate the set through Members.
func TestMembersIsACopy(t *testing.T) {
	set := NewSet()
	set.Toggle("A")
	set.Toggle("B")

	members := set.Members()
	members[0] = "Z"

	if got := set.Members(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("set mutated through Members copy: %v", got)
	}
}
