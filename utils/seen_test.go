package utils

import "testing"

func TestSeenSetAddAndSize(t *testing.T) {
	set := NewSeenSet()

	if set.Size() != 0 {
		t.Errorf("empty set size = %d, want 0", set.Size())
	}

	if !set.Add("/marketplace/item/1") {
		t.Error("first Add returned false, want true")
	}
	if set.Add("/marketplace/item/1") {
		t.Error("duplicate Add returned true, want false")
	}
	if !set.Add("/marketplace/item/2") {
		t.Error("second key Add returned false, want true")
	}

	if set.Size() != 2 {
		t.Errorf("set size = %d, want 2", set.Size())
	}
}
