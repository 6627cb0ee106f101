package sparse

import (
	"testing"
)

func TestSet_Basic(t *testing.T) {
	s := New(100)

	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	if !s.Insert(5) {
		t.Error("first insert should return true")
	}
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	if s.Insert(5) {
		t.Error("duplicate insert should return false")
	}
	if s.Len() != 1 {
		t.Errorf("len should be 1, got %d", s.Len())
	}

	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Len() != 4 {
		t.Errorf("len should be 4, got %d", s.Len())
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("set should be empty after clear")
	}
	if s.Contains(5) {
		t.Error("cleared set should not contain 5")
	}
}

func TestSet_InsertionOrder(t *testing.T) {
	s := New(16)
	want := []int{9, 2, 15, 0}
	for _, v := range want {
		s.Insert(v)
	}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSet_OutOfRange(t *testing.T) {
	s := New(4)
	if s.Contains(-1) || s.Contains(4) {
		t.Error("out of range values must not be members")
	}
}

func TestSet_StaleSparseEntry(t *testing.T) {
	s := New(8)
	s.Insert(3)
	s.Clear()
	s.Insert(6)
	// sparse[3] still holds 0, which now points at 6
	if s.Contains(3) {
		t.Error("Contains(3) = true after Clear, want false")
	}
}
