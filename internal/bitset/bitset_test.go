package bitset

import (
	"testing"
)

func TestSet_AddHasRemove(t *testing.T) {
	var s Set
	for _, v := range []int{0, 63, 64, 200} {
		s.Add(v)
	}
	for _, v := range []int{0, 63, 64, 200} {
		if !s.Has(v) {
			t.Errorf("Has(%d) = false, want true", v)
		}
	}
	if s.Has(1) || s.Has(199) || s.Has(1000) || s.Has(-1) {
		t.Error("Has reported a value that was never added")
	}
	s.Remove(63)
	if s.Has(63) {
		t.Error("Has(63) = true after Remove")
	}
	if got := s.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestSet_NextAndMembers(t *testing.T) {
	s := New(10)
	for _, v := range []int{130, 5, 64, 7} {
		s.Add(v)
	}
	want := []int{5, 7, 64, 130}
	got := s.Members()
	if len(got) != len(want) {
		t.Fatalf("Members() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Members()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if m := s.Min(); m != 5 {
		t.Errorf("Min() = %d, want 5", m)
	}
	if n := s.Next(8); n != 64 {
		t.Errorf("Next(8) = %d, want 64", n)
	}
	if n := s.Next(131); n != -1 {
		t.Errorf("Next(131) = %d, want -1", n)
	}
	var empty Set
	if m := empty.Min(); m != -1 {
		t.Errorf("empty Min() = %d, want -1", m)
	}
}

func TestSet_KeyIgnoresCapacity(t *testing.T) {
	a := New(1000)
	a.Add(3)
	a.Add(500)
	a.Remove(500)

	b := New(0)
	b.Add(3)

	if a.Key() != b.Key() {
		t.Errorf("Key() differs for equal sets %v and %v", a, b)
	}
	if !a.Equal(b) {
		t.Errorf("Equal(%v, %v) = false", a, b)
	}
	b.Add(4)
	if a.Key() == b.Key() {
		t.Errorf("Key() equal for different sets %v and %v", a, b)
	}
}

func TestSet_UnionAndClone(t *testing.T) {
	a := New(0)
	a.Add(1)
	b := New(0)
	b.Add(100)

	c := a.Clone()
	c.Union(b)
	if !c.Has(1) || !c.Has(100) {
		t.Errorf("Union result %v missing members", c)
	}
	if a.Has(100) {
		t.Error("Clone shares storage with the original")
	}
	if got := c.String(); got != "{1, 100}" {
		t.Errorf("String() = %q, want %q", got, "{1, 100}")
	}
}

func TestSet_Words(t *testing.T) {
	s := FromWords([]uint64{0b101, 0, 0})
	w := s.Words()
	if len(w) != 1 || w[0] != 0b101 {
		t.Errorf("Words() = %v, want [5]", w)
	}
	if !s.Has(0) || !s.Has(2) || s.Has(1) {
		t.Errorf("FromWords membership wrong: %v", s)
	}
}
