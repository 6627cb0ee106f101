// Package sparse provides a sparse set of automaton state ids.
//
// A sparse set supports O(1) insertion, membership testing and clearing
// while keeping a dense list of its members in insertion order. NFA
// simulation uses two of them as the current and next state sets.
package sparse

// Set is a set of state ids in [0, capacity).
// The sparse array maps a value to its index in the dense array.
type Set struct {
	sparse []int
	dense  []int
}

// New creates a set able to hold values in [0, capacity).
func New(capacity int) *Set {
	return &Set{
		sparse: make([]int, capacity),
		dense:  make([]int, 0, capacity),
	}
}

// Insert adds value to the set and reports whether it was absent.
// Panics if value is outside [0, capacity).
func (s *Set) Insert(value int) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = len(s.dense)
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value int) bool {
	if value < 0 || value >= len(s.sparse) {
		return false
	}
	idx := s.sparse[value]
	return idx < len(s.dense) && s.dense[idx] == value
}

// Clear removes all elements in O(1) time.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set has no elements.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Values returns the members in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []int {
	return s.dense
}
