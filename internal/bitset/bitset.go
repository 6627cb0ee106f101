// Package bitset implements growable bit-vectors over small non-negative
// integers (automaton state ids).
//
// A Set can be turned into a Key, a string with value semantics, so whole
// state sets can index Go maps and caches.
package bitset

import (
	"encoding/binary"
	"math/bits"
	"strconv"
	"strings"
)

const wordBits = 64

// Set is a growable set of non-negative integers.
// The zero value is an empty set ready to use.
type Set struct {
	words []uint64
}

// New returns an empty set with room for values in [0, capacity).
func New(capacity int) *Set {
	return &Set{words: make([]uint64, 0, (capacity+wordBits-1)/wordBits)}
}

// FromWords returns a set whose bit i of words[i/64] marks membership of i.
func FromWords(words []uint64) *Set {
	w := make([]uint64, len(words))
	copy(w, words)
	return &Set{words: w}
}

// Add inserts i. Panics if i is negative.
func (s *Set) Add(i int) {
	if i < 0 {
		panic("bitset: negative value")
	}
	w := i / wordBits
	for len(s.words) <= w {
		s.words = append(s.words, 0)
	}
	s.words[w] |= 1 << (uint(i) % wordBits)
}

// Remove deletes i if present.
func (s *Set) Remove(i int) {
	w := i / wordBits
	if i < 0 || w >= len(s.words) {
		return
	}
	s.words[w] &^= 1 << (uint(i) % wordBits)
}

// Has reports whether i is a member.
func (s *Set) Has(i int) bool {
	w := i / wordBits
	if i < 0 || w >= len(s.words) {
		return false
	}
	return s.words[w]&(1<<(uint(i)%wordBits)) != 0
}

// Union adds every member of o to s.
func (s *Set) Union(o *Set) {
	if o == nil {
		return
	}
	for len(s.words) < len(o.words) {
		s.words = append(s.words, 0)
	}
	for i, w := range o.words {
		s.words[i] |= w
	}
}

// Clear removes all members, keeping the allocation.
func (s *Set) Clear() {
	s.words = s.words[:0]
}

// IsEmpty reports whether s has no members.
func (s *Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Len returns the number of members.
func (s *Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Next returns the smallest member >= from, or -1 if there is none.
func (s *Set) Next(from int) int {
	if from < 0 {
		from = 0
	}
	w := from / wordBits
	if w >= len(s.words) {
		return -1
	}
	word := s.words[w] >> (uint(from) % wordBits)
	if word != 0 {
		return from + bits.TrailingZeros64(word)
	}
	for w++; w < len(s.words); w++ {
		if s.words[w] != 0 {
			return w*wordBits + bits.TrailingZeros64(s.words[w])
		}
	}
	return -1
}

// Min returns the smallest member, or -1 for an empty set.
func (s *Set) Min() int {
	return s.Next(0)
}

// Members returns all members in ascending order.
func (s *Set) Members() []int {
	out := make([]int, 0, s.Len())
	for i := s.Next(0); i >= 0; i = s.Next(i + 1) {
		out = append(out, i)
	}
	return out
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	return FromWords(s.trimmed())
}

// Equal reports whether s and o have the same members.
func (s *Set) Equal(o *Set) bool {
	a, b := s.trimmed(), o.trimmed()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Words returns the packed representation without trailing zero words.
func (s *Set) Words() []uint64 {
	t := s.trimmed()
	out := make([]uint64, len(t))
	copy(out, t)
	return out
}

// Key returns a value that is equal for two sets exactly when they have
// the same members.
func (s *Set) Key() string {
	t := s.trimmed()
	var b strings.Builder
	b.Grow(len(t) * 8)
	var buf [8]byte
	for _, w := range t {
		binary.LittleEndian.PutUint64(buf[:], w)
		b.Write(buf[:])
	}
	return b.String()
}

// String formats s as {a, b, c}.
func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, m := range s.Members() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(m))
	}
	b.WriteByte('}')
	return b.String()
}

func (s *Set) trimmed() []uint64 {
	n := len(s.words)
	for n > 0 && s.words[n-1] == 0 {
		n--
	}
	return s.words[:n]
}
