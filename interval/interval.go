// Package interval implements closed integer ranges over code points and a
// lazily normalized collection of them.
//
// The lexer generator's input alphabet is a Set: every literal and character
// class of every pattern is added as a raw Interval, and the normalized form
// partitions their union into disjoint symbols. For example, adding
// [97,99], [97,100] and [98,108] yields the partition
//
//	[97,97] [98,99] [100,100] [101,108]
//
// because each boundary of each raw interval is a boundary in the result.
package interval

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/pradeesh-kumar/lex-engine/lexerr"
)

// Interval is the closed range [Start, End]. Start <= End always holds for
// values built with New or Point.
type Interval struct {
	Start int
	End   int
}

// New returns the interval [start, end].
// Panics if start > end.
func New(start, end int) Interval {
	if start > end {
		panic(fmt.Sprintf("interval: start %d greater than end %d", start, end))
	}
	return Interval{Start: start, End: end}
}

// Point returns the single-value interval [v, v].
func Point(v int) Interval {
	return Interval{Start: v, End: v}
}

// Contains reports whether v lies in the interval.
func (iv Interval) Contains(v int) bool {
	return iv.Start <= v && v <= iv.End
}

// Overlaps reports whether the two intervals share at least one value.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start <= o.End && o.Start <= iv.End
}

// Len returns the number of values in the interval.
func (iv Interval) Len() int {
	return iv.End - iv.Start + 1
}

// Compare orders intervals by Start, then by End.
func (iv Interval) Compare(o Interval) int {
	switch {
	case iv.Start < o.Start:
		return -1
	case iv.Start > o.Start:
		return 1
	case iv.End < o.End:
		return -1
	case iv.End > o.End:
		return 1
	default:
		return 0
	}
}

// String returns "[start,end]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d]", iv.Start, iv.End)
}

// Mode tells whether a Set's normalized view is current.
type Mode uint8

const (
	// Raw means intervals were added since the last normalization
	Raw Mode = iota

	// Normalized means the disjoint partition reflects every added interval
	Normalized
)

// String returns the mode name
func (m Mode) String() string {
	if m == Normalized {
		return "Normalized"
	}
	return "Raw"
}

// Set is an append-only collection of possibly overlapping intervals with a
// lazily computed disjoint partition of their union.
//
// Add moves the set to Raw mode. Every query normalizes first, so callers
// never observe a stale partition; Normalize may also be called explicitly
// at a pipeline boundary.
type Set struct {
	raw  []Interval
	norm []Interval
	mode Mode
	min  int
	max  int
}

// NewSet returns an empty set holding ivs.
func NewSet(ivs ...Interval) *Set {
	s := &Set{min: math.MaxInt, max: math.MinInt}
	for _, iv := range ivs {
		s.Add(iv)
	}
	return s
}

// Add inserts iv.
func (s *Set) Add(iv Interval) {
	s.raw = append(s.raw, iv)
	s.mode = Raw
	if len(s.raw) == 1 {
		s.min, s.max = iv.Start, iv.End
		return
	}
	s.min = min(s.min, iv.Start)
	s.max = max(s.max, iv.End)
}

// AddRange inserts [start, end].
// Panics if start > end.
func (s *Set) AddRange(start, end int) {
	s.Add(New(start, end))
}

// Mode returns the current mode.
func (s *Set) Mode() Mode {
	return s.mode
}

// Bounds returns the smallest start and largest end ever added.
// ok is false when the set is empty.
func (s *Set) Bounds() (lo, hi int, ok bool) {
	if len(s.raw) == 0 {
		return 0, 0, false
	}
	return s.min, s.max, true
}

// RawLen returns the number of intervals added so far.
func (s *Set) RawLen() int {
	return len(s.raw)
}

// Len returns the number of intervals in the normalized partition.
func (s *Set) Len() int {
	s.Normalize()
	return len(s.norm)
}

// Normalize computes the disjoint partition if the set is in Raw mode.
func (s *Set) Normalize() {
	if s.mode == Normalized {
		return
	}
	s.norm = partition(s.raw)
	s.mode = Normalized
}

// Intervals returns a copy of the normalized partition in ascending order.
func (s *Set) Intervals() []Interval {
	s.Normalize()
	return slices.Clone(s.norm)
}

// Index returns the position of iv in the normalized partition, or -1 if
// iv is not exactly one of its intervals.
func (s *Set) Index(iv Interval) int {
	s.Normalize()
	i, found := slices.BinarySearchFunc(s.norm, iv, Interval.Compare)
	if !found {
		return -1
	}
	return i
}

// Find returns the position of the normalized interval containing v, or -1.
func (s *Set) Find(v int) int {
	s.Normalize()
	i := sort.Search(len(s.norm), func(i int) bool { return s.norm[i].End >= v })
	if i < len(s.norm) && s.norm[i].Start <= v {
		return i
	}
	return -1
}

// Intersection returns the contiguous run of normalized intervals that
// overlap [start, end]. The result is empty when the query lies entirely
// inside a gap or outside the set.
func (s *Set) Intersection(start, end int) []Interval {
	s.Normalize()
	if start > end {
		return nil
	}
	lo := sort.Search(len(s.norm), func(i int) bool { return s.norm[i].End >= start })
	hi := lo
	for hi < len(s.norm) && s.norm[hi].Start <= end {
		hi++
	}
	if lo == hi {
		return nil
	}
	return slices.Clone(s.norm[lo:hi])
}

// Difference returns the normalized intervals that are not in other.
// Every interval of other must be exactly one of the normalized intervals;
// otherwise an Alphabet error is returned.
func (s *Set) Difference(other []Interval) ([]Interval, error) {
	s.Normalize()
	exclude := make([]bool, len(s.norm))
	for _, iv := range other {
		i := s.Index(iv)
		if i < 0 {
			return nil, lexerr.Alphabetf("interval %s is not a symbol of the alphabet", iv)
		}
		exclude[i] = true
	}
	out := make([]Interval, 0, len(s.norm))
	for i, iv := range s.norm {
		if !exclude[i] {
			out = append(out, iv)
		}
	}
	return out, nil
}

// String lists the normalized intervals.
func (s *Set) String() string {
	return fmt.Sprint(s.Intervals())
}

// event marks where coverage changes: +1 at a start, -1 one past an end.
type event struct {
	pos   int
	delta int
}

// partition sweeps the start/end events of ivs and emits a new interval at
// every position where coverage changes while something is covered.
func partition(ivs []Interval) []Interval {
	events := make([]event, 0, 2*len(ivs))
	for _, iv := range ivs {
		events = append(events, event{iv.Start, 1}, event{iv.End + 1, -1})
	}
	slices.SortFunc(events, func(a, b event) int {
		if c := cmp.Compare(a.pos, b.pos); c != 0 {
			return c
		}
		return cmp.Compare(a.delta, b.delta)
	})

	var out []Interval
	active := 0
	prev := 0
	for _, e := range events {
		if active > 0 && prev < e.pos {
			out = append(out, Interval{Start: prev, End: e.pos - 1})
		}
		active += e.delta
		prev = e.pos
	}
	return out
}
