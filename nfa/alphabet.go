package nfa

import (
	"github.com/pradeesh-kumar/lex-engine/interval"
	"github.com/pradeesh-kumar/lex-engine/lexerr"
	"github.com/pradeesh-kumar/lex-engine/syntax"
)

// Alphabet maps input code points to dense symbol ids.
//
// Symbols are the disjoint intervals of a normalized interval.Set, numbered
// in ascending order. Two code points share a symbol only when no pattern
// can tell them apart, so automata built over an Alphabet need one
// transition per symbol instead of one per code point.
//
// Example for the patterns "if" and "[a-z]+":
//   - symbol 0: [97,101]  ('a' to 'e')
//   - symbol 1: [102,102] ('f')
//   - symbol 2: [103,104] ('g' to 'h')
//   - symbol 3: [105,105] ('i')
//   - symbol 4: [106,122] ('j' to 'z')
type Alphabet struct {
	set     *interval.Set
	symbols []interval.Interval
	index   map[interval.Interval]int
}

// NewAlphabet normalizes set and numbers its intervals.
// The set must not be modified afterwards.
func NewAlphabet(set *interval.Set) *Alphabet {
	set.Normalize()
	symbols := set.Intervals()
	index := make(map[interval.Interval]int, len(symbols))
	for i, iv := range symbols {
		index[iv] = i
	}
	return &Alphabet{set: set, symbols: symbols, index: index}
}

// BuildAlphabet collects every literal and class interval referenced by
// patterns. The first '.' in any pattern adds syntax.Printable once.
func BuildAlphabet(patterns []string) (*Alphabet, error) {
	set := interval.NewSet()
	dot := false
	for _, p := range patterns {
		ivs, hasDot, err := syntax.Alphabet(p)
		if err != nil {
			return nil, err
		}
		for _, iv := range ivs {
			set.Add(iv)
		}
		if hasDot && !dot {
			set.Add(syntax.Printable)
			dot = true
		}
	}
	return NewAlphabet(set), nil
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Epsilon returns the symbol id reserved for epsilon transitions in an NFA.
// It is one past the last alphabet symbol.
func (a *Alphabet) Epsilon() int {
	return len(a.symbols)
}

// Symbol returns the id of iv, which must be exactly one of the alphabet's
// intervals.
func (a *Alphabet) Symbol(iv interval.Interval) (int, error) {
	id, ok := a.index[iv]
	if !ok {
		return 0, lexerr.Alphabetf("no symbol for interval %s", iv)
	}
	return id, nil
}

// Interval returns the code points of symbol id.
// Panics if id is out of range.
func (a *Alphabet) Interval(id int) interval.Interval {
	return a.symbols[id]
}

// Intervals returns the symbols' intervals in id order.
func (a *Alphabet) Intervals() []interval.Interval {
	out := make([]interval.Interval, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Lookup returns the symbol containing code point r.
func (a *Alphabet) Lookup(r rune) (int, bool) {
	i := a.set.Find(int(r))
	return i, i >= 0
}

// Resolve returns, in ascending order and without duplicates, the symbols
// overlapping any of ivs.
func (a *Alphabet) Resolve(ivs []interval.Interval) ([]int, error) {
	seen := make([]bool, len(a.symbols))
	for _, iv := range ivs {
		for _, part := range a.set.Intersection(iv.Start, iv.End) {
			id, err := a.Symbol(part)
			if err != nil {
				return nil, err
			}
			seen[id] = true
		}
	}
	var out []int
	for id, ok := range seen {
		if ok {
			out = append(out, id)
		}
	}
	return out, nil
}

// Complement returns the symbols that do not overlap any of ivs.
func (a *Alphabet) Complement(ivs []interval.Interval) ([]int, error) {
	ids, err := a.Resolve(ivs)
	if err != nil {
		return nil, err
	}
	exclude := make([]interval.Interval, len(ids))
	for i, id := range ids {
		exclude[i] = a.symbols[id]
	}
	rest, err := a.set.Difference(exclude)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(rest))
	for i, iv := range rest {
		if out[i], err = a.Symbol(iv); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// All returns every symbol id.
func (a *Alphabet) All() []int {
	out := make([]int, len(a.symbols))
	for i := range out {
		out[i] = i
	}
	return out
}
