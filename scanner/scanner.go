// Package scanner is the runtime behind generated lexers.
//
// A generated lexer embeds its automaton as a Tables value and calls Next
// in a loop, switching on the returned accepting state to run the action of
// the matching rule. Next implements longest match: it follows the table
// until it falls into the phi state or the input ends, then backs up to the
// last accepting state it passed.
package scanner

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/pradeesh-kumar/lex-engine/codec"
)

// Range maps the code points Lo..Hi to alphabet symbol Symbol.
type Range struct {
	Lo, Hi rune
	Symbol int
}

// Tables is the compiled automaton of a lexer.
type Tables struct {
	// States is the number of table rows, the phi row 0 included.
	States int

	// Alphabets is the number of table columns.
	Alphabets int

	// Start is the initial state.
	Start int

	// Transitions is the table in codec.Encode form.
	Transitions string

	// Final holds the accepting states, 64 per word: state s accepts when
	// bit s%64 of Final[s/64] is set.
	Final []uint64

	// Ranges lists the alphabet. Ranges must not overlap.
	Ranges []Range
}

var (
	// ErrInvalidCharacter is reported for a code point outside the alphabet.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrUnresolved is reported when no rule matches at the current position.
	ErrUnresolved = errors.New("cannot resolve symbol")
)

// Error is a scanning failure at a source position. It wraps
// ErrInvalidCharacter or ErrUnresolved.
type Error struct {
	Err    error
	Text   string
	Line   int
	Column int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v %q", e.Line, e.Column, e.Err, e.Text)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Scanner splits an input stream into lexemes.
//
// After an error the scanner skips one character, so callers may keep
// calling Next to report further errors.
type Scanner struct {
	in     *bufio.Reader
	table  [][]int
	final  []uint64
	ranges []Range
	start  int

	// pending holds runes read from in but not yet consumed
	pending []rune

	value        string
	line, column int

	// position of pending[0]
	nextLine, nextColumn int
}

// New decodes t and returns a scanner reading from r.
func New(r io.Reader, t Tables) (*Scanner, error) {
	table, err := codec.Decode(t.Transitions, t.States, t.Alphabets)
	if err != nil {
		return nil, err
	}
	if t.Start <= 0 || t.Start >= t.States {
		return nil, fmt.Errorf("scanner: start state %d outside 1..%d", t.Start, t.States-1)
	}
	ranges := slices.Clone(t.Ranges)
	slices.SortFunc(ranges, func(a, b Range) int { return cmp.Compare(a.Lo, b.Lo) })
	for i, rg := range ranges {
		if rg.Lo > rg.Hi {
			return nil, fmt.Errorf("scanner: range %d-%d is reversed", rg.Lo, rg.Hi)
		}
		if rg.Symbol < 0 || rg.Symbol >= t.Alphabets {
			return nil, fmt.Errorf("scanner: symbol %d outside alphabet of %d", rg.Symbol, t.Alphabets)
		}
		if i > 0 && ranges[i-1].Hi >= rg.Lo {
			return nil, fmt.Errorf("scanner: range %d-%d overlaps %d-%d", rg.Lo, rg.Hi, ranges[i-1].Lo, ranges[i-1].Hi)
		}
	}
	s := &Scanner{
		table:  table,
		final:  slices.Clone(t.Final),
		ranges: ranges,
		start:  t.Start,
	}
	s.Reset(r)
	return s, nil
}

// Reset discards all state and starts scanning r.
func (s *Scanner) Reset(r io.Reader) {
	s.in = bufio.NewReader(r)
	s.pending = s.pending[:0]
	s.value = ""
	s.line, s.column = 0, 0
	s.nextLine, s.nextColumn = 1, 1
}

// Next scans the next lexeme and returns the accepting state it ended in.
// It returns io.EOF when the input is exhausted.
func (s *Scanner) Next() (int, error) {
	if _, err := s.peek(0); err != nil {
		s.value = ""
		return 0, err
	}

	state := s.start
	accept, length := 0, 0
	i := 0
	for ; ; i++ {
		r, err := s.peek(i)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
		sym, ok := s.symbol(r)
		if !ok {
			if i == 0 {
				return 0, s.fail(ErrInvalidCharacter, 1)
			}
			break
		}
		state = s.table[state][sym]
		if state == 0 {
			break
		}
		if s.accepts(state) {
			accept, length = state, i+1
		}
	}
	if accept == 0 {
		return 0, s.fail(ErrUnresolved, i+1)
	}

	s.line, s.column = s.nextLine, s.nextColumn
	s.value = s.consume(length)
	return accept, nil
}

// Value returns the text of the last lexeme.
func (s *Scanner) Value() string {
	return s.value
}

// Line returns the 1-based line where the last lexeme starts.
func (s *Scanner) Line() int {
	return s.line
}

// Column returns the 1-based column, in runes, where the last lexeme
// starts.
func (s *Scanner) Column() int {
	return s.column
}

func (s *Scanner) peek(i int) (rune, error) {
	for len(s.pending) <= i {
		r, _, err := s.in.ReadRune()
		if err != nil {
			return 0, err
		}
		s.pending = append(s.pending, r)
	}
	return s.pending[i], nil
}

func (s *Scanner) symbol(r rune) (int, bool) {
	i, found := slices.BinarySearchFunc(s.ranges, r, func(rg Range, r rune) int {
		switch {
		case rg.Hi < r:
			return -1
		case rg.Lo > r:
			return 1
		}
		return 0
	})
	if !found {
		return 0, false
	}
	return s.ranges[i].Symbol, true
}

func (s *Scanner) accepts(state int) bool {
	w := state / 64
	return w < len(s.final) && s.final[w]&(1<<(uint(state)%64)) != 0
}

// consume removes the first n pending runes and returns them as text.
func (s *Scanner) consume(n int) string {
	text := string(s.pending[:n])
	for _, r := range s.pending[:n] {
		if r == '\n' {
			s.nextLine++
			s.nextColumn = 1
		} else {
			s.nextColumn++
		}
	}
	s.pending = append(s.pending[:0], s.pending[n:]...)
	return text
}

// fail reports the first n pending runes and skips one.
func (s *Scanner) fail(err error, n int) error {
	n = min(n, len(s.pending))
	e := &Error{Err: err, Text: string(s.pending[:n]), Line: s.nextLine, Column: s.nextColumn}
	s.value = ""
	s.consume(1)
	return e
}
