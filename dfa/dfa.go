// Package dfa converts lexer NFAs into dense deterministic automata and
// minimizes them.
//
// A DFA is a table with one row per state and one column per alphabet
// symbol. Row 0 is the phi state: a transition to 0 means "no transition",
// and phi itself never accepts, so a scanner stops as soon as it reaches it.
// Real states are numbered from 1.
package dfa

import (
	"fmt"
	"strings"

	"github.com/pradeesh-kumar/lex-engine/internal/bitset"
	"github.com/pradeesh-kumar/lex-engine/nfa"
)

// Phi is the reserved reject state.
const Phi = 0

// DFA is a deterministic automaton over an nfa.Alphabet.
type DFA struct {
	alphabet *nfa.Alphabet
	table    [][]int
	final    *bitset.Set
	actions  map[int]nfa.Action
	start    int
}

// New returns a DFA over alphabet holding only the phi state.
func New(alphabet *nfa.Alphabet) *DFA {
	d := &DFA{
		alphabet: alphabet,
		final:    bitset.New(0),
		actions:  make(map[int]nfa.Action),
		start:    Phi,
	}
	d.table = append(d.table, make([]int, alphabet.Len()))
	return d
}

// AddState appends a state with no transitions and returns its id.
func (d *DFA) AddState() int {
	d.table = append(d.table, make([]int, d.alphabet.Len()))
	return len(d.table) - 1
}

// SetTransition records from -symbol-> to. A target of Phi removes the
// transition.
// Panics if a state or the symbol is out of range, or if from is Phi.
func (d *DFA) SetTransition(from, symbol, to int) {
	if from <= Phi || from >= len(d.table) || to < Phi || to >= len(d.table) {
		panic(fmt.Sprintf("dfa: transition %d -> %d outside states 1..%d", from, to, len(d.table)-1))
	}
	if symbol < 0 || symbol >= d.alphabet.Len() {
		panic(fmt.Sprintf("dfa: symbol %d outside alphabet of %d symbols", symbol, d.alphabet.Len()))
	}
	d.table[from][symbol] = to
}

// SetFinal marks s accepting with action.
func (d *DFA) SetFinal(s int, action nfa.Action) {
	d.final.Add(s)
	d.actions[s] = action
}

// SetStart sets the start state.
func (d *DFA) SetStart(s int) {
	d.start = s
}

// Start returns the start state.
func (d *DFA) Start() int {
	return d.start
}

// Alphabet returns the alphabet the DFA runs over.
func (d *DFA) Alphabet() *nfa.Alphabet {
	return d.alphabet
}

// States returns the number of real states, excluding phi.
func (d *DFA) States() int {
	return len(d.table) - 1
}

// Rows returns the number of table rows, including phi.
func (d *DFA) Rows() int {
	return len(d.table)
}

// AlphabetLen returns the number of columns.
func (d *DFA) AlphabetLen() int {
	return d.alphabet.Len()
}

// Next returns the target of s on symbol, Phi when there is none.
func (d *DFA) Next(s, symbol int) int {
	return d.table[s][symbol]
}

// IsFinal reports whether s accepts.
func (d *DFA) IsFinal(s int) bool {
	return d.final.Has(s)
}

// Action returns the action of final state s.
func (d *DFA) Action(s int) (nfa.Action, bool) {
	a, ok := d.actions[s]
	return a, ok
}

// FinalCount returns the number of final states.
func (d *DFA) FinalCount() int {
	return d.final.Len()
}

// FinalWords returns the final states packed 64 per word: state s is final
// when bit s%64 of word s/64 is set.
func (d *DFA) FinalWords() []uint64 {
	return d.final.Words()
}

// Table returns a copy of the transition table, phi row included.
func (d *DFA) Table() [][]int {
	out := make([][]int, len(d.table))
	for i, row := range d.table {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Accepts runs the DFA over the whole input and returns the action of the
// state it ends in.
func (d *DFA) Accepts(input string) (nfa.Action, bool) {
	s := d.start
	for _, r := range input {
		sym, ok := d.alphabet.Lookup(r)
		if !ok {
			return "", false
		}
		s = d.table[s][sym]
		if s == Phi {
			return "", false
		}
	}
	a, ok := d.actions[s]
	return a, ok && d.IsFinal(s)
}

// ActionGroup is a set of final states that run the same action.
type ActionGroup struct {
	Action nfa.Action
	States []int
}

// ActionGroups groups the final states by action text, ordered by the
// lowest state of each group.
func (d *DFA) ActionGroups() []ActionGroup {
	var groups []ActionGroup
	index := make(map[nfa.Action]int)
	for s := d.final.Next(0); s >= 0; s = d.final.Next(s + 1) {
		a := d.actions[s]
		i, ok := index[a]
		if !ok {
			i = len(groups)
			index[a] = i
			groups = append(groups, ActionGroup{Action: a})
		}
		groups[i].States = append(groups[i].States, s)
	}
	return groups
}

// String dumps the table, one state per line, omitting phi targets.
func (d *DFA) String() string {
	var b strings.Builder
	for s := 1; s < len(d.table); s++ {
		switch {
		case s == d.start:
			b.WriteByte('>')
		case d.IsFinal(s):
			b.WriteByte('*')
		default:
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:", s)
		for sym, t := range d.table[s] {
			if t != Phi {
				fmt.Fprintf(&b, " %v->%d", d.alphabet.Interval(sym), t)
			}
		}
		if a, ok := d.actions[s]; ok {
			fmt.Fprintf(&b, " => %s", a)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
