// Package nfa builds Thompson NFAs for the rules of a lexer.
//
// An NFA is an arena of states addressed by StateID. Transitions are stored
// densely per state and symbol as bit sets of target states; the extra
// symbol Alphabet.Epsilon() holds epsilon transitions. States are only ever
// appended, so ids stay stable for the lifetime of a compilation.
//
// All rules of a lexer compile into one NFA whose start state branches to
// each rule. Every rule ends in its own final state carrying the rule's
// Action; final states are numbered in rule order, which later gives the
// earlier rule priority when several rules accept the same input.
package nfa

import (
	"fmt"
	"strings"

	"github.com/pradeesh-kumar/lex-engine/internal/bitset"
)

// StateID identifies an NFA state.
type StateID int

// InvalidState marks the absence of a state.
const InvalidState StateID = -1

// Action is the user code executed when a rule matches.
// Actions compare by content.
type Action string

// Rule pairs a pattern with the action run when it matches.
type Rule struct {
	Pattern string
	Action  Action
}

// NFA is a nondeterministic automaton over an Alphabet.
// It is built by a Builder and read-only afterwards.
type NFA struct {
	alphabet *Alphabet

	// trans[state][symbol]; nil means no transition
	trans   [][]*bitset.Set
	final   *bitset.Set
	actions map[StateID]Action
	start   StateID
}

func newNFA(alphabet *Alphabet) *NFA {
	return &NFA{
		alphabet: alphabet,
		final:    bitset.New(0),
		actions:  make(map[StateID]Action),
		start:    InvalidState,
	}
}

func (n *NFA) addState() StateID {
	n.trans = append(n.trans, make([]*bitset.Set, n.alphabet.Len()+1))
	return StateID(len(n.trans) - 1)
}

func (n *NFA) addTransition(from StateID, symbol int, to StateID) {
	row := n.trans[from]
	if row[symbol] == nil {
		row[symbol] = bitset.New(len(n.trans))
	}
	row[symbol].Add(int(to))
}

func (n *NFA) setFinal(s StateID, action Action) {
	n.final.Add(int(s))
	n.actions[s] = action
}

// Alphabet returns the alphabet the NFA was built over.
func (n *NFA) Alphabet() *Alphabet {
	return n.alphabet
}

// States returns the number of states.
func (n *NFA) States() int {
	return len(n.trans)
}

// Start returns the start state.
func (n *NFA) Start() StateID {
	return n.start
}

// Next returns the targets of s on symbol, or nil if there are none.
// The returned set must not be modified.
func (n *NFA) Next(s StateID, symbol int) *bitset.Set {
	return n.trans[s][symbol]
}

// Epsilon returns the epsilon targets of s, or nil if there are none.
// The returned set must not be modified.
func (n *NFA) Epsilon(s StateID) *bitset.Set {
	return n.trans[s][n.alphabet.Epsilon()]
}

// IsFinal reports whether s accepts.
func (n *NFA) IsFinal(s StateID) bool {
	return n.final.Has(int(s))
}

// Action returns the action of final state s.
func (n *NFA) Action(s StateID) (Action, bool) {
	a, ok := n.actions[s]
	return a, ok
}

// FinalCount returns the number of final states.
func (n *NFA) FinalCount() int {
	return n.final.Len()
}

// String dumps the transitions, one state per line. Final states are
// marked with '*', the start state with '>'.
func (n *NFA) String() string {
	var b strings.Builder
	eps := n.alphabet.Epsilon()
	for s, row := range n.trans {
		id := StateID(s)
		switch {
		case id == n.start:
			b.WriteByte('>')
		case n.IsFinal(id):
			b.WriteByte('*')
		default:
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:", s)
		for sym, targets := range row {
			if targets == nil {
				continue
			}
			if sym == eps {
				fmt.Fprintf(&b, " eps->%v", targets)
			} else {
				fmt.Fprintf(&b, " %v->%v", n.alphabet.Interval(sym), targets)
			}
		}
		if a, ok := n.actions[id]; ok {
			fmt.Fprintf(&b, " => %s", a)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
