package nfa

import (
	"github.com/pradeesh-kumar/lex-engine/internal/sparse"
)

// Simulator runs an NFA directly over input without building a DFA.
// It tracks the set of active states per input position; a Simulator is
// not safe for concurrent use.
type Simulator struct {
	nfa   *NFA
	cur   *sparse.Set
	next  *sparse.Set
	stack []StateID
}

// NewSimulator creates a simulator for n.
func NewSimulator(n *NFA) *Simulator {
	return &Simulator{
		nfa:  n,
		cur:  sparse.New(n.States()),
		next: sparse.New(n.States()),
	}
}

// Accepts reports whether the whole input is accepted and, if so, the
// action of the lowest numbered final state reached.
func (s *Simulator) Accepts(input string) (Action, bool) {
	s.cur.Clear()
	s.closure(s.cur, s.nfa.start)
	for _, r := range input {
		sym, ok := s.nfa.alphabet.Lookup(r)
		if !ok {
			return "", false
		}
		s.next.Clear()
		for _, st := range s.cur.Values() {
			targets := s.nfa.Next(StateID(st), sym)
			if targets == nil {
				continue
			}
			for t := targets.Next(0); t >= 0; t = targets.Next(t + 1) {
				s.closure(s.next, StateID(t))
			}
		}
		s.cur, s.next = s.next, s.cur
		if s.cur.IsEmpty() {
			return "", false
		}
	}

	best := InvalidState
	for _, st := range s.cur.Values() {
		id := StateID(st)
		if s.nfa.IsFinal(id) && (best == InvalidState || id < best) {
			best = id
		}
	}
	if best == InvalidState {
		return "", false
	}
	return s.nfa.actions[best], true
}

// closure adds from and every state epsilon-reachable from it to set.
// Uses an explicit stack instead of recursion.
func (s *Simulator) closure(set *sparse.Set, from StateID) {
	s.stack = append(s.stack[:0], from)
	for len(s.stack) > 0 {
		id := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if !set.Insert(int(id)) {
			continue
		}
		eps := s.nfa.Epsilon(id)
		if eps == nil {
			continue
		}
		for t := eps.Next(0); t >= 0; t = eps.Next(t + 1) {
			if !set.Contains(t) {
				s.stack = append(s.stack, StateID(t))
			}
		}
	}
}

// Accepts is a convenience wrapper around a fresh Simulator.
func (n *NFA) Accepts(input string) (Action, bool) {
	return NewSimulator(n).Accepts(input)
}
