package nfa

import (
	"github.com/pradeesh-kumar/lex-engine/lexerr"
)

// fragmentMode remembers the last wrapper applied to a Fragment so that
// repeating the same combinator does not nest redundant epsilon states.
type fragmentMode uint8

const (
	// fresh fragments have no reusable wrapper
	fresh fragmentMode = iota

	// closedOnce fragments are already a Kleene star; another star is a no-op
	closedOnce

	// alternatedHub fragments own an alternation hub that further
	// alternatives are wired into directly
	alternatedHub
)

// Fragment is a partially built automaton with one entry and one exit.
type Fragment struct {
	Start  StateID
	Accept StateID
	mode   fragmentMode
}

// Builder constructs an NFA from Thompson fragments.
//
// Example:
//
//	b := nfa.NewBuilder(alphabet)
//	a, _ := b.Literal(0)
//	c, _ := b.Literal(1)
//	f := b.Closure(b.Alternate(a, c)) // (a|c)*
//	b.Accept(f, "{ return WORD; }")
//	n := b.Build(f.Start)
type Builder struct {
	nfa *NFA
}

// NewBuilder creates a builder for an NFA over alphabet.
func NewBuilder(alphabet *Alphabet) *Builder {
	return &Builder{nfa: newNFA(alphabet)}
}

// States returns the number of states created so far.
func (b *Builder) States() int {
	return b.nfa.States()
}

func (b *Builder) epsilon(from, to StateID) {
	b.nfa.addTransition(from, b.nfa.alphabet.Epsilon(), to)
}

// Literal returns start -symbol-> accept.
func (b *Builder) Literal(symbol int) (Fragment, error) {
	if symbol < 0 || symbol >= b.nfa.alphabet.Len() {
		return Fragment{}, lexerr.Alphabetf("symbol %d outside alphabet of %d symbols", symbol, b.nfa.alphabet.Len())
	}
	start := b.nfa.addState()
	accept := b.nfa.addState()
	b.nfa.addTransition(start, symbol, accept)
	return Fragment{Start: start, Accept: accept}, nil
}

// Concat returns f followed by g.
func (b *Builder) Concat(f, g Fragment) Fragment {
	b.epsilon(f.Accept, g.Start)
	return Fragment{Start: f.Start, Accept: g.Accept}
}

// Alternate returns f|g. When f already owns an alternation hub, g is wired
// into that hub instead of wrapping f again, so a|b|c has one hub.
func (b *Builder) Alternate(f, g Fragment) Fragment {
	if f.mode == alternatedHub {
		b.epsilon(f.Start, g.Start)
		b.epsilon(g.Accept, f.Accept)
		return f
	}
	start := b.nfa.addState()
	accept := b.nfa.addState()
	b.epsilon(start, f.Start)
	b.epsilon(start, g.Start)
	b.epsilon(f.Accept, accept)
	b.epsilon(g.Accept, accept)
	return Fragment{Start: start, Accept: accept, mode: alternatedHub}
}

// Closure returns f*. Starring a fragment that is already a star returns it
// unchanged.
func (b *Builder) Closure(f Fragment) Fragment {
	if f.mode == closedOnce {
		return f
	}
	start := b.nfa.addState()
	accept := b.nfa.addState()
	b.epsilon(start, f.Start)
	b.epsilon(f.Accept, accept)
	b.epsilon(f.Accept, f.Start)
	b.epsilon(start, accept)
	return Fragment{Start: start, Accept: accept, mode: closedOnce}
}

// ZeroOrOne returns f?.
func (b *Builder) ZeroOrOne(f Fragment) Fragment {
	start := b.nfa.addState()
	accept := b.nfa.addState()
	b.epsilon(start, f.Start)
	b.epsilon(f.Accept, accept)
	b.epsilon(start, accept)
	return Fragment{Start: start, Accept: accept}
}

// OneOrMore returns f+.
func (b *Builder) OneOrMore(f Fragment) Fragment {
	start := b.nfa.addState()
	accept := b.nfa.addState()
	b.epsilon(start, f.Start)
	b.epsilon(f.Accept, accept)
	b.epsilon(f.Accept, f.Start)
	return Fragment{Start: start, Accept: accept}
}

// Accept marks the exit of f final with action.
func (b *Builder) Accept(f Fragment, action Action) {
	b.nfa.setFinal(f.Accept, action)
}

// Union returns a start state branching to every fragment while each keeps
// its own accept state. If the first fragment owns an alternation hub its
// entry is reused as the shared start.
func (b *Builder) Union(frags []Fragment) StateID {
	switch len(frags) {
	case 0:
		return InvalidState
	case 1:
		return frags[0].Start
	}
	start := frags[0].Start
	rest := frags[1:]
	if frags[0].mode != alternatedHub {
		start = b.nfa.addState()
		rest = frags
	}
	for _, f := range rest {
		b.epsilon(start, f.Start)
	}
	return start
}

// Build sets the start state and returns the NFA.
// The Builder must not be used afterwards.
func (b *Builder) Build(start StateID) *NFA {
	n := b.nfa
	n.start = start
	b.nfa = nil
	return n
}
