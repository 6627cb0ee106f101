package dfa

import (
	"go.uber.org/zap"

	"github.com/pradeesh-kumar/lex-engine/internal/bitset"
	"github.com/pradeesh-kumar/lex-engine/lexerr"
	"github.com/pradeesh-kumar/lex-engine/nfa"
)

// Builder runs subset construction over an NFA.
type Builder struct {
	config Config
	nfa    *nfa.NFA
}

// NewBuilder creates a builder for n.
func NewBuilder(n *nfa.NFA, config Config) *Builder {
	return &Builder{config: config, nfa: n}
}

// Determinize converts n into an equivalent DFA.
func Determinize(n *nfa.NFA, config Config) (*DFA, error) {
	return NewBuilder(n, config).Build()
}

// pending is a DFA state whose transitions are not computed yet.
type pending struct {
	id  int
	set *bitset.Set
}

// Build performs subset construction.
//
// Each DFA state stands for the epsilon closure of a set of NFA states.
// When that set holds several final NFA states, the DFA state takes the
// action of the lowest numbered one, which belongs to the rule declared
// first.
func (b *Builder) Build() (*DFA, error) {
	if err := b.config.Validate(); err != nil {
		return nil, err
	}
	logger := b.config.logger()
	cache, err := newClosureCache(b.nfa, b.config.ClosureCacheSize)
	if err != nil {
		return nil, lexerr.Configf("closure cache: %v", err)
	}
	defer cache.purge()

	alphabet := b.nfa.Alphabet()
	d := New(alphabet)
	ids := make(map[string]int)

	seed := bitset.New(b.nfa.States())
	seed.Add(int(b.nfa.Start()))
	start := cache.set(seed)
	d.SetStart(d.AddState())
	ids[start.Key()] = d.Start()

	stack := []pending{{id: d.Start(), set: start}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s := b.lowestFinal(cur.set); s != nfa.InvalidState {
			action, _ := b.nfa.Action(s)
			d.SetFinal(cur.id, action)
		}

		for sym := 0; sym < alphabet.Len(); sym++ {
			moved := b.move(cur.set, sym)
			if moved.IsEmpty() {
				continue
			}
			next := cache.set(moved)
			key := next.Key()
			id, ok := ids[key]
			if !ok {
				if b.config.MaxStates > 0 && d.States() >= b.config.MaxStates {
					return nil, lexerr.Limitf("DFA state limit of %d exceeded", b.config.MaxStates)
				}
				id = d.AddState()
				ids[key] = id
				stack = append(stack, pending{id: id, set: next})
			}
			d.SetTransition(cur.id, sym, id)
		}
	}

	logger.Debug("closure cache",
		zap.Uint64("hits", cache.hits),
		zap.Uint64("misses", cache.misses))
	logger.Info("DFA generated",
		zap.Int("states", d.States()),
		zap.Int("finalStates", d.FinalCount()))
	return d, nil
}

// move returns the NFA states reachable from set on symbol, without
// following epsilon transitions.
func (b *Builder) move(set *bitset.Set, symbol int) *bitset.Set {
	out := bitset.New(b.nfa.States())
	for s := set.Next(0); s >= 0; s = set.Next(s + 1) {
		out.Union(b.nfa.Next(nfa.StateID(s), symbol))
	}
	return out
}

func (b *Builder) lowestFinal(set *bitset.Set) nfa.StateID {
	for s := set.Next(0); s >= 0; s = set.Next(s + 1) {
		if b.nfa.IsFinal(nfa.StateID(s)) {
			return nfa.StateID(s)
		}
	}
	return nfa.InvalidState
}
