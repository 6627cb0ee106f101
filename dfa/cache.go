package dfa

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pradeesh-kumar/lex-engine/internal/bitset"
	"github.com/pradeesh-kumar/lex-engine/nfa"
)

// closureCache memoizes epsilon closures for one subset construction.
//
// Closures of single NFA states never change once computed and are kept in
// a slice indexed by state. Closures of whole state sets are keyed by the
// set's bitset.Key in a bounded LRU, since the number of distinct sets seen
// grows with the automaton.
//
// Sets returned by the cache are shared and must not be modified.
type closureCache struct {
	nfa    *nfa.NFA
	states []*bitset.Set
	sets   *lru.Cache[string, *bitset.Set]
	stack  []int

	// Statistics for tuning Config.ClosureCacheSize
	hits   uint64
	misses uint64
}

func newClosureCache(n *nfa.NFA, size int) (*closureCache, error) {
	sets, err := lru.New[string, *bitset.Set](size)
	if err != nil {
		return nil, err
	}
	return &closureCache{
		nfa:    n,
		states: make([]*bitset.Set, n.States()),
		sets:   sets,
	}, nil
}

// state returns the epsilon closure of s, s included.
func (c *closureCache) state(s nfa.StateID) *bitset.Set {
	if cl := c.states[s]; cl != nil {
		return cl
	}
	cl := bitset.New(c.nfa.States())
	c.stack = append(c.stack[:0], int(s))
	for len(c.stack) > 0 {
		id := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		if cl.Has(id) {
			continue
		}
		// a finished closure covers everything reachable from id
		if done := c.states[id]; done != nil {
			cl.Union(done)
			continue
		}
		cl.Add(id)
		eps := c.nfa.Epsilon(nfa.StateID(id))
		if eps == nil {
			continue
		}
		for t := eps.Next(0); t >= 0; t = eps.Next(t + 1) {
			if !cl.Has(t) {
				c.stack = append(c.stack, t)
			}
		}
	}
	c.states[s] = cl
	return cl
}

// set returns the epsilon closure of every state in states.
func (c *closureCache) set(states *bitset.Set) *bitset.Set {
	key := states.Key()
	if cl, ok := c.sets.Get(key); ok {
		c.hits++
		return cl
	}
	c.misses++
	cl := bitset.New(c.nfa.States())
	for s := states.Next(0); s >= 0; s = states.Next(s + 1) {
		cl.Union(c.state(nfa.StateID(s)))
	}
	c.sets.Add(key, cl)
	return cl
}

// purge drops both memos. The cache must not be used afterwards.
func (c *closureCache) purge() {
	c.sets.Purge()
	c.states = nil
}
