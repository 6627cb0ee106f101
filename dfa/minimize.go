package dfa

import (
	"slices"

	"go.uber.org/zap"
)

// Minimize merges equivalent states of d by partition refinement.
//
// States start in one block of non-final states plus one block per distinct
// action, so states running different actions never merge. Each pass then
// moves at most one state per block into a singleton block: the first state
// with a transition leaving its block, or with no transition on a symbol
// that a sibling moves on. Passes repeat until the block count stops
// changing, at which point states sharing a block move on the same symbols
// and stay inside the block, so merging them preserves the language.
//
// This is weaker than Hopcroft's algorithm: a block is only ever split one
// state at a time, and states that differ only in which in-block state they
// reach are kept together.
//
// The result is a new DFA numbered by block, in block order from 1. When
// every block is a singleton, d itself is returned along with false.
func Minimize(d *DFA, logger *zap.Logger) (*DFA, bool) {
	if logger == nil {
		logger = zap.NewNop()
	}
	blocks := d.initialPartition()
	for {
		n := len(blocks)
		next := make([][]int, 0, n)
		for _, blk := range blocks {
			next = append(next, d.split(blk)...)
		}
		blocks = next
		if len(blocks) == n {
			break
		}
	}
	logger.Debug("minimization partitions", zap.Int("blocks", len(blocks)))

	if !slices.ContainsFunc(blocks, func(b []int) bool { return len(b) > 1 }) {
		logger.Info("no equivalent states found, minimization not required",
			zap.Int("states", d.States()))
		return d, false
	}

	merged := d.merge(blocks)
	logger.Info("DFA minimized",
		zap.Int("states", merged.States()),
		zap.Int("finalStates", merged.FinalCount()),
		zap.Int("removed", d.States()-merged.States()))
	return merged, true
}

// initialPartition returns the non-final states followed by the final
// states grouped by action, in order of each action's lowest state.
func (d *DFA) initialPartition() [][]int {
	var nonFinal []int
	for s := 1; s < len(d.table); s++ {
		if !d.IsFinal(s) {
			nonFinal = append(nonFinal, s)
		}
	}
	var blocks [][]int
	if len(nonFinal) > 0 {
		blocks = append(blocks, nonFinal)
	}
	for _, g := range d.ActionGroups() {
		blocks = append(blocks, g.States)
	}
	return blocks
}

// split returns blk unchanged, or blk without one state followed by that
// state as a singleton.
func (d *DFA) split(blk []int) [][]int {
	if len(blk) < 2 {
		return [][]int{blk}
	}
	in := make(map[int]bool, len(blk))
	// live[sym] is set when some state of blk moves on sym
	live := make([]bool, d.alphabet.Len())
	for _, s := range blk {
		in[s] = true
		for sym, t := range d.table[s] {
			if t != Phi {
				live[sym] = true
			}
		}
	}
	for i, s := range blk {
		if !d.closedIn(s, in, live) {
			rest := make([]int, 0, len(blk)-1)
			rest = append(rest, blk[:i]...)
			rest = append(rest, blk[i+1:]...)
			return [][]int{rest, {s}}
		}
	}
	return [][]int{blk}
}

// closedIn reports whether every transition of s stays inside the block in
// and s moves on every symbol some block member moves on.
func (d *DFA) closedIn(s int, in map[int]bool, live []bool) bool {
	for sym, t := range d.table[s] {
		if t == Phi {
			if live[sym] {
				return false
			}
			continue
		}
		if !in[t] {
			return false
		}
	}
	return true
}

// merge builds the DFA whose state i+1 is blocks[i].
func (d *DFA) merge(blocks [][]int) *DFA {
	blockOf := make([]int, len(d.table))
	for i, blk := range blocks {
		for _, s := range blk {
			blockOf[s] = i + 1
		}
	}

	out := New(d.alphabet)
	for range blocks {
		out.AddState()
	}
	for i, blk := range blocks {
		id := i + 1
		for _, s := range blk {
			for sym, t := range d.table[s] {
				if t != Phi {
					out.table[id][sym] = blockOf[t]
				}
			}
			if a, ok := d.Action(s); ok && d.IsFinal(s) {
				out.SetFinal(id, a)
			}
		}
	}
	out.SetStart(blockOf[d.start])
	return out
}
