package automaton

import "lexdfa/internal/targets"

// Minimize collapses equivalent states of a DFA by partition refinement.
//
// The initial partition separates accepting from non-accepting states.
// Each pass visits the blocks in turn and compares every member with the
// block's first member: same payload, same outgoing symbols, and
// successors in the same block on every symbol. Members that differ move
// to one new block right away, so blocks visited later in the pass see the
// refined grouping. Passes repeat until nothing splits. Decisions within a
// block are taken against the block ids as they stood when the block was
// reached, which keeps equivalent members together.
//
// The result has one state per block, with the block holding the old start
// as state 0.
func (a *Automaton[T]) Minimize() error {
	if !a.deterministic {
		return ErrNotDeterministic
	}
	n := len(a.payload)
	accepting := make([]bool, n)
	for _, s := range a.accept {
		accepting[s] = true
	}

	block := make([]int, n)
	count := 0
	accID, restID := -1, -1
	for s := 0; s < n; s++ {
		id := &restID
		if accepting[s] {
			id = &accID
		}
		if *id < 0 {
			*id = count
			count++
		}
		block[s] = *id
	}

	for {
		groups := make([][]State, count)
		for s := 0; s < n; s++ {
			groups[block[s]] = append(groups[block[s]], State(s))
		}
		split := false
		var moved []State
		for _, g := range groups {
			if len(g) < 2 {
				continue
			}
			rep := g[0]
			moved = moved[:0]
			for _, m := range g[1:] {
				if !a.equivalent(m, rep, block) {
					moved = append(moved, m)
				}
			}
			if len(moved) == 0 {
				continue
			}
			for _, m := range moved {
				block[m] = count
			}
			count++
			split = true
		}
		if !split {
			break
		}
	}

	// Number the blocks, start block first, then by lowest member.
	remap := make([]State, count)
	for i := range remap {
		remap[i] = -1
	}
	reps := make([]State, 0, count)
	number := func(s State) {
		if remap[block[s]] < 0 {
			remap[block[s]] = State(len(reps))
			reps = append(reps, s)
		}
	}
	number(a.start)
	for s := 0; s < n; s++ {
		number(State(s))
	}

	payload := make([]T, len(reps))
	trans := make([]map[byte]targets.List[State], len(reps))
	var accept []State
	for i, r := range reps {
		payload[i] = a.payload[r]
		if accepting[r] {
			accept = append(accept, State(i))
		}
		if len(a.trans[r]) == 0 {
			continue
		}
		m := make(map[byte]targets.List[State], len(a.trans[r]))
		for c, l := range a.trans[r] {
			var nl targets.List[State]
			nl.Push(remap[block[l.At(0)]])
			m[c] = nl
		}
		trans[i] = m
	}

	a.payload = payload
	a.trans = trans
	a.accept = accept
	a.start = 0
	return nil
}

// equivalent reports whether m and rep look alike under the current
// partition.
func (a *Automaton[T]) equivalent(m, rep State, block []int) bool {
	if a.payload[m] != a.payload[rep] {
		return false
	}
	tm, tr := a.trans[m], a.trans[rep]
	if len(tm) != len(tr) {
		return false
	}
	for c, lr := range tr {
		lm, ok := tm[c]
		if !ok {
			return false
		}
		if block[lm.At(0)] != block[lr.At(0)] {
			return false
		}
	}
	return true
}
