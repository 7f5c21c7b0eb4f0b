package automaton

import (
	"encoding/binary"
	"fmt"

	"lexdfa/internal/targets"
)

// Determinize replaces the automaton with an equivalent DFA by subset
// construction. Each DFA state stands for an epsilon-closed set of NFA
// states; its payload is the merge of its members' payloads folded from the
// null payload, and it accepts iff some member accepted. The start state
// becomes 0 and the alphabet is kept.
//
// If a state limit is configured and exceeded, ErrStateLimitExceeded is
// returned and the automaton is left unchanged.
func (a *Automaton[T]) Determinize() error {
	closure := a.closures()
	accepting := make([]bool, len(a.payload))
	for _, s := range a.accept {
		accepting[s] = true
	}

	var (
		sets    [][]State
		ids     = make(map[string]State)
		trans   []map[byte]targets.List[State]
		payload []T
		work    []State
		key     []byte
	)
	// intern returns the DFA state for set, creating it when the exact
	// member set has not been seen before.
	intern := func(set []State) (State, error) {
		key = key[:0]
		for _, s := range set {
			key = binary.LittleEndian.AppendUint32(key, uint32(s))
		}
		if id, ok := ids[string(key)]; ok {
			return id, nil
		}
		if limit := a.opts.stateLimit; limit > 0 && len(sets) >= limit {
			return 0, fmt.Errorf("%w: limit %d", ErrStateLimitExceeded, limit)
		}
		id := State(len(sets))
		ids[string(key)] = id
		sets = append(sets, set)
		trans = append(trans, nil)
		payload = append(payload, a.fold(set))
		work = append(work, id)
		return id, nil
	}

	if _, err := intern(closure[a.start]); err != nil {
		return err
	}
	u := newStateSet(len(a.payload))
	for len(work) > 0 {
		id := work[len(work)-1]
		work = work[:len(work)-1]
		for _, c := range a.alphabet {
			u.reset()
			for _, m := range sets[id] {
				l := a.trans[m][c]
				for _, to := range l.All() {
					u.addAll(closure[to])
				}
			}
			if len(u.members) == 0 {
				continue
			}
			to, err := intern(u.take())
			if err != nil {
				return err
			}
			if trans[id] == nil {
				trans[id] = make(map[byte]targets.List[State])
			}
			var l targets.List[State]
			l.Push(to)
			trans[id][c] = l
		}
	}

	var accept []State
	for id, set := range sets {
		for _, s := range set {
			if accepting[s] {
				accept = append(accept, State(id))
				break
			}
		}
	}

	a.payload = payload
	a.trans = trans
	a.accept = accept
	a.start = 0
	a.deterministic = true
	return nil
}

// fold merges the payloads of set's members, starting from null.
func (a *Automaton[T]) fold(set []State) T {
	acc := a.null
	for _, s := range set {
		acc = a.merge(acc, a.payload[s])
	}
	return acc
}
