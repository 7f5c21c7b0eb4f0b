package automaton

import "slices"

// closures returns the epsilon closure of every state, each sorted
// ascending. Repetition operators create epsilon cycles, so the walk is an
// explicit stack guarded by a visit mark; a state whose closure is already
// known contributes it wholesale instead of being walked again.
func (a *Automaton[T]) closures() [][]State {
	n := len(a.payload)
	out := make([][]State, n)
	mark := make([]int, n)
	var stack []State
	for s := 0; s < n; s++ {
		gen := s + 1
		mark[s] = gen
		members := []State{State(s)}
		stack = append(stack[:0], State(s))
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if known := out[x]; known != nil {
				for _, z := range known {
					if mark[z] != gen {
						mark[z] = gen
						members = append(members, z)
					}
				}
				continue
			}
			eps := a.trans[x][Epsilon]
			for _, y := range eps.All() {
				if mark[y] != gen {
					mark[y] = gen
					members = append(members, y)
					stack = append(stack, y)
				}
			}
		}
		slices.Sort(members)
		out[s] = members
	}
	return out
}

// stateSet accumulates a union of sorted state sets without duplicates.
type stateSet struct {
	mark    []int
	gen     int
	members []State
}

func newStateSet(n int) *stateSet { return &stateSet{mark: make([]int, n)} }

func (u *stateSet) reset() {
	u.gen++
	u.members = u.members[:0]
}

func (u *stateSet) addAll(states []State) {
	for _, s := range states {
		if u.mark[s] != u.gen {
			u.mark[s] = u.gen
			u.members = append(u.members, s)
		}
	}
}

// take returns the accumulated members, sorted, in a fresh slice.
func (u *stateSet) take() []State {
	out := slices.Clone(u.members)
	slices.Sort(out)
	return out
}
