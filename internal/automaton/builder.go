package automaton

import "lexdfa/internal/regex"

// Builder operations mutate the receiver and return it so calls can be
// chained. A fragment without accept states is the empty fragment: Concat
// and ConcatClass attach to its start, and the repetition operators leave
// it unchanged.

// tails returns the states a concatenation attaches to.
func (a *Automaton[T]) tails() []State {
	if len(a.accept) == 0 {
		return []State{a.start}
	}
	return a.accept
}

// Concat appends an edge labelled c after the fragment.
func (a *Automaton[T]) Concat(c byte) *Automaton[T] {
	if c == Epsilon {
		panic("automaton: Concat on reserved byte 0")
	}
	tails := a.tails()
	ne := a.addState()
	for _, s := range tails {
		a.addEdge(s, c, ne)
	}
	a.accept = []State{ne}
	a.deterministic = false
	return a
}

// ConcatClass appends one edge per byte the class selects, all to a single
// new accept state.
func (a *Automaton[T]) ConcatClass(cls *regex.Class) *Automaton[T] {
	tails := a.tails()
	ne := a.addState()
	for _, c := range cls.Bytes() {
		for _, s := range tails {
			a.addEdge(s, c, ne)
		}
	}
	a.accept = []State{ne}
	a.deterministic = false
	return a
}

// ConcatFragment splices f after the fragment: every accept state gets an
// epsilon edge to f's start, and f's accept states become the fragment's.
// Concatenating an empty fragment is a no-op.
func (a *Automaton[T]) ConcatFragment(f *Automaton[T]) *Automaton[T] {
	if len(f.accept) == 0 {
		return a
	}
	if f == a {
		f = f.Clone()
	}
	tails := a.tails()
	off := a.splice(f)
	for _, s := range tails {
		a.addEdge(s, Epsilon, f.start+off)
	}
	a.accept = shifted(f.accept, off)
	a.deterministic = false
	return a
}

// Alter adds f as an alternative: one epsilon edge from the start to f's
// start, and the union of both accept sets.
func (a *Automaton[T]) Alter(f *Automaton[T]) *Automaton[T] {
	if f == a {
		f = f.Clone()
	}
	off := a.splice(f)
	a.addEdge(a.start, Epsilon, f.start+off)
	a.accept = append(a.accept, shifted(f.accept, off)...)
	a.deterministic = false
	return a
}

// Close makes the fragment repeat zero or more times.
func (a *Automaton[T]) Close() *Automaton[T] {
	if len(a.accept) == 0 {
		return a
	}
	ne := a.addState()
	a.addEdge(a.start, Epsilon, ne)
	for _, s := range a.accept {
		a.addEdge(s, Epsilon, ne)
		a.addEdge(s, Epsilon, a.start)
	}
	a.accept = []State{ne}
	a.deterministic = false
	return a
}

// Optional makes the fragment match zero or one time.
func (a *Automaton[T]) Optional() *Automaton[T] {
	if len(a.accept) == 0 {
		return a
	}
	ne := a.addState()
	a.addEdge(a.start, Epsilon, ne)
	for _, s := range a.accept {
		a.addEdge(s, Epsilon, ne)
	}
	a.accept = []State{ne}
	a.deterministic = false
	return a
}

// ConcatClose makes the fragment repeat one or more times.
func (a *Automaton[T]) ConcatClose() *Automaton[T] {
	if len(a.accept) == 0 {
		return a
	}
	ne := a.addState()
	for _, s := range a.accept {
		a.addEdge(s, Epsilon, ne)
		a.addEdge(s, Epsilon, a.start)
	}
	a.accept = []State{ne}
	a.deterministic = false
	return a
}

// Tag merges t into the payload of every accept state.
func (a *Automaton[T]) Tag(t T) *Automaton[T] {
	for _, s := range a.accept {
		a.payload[s] = a.merge(a.payload[s], t)
	}
	return a
}

// splice appends f's states and edges, shifting every index by the
// current state count, which it returns. f's alphabet is merged in f's
// order of first appearance.
func (a *Automaton[T]) splice(f *Automaton[T]) State {
	off := State(len(a.payload))
	for _, c := range f.alphabet {
		a.learn(c)
	}
	a.payload = append(a.payload, f.payload...)
	for s, m := range f.trans {
		a.trans = append(a.trans, nil)
		for c, l := range m {
			for _, to := range l.All() {
				a.addEdge(State(s)+off, c, to+off)
			}
		}
	}
	return off
}

func shifted(states []State, off State) []State {
	out := make([]State, len(states))
	for i, s := range states {
		out[i] = s + off
	}
	return out
}
