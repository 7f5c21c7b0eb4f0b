// Package automaton builds finite automata over the byte alphabet 1..255
// and runs them as single-token matchers.
//
// An Automaton starts life as a Thompson-style NFA fragment assembled with
// the builder operations (Concat, Alter, Close, ...). Determinize replaces
// it with an equivalent DFA, Minimize collapses equivalent DFA states, and
// Match reports the payload of the state reached by a greedy scan.
//
// Each state carries a payload of type T. States coalesced during
// determinization get the fold of their members' payloads under the
// automaton's MergeFunc, so that function must be commutative and
// associative, with the null payload as its identity.
package automaton

import (
	"errors"
	"slices"

	"lexdfa/internal/targets"
)

// Epsilon labels edges that consume no input. It is never part of the
// alphabet.
const Epsilon byte = 0

// State is an index into an automaton's state table.
type State int32

var (
	ErrNotDeterministic   = errors.New("automaton is not deterministic")
	ErrStateLimitExceeded = errors.New("DFA state limit exceeded during construction")
)

// MergeFunc combines the payloads of two coalesced states.
type MergeFunc[T any] func(a, b T) T

// Option configures an Automaton.
type Option func(*options)

type options struct {
	stateLimit int
}

// WithStateLimit bounds the number of DFA states Determinize may create.
// Zero, the default, means no bound.
func WithStateLimit(n int) Option {
	return func(o *options) { o.stateLimit = n }
}

// Automaton is an NFA fragment or, after Determinize, a DFA.
//
// An Automaton is not safe for concurrent mutation. Once built, concurrent
// calls to Match and the read-only accessors are safe.
type Automaton[T comparable] struct {
	payload []T
	trans   []map[byte]targets.List[State]
	accept  []State
	start   State

	alphabet []byte // in order of first appearance
	known    [256]bool

	null  T
	merge MergeFunc[T]
	opts  options

	deterministic bool
}

// New returns an automaton with a single non-accepting start state and an
// empty alphabet.
func New[T comparable](null T, merge MergeFunc[T], opts ...Option) *Automaton[T] {
	if merge == nil {
		panic("automaton: nil merge function")
	}
	a := &Automaton[T]{null: null, merge: merge}
	for _, o := range opts {
		o(&a.opts)
	}
	a.addState()
	return a
}

func (a *Automaton[T]) addState() State {
	a.payload = append(a.payload, a.null)
	a.trans = append(a.trans, nil)
	return State(len(a.payload) - 1)
}

func (a *Automaton[T]) addEdge(from State, c byte, to State) {
	m := a.trans[from]
	if m == nil {
		m = make(map[byte]targets.List[State])
		a.trans[from] = m
	}
	l := m[c]
	l.Push(to)
	m[c] = l
	a.learn(c)
}

func (a *Automaton[T]) learn(c byte) {
	if c == Epsilon || a.known[c] {
		return
	}
	a.known[c] = true
	a.alphabet = append(a.alphabet, c)
}

// Start returns the start state.
func (a *Automaton[T]) Start() State { return a.start }

// NumStates returns the number of states.
func (a *Automaton[T]) NumStates() int { return len(a.payload) }

// NumTransitions returns the number of (state, symbol) pairs with at least
// one successor, epsilon included.
func (a *Automaton[T]) NumTransitions() int {
	n := 0
	for _, m := range a.trans {
		n += len(m)
	}
	return n
}

// Alphabet returns the symbols seen on non-epsilon edges, in order of
// first appearance.
func (a *Automaton[T]) Alphabet() []byte { return slices.Clone(a.alphabet) }

// InAlphabet reports whether c labels some non-epsilon edge.
func (a *Automaton[T]) InAlphabet(c byte) bool { return a.known[c] }

// Accepting returns the accept states.
func (a *Automaton[T]) Accepting() []State { return slices.Clone(a.accept) }

// IsAccepting reports whether s is an accept state.
func (a *Automaton[T]) IsAccepting(s State) bool { return slices.Contains(a.accept, s) }

// Payload returns the payload carried by s.
func (a *Automaton[T]) Payload(s State) T { return a.payload[s] }

// Null returns the null payload.
func (a *Automaton[T]) Null() T { return a.null }

// IsDeterministic reports whether the automaton is the output of
// Determinize or Minimize and has not been modified since.
func (a *Automaton[T]) IsDeterministic() bool { return a.deterministic }

// Successors returns the states reachable from s over one edge labelled c.
func (a *Automaton[T]) Successors(s State, c byte) []State {
	l := a.trans[s][c]
	return l.AppendTo(make([]State, 0, l.Len()))
}

// Symbols returns the labels of the edges leaving s, ascending.
func (a *Automaton[T]) Symbols(s State) []byte {
	out := make([]byte, 0, len(a.trans[s]))
	for c := range a.trans[s] {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Clone returns a deep copy of a.
func (a *Automaton[T]) Clone() *Automaton[T] {
	b := *a
	b.payload = slices.Clone(a.payload)
	b.accept = slices.Clone(a.accept)
	b.alphabet = slices.Clone(a.alphabet)
	b.trans = make([]map[byte]targets.List[State], len(a.trans))
	for s, m := range a.trans {
		if m == nil {
			continue
		}
		cm := make(map[byte]targets.List[State], len(m))
		for c, l := range m {
			cm[c] = l.Clone()
		}
		b.trans[s] = cm
	}
	return &b
}
