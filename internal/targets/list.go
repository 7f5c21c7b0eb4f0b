// Package targets holds the successor list stored for one (state, symbol)
// pair of an automaton.
//
// A deterministic automaton has exactly one successor per pair, so the list
// keeps its first element inline and only moves to a heap buffer once a
// second element arrives. Filling a DFA transition table never allocates
// per transition.
package targets

import "iter"

// Word is the set of element types a List can hold: integers no wider
// than a machine word.
type Word interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// inlineCap is the capacity of the inline representation.
const inlineCap = 1

// List is a small vector of successors. The zero value is an empty list
// in the inline form.
//
// heap == nil selects the inline form, where at most inlineCap elements
// live in one. Once heap is set the list never returns to the inline form
// until it is moved out by take.
type List[T Word] struct {
	one  T
	n    int
	heap []T
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.n }

// capacity returns the number of elements the list can hold before it
// grows.
func (l *List[T]) capacity() int {
	if l.heap == nil {
		return inlineCap
	}
	return cap(l.heap)
}

// inline reports whether the list still uses the inline slot.
func (l *List[T]) inline() bool { return l.heap == nil }

// At returns the i-th element. It panics if i is out of range.
func (l *List[T]) At(i int) T {
	if i < 0 || i >= l.n {
		panic("targets: index out of range")
	}
	if l.heap == nil {
		return l.one
	}
	return l.heap[i]
}

// First returns the first element and whether the list is non-empty.
func (l *List[T]) First() (T, bool) {
	if l.n == 0 {
		var zero T
		return zero, false
	}
	return l.At(0), true
}

// Push appends v, doubling the capacity when the list is full.
func (l *List[T]) Push(v T) {
	if l.heap == nil {
		if l.n < inlineCap {
			l.one = v
			l.n++
			return
		}
		l.heap = make([]T, l.n, 2*inlineCap)
		l.heap[0] = l.one
		l.one = 0
	}
	if len(l.heap) == cap(l.heap) {
		l.heap = grow(l.heap)
	}
	l.heap = append(l.heap, v)
	l.n++
}

// grow copies a full buffer into one of twice the capacity.
func grow[T Word](s []T) []T {
	next := make([]T, len(s), 2*cap(s))
	copy(next, s)
	return next
}

// AppendTo appends the elements to dst and returns the extended slice.
func (l *List[T]) AppendTo(dst []T) []T {
	if l.heap == nil {
		if l.n == 1 {
			dst = append(dst, l.one)
		}
		return dst
	}
	return append(dst, l.heap...)
}

// All yields the elements in insertion order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.n; i++ {
			if !yield(i, l.At(i)) {
				return
			}
		}
	}
}

// Clone returns an independent copy. The inline form copies by value, the
// heap form gets its own buffer of the same capacity.
func (l *List[T]) Clone() List[T] {
	if l.heap == nil {
		return *l
	}
	buf := make([]T, len(l.heap), cap(l.heap))
	copy(buf, l.heap)
	return List[T]{n: l.n, heap: buf}
}

// take moves the contents out of l and leaves it empty.
func (l *List[T]) take() List[T] {
	out := *l
	*l = List[T]{}
	return out
}
