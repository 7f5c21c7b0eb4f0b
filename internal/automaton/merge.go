package automaton

import "cmp"

// PriorityBy returns a merge that treats null as the identity and
// otherwise keeps the payload ordered first by less. It is commutative and
// associative whenever less is a strict total order.
func PriorityBy[T comparable](null T, less func(a, b T) bool) MergeFunc[T] {
	return func(a, b T) T {
		switch {
		case a == null:
			return b
		case b == null:
			return a
		case less(b, a):
			return b
		}
		return a
	}
}

// Priority is PriorityBy with the natural order: among non-null payloads
// the smallest wins.
func Priority[T cmp.Ordered](null T) MergeFunc[T] {
	return PriorityBy(null, cmp.Less[T])
}
