// Package intern stores each distinct value once and hands out small
// comparable handles to it.
package intern

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

var (
	ErrUninitializedHandle = errors.New("uninitialized handle accessed")
	ErrForeignHandle       = errors.New("handle was not issued by this table")
)

// epochs numbers every table generation in the process, so a handle can
// tell which table issued it.
var epochs atomic.Uint32

// Handle refers to a value interned in a Table. The zero Handle refers to
// nothing.
type Handle struct {
	epoch uint32
	id    uint32 // 1-based
}

// IsZero reports whether h was never issued.
func (h Handle) IsZero() bool { return h.id == 0 }

// Index returns the position of the value in interning order, or -1 for
// the zero Handle.
func (h Handle) Index() int { return int(h.id) - 1 }

// Less orders handles by interning order.
func (h Handle) Less(o Handle) bool { return h.id < o.id }

func (h Handle) String() string {
	if h.IsZero() {
		return "intern.Handle(nil)"
	}
	return fmt.Sprintf("intern.Handle(%d)", h.Index())
}

// Table is an explicitly owned interning table. The zero Table is ready to
// use and safe for concurrent use.
type Table[T comparable] struct {
	mu     sync.RWMutex
	epoch  uint32
	ids    map[T]uint32
	values []T
}

// Intern returns the handle for v, adding v on first sight.
func (t *Table[T]) Intern(v T) Handle {
	t.mu.RLock()
	id, ok := t.ids[v]
	epoch := t.epoch
	t.mu.RUnlock()
	if ok {
		return Handle{epoch: epoch, id: id}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.epoch == 0 {
		t.epoch = epochs.Add(1)
		t.ids = make(map[T]uint32)
	}
	if id, ok := t.ids[v]; ok {
		return Handle{epoch: t.epoch, id: id}
	}
	t.values = append(t.values, v)
	id = uint32(len(t.values))
	t.ids[v] = id
	return Handle{epoch: t.epoch, id: id}
}

// Lookup returns the handle for v without adding it.
func (t *Table[T]) Lookup(v T) (Handle, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.ids[v]
	if !ok {
		return Handle{}, false
	}
	return Handle{epoch: t.epoch, id: id}, true
}

// Value returns the value h refers to.
func (t *Table[T]) Value(h Handle) (T, error) {
	var zero T
	if h.IsZero() {
		return zero, ErrUninitializedHandle
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if h.epoch != t.epoch || int(h.id) > len(t.values) {
		return zero, fmt.Errorf("%w: %v", ErrForeignHandle, h)
	}
	return t.values[h.id-1], nil
}

// Len returns the number of distinct values.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.values)
}

// Values returns the interned values in interning order.
func (t *Table[T]) Values() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]T(nil), t.values...)
}

// Reset empties the table. Handles issued before the reset become
// foreign.
func (t *Table[T]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.epoch = epochs.Add(1)
	t.ids = make(map[T]uint32)
	t.values = nil
}
