package targets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listOf[T Word](vs ...T) List[T] {
	var l List[T]
	for _, v := range vs {
		l.Push(v)
	}
	return l
}

func TestList_ZeroValue(t *testing.T) {
	var l List[int32]

	assert.Equal(t, 0, l.Len())
	assert.True(t, l.inline())
	assert.Equal(t, 1, l.capacity())
	_, ok := l.First()
	assert.False(t, ok)
	assert.Empty(t, l.AppendTo(nil))
}

func TestList_SingleStaysInline(t *testing.T) {
	var l List[int32]
	l.Push(7)

	assert.True(t, l.inline())
	assert.Equal(t, 1, l.Len())
	v, ok := l.First()
	require.True(t, ok)
	assert.Equal(t, int32(7), v)
}

func TestList_SinglePushDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		var l List[int32]
		l.Push(42)
		if l.At(0) != 42 {
			t.Fatal("lost value")
		}
	})
	assert.Zero(t, allocs)
}

func TestList_GrowthDoubles(t *testing.T) {
	var l List[uint32]
	wantCaps := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}
	for i, want := range wantCaps {
		l.Push(uint32(i))
		assert.Equal(t, want, l.capacity(), "after %d pushes", i+1)
	}
	assert.False(t, l.inline())
	for i := range wantCaps {
		assert.Equal(t, uint32(i), l.At(i))
	}
}

func TestList_AtOutOfRangePanics(t *testing.T) {
	l := listOf[int](1)
	assert.Panics(t, func() { l.At(1) })
	assert.Panics(t, func() { l.At(-1) })
}

func TestList_AllAndAppendTo(t *testing.T) {
	l := listOf[int16](1, 2, 3)

	var seen []int16
	for i, v := range l.All() {
		assert.Equal(t, int16(i+1), v)
		seen = append(seen, v)
	}
	assert.Equal(t, []int16{1, 2, 3}, seen)
	assert.Equal(t, []int16{0, 1, 2, 3}, l.AppendTo([]int16{0}))

	// Early break stops the iteration.
	count := 0
	for range l.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestList_CloneIsIndependent(t *testing.T) {
	heap := listOf[int](1, 2)
	c := heap.Clone()
	c.Push(3)
	heap.Push(9)

	assert.Equal(t, []int{1, 2, 9}, heap.AppendTo(nil))
	assert.Equal(t, []int{1, 2, 3}, c.AppendTo(nil))

	single := listOf[int](1)
	ci := single.Clone()
	ci.Push(2)
	assert.Equal(t, 1, single.Len())
	assert.True(t, single.inline())
	assert.Equal(t, 2, ci.Len())
}

func TestList_TakeLeavesSourceEmpty(t *testing.T) {
	src := listOf[int](4, 5, 6)
	dst := src.take()

	assert.Equal(t, 0, src.Len())
	assert.True(t, src.inline())
	assert.Equal(t, []int{4, 5, 6}, dst.AppendTo(nil))

	src.Push(1)
	assert.Equal(t, []int{4, 5, 6}, dst.AppendTo(nil))
}
