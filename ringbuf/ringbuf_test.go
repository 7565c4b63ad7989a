package ringbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](r *Ring[T]) []T {
	var out []T
	for _, v := range r.All() {
		out = append(out, v)
	}
	return out
}

func TestRing(t *testing.T) {
	t.Run("Ring: fills without evicting", func(t *testing.T) {
		r := New[int](3)

		for i := 1; i <= 3; i++ {
			_, ok := r.Push(i)
			require.False(t, ok)
		}

		require.Equal(t, 3, r.Len())
		require.True(t, r.Full())
		require.Equal(t, []int{1, 2, 3}, collect(r))
	})

	t.Run("Ring: overwrites oldest when full", func(t *testing.T) {
		r := New[int](3)
		for i := 1; i <= 3; i++ {
			r.Push(i)
		}

		evicted, ok := r.Push(4)
		require.True(t, ok)
		require.Equal(t, 1, evicted)

		evicted, ok = r.Push(5)
		require.True(t, ok)
		require.Equal(t, 2, evicted)

		require.Equal(t, 3, r.Len())
		require.Equal(t, []int{3, 4, 5}, collect(r))
		require.Equal(t, 3, r.At(0))
		require.Equal(t, 5, r.At(2))
	})

	t.Run("Ring: capacity fifty keeps the newest fifty", func(t *testing.T) {
		r := New[int](50)
		evictions := 0
		for i := 0; i < 120; i++ {
			if _, ok := r.Push(i); ok {
				evictions++
			}
		}

		require.Equal(t, 70, evictions)
		require.Equal(t, 50, r.Len())
		require.Equal(t, 70, r.At(0))
		require.Equal(t, 119, r.At(49))
	})

	t.Run("Ring: early break stops iteration", func(t *testing.T) {
		r := New[string](4)
		r.Push("a")
		r.Push("b")
		r.Push("c")

		var seen []string
		for i, v := range r.All() {
			seen = append(seen, v)
			if i == 1 {
				break
			}
		}
		require.Equal(t, []string{"a", "b"}, seen)
	})

	t.Run("Ring: clear resets", func(t *testing.T) {
		r := New[int](2)
		r.Push(1)
		r.Push(2)
		r.Push(3)
		r.Clear()

		require.Equal(t, 0, r.Len())
		require.Empty(t, collect(r))

		_, ok := r.Push(9)
		require.False(t, ok)
		require.Equal(t, 9, r.At(0))
	})
}

func TestRingPanics(t *testing.T) {
	assert.Panics(t, func() { New[int](0) })

	r := New[int](2)
	r.Push(1)
	assert.Panics(t, func() { r.At(1) })
	assert.Panics(t, func() { r.At(-1) })
}
