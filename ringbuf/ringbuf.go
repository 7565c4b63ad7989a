// Package ringbuf provides a fixed-capacity queue that overwrites its oldest
// element when full.
package ringbuf

import "iter"

// Ring is a bounded FIFO. Pushing onto a full ring evicts the oldest item.
type Ring[T any] struct {
	items []T
	head  int // index of the oldest item
	count int
}

// New creates an empty ring. Capacity below 1 panics.
func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		panic("ringbuf: capacity must be at least 1")
	}
	return &Ring[T]{items: make([]T, capacity)}
}

// Push appends v. When the ring is full the oldest item is overwritten and
// returned with ok set.
func (r *Ring[T]) Push(v T) (evicted T, ok bool) {
	if r.count < len(r.items) {
		r.items[(r.head+r.count)%len(r.items)] = v
		r.count++
		return evicted, false
	}

	evicted = r.items[r.head]
	r.items[r.head] = v
	r.head = (r.head + 1) % len(r.items)
	return evicted, true
}

// Len returns the number of stored items.
func (r *Ring[T]) Len() int { return r.count }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.items) }

// Full reports whether the next push will evict.
func (r *Ring[T]) Full() bool { return r.count == len(r.items) }

// At returns the i-th item, oldest first. Out of range panics.
func (r *Ring[T]) At(i int) T {
	if i < 0 || i >= r.count {
		panic("ringbuf: index out of range")
	}
	return r.items[(r.head+i)%len(r.items)]
}

// All iterates items oldest first.
func (r *Ring[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < r.count; i++ {
			if !yield(i, r.items[(r.head+i)%len(r.items)]) {
				return
			}
		}
	}
}

// Clear drops every item.
func (r *Ring[T]) Clear() {
	var zero T
	for i := range r.items {
		r.items[i] = zero
	}
	r.head = 0
	r.count = 0
}
