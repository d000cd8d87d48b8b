package window

import (
	"github.com/timzifer/bounded_deque/internal/ring"
)

// Sliding is a fixed-capacity sliding window that keeps the most recent
// observations.
type Sliding[T any] struct {
	buf *ring.Buffer[T]
}

// New creates an empty window with the given capacity. It panics unless the
// capacity is a power of two greater than one.
func New[T any](capacity int) *Sliding[T] {
	return &Sliding[T]{buf: ring.New[T](capacity)}
}

// Cap returns the fixed capacity of the window.
func (w *Sliding[T]) Cap() int { return w.buf.Cap() }

// Len returns the number of observations currently held.
func (w *Sliding[T]) Len() int { return w.buf.Len() }

// Observe appends value to the window. When the window is full the oldest
// observation is evicted first and returned with dropped set to true.
func (w *Sliding[T]) Observe(value T) (evicted T, dropped bool) {
	if w.buf.IsFull() {
		evicted = w.buf.PopFrontUnchecked()
		dropped = true
	}
	w.buf.PushBackUnchecked(value)
	return evicted, dropped
}

// Oldest returns the oldest observation still in the window, or false if
// the window is empty.
func (w *Sliding[T]) Oldest() (T, bool) { return w.buf.Front() }

// Newest returns the most recent observation, or false if the window is
// empty.
func (w *Sliding[T]) Newest() (T, bool) { return w.buf.Back() }

// Values returns a copy of the current observations in arrival order, or
// nil when the window is empty.
func (w *Sliding[T]) Values() []T { return w.buf.Snapshot() }

// Reduce folds fn over the current observations in arrival order, starting
// from init. The fold walks the ring segments in place.
func (w *Sliding[T]) Reduce(fn func(acc, value T) T, init T) T {
	acc := init
	first, second := w.buf.Slices()
	for _, v := range first {
		acc = fn(acc, v)
	}
	for _, v := range second {
		acc = fn(acc, v)
	}
	return acc
}

// Reset discards all observations.
func (w *Sliding[T]) Reset() { w.buf.Clear() }
