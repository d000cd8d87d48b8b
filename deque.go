// Package boundeddeque provides fixed-capacity double-ended queues backed by
// a single contiguous slice. Capacity is fixed at construction to a power of
// two greater than one; pushing and popping at either end is O(1) and
// allocation free, which makes the types suitable for hot paths such as ring
// buffers, bounded work queues and sliding windows.
//
// Two element-ownership categories are distinguished. PlainDeque is for
// plain values: clearing it only resets indices and popped values may linger
// in the backing array. Deque is for values that reference other resources:
// it zeroes every slot it vacates so the garbage collector can reclaim what
// the value pointed at, and an optional release hook lets the caller free
// external resources when the deque is cleared or closed.
//
// Both types assume a single owner. They expose no internal synchronization
// and must not be mutated concurrently without external locking.
package boundeddeque

import (
	"errors"

	"github.com/timzifer/bounded_deque/internal/ring"
)

// ErrDequeFull is returned by PushFront and PushBack when the deque already
// holds Cap elements.
var ErrDequeFull = errors.New("boundeddeque: deque is full")

// Deque is a fixed-capacity double-ended queue for owning element types.
// Every operation delegates to the shared ring engine; on top of that the
// deque zeroes vacated slots and runs the configured release hook when live
// values are discarded via Clear or Close.
type Deque[T any] struct {
	buf     *ring.Buffer[T]
	release func(T)
	closed  bool
}

// NewDeque creates an empty deque with the given capacity. It panics unless
// the capacity is a power of two greater than one, or when WithInitial
// seeds more values than the capacity admits.
func NewDeque[T any](capacity int, options ...DequeOption[T]) *Deque[T] {
	var opts dequeOptions[T]
	for _, opt := range options {
		opt(&opts)
	}

	if len(opts.initial) > capacity {
		panic("boundeddeque: initial values exceed capacity")
	}

	d := &Deque[T]{
		buf:     ring.New[T](capacity, ring.WithVacatedZeroing()),
		release: opts.release,
	}
	for _, v := range opts.initial {
		d.buf.PushBackUnchecked(v)
	}
	return d
}

// Cap returns the fixed capacity of the deque.
func (d *Deque[T]) Cap() int { return d.buf.Cap() }

// Len returns the number of elements currently stored.
func (d *Deque[T]) Len() int { return d.buf.Len() }

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool { return d.buf.IsEmpty() }

// IsFull reports whether the deque holds exactly Cap elements.
func (d *Deque[T]) IsFull() bool { return d.buf.IsFull() }

// IsContiguous reports whether the elements occupy a single physical range
// in logical order.
func (d *Deque[T]) IsContiguous() bool { return d.buf.IsContiguous() }

// IsContiguousAnyOrder reports whether the elements occupy a single physical
// range, tolerating the undefined ordering of a full deque.
func (d *Deque[T]) IsContiguousAnyOrder() bool { return d.buf.IsContiguousAnyOrder() }

// PushFront prepends value, or returns ErrDequeFull leaving the deque
// untouched.
func (d *Deque[T]) PushFront(value T) error {
	if !d.buf.PushFront(value) {
		return ErrDequeFull
	}
	return nil
}

// PushBack appends value, or returns ErrDequeFull leaving the deque
// untouched.
func (d *Deque[T]) PushBack(value T) error {
	if !d.buf.PushBack(value) {
		return ErrDequeFull
	}
	return nil
}

// PushFrontUnchecked prepends value without checking for fullness. The
// deque must not be full.
func (d *Deque[T]) PushFrontUnchecked(value T) { d.buf.PushFrontUnchecked(value) }

// PushBackUnchecked appends value without checking for fullness. The deque
// must not be full.
func (d *Deque[T]) PushBackUnchecked(value T) { d.buf.PushBackUnchecked(value) }

// PopFront removes and returns the front element, or false if empty.
// Ownership transfers to the caller; the release hook does not run.
func (d *Deque[T]) PopFront() (T, bool) { return d.buf.PopFront() }

// PopBack removes and returns the back element, or false if empty.
// Ownership transfers to the caller; the release hook does not run.
func (d *Deque[T]) PopBack() (T, bool) { return d.buf.PopBack() }

// PopFrontUnchecked removes and returns the front element without checking
// for emptiness. The deque must not be empty.
func (d *Deque[T]) PopFrontUnchecked() T { return d.buf.PopFrontUnchecked() }

// PopBackUnchecked removes and returns the back element without checking
// for emptiness. The deque must not be empty.
func (d *Deque[T]) PopBackUnchecked() T { return d.buf.PopBackUnchecked() }

// Front returns the front element without removing it, or false if empty.
func (d *Deque[T]) Front() (T, bool) { return d.buf.Front() }

// Back returns the back element without removing it, or false if empty.
func (d *Deque[T]) Back() (T, bool) { return d.buf.Back() }

// FrontPtr returns a pointer to the front element, or nil if empty. The
// pointer is valid only until the next mutating call.
func (d *Deque[T]) FrontPtr() *T { return d.buf.FrontPtr() }

// BackPtr returns a pointer to the back element, or nil if empty. The
// pointer is valid only until the next mutating call.
func (d *Deque[T]) BackPtr() *T { return d.buf.BackPtr() }

// Slices returns the elements as a pair of slices aliasing the backing
// array, in logical order when concatenated.
func (d *Deque[T]) Slices() (first, second []T) { return d.buf.Slices() }

// Contiguous returns the elements as a single slice aliasing the backing
// array, or false when they wrap around. Linearize first to guarantee
// logical order on a full deque.
func (d *Deque[T]) Contiguous() ([]T, bool) { return d.buf.Contiguous() }

// ContiguousUnchecked returns the single-slice view without checking
// contiguity. IsContiguousAnyOrder must hold.
func (d *Deque[T]) ContiguousUnchecked() []T { return d.buf.ContiguousUnchecked() }

// Snapshot returns a copy of the elements in logical order, or nil when
// empty.
func (d *Deque[T]) Snapshot() []T { return d.buf.Snapshot() }

// Linearize rotates the backing array so the logical front sits at physical
// offset zero. O(Cap).
func (d *Deque[T]) Linearize() { d.buf.Linearize() }

// LinearizeOne moves a sole element to physical offset zero without a full
// rotation. No-op unless exactly one element is stored.
func (d *Deque[T]) LinearizeOne() { d.buf.LinearizeOne() }

// Clear discards all elements. The release hook, if configured, runs for
// every live value in increasing physical-address order before the slots
// are zeroed and the indices reset.
func (d *Deque[T]) Clear() {
	if d.release != nil {
		first, second := d.buf.Slices()
		for _, v := range second {
			d.release(v)
		}
		for _, v := range first {
			d.release(v)
		}
	}
	d.buf.Clear()
}

// Close tears the deque down, releasing all remaining live values exactly
// once. Further calls are no-ops. A closed deque must not be pushed to
// again.
func (d *Deque[T]) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.Clear()
}

// Clone returns a structurally independent deque with the same logical
// content, physical layout and release hook. Only live slots are copied.
func (d *Deque[T]) Clone() *Deque[T] {
	return &Deque[T]{
		buf:     d.buf.Clone(),
		release: d.release,
	}
}
