package boundeddeque

import (
	"github.com/timzifer/bounded_deque/internal/ring"
)

// PlainDeque is a fixed-capacity double-ended queue for plain values that
// hold no references needing release. Clearing it is a pure index reset and
// popped slots are never zeroed, so no per-slot work happens anywhere.
// Prefer Deque for element types that reference other resources.
type PlainDeque[T any] struct {
	buf *ring.Buffer[T]
}

// NewPlainDeque creates an empty deque with the given capacity. It panics
// unless the capacity is a power of two greater than one.
func NewPlainDeque[T any](capacity int) *PlainDeque[T] {
	return &PlainDeque[T]{buf: ring.New[T](capacity)}
}

// Cap returns the fixed capacity of the deque.
func (d *PlainDeque[T]) Cap() int { return d.buf.Cap() }

// Len returns the number of elements currently stored.
func (d *PlainDeque[T]) Len() int { return d.buf.Len() }

// IsEmpty reports whether the deque holds no elements.
func (d *PlainDeque[T]) IsEmpty() bool { return d.buf.IsEmpty() }

// IsFull reports whether the deque holds exactly Cap elements.
func (d *PlainDeque[T]) IsFull() bool { return d.buf.IsFull() }

// IsContiguous reports whether the elements occupy a single physical range
// in logical order.
func (d *PlainDeque[T]) IsContiguous() bool { return d.buf.IsContiguous() }

// IsContiguousAnyOrder reports whether the elements occupy a single physical
// range, tolerating the undefined ordering of a full deque.
func (d *PlainDeque[T]) IsContiguousAnyOrder() bool { return d.buf.IsContiguousAnyOrder() }

// PushFront prepends value, or returns ErrDequeFull leaving the deque
// untouched.
func (d *PlainDeque[T]) PushFront(value T) error {
	if !d.buf.PushFront(value) {
		return ErrDequeFull
	}
	return nil
}

// PushBack appends value, or returns ErrDequeFull leaving the deque
// untouched.
func (d *PlainDeque[T]) PushBack(value T) error {
	if !d.buf.PushBack(value) {
		return ErrDequeFull
	}
	return nil
}

// PushFrontUnchecked prepends value without checking for fullness. The
// deque must not be full.
func (d *PlainDeque[T]) PushFrontUnchecked(value T) { d.buf.PushFrontUnchecked(value) }

// PushBackUnchecked appends value without checking for fullness. The deque
// must not be full.
func (d *PlainDeque[T]) PushBackUnchecked(value T) { d.buf.PushBackUnchecked(value) }

// PopFront removes and returns the front element, or false if empty.
func (d *PlainDeque[T]) PopFront() (T, bool) { return d.buf.PopFront() }

// PopBack removes and returns the back element, or false if empty.
func (d *PlainDeque[T]) PopBack() (T, bool) { return d.buf.PopBack() }

// PopFrontUnchecked removes and returns the front element without checking
// for emptiness. The deque must not be empty.
func (d *PlainDeque[T]) PopFrontUnchecked() T { return d.buf.PopFrontUnchecked() }

// PopBackUnchecked removes and returns the back element without checking
// for emptiness. The deque must not be empty.
func (d *PlainDeque[T]) PopBackUnchecked() T { return d.buf.PopBackUnchecked() }

// Front returns the front element without removing it, or false if empty.
func (d *PlainDeque[T]) Front() (T, bool) { return d.buf.Front() }

// Back returns the back element without removing it, or false if empty.
func (d *PlainDeque[T]) Back() (T, bool) { return d.buf.Back() }

// FrontPtr returns a pointer to the front element, or nil if empty. The
// pointer is valid only until the next mutating call.
func (d *PlainDeque[T]) FrontPtr() *T { return d.buf.FrontPtr() }

// BackPtr returns a pointer to the back element, or nil if empty. The
// pointer is valid only until the next mutating call.
func (d *PlainDeque[T]) BackPtr() *T { return d.buf.BackPtr() }

// Slices returns the elements as a pair of slices aliasing the backing
// array, in logical order when concatenated.
func (d *PlainDeque[T]) Slices() (first, second []T) { return d.buf.Slices() }

// Contiguous returns the elements as a single slice aliasing the backing
// array, or false when they wrap around. Linearize first to guarantee
// logical order on a full deque.
func (d *PlainDeque[T]) Contiguous() ([]T, bool) { return d.buf.Contiguous() }

// ContiguousUnchecked returns the single-slice view without checking
// contiguity. IsContiguousAnyOrder must hold.
func (d *PlainDeque[T]) ContiguousUnchecked() []T { return d.buf.ContiguousUnchecked() }

// Snapshot returns a copy of the elements in logical order, or nil when
// empty.
func (d *PlainDeque[T]) Snapshot() []T { return d.buf.Snapshot() }

// Linearize rotates the backing array so the logical front sits at physical
// offset zero. O(Cap).
func (d *PlainDeque[T]) Linearize() { d.buf.Linearize() }

// LinearizeOne moves a sole element to physical offset zero without a full
// rotation. No-op unless exactly one element is stored.
func (d *PlainDeque[T]) LinearizeOne() { d.buf.LinearizeOne() }

// Clear discards all elements by resetting the indices.
func (d *PlainDeque[T]) Clear() { d.buf.Clear() }

// Clone returns a structurally independent deque with the same logical
// content and physical layout. Only live slots are copied.
func (d *PlainDeque[T]) Clone() *PlainDeque[T] {
	return &PlainDeque[T]{buf: d.buf.Clone()}
}
