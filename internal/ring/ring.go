package ring

import (
	"fmt"
	"slices"

	"github.com/timzifer/bounded_deque/internal/telemetry"
)

// Buffer is a fixed-capacity double-ended ring buffer. See the package
// documentation for the state machine and its invariants.
type Buffer[T any] struct {
	slots       []T
	mask        int
	start       int
	end         int
	full        bool
	zeroVacated bool
}

// New creates an empty buffer with the given capacity. It panics unless the
// capacity is a power of two greater than one; an invalid capacity is a bug
// in the caller, not a runtime condition.
func New[T any](capacity int, options ...Option) *Buffer[T] {
	if capacity <= 1 || capacity&(capacity-1) != 0 {
		panic(fmt.Sprintf("ring: capacity must be a power of two greater than one, got %d", capacity))
	}

	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}

	return &Buffer[T]{
		slots:       make([]T, capacity),
		mask:        capacity - 1,
		zeroVacated: cfg.zeroVacated,
	}
}

// Cap returns the fixed capacity of the buffer.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	if b.full {
		return len(b.slots)
	}
	return (b.end - b.start) & b.mask
}

// IsEmpty reports whether the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.start == b.end && !b.full
}

// IsFull reports whether the buffer holds exactly Cap elements.
func (b *Buffer[T]) IsFull() bool {
	return b.full
}

// IsContiguousAnyOrder reports whether the live elements occupy a single
// physical range. Once full the range covers the whole backing array, and
// physical order matches logical order only if start is zero; Linearize
// restores that ordering.
func (b *Buffer[T]) IsContiguousAnyOrder() bool {
	return b.start <= b.end
}

// IsContiguous reports whether the live elements occupy a single physical
// range in logical order.
func (b *Buffer[T]) IsContiguous() bool {
	return b.start <= b.end && !b.full
}

// PushFront prepends value. It reports whether the push succeeded; a full
// buffer rejects the push untouched.
func (b *Buffer[T]) PushFront(value T) bool {
	if b.full {
		return false
	}
	b.PushFrontUnchecked(value)
	return true
}

// PushFrontUnchecked prepends value without checking for fullness. The
// buffer must not be full.
func (b *Buffer[T]) PushFrontUnchecked(value T) {
	b.start = (b.start - 1) & b.mask
	b.slots[b.start] = value
	b.full = b.start == b.end
}

// PushBack appends value. It reports whether the push succeeded; a full
// buffer rejects the push untouched.
func (b *Buffer[T]) PushBack(value T) bool {
	if b.full {
		return false
	}
	b.PushBackUnchecked(value)
	return true
}

// PushBackUnchecked appends value without checking for fullness. The buffer
// must not be full.
func (b *Buffer[T]) PushBackUnchecked(value T) {
	b.slots[b.end] = value
	b.end = (b.end + 1) & b.mask
	b.full = b.start == b.end
}

// PopFront removes and returns the front element, or false if empty.
func (b *Buffer[T]) PopFront() (zero T, _ bool) {
	if b.IsEmpty() {
		return zero, false
	}
	return b.PopFrontUnchecked(), true
}

// PopFrontUnchecked removes and returns the front element without checking
// for emptiness. The buffer must not be empty.
func (b *Buffer[T]) PopFrontUnchecked() T {
	value := b.slots[b.start]
	if b.zeroVacated {
		var zero T
		b.slots[b.start] = zero
	}
	b.start = (b.start + 1) & b.mask
	b.full = false
	return value
}

// PopBack removes and returns the back element, or false if empty.
func (b *Buffer[T]) PopBack() (zero T, _ bool) {
	if b.IsEmpty() {
		return zero, false
	}
	return b.PopBackUnchecked(), true
}

// PopBackUnchecked removes and returns the back element without checking
// for emptiness. The buffer must not be empty.
func (b *Buffer[T]) PopBackUnchecked() T {
	b.end = (b.end - 1) & b.mask
	value := b.slots[b.end]
	if b.zeroVacated {
		var zero T
		b.slots[b.end] = zero
	}
	b.full = false
	return value
}

// Front returns the front element without removing it, or false if empty.
func (b *Buffer[T]) Front() (zero T, _ bool) {
	if b.IsEmpty() {
		return zero, false
	}
	return b.slots[b.start], true
}

// Back returns the back element without removing it, or false if empty.
func (b *Buffer[T]) Back() (zero T, _ bool) {
	if b.IsEmpty() {
		return zero, false
	}
	return b.slots[(b.end-1)&b.mask], true
}

// FrontPtr returns a pointer to the front element, or nil if empty. The
// pointer is valid only until the next mutating call.
func (b *Buffer[T]) FrontPtr() *T {
	if b.IsEmpty() {
		return nil
	}
	return &b.slots[b.start]
}

// BackPtr returns a pointer to the back element, or nil if empty. The
// pointer is valid only until the next mutating call.
func (b *Buffer[T]) BackPtr() *T {
	if b.IsEmpty() {
		return nil
	}
	return &b.slots[(b.end-1)&b.mask]
}

// Slices returns the live elements as a pair of slices aliasing the backing
// array. Concatenated they yield the logical sequence in order; a
// contiguous buffer returns its single segment and a nil second slice.
func (b *Buffer[T]) Slices() (first, second []T) {
	if b.IsContiguous() {
		return b.slots[b.start:b.end], nil
	}
	return b.slots[b.start:], b.slots[:b.end]
}

// Contiguous returns the live elements as a single slice aliasing the
// backing array, or false when the elements wrap around. On a full buffer
// the slice covers the whole array and matches logical order only if start
// is zero.
func (b *Buffer[T]) Contiguous() ([]T, bool) {
	if !b.IsContiguousAnyOrder() {
		return nil, false
	}
	return b.ContiguousUnchecked(), true
}

// ContiguousUnchecked returns the single-slice view without checking
// contiguity. IsContiguousAnyOrder must hold.
func (b *Buffer[T]) ContiguousUnchecked() []T {
	if b.full {
		return b.slots
	}
	return b.slots[b.start:b.end]
}

// Snapshot returns a copy of the live elements in logical order, or nil
// when empty.
func (b *Buffer[T]) Snapshot() []T {
	n := b.Len()
	if n == 0 {
		return nil
	}
	first, second := b.Slices()
	out := make([]T, 0, n)
	out = append(out, first...)
	return append(out, second...)
}

// Linearize rotates the backing array so that the logical front sits at
// physical offset zero, making the sequence contiguous. It costs O(Cap)
// regardless of Len and is a no-op when start is already zero.
func (b *Buffer[T]) Linearize() {
	finish := telemetry.TraceLinearize()
	if b.start == 0 {
		finish(false)
		return
	}

	// Cyclic left rotation by start via triple reversal. Vacant slots
	// rotate along with the live ones, which is harmless: no new copies of
	// live values are created outside the live range.
	slices.Reverse(b.slots[:b.start])
	slices.Reverse(b.slots[b.start:])
	slices.Reverse(b.slots)

	b.end = (b.end - b.start) & b.mask
	b.start = 0
	finish(true)
}

// LinearizeOne is the fast path for a buffer holding exactly one element:
// instead of rotating the whole array it moves the single value to slot
// zero. No-op in every other state.
func (b *Buffer[T]) LinearizeOne() {
	if b.Len() != 1 || b.start == 0 {
		telemetry.RecordLinearizeOne(false)
		return
	}

	b.slots[0] = b.slots[b.start]
	if b.zeroVacated {
		var zero T
		b.slots[b.start] = zero
	}
	b.start = 0
	b.end = 1
	telemetry.RecordLinearizeOne(true)
}

// Clear removes all elements. With vacated zeroing enabled the live slots
// are zeroed first, in increasing physical-address order; otherwise the
// reset touches only the indices.
func (b *Buffer[T]) Clear() {
	if b.zeroVacated {
		var zero T
		first, second := b.Slices()
		for i := range second {
			second[i] = zero
		}
		for i := range first {
			first[i] = zero
		}
	}
	b.start = 0
	b.end = 0
	b.full = false
}

// Clone returns a structurally independent copy. Only live slots are
// copied; start, end and full carry over unchanged, so the clone has the
// same logical content and physical layout. Vacant slots in the clone stay
// zero-valued.
func (b *Buffer[T]) Clone() *Buffer[T] {
	dup := &Buffer[T]{
		slots:       make([]T, len(b.slots)),
		mask:        b.mask,
		start:       b.start,
		end:         b.end,
		full:        b.full,
		zeroVacated: b.zeroVacated,
	}

	if b.IsContiguousAnyOrder() {
		if b.full {
			copy(dup.slots, b.slots)
		} else {
			copy(dup.slots[b.start:b.end], b.slots[b.start:b.end])
		}
	} else {
		copy(dup.slots[:b.end], b.slots[:b.end])
		copy(dup.slots[b.start:], b.slots[b.start:])
	}

	return dup
}
