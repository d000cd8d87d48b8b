// Package ring implements the fixed-capacity double-ended ring buffer that
// backs the public deque types. The backing storage is a single slice whose
// length is fixed at construction to a power of two greater than one, so all
// wraparound arithmetic reduces to bitmasking.
//
// A buffer tracks three pieces of state: start (physical index of the
// logical front), end (one past the logical back) and full. Because indices
// are stored modulo the capacity, start == end is reached both when the
// buffer is empty and when it holds exactly capacity elements; full resolves
// the ambiguity. Between any two exported calls the following invariants
// hold:
//
//   - 0 <= start < cap and 0 <= end < cap.
//   - full implies start == end and every slot is live.
//   - !full && start == end means the buffer is empty and no slot is live.
//   - !full && start != end means the live slots are exactly those reached
//     by stepping from start to end (exclusive) with wraparound.
//
// A slot holds a live value only between the push that targets it and the
// pop, overwrite or clear that vacates it. Vacated slots are never read.
// Buffers constructed with WithVacatedZeroing additionally write the zero
// value into every vacated slot so the garbage collector can reclaim
// whatever the old value referenced; buffers for plain values skip that
// work entirely.
//
// The buffer assumes a single owner. No operation locks, blocks or retries;
// every operation either completes and restores all invariants or rejects
// before mutating anything. The unchecked variants skip their precondition
// checks and corrupt the buffer state when the precondition does not hold;
// they exist for callers that have already established it on a hot path.
package ring
