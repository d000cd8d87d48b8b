// Package window provides a fixed-capacity sliding window over a stream of
// observations. Once the window is full, every new observation evicts the
// oldest one, so the window always exposes the most recent values in
// arrival order.
//
// The window is backed by the same ring engine as the deque types, which
// keeps Observe O(1) and allocation free. Reduction over the current
// contents walks the two physical segments of the ring directly and never
// reorders storage.
//
// Like the deque types, a window assumes a single owner and exposes no
// internal synchronization.
package window
