// Package benchmarks compares the deque against other bounded-queue
// building blocks: a buffered channel, the growable eapache/queue and the
// sharded lock-free ring. The comparisons are single-goroutine, matching the
// single-owner access model the deque is designed for.
package benchmarks
