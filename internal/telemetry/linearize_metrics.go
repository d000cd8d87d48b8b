package telemetry

import (
	"sync/atomic"
	"time"
)

// LinearizeMetrics aggregates measurements of linearization passes, the only
// operation in the module whose cost scales with the capacity.
type LinearizeMetrics struct {
	totalDuration atomic.Int64
	attempts      atomic.Uint64
	rotations     atomic.Uint64
	fastAttempts  atomic.Uint64
	fastMoves     atomic.Uint64
}

var defaultLinearizeMetrics LinearizeMetrics

// DefaultLinearizeMetrics returns the global metrics instance.
func DefaultLinearizeMetrics() *LinearizeMetrics {
	return &defaultLinearizeMetrics
}

// TraceLinearize starts a linearization span and returns a completion
// function that records the duration and whether a rotation was actually
// performed.
func TraceLinearize() func(rotated bool) {
	start := time.Now()
	defaultLinearizeMetrics.attempts.Add(1)
	return func(rotated bool) {
		defaultLinearizeMetrics.totalDuration.Add(time.Since(start).Nanoseconds())
		if rotated {
			defaultLinearizeMetrics.rotations.Add(1)
		}
	}
}

// RecordLinearizeOne counts an attempt of the single-element fast path and
// whether it actually moved a value.
func RecordLinearizeOne(moved bool) {
	defaultLinearizeMetrics.fastAttempts.Add(1)
	if moved {
		defaultLinearizeMetrics.fastMoves.Add(1)
	}
}

// Snapshot returns the collected rotation values.
func (m *LinearizeMetrics) Snapshot() (attempts uint64, rotations uint64, average time.Duration) {
	attempts = m.attempts.Load()
	rotations = m.rotations.Load()
	total := m.totalDuration.Load()
	if attempts == 0 {
		return attempts, rotations, 0
	}
	average = time.Duration(total / int64(attempts))
	return attempts, rotations, average
}

// FastPathSnapshot returns the collected single-element fast-path values.
func (m *LinearizeMetrics) FastPathSnapshot() (attempts uint64, moves uint64) {
	return m.fastAttempts.Load(), m.fastMoves.Load()
}

// Reset zeroes all counters.
func (m *LinearizeMetrics) Reset() {
	m.totalDuration.Store(0)
	m.attempts.Store(0)
	m.rotations.Store(0)
	m.fastAttempts.Store(0)
	m.fastMoves.Store(0)
}
