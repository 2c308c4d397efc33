// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// Stats is a snapshot of a ring's instrumentation counters.
//
// The counters are monotonic. Each is written by exactly one thread
// (the producer owns Pushes and FailedPushes, the consumer owns Pops)
// with relaxed atomics, so a snapshot taken during traffic may lag a
// few operations — fine for telemetry, not for flow decisions.
//
// Invariants over any snapshot sequence:
//
//	Pops  <= Pushes
//	Pushes + FailedPushes == total Enqueue calls made
type Stats struct {
	// Pushes is the number of Enqueue calls that succeeded.
	Pushes uint64
	// Pops is the number of Dequeue calls that returned an element.
	Pops uint64
	// FailedPushes is the number of Enqueue calls rejected because
	// the ring was full.
	FailedPushes uint64
}

// Depth returns the number of elements the counters say are still
// buffered. Advisory, like the counters themselves.
func (s Stats) Depth() uint64 {
	return s.Pushes - s.Pops
}
