// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides a bounded single-producer single-consumer
// lock-free queue.
//
// The queue is the message-passing primitive of the engine's hot path:
// one thread decodes market data and enqueues, one thread matches and
// dequeues. Both operations are wait-free — a fixed number of atomic
// loads and stores per call, no CAS retry loops, no locks, no blocking.
//
// # Quick Start
//
//	q := ring.New[Order](1024)
//
//	// Producer goroutine
//	if err := q.Enqueue(&order); ring.IsWouldBlock(err) {
//	    // queue full — drop, retry, or apply backpressure upstream
//	}
//
//	// Consumer goroutine
//	order, err := q.Dequeue()
//	if ring.IsWouldBlock(err) {
//	    // queue empty — try again later
//	}
//
// # Sizing
//
// The ring holds size-1 elements: one slot stays reserved so that a
// full ring and an empty ring are distinguishable from the index pair
// alone. Size must be a power of two and at least 2; anything else is
// a programming error and New panics. There is no rounding — a wrong
// size in a trading system is a configuration bug to surface at start
// time, not to paper over.
//
//	q := ring.New[Order](65536) // holds 65535 elements
//	q.Cap()                     // 65535, constant
//
// # Access Discipline
//
// Exactly one goroutine may call Enqueue and exactly one may call
// Dequeue for the lifetime of the ring. This is a caller contract; the
// hot path does not verify it. Violating it corrupts the queue.
// Builds with the "ringcheck" tag add a concurrent-call detector that
// panics on misuse, for debugging only.
//
// Empty, Full, Len, and Stats may be called from any thread. Under
// concurrent mutation their results are advisory snapshots intended
// for monitoring, never for correctness decisions.
//
// # Flavors
//
// Three flavors share the same index protocol:
//
//	Ring[T]      - generic, element copied in and out
//	RingIndirect - uintptr values (pool indices, handles)
//	RingPtr      - unsafe.Pointer values, zero-copy ownership transfer
//
// RingPtr is the ownership-transfer analog of moving an element in:
// the producer enqueues a pointer and must not touch the object again;
// the consumer receives the same pointer without any copy.
//
// # Instrumentation
//
// Each ring counts successful enqueues, successful dequeues, and
// enqueue attempts rejected because the ring was full. The counters
// are monotonic, maintained with relaxed atomics by their owning
// thread only, and cheap enough to stay enabled in production. Stats
// returns a consistent-enough snapshot for telemetry scrapes; see the
// metric package for a Prometheus collector built on it.
//
// # Memory Ordering
//
// The producer owns the head index, the consumer owns the tail index,
// and neither ever writes the other's. A payload write is published by
// a release store of head; the consumer's acquire load of head makes
// the payload visible before it reads the slot. Symmetrically, the
// consumer's release store of tail guarantees the producer sees a
// fully vacated slot before overwriting it. These two release/acquire
// pairs are the queue's entire synchronization mechanism, built on
// [code.hybscloud.com/atomix].
//
// Producer-owned and consumer-owned fields live on separate cache
// lines. This is part of the performance contract, not a tweak: with
// both hot indices on one line every enqueue/dequeue pair would ping
// the line between cores.
//
// # Race Detection
//
// Go's race detector cannot see the happens-before edges established
// by acquire/release operations on separate variables, so it reports
// false positives on correct SPSC traffic. Concurrent tests are
// skipped under the race detector via the RaceEnabled constant.
package ring
