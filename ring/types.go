// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "unsafe"

// Queue is the combined producer-consumer view of a generic ring.
//
// Both operations are non-blocking and wait-free; they return
// ErrWouldBlock when they cannot proceed (ring full or empty). That is
// a control flow signal, not a failure — the caller chooses the
// backpressure policy.
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the enqueue side of a ring. Exactly one goroutine may
// hold this role for a given ring.
//
// The element is passed by pointer to avoid copying large structs at
// the call boundary; the ring stores a copy of the pointed-to value,
// so the caller may reuse the original after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element (non-blocking, single producer).
	// Returns nil on success, ErrWouldBlock if the ring is full.
	Enqueue(elem *T) error
}

// Consumer is the dequeue side of a ring. Exactly one goroutine may
// hold this role for a given ring.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element (non-blocking,
	// single consumer).
	// Returns (zero-value, ErrWouldBlock) if the ring is empty.
	Dequeue() (T, error)
}

// QueueIndirect is the combined view of a uintptr ring. Useful for
// passing pool indices or handles instead of full objects.
type QueueIndirect interface {
	// Enqueue adds a value (non-blocking, single producer).
	Enqueue(elem uintptr) error
	// Dequeue removes and returns the oldest value (non-blocking,
	// single consumer). Returns (0, ErrWouldBlock) when empty.
	Dequeue() (uintptr, error)
	Cap() int
}

// QueuePtr is the combined view of an unsafe.Pointer ring.
//
// Ownership semantics: enqueueing a pointer transfers the object to
// the consumer; the producer must not touch it afterwards. This is the
// zero-copy path for payloads too large to copy through a generic
// ring.
type QueuePtr interface {
	// Enqueue adds a pointer (non-blocking, single producer).
	Enqueue(elem unsafe.Pointer) error
	// Dequeue removes and returns the oldest pointer (non-blocking,
	// single consumer). Returns (nil, ErrWouldBlock) when empty.
	Dequeue() (unsafe.Pointer, error)
	Cap() int
}

// Monitored is implemented by every ring flavor: a snapshot of the
// instrumentation counters for telemetry collectors.
type Monitored interface {
	Stats() Stats
}

// isPow2 reports whether n is a valid ring size: a power of two, >= 2.
func isPow2(n int) bool {
	return n >= 2 && n&(n-1) == 0
}

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing.
type pad [64]byte
