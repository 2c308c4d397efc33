// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"code.hybscloud.com/atomix"
)

// Ring is a bounded single-producer single-consumer lock-free queue.
//
// The ring keeps its indices masked into [0, size): head is the
// producer's publish index, tail the consumer's. One slot stays
// reserved, so a ring of size n holds n-1 elements and full/empty are
// distinguishable without an extra flag. Each side additionally caches
// its last observed view of the other side's index, so the common case
// touches no remote cache line at all.
//
// A Ring must not be copied after first use: it contains atomics and
// both threads hold its address. Construct once with New and share the
// pointer.
type Ring[T any] struct {
	_            pad
	head         atomix.Uint64 // producer publishes here, consumer acquires
	_            pad
	cachedTail   uint64        // producer's view of tail
	pushes       atomix.Uint64 // producer-written counters
	failedPushes atomix.Uint64
	pushBusy     atomix.Uint64 // ringcheck builds only
	_            pad
	tail         atomix.Uint64 // consumer publishes here, producer acquires
	_            pad
	cachedHead   uint64        // consumer's view of head
	pops         atomix.Uint64 // consumer-written counter
	popBusy      atomix.Uint64
	_            pad
	buffer       []T
	mask         uint64
}

// New creates a Ring with the given slot count.
// Size must be a power of two and at least 2; the ring holds size-1
// elements. Any other size panics: a mis-sized ring is a configuration
// bug, not an operational condition.
func New[T any](size int) *Ring[T] {
	if !isPow2(size) {
		panic("ring: size must be a power of two and at least 2")
	}
	return &Ring[T]{
		buffer: make([]T, size),
		mask:   uint64(size) - 1,
	}
}

// Enqueue adds an element to the ring (producer only).
// The element is copied into the slot. Returns ErrWouldBlock if the
// ring is full; the failed attempt is counted and nothing is mutated.
func (q *Ring[T]) Enqueue(elem *T) error {
	if checkEnabled {
		if !q.pushBusy.CompareAndSwapAcqRel(0, 1) {
			panic("ring: concurrent Enqueue violates the single-producer contract")
		}
		defer q.pushBusy.StoreRelease(0)
	}

	head := q.head.LoadRelaxed()
	next := (head + 1) & q.mask
	if next == q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if next == q.cachedTail {
			q.failedPushes.StoreRelaxed(q.failedPushes.LoadRelaxed() + 1)
			return ErrWouldBlock
		}
	}

	q.buffer[head] = *elem
	q.head.StoreRelease(next)
	q.pushes.StoreRelaxed(q.pushes.LoadRelaxed() + 1)
	return nil
}

// Dequeue removes and returns the oldest element (consumer only).
// The vacated slot is cleared so the ring does not pin referenced
// objects. Returns (zero-value, ErrWouldBlock) if the ring is empty.
func (q *Ring[T]) Dequeue() (T, error) {
	if checkEnabled {
		if !q.popBusy.CompareAndSwapAcqRel(0, 1) {
			panic("ring: concurrent Dequeue violates the single-consumer contract")
		}
		defer q.popBusy.StoreRelease(0)
	}

	tail := q.tail.LoadRelaxed()
	if tail == q.cachedHead {
		q.cachedHead = q.head.LoadAcquire()
		if tail == q.cachedHead {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	elem := q.buffer[tail]
	var zero T
	q.buffer[tail] = zero
	q.tail.StoreRelease((tail + 1) & q.mask)
	q.pops.StoreRelaxed(q.pops.LoadRelaxed() + 1)
	return elem, nil
}

// Cap returns the number of elements the ring can hold: size-1.
func (q *Ring[T]) Cap() int {
	return int(q.mask)
}

// Len returns the number of buffered elements. Advisory under
// concurrent mutation: the two indices are loaded separately.
func (q *Ring[T]) Len() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	return int((head - tail) & q.mask)
}

// Empty reports whether the ring is empty. Advisory under concurrent
// mutation.
func (q *Ring[T]) Empty() bool {
	return q.head.LoadAcquire() == q.tail.LoadAcquire()
}

// Full reports whether the ring is full. Advisory under concurrent
// mutation.
func (q *Ring[T]) Full() bool {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	return (head+1)&q.mask == tail
}

// Stats returns a snapshot of the ring's monotonic counters.
func (q *Ring[T]) Stats() Stats {
	return Stats{
		Pushes:       q.pushes.LoadRelaxed(),
		Pops:         q.pops.LoadRelaxed(),
		FailedPushes: q.failedPushes.LoadRelaxed(),
	}
}
