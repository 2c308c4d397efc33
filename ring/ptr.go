// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// RingPtr is an SPSC ring for unsafe.Pointer values.
//
// This is the zero-copy ownership-transfer flavor: the producer builds
// an object, enqueues its pointer, and must not touch the object
// afterwards; the consumer receives the same pointer without a copy.
// Same index protocol, padding, and counters as Ring[T].
type RingPtr struct {
	_            pad
	head         atomix.Uint64
	_            pad
	cachedTail   uint64
	pushes       atomix.Uint64
	failedPushes atomix.Uint64
	_            pad
	tail         atomix.Uint64
	_            pad
	cachedHead   uint64
	pops         atomix.Uint64
	_            pad
	buffer       []unsafe.Pointer
	mask         uint64
}

// NewPtr creates a RingPtr with the given slot count.
// Size must be a power of two and at least 2; the ring holds size-1
// pointers. Any other size panics.
func NewPtr(size int) *RingPtr {
	if !isPow2(size) {
		panic("ring: size must be a power of two and at least 2")
	}
	return &RingPtr{
		buffer: make([]unsafe.Pointer, size),
		mask:   uint64(size) - 1,
	}
}

// Enqueue adds a pointer (producer only).
// Returns ErrWouldBlock if the ring is full.
func (q *RingPtr) Enqueue(elem unsafe.Pointer) error {
	head := q.head.LoadRelaxed()
	next := (head + 1) & q.mask
	if next == q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if next == q.cachedTail {
			q.failedPushes.StoreRelaxed(q.failedPushes.LoadRelaxed() + 1)
			return ErrWouldBlock
		}
	}

	// Pointer arithmetic avoids slice bounds checking in the hot path.
	// Equivalent to q.buffer[head] = elem; head is already masked.
	*(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(head)*ptrSize)) = elem
	q.head.StoreRelease(next)
	q.pushes.StoreRelaxed(q.pushes.LoadRelaxed() + 1)
	return nil
}

// Dequeue removes and returns the oldest pointer (consumer only).
// The vacated slot is cleared so the ring does not pin the object.
// Returns (nil, ErrWouldBlock) if the ring is empty.
func (q *RingPtr) Dequeue() (unsafe.Pointer, error) {
	tail := q.tail.LoadRelaxed()
	if tail == q.cachedHead {
		q.cachedHead = q.head.LoadAcquire()
		if tail == q.cachedHead {
			return nil, ErrWouldBlock
		}
	}

	slot := (*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(tail)*ptrSize))
	elem := *slot
	*slot = nil
	q.tail.StoreRelease((tail + 1) & q.mask)
	q.pops.StoreRelaxed(q.pops.LoadRelaxed() + 1)
	return elem, nil
}

// Cap returns the number of pointers the ring can hold: size-1.
func (q *RingPtr) Cap() int {
	return int(q.mask)
}

// Len returns the number of buffered pointers. Advisory under
// concurrent mutation.
func (q *RingPtr) Len() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	return int((head - tail) & q.mask)
}

// Empty reports whether the ring is empty. Advisory.
func (q *RingPtr) Empty() bool {
	return q.head.LoadAcquire() == q.tail.LoadAcquire()
}

// Full reports whether the ring is full. Advisory.
func (q *RingPtr) Full() bool {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	return (head+1)&q.mask == tail
}

// Stats returns a snapshot of the ring's monotonic counters.
func (q *RingPtr) Stats() Stats {
	return Stats{
		Pushes:       q.pushes.LoadRelaxed(),
		Pops:         q.pops.LoadRelaxed(),
		FailedPushes: q.failedPushes.LoadRelaxed(),
	}
}
