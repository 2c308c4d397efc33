// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// RingIndirect is an SPSC ring for uintptr values.
//
// Intended for index-based designs: the payload lives in a
// preallocated pool and only the slot index travels through the ring.
// Same index protocol, padding, and counters as Ring[T].
type RingIndirect struct {
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
	buffer       []uintptr
	mask         uint64
}

// NewIndirect creates a RingIndirect with the given slot count.
// Size must be a power of two and at least 2; the ring holds size-1
// values. Any other size panics.
func NewIndirect(size int) *RingIndirect {
	if !isPow2(size) {
		panic("ring: size must be a power of two and at least 2")
	}
	return &RingIndirect{
		buffer: make([]uintptr, size),
		mask:   uint64(size) - 1,
	}
}

// Enqueue adds a value (producer only).
// Returns ErrWouldBlock if the ring is full.
func (q *RingIndirect) Enqueue(elem uintptr) error {
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
	*(*uintptr)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(head)*ptrSize)) = elem
	q.head.StoreRelease(next)
	q.pushes.StoreRelaxed(q.pushes.LoadRelaxed() + 1)
	return nil
}

// Dequeue removes and returns the oldest value (consumer only).
// Returns (0, ErrWouldBlock) if the ring is empty.
func (q *RingIndirect) Dequeue() (uintptr, error) {
	tail := q.tail.LoadRelaxed()
	if tail == q.cachedHead {
		q.cachedHead = q.head.LoadAcquire()
		if tail == q.cachedHead {
			return 0, ErrWouldBlock
		}
	}

	// Equivalent to elem := q.buffer[tail]; tail is already masked.
	elem := *(*uintptr)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(tail)*ptrSize))
	q.tail.StoreRelease((tail + 1) & q.mask)
	q.pops.StoreRelaxed(q.pops.LoadRelaxed() + 1)
	return elem, nil
}

// Cap returns the number of values the ring can hold: size-1.
func (q *RingIndirect) Cap() int {
	return int(q.mask)
}

// Len returns the number of buffered values. Advisory under
// concurrent mutation.
func (q *RingIndirect) Len() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	return int((head - tail) & q.mask)
}

// Empty reports whether the ring is empty. Advisory.
func (q *RingIndirect) Empty() bool {
	return q.head.LoadAcquire() == q.tail.LoadAcquire()
}

// Full reports whether the ring is full. Advisory.
func (q *RingIndirect) Full() bool {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	return (head+1)&q.mask == tail
}

// Stats returns a snapshot of the ring's monotonic counters.
func (q *RingIndirect) Stats() Stats {
	return Stats{
		Pushes:       q.pushes.LoadRelaxed(),
		Pops:         q.pops.LoadRelaxed(),
		FailedPushes: q.failedPushes.LoadRelaxed(),
	}
}
