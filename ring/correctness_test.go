// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"errors"
	"sync"
	"testing"
	"time"
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"

	"github.com/PranavReddyP16/Ultra-Low-Latency-Order-Book-Engine/ring"
)

// =============================================================================
// Concurrent Correctness (1 Producer, 1 Consumer)
// =============================================================================

// TestRingFIFOOrdering runs one producer and one consumer through a
// small ring and verifies every value arrives exactly once, in order.
func TestRingFIFOOrdering(t *testing.T) {
	if ring.RaceEnabled {
		t.Skip("skip: SPSC uses cross-variable memory ordering not understood by race detector")
	}

	const n = 100000
	q := ring.New[int](64)

	var wg sync.WaitGroup
	var consumed atomix.Int64
	var timedOut atomix.Bool
	results := make([]int, n)

	// Consumer goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()
		deadline := time.Now().Add(10 * time.Second)
		backoff := iox.Backoff{}
		idx := 0
		for idx < n {
			if time.Now().After(deadline) {
				timedOut.Store(true)
				return
			}
			v, err := q.Dequeue()
			if err == nil {
				results[idx] = v
				idx++
				consumed.Add(1)
				backoff.Reset()
			} else {
				backoff.Wait()
			}
		}
	}()

	// Producer (in main goroutine)
	backoff := iox.Backoff{}
	for i := 1; i <= n; i++ {
		v := i
		for q.Enqueue(&v) != nil {
			backoff.Wait()
		}
		backoff.Reset()
	}

	wg.Wait()

	if timedOut.Load() {
		t.Fatalf("consumer timeout: consumed %d/%d", consumed.Load(), n)
	}
	if consumed.Load() != n {
		t.Fatalf("consumed %d items, want %d", consumed.Load(), n)
	}
	for i := range n {
		if results[i] != i+1 {
			t.Fatalf("FIFO violation at %d: got %d, want %d", i, results[i], i+1)
		}
	}
}

// TestRingIndirectFIFOOrdering is the uintptr-flavor ordering test.
func TestRingIndirectFIFOOrdering(t *testing.T) {
	if ring.RaceEnabled {
		t.Skip("skip: SPSC uses cross-variable memory ordering")
	}

	const n = 100000
	q := ring.NewIndirect(64)

	var wg sync.WaitGroup
	var producerDone atomix.Bool
	var consumed atomix.Int64
	var consumerErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer producerDone.Store(true)
		backoff := iox.Backoff{}
		for i := 1; i <= n; i++ {
			for q.Enqueue(uintptr(i)) != nil {
				backoff.Wait()
			}
			backoff.Reset()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		expected := uintptr(1)
		for expected <= n {
			val, err := q.Dequeue()
			if err == nil {
				if val != expected {
					consumerErr = errors.New("FIFO violation")
					return
				}
				expected++
				consumed.Add(1)
				backoff.Reset()
			} else {
				if producerDone.Load() && consumed.Load() == n {
					return
				}
				backoff.Wait()
			}
		}
	}()

	wg.Wait()

	if consumerErr != nil {
		t.Fatalf("consumer error: %v", consumerErr)
	}
	if got := consumed.Load(); got != n {
		t.Fatalf("consumed %d, want %d", got, n)
	}
}

// TestRingPtrOwnershipTransfer stresses the zero-copy flavor: every
// pointer must come out exactly once, in order, pointing at the object
// the producer built.
func TestRingPtrOwnershipTransfer(t *testing.T) {
	if ring.RaceEnabled {
		t.Skip("skip: SPSC uses cross-variable memory ordering")
	}

	const n = 50000
	type payload struct {
		seq int
	}

	q := ring.NewPtr(128)
	objs := make([]payload, n)

	var wg sync.WaitGroup
	var badSeq atomix.Int64 // first out-of-order seq + 1, 0 means none

	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		received := 0
		for received < n {
			ptr, err := q.Dequeue()
			if err != nil {
				backoff.Wait()
				continue
			}
			backoff.Reset()
			p := (*payload)(ptr)
			if p.seq != received {
				badSeq.Store(int64(p.seq) + 1)
				received++ // keep draining so the producer can finish
				continue
			}
			received++
		}
	}()

	backoff := iox.Backoff{}
	for i := range n {
		objs[i].seq = i
		for q.Enqueue(unsafe.Pointer(&objs[i])) != nil {
			backoff.Wait()
		}
		backoff.Reset()
	}

	wg.Wait()

	if got := badSeq.Load(); got != 0 {
		t.Fatalf("ownership transfer broke ordering at seq %d", got-1)
	}

	s := q.Stats()
	if s.Pushes != n || s.Pops != n {
		t.Fatalf("stats after stress: got %+v, want Pushes=Pops=%d", s, n)
	}
}

// TestCountersUnderLoad checks the counter invariants while both
// threads are live: pops never exceed pushes, and every push call is
// accounted as either a success or a rejection.
func TestCountersUnderLoad(t *testing.T) {
	if ring.RaceEnabled {
		t.Skip("skip: SPSC uses cross-variable memory ordering")
	}

	const calls = 200000
	q := ring.New[uint64](16)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	// Consumer drains as fast as it can until told to stop.
	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		for {
			if _, err := q.Dequeue(); err == nil {
				backoff.Reset()
				continue
			}
			select {
			case <-stop:
				return
			default:
				backoff.Wait()
			}
		}
	}()

	// Producer makes exactly `calls` Enqueue calls, never retrying, so
	// rejections are part of the expected accounting.
	for i := uint64(0); i < calls; i++ {
		v := i
		_ = q.Enqueue(&v)

		// Sample the invariants mid-flight now and then.
		if i%10000 == 0 {
			s := q.Stats()
			if s.Pops > s.Pushes {
				t.Errorf("invariant violated at call %d: Pops %d > Pushes %d", i, s.Pops, s.Pushes)
			}
		}
	}

	s := q.Stats()
	if s.Pushes+s.FailedPushes != calls {
		t.Fatalf("push accounting: Pushes %d + FailedPushes %d != %d calls", s.Pushes, s.FailedPushes, calls)
	}

	close(stop)
	wg.Wait()

	final := q.Stats()
	if final.Pops > final.Pushes {
		t.Fatalf("final invariant violated: Pops %d > Pushes %d", final.Pops, final.Pushes)
	}
}
