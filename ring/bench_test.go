// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"sync"
	"testing"

	"github.com/eapache/queue"
	lfr "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/PranavReddyP16/Ultra-Low-Latency-Order-Book-Engine/ring"
)

// =============================================================================
// Single-Thread Operation Cost
// =============================================================================

// BenchmarkEnqueueDequeue measures the raw cost of one push/pop pair
// with no cross-core traffic.
func BenchmarkEnqueueDequeue(b *testing.B) {
	q := ring.New[int](1024)
	v := 42

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.Enqueue(&v)
		_, _ = q.Dequeue()
	}
}

// BenchmarkEnqueueDequeueIndirect is the uintptr-flavor variant.
func BenchmarkEnqueueDequeueIndirect(b *testing.B) {
	q := ring.NewIndirect(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.Enqueue(uintptr(i))
		_, _ = q.Dequeue()
	}
}

// =============================================================================
// Cross-Core Comparison: Ring vs Channel vs Mutex Queue vs Sharded Ring
// =============================================================================
//
// One producer (the benchmark loop), one consumer goroutine. The
// channel and mutex baselines show what the lock-free ring buys; the
// sharded MPSC ring is the closest third-party comparison point run
// with a single shard.

// BenchmarkSPSCRing - this package's ring.
func BenchmarkSPSCRing(b *testing.B) {
	if ring.RaceEnabled {
		b.Skip("skip: SPSC uses cross-variable memory ordering")
	}

	q := ring.New[int](1024)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			default:
				q.Dequeue()
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := i
		for q.Enqueue(&v) != nil {
		}
	}
	b.StopTimer()
	close(done)
}

// BenchmarkSPSCChannel - buffered channel baseline.
func BenchmarkSPSCChannel(b *testing.B) {
	ch := make(chan int, 1024)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ch:
			default:
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for {
			select {
			case ch <- i:
			default:
				continue
			}
			break
		}
	}
	b.StopTimer()
	close(done)
}

// BenchmarkSPSCMutexQueue - eapache/queue guarded by a mutex, the
// conventional non-lock-free baseline.
func BenchmarkSPSCMutexQueue(b *testing.B) {
	var mu sync.Mutex
	q := queue.New()
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			default:
				mu.Lock()
				if q.Length() > 0 {
					q.Remove()
				}
				mu.Unlock()
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for {
			mu.Lock()
			if q.Length() < 1023 {
				q.Add(i)
				mu.Unlock()
				break
			}
			mu.Unlock()
		}
	}
	b.StopTimer()
	close(done)
}

// BenchmarkSPSCShardedRing - go-lock-free-ring with one shard.
func BenchmarkSPSCShardedRing(b *testing.B) {
	if ring.RaceEnabled {
		b.Skip("skip: lock-free ring uses cross-variable memory ordering")
	}

	r, err := lfr.NewShardedRing(1024, 1)
	if err != nil {
		b.Fatalf("NewShardedRing: %v", err)
	}
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			default:
				r.TryRead()
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !r.Write(0, i) {
		}
	}
	b.StopTimer()
	close(done)
}
