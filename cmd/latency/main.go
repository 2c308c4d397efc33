// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command latency measures end-to-end message latency through the
// engine's SPSC ring.
//
// One goroutine stamps synthetic order messages with the TSC clock and
// enqueues them; a second dequeues and records the cycle delta. Both
// can be pinned to cores for stable numbers:
//
//	latency -n 1000000 -size 65536 -producer-cpu 2 -consumer-cpu 4
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"
	"unsafe"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
	"github.com/valyala/fastrand"

	"github.com/PranavReddyP16/Ultra-Low-Latency-Order-Book-Engine/affinity"
	"github.com/PranavReddyP16/Ultra-Low-Latency-Order-Book-Engine/market"
	"github.com/PranavReddyP16/Ultra-Low-Latency-Order-Book-Engine/ring"
	"github.com/PranavReddyP16/Ultra-Low-Latency-Order-Book-Engine/tsc"
)

// orderMsg is the payload pushed through the ring: a synthetic feed
// message plus the TSC stamp taken at enqueue time.
type orderMsg struct {
	Stamp  market.Timestamp
	ID     market.OrderID
	Price  market.Price
	Qty    market.Quantity
	Symbol market.SymbolID
	Type   market.MsgType
	Side   market.Side
}

func main() {
	var (
		items       = flag.Int("n", 1000000, "messages to send")
		size        = flag.Int("size", market.MessageRingSize, "ring size (power of two)")
		producerCPU = flag.Int("producer-cpu", -1, "pin producer to this CPU (-1: unpinned)")
		consumerCPU = flag.Int("consumer-cpu", -1, "pin consumer to this CPU (-1: unpinned)")
	)
	flag.Parse()

	fmt.Println("SPSC ring latency harness")
	fmt.Println("=========================")
	fmt.Printf("message size:  %d bytes\n", unsafe.Sizeof(orderMsg{}))
	fmt.Printf("ring size:     %d (%d usable)\n", *size, *size-1)
	fmt.Printf("messages:      %d\n", *items)

	if !tsc.Supported() {
		fmt.Fprintln(os.Stderr, "TSC not available on this architecture")
		os.Exit(1)
	}
	clock, err := tsc.Calibrate()
	if err != nil {
		log.Fatalf("calibrate: %v", err)
	}
	fmt.Printf("TSC frequency: %.3f GHz\n\n", clock.GHz())

	q := ring.New[orderMsg](*size)
	latencies := make([]uint64, *items)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		pin(*consumerCPU, "consumer")

		backoff := iox.Backoff{}
		for received := 0; received < *items; {
			msg, err := q.Dequeue()
			if err != nil {
				backoff.Wait()
				continue
			}
			backoff.Reset()
			latencies[received] = clock.Now() - msg.Stamp
			received++
		}
	}()

	pin(*producerCPU, "producer")

	sw := spin.Wait{}
	for i := 0; i < *items; i++ {
		msg := orderMsg{
			ID:     market.OrderID(i + 1),
			Price:  market.PriceToTicks(100.25, market.DefaultTickSize) + market.Price(fastrand.Uint32n(100)),
			Qty:    1 + market.Quantity(fastrand.Uint32n(1000)),
			Symbol: market.SymbolID(fastrand.Uint32n(market.MaxSymbols)),
			Type:   market.MsgAddOrder,
			Side:   market.Side(i & 1),
		}
		msg.Stamp = clock.Now()
		for q.Enqueue(&msg) != nil {
			sw.Once()
		}
	}

	wg.Wait()

	report(clock, latencies)

	s := q.Stats()
	fmt.Printf("\nring stats: pushes=%d pops=%d failed_pushes=%d\n", s.Pushes, s.Pops, s.FailedPushes)
}

// pin applies CPU affinity when requested; pinning failures are
// reported but never fatal, the harness just runs unpinned.
func pin(cpu int, role string) {
	if cpu < 0 {
		return
	}
	if err := affinity.Pin(cpu); err != nil {
		log.Printf("%s: %v", role, err)
		return
	}
	fmt.Printf("%s pinned to CPU %d\n", role, cpu)
}

// report prints the latency distribution in nanoseconds.
func report(clock *tsc.Clock, cycles []uint64) {
	sort.Slice(cycles, func(i, j int) bool { return cycles[i] < cycles[j] })

	pct := func(p float64) uint64 {
		idx := int(p * float64(len(cycles)-1))
		return cycles[idx]
	}

	fmt.Println("\nend-to-end latency (ns):")
	fmt.Printf("  min: %10.1f\n", clock.CyclesToNs(cycles[0]))
	fmt.Printf("  p50: %10.1f\n", clock.CyclesToNs(pct(0.50)))
	fmt.Printf("  p99: %10.1f\n", clock.CyclesToNs(pct(0.99)))
	fmt.Printf("  max: %10.1f\n", clock.CyclesToNs(cycles[len(cycles)-1]))
}
