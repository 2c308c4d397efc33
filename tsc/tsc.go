// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tsc provides a calibrated cycle-accurate clock built on the
// CPU's time stamp counter.
//
// The engine timestamps messages with raw TSC reads (~a few ns each,
// far cheaper than time.Now) and converts cycle deltas to nanoseconds
// with a ratio measured once at startup. The ring package has no
// dependency on this clock; callers stamp payloads on the way in and
// measure on the way out.
//
//	clock, err := tsc.Calibrate()
//	if err != nil {
//	    // fall back to time.Now on unsupported hardware
//	}
//	start := clock.Now()
//	// ... hot path ...
//	fmt.Printf("took %.1f ns\n", clock.Since(start))
//
// Calibration compares TSC ticks against the wall clock over three
// short intervals and keeps the median, so one descheduling blip does
// not skew the ratio. The result assumes an invariant TSC (constant
// rate regardless of frequency scaling), which every x86 part from the
// last decade provides.
//
// Only amd64 is supported; Calibrate returns ErrNotSupported
// elsewhere.
package tsc

import (
	"errors"
	"sort"
	"time"
)

// ErrNotSupported is returned by Calibrate when the build target has
// no usable time stamp counter.
var ErrNotSupported = errors.New("tsc: time stamp counter not available on this architecture")

// Clock converts raw time stamp counter readings to nanoseconds using
// a ratio measured once at construction. Safe for concurrent use: the
// ratio is immutable after Calibrate.
type Clock struct {
	freqGHz float64 // cycles per nanosecond
}

// Calibrate measures the TSC frequency against the wall clock and
// returns a ready-to-use Clock. Blocks for roughly 50 ms. Calibrate
// once at startup and share the Clock.
func Calibrate() (*Clock, error) {
	if !supported {
		return nil, ErrNotSupported
	}

	warmup()

	// Median of three: a single measurement is vulnerable to the
	// calibrating goroutine being descheduled mid-interval.
	freqs := make([]float64, 3)
	for i := range freqs {
		freqs[i] = measureFreqGHz()
		time.Sleep(5 * time.Millisecond)
	}
	sort.Float64s(freqs)

	return &Clock{freqGHz: freqs[1]}, nil
}

// Supported reports whether this build target has a usable TSC.
func Supported() bool {
	return supported
}

// Now returns the current raw TSC reading. Only deltas between two
// readings on the same machine are meaningful.
func (c *Clock) Now() uint64 {
	return now()
}

// CyclesToNs converts a cycle delta to nanoseconds.
func (c *Clock) CyclesToNs(cycles uint64) float64 {
	return float64(cycles) / c.freqGHz
}

// Since returns the nanoseconds elapsed since a previous Now reading.
func (c *Clock) Since(start uint64) float64 {
	return c.CyclesToNs(now() - start)
}

// GHz returns the measured TSC frequency in GHz (equivalently, cycles
// per nanosecond).
func (c *Clock) GHz() float64 {
	return c.freqGHz
}

// measureFreqGHz compares one TSC interval against the wall clock.
func measureFreqGHz() float64 {
	t1 := time.Now()
	start := now()
	time.Sleep(10 * time.Millisecond)
	end := now()
	t2 := time.Now()

	cycles := float64(end - start)
	nanos := float64(t2.Sub(t1).Nanoseconds())
	return cycles / nanos
}

// warmup pulls the read path into cache before measuring.
func warmup() {
	var sink uint64
	for range 1000 {
		sink += now()
	}
	_ = sink
}
