// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64

package tsc

const supported = true

// rdtsc reads the CPU's time stamp counter.
// Implemented in tsc_amd64.s.
func rdtsc() uint64

func now() uint64 {
	return rdtsc()
}
