// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package affinity pins goroutines to CPU cores.
//
// An SPSC ring performs best when its producer and consumer stay on
// fixed cores: the cached-index optimization and the cache-line layout
// both assume stable core residency. Pin locks the calling goroutine
// to its OS thread and binds that thread to one logical CPU.
//
// Platform-specific implementations live in separate files guarded by
// build tags; unsupported platforms return an error and the caller
// runs unpinned.
package affinity

// Pin binds the calling goroutine to the given logical CPU.
//
// The goroutine is locked to its OS thread as a side effect and stays
// locked: unpinning a latency-critical thread mid-run is not a
// supported operation. Returns an error if the platform cannot set
// affinity or the CPU does not exist.
func Pin(cpuID int) error {
	return pin(cpuID)
}
