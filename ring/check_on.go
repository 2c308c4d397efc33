// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build ringcheck

package ring

// checkEnabled turns on the SPSC-discipline detector: Enqueue and
// Dequeue panic if called concurrently from more than one goroutine.
// Debug builds only — the detector adds two atomic RMW operations per
// call, which defeats the point of the ring in production.
const checkEnabled = true
