// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ring

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent SPSC traffic, which triggers false
// positives: the detector cannot see happens-before edges established
// through acquire/release operations on separate variables.
const RaceEnabled = true
