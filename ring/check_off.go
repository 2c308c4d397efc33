// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !ringcheck

package ring

// checkEnabled is false in default builds: the single-producer
// single-consumer contract is the caller's responsibility and the hot
// path carries no enforcement cost.
const checkEnabled = false
