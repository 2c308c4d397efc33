// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64

package tsc

const supported = false

func now() uint64 {
	return 0
}
