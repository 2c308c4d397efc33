// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package affinity

import "errors"

// pin is a stub for platforms without affinity support.
func pin(cpuID int) error {
	return errors.New("affinity: not supported on this platform")
}
