// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// pin binds the current thread to cpuID via sched_setaffinity.
func pin(cpuID int) error {
	if cpuID < 0 {
		return fmt.Errorf("affinity: invalid cpu id %d", cpuID)
	}

	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return fmt.Errorf("affinity: sched_setaffinity(cpu %d): %w", cpuID, err)
	}
	return nil
}
