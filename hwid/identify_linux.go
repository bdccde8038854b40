//go:build linux

package hwid

import (
	"fmt"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/unix"
)

// Identify pins the calling thread to lcore, re-runs CPUID there and
// returns the resulting package description. The previous CPU affinity
// is restored before returning.
func Identify(lcore uint16) (*Info, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		return nil, fmt.Errorf("get affinity: %w", err)
	}

	var target unix.CPUSet
	target.Zero()
	target.Set(int(lcore))
	if err := unix.SchedSetaffinity(0, &target); err != nil {
		return nil, fmt.Errorf("pin to lcore %d: %w", lcore, err)
	}
	defer func() {
		// Best effort; the saved mask was valid moments ago.
		_ = unix.SchedSetaffinity(0, &prev)
	}()

	cpuid.Detect()
	c := cpuid.CPU

	return &Info{
		Vendor:         c.VendorString,
		Brand:          c.BrandName,
		Family:         c.Family,
		Model:          c.Model,
		PhysicalCores:  c.PhysicalCores,
		ThreadsPerCore: c.ThreadsPerCore,
		Features:       c.FeatureSet(),
	}, nil
}
