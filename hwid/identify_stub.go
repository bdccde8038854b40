//go:build !linux

package hwid

import "errors"

// Identify requires Linux CPU affinity syscalls to steer CPUID onto a
// specific core; other platforms cannot provide per-package answers.
func Identify(lcore uint16) (*Info, error) {
	return nil, errors.New("hwid: per-core identification requires linux")
}
