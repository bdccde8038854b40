// Package sysfs holds the two read primitives topology discovery
// needs from the kernel's hardware enumeration tree. Each call opens,
// reads and closes the file; nothing is cached because discovery runs
// once per process.
package sysfs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadRange reads a "<start>-<end>" file such as
// /sys/devices/system/cpu/online and returns the inclusive count
// (end - start + 1).
func ReadRange(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read range file: %w", err)
	}
	text := strings.TrimSpace(string(data))
	start, end, found := strings.Cut(text, "-")
	if !found {
		return 0, fmt.Errorf("parse range %q in %s: missing '-'", text, path)
	}
	lo, err := strconv.Atoi(start)
	if err != nil {
		return 0, fmt.Errorf("parse range start %q in %s: %w", start, path, err)
	}
	hi, err := strconv.Atoi(end)
	if err != nil {
		return 0, fmt.Errorf("parse range end %q in %s: %w", end, path, err)
	}
	if hi < lo {
		return 0, fmt.Errorf("parse range %q in %s: end before start", text, path)
	}
	return hi - lo + 1, nil
}

// ReadInteger reads a file containing a single non-negative integer,
// such as a topology/physical_package_id file.
func ReadInteger(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read integer file: %w", err)
	}
	text := strings.TrimSpace(string(data))
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("parse integer %q in %s: %w", text, path, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("parse integer %q in %s: negative value", text, path)
	}
	return v, nil
}
