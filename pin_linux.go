//go:build linux

package hwtopo

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// PinToNode pins the calling goroutine to the CPUs of the given NUMA
// node, so its memory traffic stays node-local. The goroutine is
// locked to its OS thread and stays pinned until the thread exits or
// the caller changes affinity again.
func (t *Topology) PinToNode(nodeID uint16) error {
	node := t.nodes[nodeID]
	if node == nil {
		return fmt.Errorf("pin: unknown node %d", nodeID)
	}
	if node.LCores.Count() == 0 {
		return fmt.Errorf("pin: node %d has no cpus", nodeID)
	}

	var cpuSet unix.CPUSet
	cpuSet.Zero()
	node.LCores.Range(func(i int, present bool) bool {
		if present {
			cpuSet.Set(i)
		}
		return true
	})

	runtime.LockOSThread()
	return unix.SchedSetaffinity(0, &cpuSet)
}

// PinToLCore pins the calling goroutine to a single logical core.
func (t *Topology) PinToLCore(lcoreID uint16) error {
	if t.lcores[lcoreID] == nil {
		return fmt.Errorf("pin: unknown lcore %d", lcoreID)
	}

	var cpuSet unix.CPUSet
	cpuSet.Zero()
	cpuSet.Set(int(lcoreID))

	runtime.LockOSThread()
	return unix.SchedSetaffinity(0, &cpuSet)
}
