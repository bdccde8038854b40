//go:build linux

package hwtopo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/23skdu/hwtopo/internal/logging"
)

// pinTestTopology builds a topology whose only core is cpu0, which
// exists on every host, so affinity calls are valid everywhere.
func pinTestTopology(t *testing.T) *Topology {
	t.Helper()
	root := writeSysfsTree(t, "0-0", "0-1", []fakeCPU{
		{node: 0, lcore: 0, pkg: 0, core: 0},
	})
	id := &stubIdentifier{}
	topo, err := discover(root, id.identify, logging.DiscardLogger())
	require.NoError(t, err)
	return topo
}

func restoreAffinity(t *testing.T) func() {
	t.Helper()
	runtime.LockOSThread()
	var prev unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &prev))
	return func() {
		_ = unix.SchedSetaffinity(0, &prev)
		runtime.UnlockOSThread()
	}
}

func TestPinToNode(t *testing.T) {
	defer restoreAffinity(t)()
	topo := pinTestTopology(t)

	require.NoError(t, topo.PinToNode(0))

	var cur unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &cur))
	assert.True(t, cur.IsSet(0))
	assert.Equal(t, 1, cur.Count())
}

func TestPinToNode_Errors(t *testing.T) {
	topo := pinTestTopology(t)

	assert.Error(t, topo.PinToNode(7), "unknown node")
	assert.Error(t, topo.PinToNode(1), "memory-only node has no cpus")
}

func TestPinToLCore(t *testing.T) {
	defer restoreAffinity(t)()
	topo := pinTestTopology(t)

	require.NoError(t, topo.PinToLCore(0))
	assert.Error(t, topo.PinToLCore(5), "unknown lcore")
}
