package hwtopo

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipWithoutSysfs skips tests that need the live kernel tree. Get is
// fatal on failure, so it is only exercised where it can succeed.
func skipWithoutSysfs(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("requires linux sysfs")
	}
	for _, p := range []string{
		filepath.Join(defaultSysfsRoot, "cpu", "online"),
		filepath.Join(defaultSysfsRoot, "node", "online"),
	} {
		if _, err := os.Stat(p); err != nil {
			t.Skipf("sysfs file %s unavailable: %v", p, err)
		}
	}
	// Restricted cpusets (containers) can make affinity-based
	// identification fail; Get would exit the process in that case.
	if _, err := Discover(); err != nil {
		t.Skipf("live discovery unavailable: %v", err)
	}
}

func TestGet_Idempotent(t *testing.T) {
	skipWithoutSysfs(t)

	first := Get()
	second := Get()

	require.NotNil(t, first)
	assert.Same(t, first, second, "Get must not rebuild")
	assert.Equal(t, first.NumNodes(), second.NumNodes())
	assert.Equal(t, first.NumPackages(), second.NumPackages())
	assert.Equal(t, first.NumLCores(), second.NumLCores())
	assert.Greater(t, first.NumLCores(), 0)
}

func TestGet_Concurrent(t *testing.T) {
	skipWithoutSysfs(t)

	const goroutines = 16
	results := make([]*Topology, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Get()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestDiscover_LiveSysfs(t *testing.T) {
	skipWithoutSysfs(t)

	topo, err := Discover()
	require.NoError(t, err)
	require.NotNil(t, topo)
	assert.Greater(t, topo.NumNodes(), 0)
	assert.Greater(t, topo.NumPackages(), 0)
	assert.Greater(t, topo.NumLCores(), 0)

	lcore := topo.LCore(0)
	if lcore != nil {
		assert.Equal(t, uint16(0), lcore.LCoreID)
		require.NotNil(t, topo.PackageOfLCore(0))
		assert.NotEmpty(t, topo.PackageOfLCore(0).Info.Vendor)
	}
}
