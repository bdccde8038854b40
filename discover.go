package hwtopo

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/23skdu/hwtopo/bitset"
	"github.com/23skdu/hwtopo/hwid"
	"github.com/23skdu/hwtopo/internal/metrics"
	"github.com/23skdu/hwtopo/internal/sysfs"
)

// defaultSysfsRoot is the kernel's hardware enumeration tree.
const defaultSysfsRoot = "/sys/devices/system"

// discover walks the sysfs tree rooted at root and reconstructs the
// package/node/core hierarchy. The walk is keyed by (node, core): a
// core only exposes a topology directory under its owning node, so
// probing every pair both assigns cores to nodes and skips offline or
// absent cores. Any read or parse failure aborts the build; a partial
// topology must never escape.
func discover(root string, identify hwid.IdentifyFunc, log *zap.Logger) (*Topology, error) {
	start := time.Now()

	numCPUs, err := sysfs.ReadRange(filepath.Join(root, "cpu", "online"))
	if err != nil {
		metrics.DiscoveryFailuresTotal.Inc()
		return nil, fmt.Errorf("online cpu range: %w", err)
	}
	numNodes, err := sysfs.ReadRange(filepath.Join(root, "node", "online"))
	if err != nil {
		metrics.DiscoveryFailuresTotal.Inc()
		return nil, fmt.Errorf("online node range: %w", err)
	}

	topo := &Topology{
		packages: make(map[uint16]*Package),
		lcores:   make(map[uint16]*LCore),
		nodes:    make(map[uint16]*Node),
	}

	for nodeID := 0; nodeID < numNodes; nodeID++ {
		nodeLCores := bitset.New(numCPUs)

		for lcoreID := 0; lcoreID < numCPUs; lcoreID++ {
			topoDir := filepath.Join(root, "node",
				fmt.Sprintf("node%d", nodeID),
				fmt.Sprintf("cpu%d", lcoreID), "topology")

			// A missing directory means this core does not belong to
			// this node (or is offline everywhere); skip silently.
			if _, err := os.Stat(topoDir); err != nil {
				continue
			}

			packageID, err := sysfs.ReadInteger(filepath.Join(topoDir, "physical_package_id"))
			if err != nil {
				metrics.DiscoveryFailuresTotal.Inc()
				return nil, fmt.Errorf("node %d cpu %d: %w", nodeID, lcoreID, err)
			}
			coreID, err := sysfs.ReadInteger(filepath.Join(topoDir, "core_id"))
			if err != nil {
				metrics.DiscoveryFailuresTotal.Inc()
				return nil, fmt.Errorf("node %d cpu %d: %w", nodeID, lcoreID, err)
			}

			topo.lcores[uint16(lcoreID)] = &LCore{
				LCoreID:   uint16(lcoreID),
				PackageID: uint16(packageID),
				NodeID:    uint16(nodeID),
				CoreID:    uint16(coreID),
			}

			pkg, ok := topo.packages[uint16(packageID)]
			if !ok {
				// First core seen for this package: capture its
				// hardware identity once from this representative.
				info, err := identify(uint16(lcoreID))
				if err != nil {
					metrics.DiscoveryFailuresTotal.Inc()
					return nil, fmt.Errorf("identify package %d via lcore %d: %w",
						packageID, lcoreID, err)
				}
				pkg = &Package{
					PackageID: uint16(packageID),
					NodeID:    uint16(nodeID),
					Info:      info,
					LCores:    bitset.New(numCPUs),
				}
				topo.packages[uint16(packageID)] = pkg
			}
			pkg.LCores.Set(lcoreID)
			nodeLCores.Set(lcoreID)
		}

		// Memory-only nodes keep an entry with an empty member set.
		topo.nodes[uint16(nodeID)] = &Node{
			NodeID: uint16(nodeID),
			LCores: nodeLCores,
		}
		log.Debug("discovered node",
			zap.Int("node_id", nodeID),
			zap.Int("lcores", nodeLCores.Count()))
	}

	metrics.TopologyNodes.Set(float64(len(topo.nodes)))
	metrics.TopologyPackages.Set(float64(len(topo.packages)))
	metrics.TopologyLCores.Set(float64(len(topo.lcores)))
	metrics.DiscoveryDurationSeconds.Observe(time.Since(start).Seconds())

	log.Info("cpu topology discovered",
		zap.Int("nodes", len(topo.nodes)),
		zap.Int("packages", len(topo.packages)),
		zap.Int("lcores", len(topo.lcores)))

	return topo, nil
}
