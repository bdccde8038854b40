// Package hwtopo discovers the host's CPU topology (logical cores,
// physical packages, NUMA nodes) from the kernel's sysfs enumeration
// and exposes it as an immutable in-memory model. The model is built
// exactly once per process and is safe for concurrent readers; NUMA
// allocators, thread pinners and work-stealing schedulers query it
// instead of re-parsing sysfs.
package hwtopo

import (
	"fmt"

	"github.com/23skdu/hwtopo/bitset"
	"github.com/23skdu/hwtopo/hwid"
)

// LCore is one schedulable hardware thread.
type LCore struct {
	// LCoreID is the logical core's own identity.
	LCoreID uint16
	// PackageID is the physical package owning this logical core.
	PackageID uint16
	// NodeID is the NUMA node owning this logical core.
	NodeID uint16
	// CoreID is the physical core identity, shared by hyperthread
	// siblings within the same package.
	CoreID uint16
}

// Package is one physical CPU socket.
type Package struct {
	PackageID uint16
	// NodeID is the node of the first logical core observed for this
	// package. A package spanning multiple nodes keeps the first one.
	NodeID uint16
	// Info is the hardware identification captured from the first
	// logical core observed for this package.
	Info *hwid.Info
	// LCores holds the logical core ids belonging to this package.
	// Read-only after discovery.
	LCores *bitset.Bitset
}

// Node is one NUMA memory node. Nodes exist for the whole online
// range, including memory-only nodes with no cores.
type Node struct {
	NodeID uint16
	// LCores holds the logical core ids local to this node.
	// Read-only after discovery.
	LCores *bitset.Bitset
}

// Topology is the immutable aggregate of everything discovered. All
// query methods are pure lookups; unknown ids yield nil, never an
// error, since asking about an offline or absent id is a normal
// caller outcome.
type Topology struct {
	packages map[uint16]*Package
	lcores   map[uint16]*LCore
	nodes    map[uint16]*Node
}

// NumNodes returns the number of online NUMA nodes.
func (t *Topology) NumNodes() int { return len(t.nodes) }

// NumPackages returns the number of discovered physical packages.
func (t *Topology) NumPackages() int { return len(t.packages) }

// NumLCores returns the number of discovered logical cores.
func (t *Topology) NumLCores() int { return len(t.lcores) }

// LCore returns the logical core with the given id, or nil.
func (t *Topology) LCore(lcoreID uint16) *LCore {
	return t.lcores[lcoreID]
}

// Package returns the package with the given id, or nil.
func (t *Topology) Package(packageID uint16) *Package {
	return t.packages[packageID]
}

// Node returns the node with the given id, or nil.
func (t *Topology) Node(nodeID uint16) *Node {
	return t.nodes[nodeID]
}

// NodeOfLCore returns the node owning the given logical core, or nil
// if the core is unknown.
func (t *Topology) NodeOfLCore(lcoreID uint16) *Node {
	lcore := t.lcores[lcoreID]
	if lcore == nil {
		return nil
	}
	return t.nodes[lcore.NodeID]
}

// PackageOfLCore returns the package owning the given logical core,
// or nil if the core is unknown.
func (t *Topology) PackageOfLCore(lcoreID uint16) *Package {
	lcore := t.lcores[lcoreID]
	if lcore == nil {
		return nil
	}
	return t.packages[lcore.PackageID]
}

// LCoresOfNode returns the member set of the given node, or nil if
// the node is unknown.
func (t *Topology) LCoresOfNode(nodeID uint16) *bitset.Bitset {
	node := t.nodes[nodeID]
	if node == nil {
		return nil
	}
	return node.LCores
}

// LCoresOfPackage returns the member set of the given package, or nil
// if the package is unknown.
func (t *Topology) LCoresOfPackage(packageID uint16) *bitset.Bitset {
	pkg := t.packages[packageID]
	if pkg == nil {
		return nil
	}
	return pkg.LCores
}

// String returns a one-line summary.
func (t *Topology) String() string {
	return fmt.Sprintf("topology: %d nodes, %d packages, %d lcores",
		len(t.nodes), len(t.packages), len(t.lcores))
}
