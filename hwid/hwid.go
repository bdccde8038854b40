// Package hwid identifies the hardware characteristics of the physical
// package behind a logical core. Feature decoding is delegated to
// klauspost/cpuid; this package only steers execution onto the right
// core and snapshots the result.
package hwid

// Info describes the physical package a logical core belongs to.
type Info struct {
	Vendor         string
	Brand          string
	Family         int
	Model          int
	PhysicalCores  int
	ThreadsPerCore int
	Features       []string
}

// IdentifyFunc is the identification contract consumed by topology
// discovery. Implementations must return an error rather than a
// partial Info when the core cannot be identified.
type IdentifyFunc func(lcore uint16) (*Info, error)
