//go:build !linux

package hwtopo

import "errors"

var errPinUnsupported = errors.New("pin: cpu affinity requires linux")

// PinToNode is unsupported off Linux.
func (t *Topology) PinToNode(nodeID uint16) error {
	return errPinUnsupported
}

// PinToLCore is unsupported off Linux.
func (t *Topology) PinToLCore(lcoreID uint16) error {
	return errPinUnsupported
}
