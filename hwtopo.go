package hwtopo

import (
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/23skdu/hwtopo/hwid"
	"github.com/23skdu/hwtopo/internal/logging"
)

var (
	topo *Topology
	once sync.Once
)

// Get returns the process-wide Topology, building it on first use.
// Exactly one build runs even under concurrent first access; every
// caller observes the same fully-initialized model. Discovery failure
// is unrecoverable: a partial topology would misdirect placement
// decisions, so Get terminates the process instead of degrading.
func Get() *Topology {
	once.Do(func() {
		logger, err := logging.NewLogger(logging.DefaultConfig())
		if err != nil {
			logger = logging.DiscardLogger()
		}
		if runtime.GOOS != "linux" {
			logger.Fatal("cpu topology discovery requires the linux sysfs layout",
				zap.String("goos", runtime.GOOS))
		}
		t, err := discover(defaultSysfsRoot, hwid.Identify, logger)
		if err != nil {
			logger.Fatal("cpu topology discovery failed", zap.Error(err))
		}
		topo = t
	})
	return topo
}

// Discover builds a Topology from the live sysfs tree and returns the
// error instead of exiting. Hosts that prefer to fail their own way
// may use this once at startup; the result must still be treated as
// unrecoverable on error. Get remains the shared accessor.
func Discover() (*Topology, error) {
	if runtime.GOOS != "linux" {
		return nil, fmt.Errorf("cpu topology discovery requires linux, running on %s", runtime.GOOS)
	}
	return discover(defaultSysfsRoot, hwid.Identify, logging.DiscardLogger())
}
