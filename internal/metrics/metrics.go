package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TopologyNodes reports the number of NUMA nodes discovered at startup
	TopologyNodes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hwtopo_topology_nodes",
			Help: "Number of online NUMA nodes in the discovered topology",
		},
	)

	// TopologyPackages reports the number of physical packages discovered
	TopologyPackages = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hwtopo_topology_packages",
			Help: "Number of physical CPU packages in the discovered topology",
		},
	)

	// TopologyLCores reports the number of logical cores discovered
	TopologyLCores = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hwtopo_topology_lcores",
			Help: "Number of logical cores in the discovered topology",
		},
	)

	// DiscoveryDurationSeconds measures the one-time sysfs walk
	DiscoveryDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hwtopo_discovery_duration_seconds",
			Help:    "Duration of the one-time CPU topology discovery",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		},
	)

	// DiscoveryFailuresTotal counts failed discovery attempts
	DiscoveryFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hwtopo_discovery_failures_total",
			Help: "Total number of failed CPU topology discovery attempts",
		},
	)
)
