package selist

import (
	"github.com/rcrowley/go-metrics"
)

var (
	spreadCounter    = metrics.NewRegisteredCounter("selist/spread", nil)
	gatherCounter    = metrics.NewRegisteredCounter("selist/gather", nil)
	nodeAllocCounter = metrics.NewRegisteredCounter("selist/node/alloc", nil)
	nodeFreeCounter  = metrics.NewRegisteredCounter("selist/node/free", nil)
)

// Spreads retrieves a global counter measuring the number of spread passes,
// across all lists in the process.
func Spreads() int64 {
	return spreadCounter.Count()
}

// Gathers retrieves a global counter measuring the number of gather passes.
func Gathers() int64 {
	return gatherCounter.Count()
}

// NodeAllocs retrieves a global counter of nodes linked into any chain.
func NodeAllocs() int64 {
	return nodeAllocCounter.Count()
}

// NodeFrees retrieves a global counter of nodes unlinked from any chain.
func NodeFrees() int64 {
	return nodeFreeCounter.Count()
}
