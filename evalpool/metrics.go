package evalpool

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	poolGets = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "evalpool_gets_total",
		Help: "The total number of buffer borrows from the pool",
	}, []string{"pool"})

	buffersAllocated = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "evalpool_buffers_allocated_total",
		Help: "The total number of fresh buffers allocated because none were idle",
	}, []string{"pool"})

	poolBuffersIdle = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "evalpool_buffers_idle",
		Help: "The number of buffers currently idle in the pool",
	}, []string{"pool"})

	poolBuffersInUse = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "evalpool_buffers_in_use",
		Help: "The number of buffers currently borrowed",
	}, []string{"pool"})
)
