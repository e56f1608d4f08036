package fsm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transition trigger labels.
const (
	triggerCondition = "condition"
	triggerGlobal    = "global"
	triggerTimeout   = "timeout"
	triggerForce     = "force"
	triggerGoBack    = "go_back"
	triggerReset     = "reset"
	triggerInitial   = "initial"
)

var (
	ticksTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "fsm_ticks_total",
		Help: "Total number of update ticks processed by machine and tick kind",
	}, []string{"machine", "kind"})

	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "fsm_transitions_total",
		Help: "Total number of state changes by machine, from, to, and trigger",
	}, []string{"machine", "from", "to", "trigger"})

	stateDwell = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "fsm_state_dwell_seconds",
		Help:    "Time spent in a state before leaving it, by machine and state",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"machine", "state"})

	timeoutsBlocked = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "fsm_timeouts_blocked_total",
		Help: "Total number of elapsed timeouts suppressed by a full lock",
	}, []string{"machine", "state"})

	configErrors = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "fsm_config_errors_total",
		Help: "Total number of rejected configuration or navigation calls by operation",
	}, []string{"machine", "op"})
)
