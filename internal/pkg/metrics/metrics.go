package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salon_booking"

// Booking holds the collectors for the reservation lifecycle.
type Booking struct {
	HoldsCreated     prometheus.Counter
	HoldsRejected    *prometheus.CounterVec
	Transitions      *prometheus.CounterVec
	Compensations    *prometheus.CounterVec
	HoldsReclaimed   prometheus.Counter
	ReaperRuns       *prometheus.CounterVec
	EventsProcessed  *prometheus.CounterVec
	OrderCallLatency prometheus.Histogram
}

func New(reg prometheus.Registerer) *Booking {
	f := promauto.With(reg)
	return &Booking{
		HoldsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "holds_created_total",
			Help:      "Holds successfully created.",
		}),
		HoldsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "holds_rejected_total",
			Help:      "Hold requests rejected, by error kind.",
		}, []string{"kind"}),
		Transitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Booking status transitions written.",
		}, []string{"to"}),
		Compensations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "saga_compensations_total",
			Help:      "Saga compensations run, by workflow, step and outcome.",
		}, []string{"workflow", "step", "outcome"}),
		HoldsReclaimed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "holds_reclaimed_total",
			Help:      "Expired holds deleted by the reaper.",
		}),
		ReaperRuns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reaper_runs_total",
			Help:      "Reaper sweeps, by outcome.",
		}, []string{"outcome"}),
		EventsProcessed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_events_total",
			Help:      "Payment and order events consumed, by topic and outcome.",
		}, []string{"topic", "outcome"}),
		OrderCallLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_cancel_duration_seconds",
			Help:      "Latency of cancel calls to the order service.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// NewNop registers on a private registry; for tests and tools.
func NewNop() *Booking {
	return New(prometheus.NewRegistry())
}

// StepCompensated satisfies saga.Observer.
func (m *Booking) StepCompensated(workflow, step string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	m.Compensations.WithLabelValues(workflow, step, outcome).Inc()
}
