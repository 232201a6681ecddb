package observability

import (
	"context"

	"github.com/aretw0/riveting/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by LifecycleHooks.
type Metrics struct {
	Mutations    *prometheus.CounterVec
	Emissions    *prometheus.CounterVec
	DroppedTasks *prometheus.CounterVec
	Subscribers  *prometheus.GaugeVec
	UpdateTime   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "riveting",
				Name:      "mutations_total",
				Help:      "Committed domain mutations.",
			},
			[]string{"store", "kind"},
		),
		Emissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "riveting",
				Name:      "emissions_total",
				Help:      "Domain values queued to subscribers, counted once per subscriber.",
			},
			[]string{"store"},
		),
		DroppedTasks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "riveting",
				Name:      "tasks_dropped_total",
				Help:      "Async mutations that finished without committing.",
			},
			[]string{"store", "reason"},
		),
		Subscribers: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "riveting",
				Name:      "subscribers",
				Help:      "Active domain stream subscriptions.",
			},
			[]string{"store"},
		),
		UpdateTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "riveting",
				Name:      "update_duration_seconds",
				Help:      "Time spent inside update closures.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"store", "kind"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Mutations, m.Emissions, m.DroppedTasks, m.Subscribers, m.UpdateTime)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMutation: func(_ context.Context, e *domain.MutationEvent) {
			m.Mutations.WithLabelValues(e.Store, string(e.Kind)).Inc()
			m.UpdateTime.WithLabelValues(e.Store, string(e.Kind)).Observe(e.Duration.Seconds())
		},
		OnEmit: func(_ context.Context, e *domain.EmitEvent) {
			m.Emissions.WithLabelValues(e.Store).Add(float64(e.Subscribers))
		},
		OnTaskDropped: func(_ context.Context, e *domain.TaskEvent) {
			m.DroppedTasks.WithLabelValues(e.Store, e.Reason).Inc()
		},
		OnSubscription: func(_ context.Context, e *domain.SubscriptionEvent) {
			m.Subscribers.WithLabelValues(e.Store).Set(float64(e.Subscribers))
		},
	}
}
