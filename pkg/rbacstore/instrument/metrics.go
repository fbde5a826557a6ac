package instrument

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/rbackit/pkg/rbacstore"
)

// Metrics holds the Prometheus collectors for provider calls.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors. A nil registerer means
// prometheus.DefaultRegisterer. Registering twice on the same registry reuses
// the collectors that are already there.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rbacstore",
		Name:      "operations_total",
		Help:      "Total number of store operations by result.",
	}, []string{"operation", "result"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rbacstore",
		Name:      "operation_duration_seconds",
		Help:      "Latency of store operations.",
		Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
	}, []string{"operation"})

	var err error
	if operations, err = registerCollector(reg, operations); err != nil {
		return nil, err
	}
	if duration, err = registerCollector(reg, duration); err != nil {
		return nil, err
	}

	return &Metrics{operations: operations, duration: duration}, nil
}

// Metered returns a Provider that records every call in m.
func Metered(next rbacstore.Provider, m *Metrics) rbacstore.Provider {
	return Wrap(next, m.Hook())
}

// Hook returns a Hook that records calls in m.
func (m *Metrics) Hook() Hook {
	return func(_ context.Context, call Call) {
		m.operations.WithLabelValues(call.Operation, call.Result()).Inc()
		m.duration.WithLabelValues(call.Operation).Observe(call.Duration.Seconds())
	}
}

// Operations exposes the counter for scraping helpers and tests.
func (m *Metrics) Operations() *prometheus.CounterVec {
	return m.operations
}

func registerCollector[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}
