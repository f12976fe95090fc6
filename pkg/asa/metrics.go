package asa

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the optional Prometheus instruments of issuers and factories.
// A nil *Metrics records nothing.
type Metrics struct {
	TokensCreated    prometheus.Counter
	CreateFailures   *prometheus.CounterVec
	TokensRegistered prometheus.Counter
}

// NewMetrics registers the ASA metrics on registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		TokensCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "asa",
			Subsystem: "issuer",
			Name:      "tokens_created_total",
			Help:      "Total number of confirmed asset creations",
		}),
		CreateFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "asa",
			Subsystem: "issuer",
			Name:      "create_failures_total",
			Help:      "Total number of failed asset creations by error kind",
		}, []string{"kind"}),
		TokensRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "asa",
			Subsystem: "factory",
			Name:      "tokens_registered_total",
			Help:      "Total number of assets appended to factory registries",
		}),
	}
}

func (m *Metrics) recordCreated() {
	if m == nil {
		return
	}
	m.TokensCreated.Inc()
}

func (m *Metrics) recordFailure(err error) {
	if m == nil {
		return
	}
	m.CreateFailures.WithLabelValues(errorKind(err)).Inc()
}

func (m *Metrics) recordRegistered() {
	if m == nil {
		return
	}
	m.TokensRegistered.Inc()
}
