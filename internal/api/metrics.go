package api

import (
	"github.com/prometheus/client_golang/prometheus"

	"flakytodo/internal/store"
)

// metrics holds the server's Prometheus collectors. Each Server owns its
// own registry so tests can run servers side by side.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	injected prometheus.Counter
}

func newMetrics(items store.ItemReader) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "flakytodo_http_requests_total",
			Help: "HTTP requests served, by route and status code.",
		}, []string{"route", "code"}),
		injected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flakytodo_simulated_failures_total",
			Help: "API calls failed by the unreliability injector.",
		}),
	}
	m.registry.MustRegister(m.requests, m.injected)
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "flakytodo_items",
		Help: "Live items in the store.",
	}, func() float64 {
		return float64(items.Len())
	}))
	return m
}
