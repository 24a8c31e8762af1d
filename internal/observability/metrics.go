package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	TurnsProcessed *prometheus.CounterVec
	Clarifications *prometheus.CounterVec
	SearchRequests *prometheus.CounterVec
	SearchLatency  prometheus.Histogram
	SessionSaves   *prometheus.CounterVec
	StoresReturned prometheus.Histogram
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		TurnsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Processed conversation turns by intent and subject.",
		}, []string{"intent", "subject"}),
		Clarifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clarifications_total",
			Help:      "Clarification prompts issued by kind.",
		}, []string{"kind"}),
		SearchRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "External store searches by outcome.",
		}, []string{"outcome"}),
		SearchLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_latency_ms",
			Help:      "External store search latency in milliseconds.",
			Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}),
		SessionSaves: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_saves_total",
			Help:      "Session store writes by outcome.",
		}, []string{"outcome"}),
		StoresReturned: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stores_returned",
			Help:      "Ranked stores returned per retail search turn.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 10, 15},
		}),
	}
}

func (m *Metrics) ObserveSearchLatency(d time.Duration) {
	m.SearchLatency.Observe(float64(d.Milliseconds()))
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
