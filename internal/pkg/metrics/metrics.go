// Package metrics owns the Prometheus registry and every collector the
// service exports on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fastbite"

type Metrics struct {
	registry *prometheus.Registry

	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	HubSubscribers *prometheus.GaugeVec
	HubBuffered    *prometheus.GaugeVec
	HubPublished   *prometheus.GaugeVec
	HubDropped     *prometheus.GaugeVec

	OrdersInStage     *prometheus.GaugeVec
	OldestInStageSecs *prometheus.GaugeVec
}

// New registers all collectors on a fresh registry, so several instances can
// coexist in one process.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds. Streams are excluded.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"route"}),
		HubSubscribers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "hub",
			Name:      "subscribers",
			Help:      "Open subscriptions per hub.",
		}, []string{"hub"}),
		HubBuffered: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "hub",
			Name:      "buffered_events",
			Help:      "Events waiting in subscriber buffers per hub.",
		}, []string{"hub"}),
		HubPublished: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "hub",
			Name:      "published_events",
			Help:      "Events published since start per hub.",
		}, []string{"hub"}),
		HubDropped: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "hub",
			Name:      "dropped_events",
			Help:      "Events discarded from full subscriber buffers since start per hub.",
		}, []string{"hub"}),
		OrdersInStage: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "in_stage",
			Help:      "Orders currently in each lifecycle stage.",
		}, []string{"status"}),
		OldestInStageSecs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "oldest_in_stage_seconds",
			Help:      "Age of the oldest order in each lifecycle stage.",
		}, []string{"status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests,
		m.LatencyMS,
		m.HubSubscribers,
		m.HubBuffered,
		m.HubPublished,
		m.HubDropped,
		m.OrdersInStage,
		m.OldestInStageSecs,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
