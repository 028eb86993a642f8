package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors del admin. Se registra en un registry propio
// (no el global) para que los tests puedan crear varios.
type Metrics struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	exports          *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "animal_control_admin",
			Name:      "upstream_requests_total",
			Help:      "Requests sent to the records API, by method and status code (0 = transport error).",
		}, []string{"method", "status"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "animal_control_admin",
			Name:      "exports_total",
			Help:      "Generated exports, by selector and format.",
		}, []string{"selector", "format"}),
	}

	reg.MustRegister(m.upstreamRequests, m.exports)
	return m
}

// ObserveUpstream cuenta un request al API. status 0 = error de transporte.
func (m *Metrics) ObserveUpstream(method string, status int) {
	if m == nil {
		return
	}
	m.upstreamRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ObserveExport(selector, format string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(selector, format).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
