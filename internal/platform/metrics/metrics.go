package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector agrupa las métricas del servicio sobre un registry propio
// (no el global), así cada router de test arranca en cero.
type Collector struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	DosesCalculated     *prometheus.CounterVec
	DosesRejected       *prometheus.CounterVec
	VaccinesRegistered  *prometheus.CounterVec
	HistoryEvictions    prometheus.Counter
	VaccineRecordsEvict prometheus.Counter
}

func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Collector{
		registry: reg,

		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),

		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"method", "route"}),

		DosesCalculated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dosage",
			Name:      "doses_calculated_total",
			Help:      "Successful dose calculations by drug and species.",
		}, []string{"drug", "species"}),

		DosesRejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dosage",
			Name:      "doses_rejected_total",
			Help:      "Rejected dose calculations by error kind.",
		}, []string{"kind"}),

		VaccinesRegistered: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "vaccines",
			Name:      "registered_total",
			Help:      "Vaccinations registered by species.",
		}, []string{"species"}),

		HistoryEvictions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "evictions_total",
			Help:      "Calculation records dropped by the history cap.",
		}),

		VaccineRecordsEvict: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "vaccines",
			Name:      "evictions_total",
			Help:      "Vaccine records dropped by the record cap.",
		}),
	}
}

// Handler expone el registry en formato Prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Registry se usa en tests para leer valores.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Los helpers toleran un Collector nil para que los servicios funcionen sin métricas.

func (c *Collector) DoseCalculated(drug, species string) {
	if c == nil {
		return
	}
	c.DosesCalculated.WithLabelValues(drug, species).Inc()
}

func (c *Collector) DoseRejected(kind string) {
	if c == nil {
		return
	}
	c.DosesRejected.WithLabelValues(kind).Inc()
}

func (c *Collector) VaccineRegistered(species string) {
	if c == nil {
		return
	}
	c.VaccinesRegistered.WithLabelValues(species).Inc()
}

func (c *Collector) HistoryEvicted(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.HistoryEvictions.Add(float64(n))
}

func (c *Collector) VaccineRecordsEvicted(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.VaccineRecordsEvict.Add(float64(n))
}
