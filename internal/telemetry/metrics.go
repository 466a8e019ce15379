// Package telemetry expõe as métricas Prometheus do console
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "recho"

// Metrics agrupa os coletores do serviço
type Metrics struct {
	registry *prometheus.Registry

	DocumentLoads    *prometheus.CounterVec
	DocumentLoadedAt prometheus.Gauge
	DocumentRecords  *prometheus.GaugeVec
	LoadDuration     prometheus.Histogram
	QueryErrors      *prometheus.CounterVec
}

// NewMetrics registra os coletores em um registry próprio
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		DocumentLoads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_loads_total",
			Help:      "Metrics document loads by result",
		}, []string{"result"}),
		DocumentLoadedAt: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "document_loaded_timestamp_seconds",
			Help:      "Unix time of the last successful document load",
		}),
		DocumentRecords: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "document_section_records",
			Help:      "Records per section of the current document",
		}, []string{"section"}),
		LoadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "document_load_duration_seconds",
			Help:      "Time spent reading and decoding the metrics document",
			Buckets:   prometheus.DefBuckets,
		}),
		QueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_errors_total",
			Help:      "Dashboard queries that failed, by error kind",
		}, []string{"kind"}),
	}
}

// Handler retorna o handler HTTP do endpoint /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry expõe o registry (usado nos testes)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveLoad registra o resultado de um carregamento do documento
func (m *Metrics) ObserveLoad(started time.Time, sections map[string]int, err error) {
	if m == nil {
		return
	}

	m.LoadDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		m.DocumentLoads.WithLabelValues("error").Inc()
		return
	}

	m.DocumentLoads.WithLabelValues("success").Inc()
	m.DocumentLoadedAt.SetToCurrentTime()
	for section, count := range sections {
		m.DocumentRecords.WithLabelValues(section).Set(float64(count))
	}
}

// ObserveQueryError conta uma consulta que falhou
func (m *Metrics) ObserveQueryError(kind string) {
	if m == nil {
		return
	}
	m.QueryErrors.WithLabelValues(kind).Inc()
}
