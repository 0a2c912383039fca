package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/milvus-client/v1/observability"
)

// MetricsCollector is the contract of the metrics package. *Metrics
// implements it.
type MetricsCollector interface {
	observability.Observer

	// CreateCounter registers and returns a custom counter.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram registers and returns a custom histogram.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge registers and returns a custom gauge.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}
