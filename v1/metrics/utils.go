package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/milvus-client/v1/observability"
)

// ObserveOperation implements observability.Observer. Every call increments
// client_requests_total and records duration and payload size.
//
// The outcome label is derived from the context: a non-nil Error is a
// transport error; otherwise a status_code >= 400 in Metadata is an HTTP
// error, and a non-zero envelope "code" is an API error.
func (m *Metrics) ObserveOperation(ctx observability.OperationContext) {
	m.requestsTotal.WithLabelValues(ctx.Component, ctx.Operation, outcome(ctx)).Inc()
	m.requestDuration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())
	if ctx.Size > 0 {
		m.requestSize.WithLabelValues(ctx.Component, ctx.Operation).Observe(float64(ctx.Size))
	}
}

func outcome(ctx observability.OperationContext) string {
	if ctx.Error != nil {
		return OutcomeTransportError
	}
	if status, ok := ctx.Metadata["status_code"].(int); ok && status >= 400 {
		return OutcomeHTTPError
	}
	if code, ok := ctx.Metadata["code"].(int64); ok && code != 0 {
		return OutcomeAPIError
	}
	return OutcomeSuccess
}

// CreateCounter registers a custom counter in this instance's registry.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(m.namespace, name, help, labels)
	m.registerer.MustRegister(counter)
	return counter
}

// CreateHistogram registers a custom histogram in this instance's registry.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(m.namespace, name, help, labels, buckets)
	m.registerer.MustRegister(hist)
	return hist
}

// CreateGauge registers a custom gauge in this instance's registry.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(m.namespace, name, help, labels)
	m.registerer.MustRegister(gauge)
	return gauge
}

func createCounterVec(namespace, name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

func createHistogramVec(namespace, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}

func createGaugeVec(namespace, name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}
