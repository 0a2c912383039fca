package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/milvus-client/v1/observability"
)

func TestNewMetrics_Defaults(t *testing.T) {
	m := NewMetrics(Config{})

	require.NotNil(t, m.Server)
	assert.Equal(t, DefaultMetricsAddress, m.Server.Addr)
	require.NotNil(t, m.Registry)
}

func TestObserveOperation_Outcomes(t *testing.T) {
	m := NewMetrics(Config{})

	ops := []observability.OperationContext{
		{Component: "milvus", Operation: "entities.search", Duration: time.Millisecond,
			Metadata: map[string]interface{}{"status_code": 200, "code": int64(0)}},
		{Component: "milvus", Operation: "entities.search", Duration: time.Millisecond,
			Metadata: map[string]interface{}{"status_code": 200, "code": int64(1100)}},
		{Component: "milvus", Operation: "entities.search", Duration: time.Millisecond,
			Metadata: map[string]interface{}{"status_code": 503}},
		{Component: "milvus", Operation: "entities.search", Duration: time.Millisecond,
			Error: errors.New("connection refused")},
		{Component: "milvus", Operation: "entities.search", Duration: time.Millisecond},
	}
	for _, op := range ops {
		m.ObserveOperation(op)
	}

	count := func(outcome string) float64 {
		return testutil.ToFloat64(m.requestsTotal.WithLabelValues("milvus", "entities.search", outcome))
	}
	assert.Equal(t, float64(2), count(OutcomeSuccess))
	assert.Equal(t, float64(1), count(OutcomeAPIError))
	assert.Equal(t, float64(1), count(OutcomeHTTPError))
	assert.Equal(t, float64(1), count(OutcomeTransportError))

	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestObserveOperation_SizeOnlyWhenPositive(t *testing.T) {
	m := NewMetrics(Config{})

	m.ObserveOperation(observability.OperationContext{Component: "milvus", Operation: "collections.list"})
	assert.Equal(t, 0, testutil.CollectAndCount(m.requestSize))

	m.ObserveOperation(observability.OperationContext{Component: "milvus", Operation: "entities.insert", Size: 512})
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestSize))
}

func TestNewMetrics_NamespaceAndServiceLabel(t *testing.T) {
	m := NewMetrics(Config{Namespace: "search", ServiceName: "indexer"})
	m.ObserveOperation(observability.OperationContext{Component: "milvus", Operation: "roles.list"})

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() != "search_client_requests_total" {
			continue
		}
		found = true
		labels := map[string]string{}
		for _, l := range f.GetMetric()[0].GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
		assert.Equal(t, "indexer", labels["service"])
		assert.Equal(t, "roles.list", labels["operation"])
	}
	assert.True(t, found)
}

func TestCustomMetrics(t *testing.T) {
	m := NewMetrics(Config{})

	counter := m.CreateCounter("collections_created_total", "Collections created", []string{"db"})
	counter.WithLabelValues("default").Add(2)
	assert.Equal(t, float64(2), testutil.ToFloat64(counter.WithLabelValues("default")))

	gauge := m.CreateGauge("loaded_collections", "Loaded collections", []string{"db"})
	gauge.WithLabelValues("default").Set(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(gauge.WithLabelValues("default")))

	hist := m.CreateHistogram("search_hits", "Hits per search", []string{"collection"}, []float64{1, 10, 100})
	hist.WithLabelValues("docs").Observe(5)
	assert.Equal(t, 1, testutil.CollectAndCount(hist))

	assert.Panics(t, func() {
		m.CreateCounter("collections_created_total", "duplicate", []string{"db"})
	})
}

func TestMetricsImplementsObserver(t *testing.T) {
	var _ observability.Observer = NewMetrics(Config{})
	var _ MetricsCollector = NewMetrics(Config{})
}
