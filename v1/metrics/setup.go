package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values of client_requests_total.
const (
	OutcomeSuccess        = "success"
	OutcomeAPIError       = "api_error"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
)

// Metrics owns a Prometheus registry, the client operation metrics fed by
// ObserveOperation, and the HTTP server that exposes them.
type Metrics struct {
	// Server serves the registry on /metrics.
	Server *http.Server

	// Registry holds every metric of this instance.
	Registry *prometheus.Registry

	namespace  string
	registerer prometheus.Registerer

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestSize     *prometheus.HistogramVec
}

// NewMetrics creates the registry, registers the client operation metrics
// and prepares (but does not start) the metrics server.
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "search-api"})
//	go m.Server.ListenAndServe()
//	client, _ := milvus.NewClient(cfg, milvus.WithObserver(m))
func NewMetrics(cfg Config) *Metrics {
	if cfg.Address == "" {
		cfg.Address = DefaultMetricsAddress
	}

	registry := prometheus.NewRegistry()

	var registerer prometheus.Registerer = registry
	if cfg.ServiceName != "" {
		registerer = prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)
	}

	m := &Metrics{
		Registry:   registry,
		namespace:  cfg.Namespace,
		registerer: registerer,
	}

	m.requestsTotal = createCounterVec(cfg.Namespace, "client_requests_total",
		"Total number of client operations by outcome",
		[]string{"component", "operation", "outcome"})
	m.requestDuration = createHistogramVec(cfg.Namespace, "client_request_duration_seconds",
		"Duration of client operations in seconds",
		[]string{"component", "operation"}, prometheus.DefBuckets)
	m.requestSize = createHistogramVec(cfg.Namespace, "client_request_size_bytes",
		"Size of client request payloads in bytes",
		[]string{"component", "operation"}, prometheus.ExponentialBuckets(64, 4, 10))

	registerer.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.requestSize,
	)

	if cfg.EnableDefaultCollectors {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}
	return m
}
