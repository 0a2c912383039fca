// Package metrics provides Prometheus-based metrics for the client packages.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: the contract, including observability.Observer
//   - Metrics struct: the concrete implementation
//   - NewMetrics constructor: returns *Metrics
//   - FX module: provides *Metrics, MetricsCollector and observability.Observer
//
// Every client operation reported through ObserveOperation updates:
//
//	client_requests_total{component,operation,outcome}
//	client_request_duration_seconds{component,operation}
//	client_request_size_bytes{component,operation}
//
// where outcome is one of success, api_error, http_error or transport_error.
//
// # Direct Usage (Without FX)
//
//	import "github.com/Aleph-Alpha/milvus-client/v1/metrics"
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//		ServiceName:             "search-api",
//	})
//	go m.Server.ListenAndServe()
//
//	client, err := milvus.NewClient(cfg, milvus.WithObserver(m))
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{Address: ":9090", ServiceName: "search-api"}
//		}),
//		metrics.FXModule,
//		fx.Provide(milvus.NewConfig),
//		milvus.FXModule,
//	)
//	app.Run()
//
// # Configuration
//
//	METRICS_ADDRESS=:9090                      # Listen address of /metrics
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true     # Go runtime and process metrics
//	METRICS_NAMESPACE=search                   # Optional prefix for all metric names
//	METRICS_SERVICE_NAME=search-api            # Adds a service label to all metrics
//
// # Custom Metrics
//
// CreateCounter, CreateHistogram and CreateGauge register additional metrics
// in the same registry, with the same namespace and service label.
//
// # Thread Safety
//
// All methods on Metrics are safe for concurrent use.
package metrics
