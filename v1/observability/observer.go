// Package observability defines the hook that client packages use to report
// the operations they perform.
//
// Clients accept an optional Observer and call it once per completed
// operation. Implementations translate the OperationContext into metrics,
// traces or audit logs; the metrics package ships a Prometheus-backed one.
//
//	client, _ := milvus.NewClient(cfg, milvus.WithObserver(metricsInstance))
package observability

import "time"

// Observer receives one OperationContext per completed client operation.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes a single completed operation.
type OperationContext struct {
	// Component is the client that performed the operation, e.g. "milvus".
	Component string

	// Operation is the logical operation name, e.g. "collections.create".
	Operation string

	// Resource is the primary object operated on (collection, role, user).
	Resource string

	// SubResource carries secondary context such as the database name.
	SubResource string

	// Duration is the wall-clock time of the operation.
	Duration time.Duration

	// Error is the transport-level error, nil when the exchange completed.
	Error error

	// Size is the request payload size in bytes.
	Size int64

	// Metadata carries component specific details (status code, envelope code).
	Metadata map[string]interface{}
}

// NoopObserver discards every operation.
type NoopObserver struct{}

func (NoopObserver) ObserveOperation(OperationContext) {}
