package milvus

import (
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/milvus-client/v1/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
//
// Notes:
//   - resource: the collection, role or user the request targets
//   - subResource: the database name when one was sent
func (c *Client) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:   component,
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}

func (c *Client) recordSpanError(span trace.Span, err error) {
	if c.tracer == nil || span == nil {
		return
	}
	c.tracer.RecordErrorOnSpan(span, err)
}

func (c *Client) setSpanResult(span trace.Span, metadata map[string]interface{}) {
	if c.tracer == nil || span == nil {
		return
	}
	attrs := make(map[string]interface{}, len(metadata))
	for k, v := range metadata {
		attrs["milvus."+k] = v
	}
	c.tracer.SetAttributes(span, attrs)
}
