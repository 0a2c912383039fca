package milvus

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// Tracer is the subset of the tracer package the client needs.
// *tracer.Tracer implements it.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, trace.Span)
	RecordErrorOnSpan(span trace.Span, err error)
	SetAttributes(span trace.Span, attrs map[string]interface{})
	GetCarrier(ctx context.Context) map[string]string
}

// HTTPDoer executes HTTP requests. *http.Client implements it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Sender turns a Request into a Response. *Client implements it; the
// endpoint groups depend only on this.
type Sender interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}
