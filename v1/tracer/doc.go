// Package tracer provides distributed tracing using OpenTelemetry.
//
// It wraps a TracerProvider behind a few helpers: start a span, record an
// error on it, set attributes from a plain map, and move the W3C trace
// context in and out of HTTP headers.
//
// Basic Usage:
//
//	t, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "search-api",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//	if err != nil {
//		return err
//	}
//	defer t.Shutdown(context.Background())
//
//	ctx, span := t.StartSpan(ctx, "reindex")
//	defer span.End()
//
//	t.SetAttributes(span, map[string]interface{}{"collection": "docs"})
//
// The milvus client accepts a *Tracer through milvus.WithTracer. Each Send
// then runs in a client span and the outgoing request carries the
// traceparent header returned by GetCarrier.
//
// Export goes through OTLP/HTTP and is configured with the standard
// OTEL_EXPORTER_OTLP_ENDPOINT family of environment variables.
package tracer
