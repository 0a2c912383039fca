// Package logger provides the structured zap logger used by the milvus client
// and its supporting packages.
//
// Every method takes a message, an optional error and any number of field
// maps, so call sites never build zap.Field values themselves:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "indexer",
//	})
//	log.Info("collection created", nil, map[string]interface{}{"collection": "docs"})
//
// # Tracing
//
// With EnableTracing set, the *WithContext variants add trace_id and span_id
// from the span stored in the context:
//
//	ctx, span := tracer.StartSpan(ctx, "search")
//	defer span.End()
//	log.ErrorWithContext(ctx, "search failed", err)
//
// # Tests
//
// NewFromZap wraps any *zap.Logger, which makes zaptest and the zap observer
// core usable from tests. NewNop discards all output.
//
// # FX Module
//
//	app := fx.New(
//		fx.Supply(logger.Config{Level: logger.Debug, ServiceName: "indexer"}),
//		logger.FXModule,
//		milvus.FXModule,
//	)
//
// The module provides both *LoggerClient and the Logger interface, and syncs
// the zap core when the application stops.
package logger
