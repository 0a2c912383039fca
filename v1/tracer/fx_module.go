package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/milvus-client/v1/logger"
)

// FXModule provides the tracer and flushes it on shutdown.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() tracer.Config { return tracer.Config{ServiceName: "search-api"} }),
//	    tracer.FXModule,
//	    milvus.FXModule,
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// TracerParams groups the dependencies needed to create a tracer.
type TracerParams struct {
	fx.In

	Config Config
	Logger logger.Logger `optional:"true"`
}

// NewClientWithDI creates a tracer from injected dependencies.
func NewClientWithDI(params TracerParams) (*Tracer, error) {
	var log Logger
	if params.Logger != nil {
		log = params.Logger
	}
	return NewClient(params.Config, log)
}

// RegisterTracerLifecycle registers an OnStop hook that flushes pending spans
// and shuts the provider down.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer.logger != nil {
				tracer.logger.Info("shutting down tracer", nil)
			}
			return tracer.Shutdown(ctx)
		},
	})
}
