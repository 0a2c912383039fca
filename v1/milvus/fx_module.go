package milvus

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/milvus-client/v1/logger"
	"github.com/Aleph-Alpha/milvus-client/v1/observability"
	"github.com/Aleph-Alpha/milvus-client/v1/tracer"
)

// FXModule is an fx.Module that provides the Milvus REST client.
//
// The module:
// 1. Provides the client through NewClientWithDI
// 2. Registers a stop hook that releases idle connections
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule, // optional
//	    metrics.FXModule, // optional, provides observability.Observer
//	    fx.Provide(milvus.NewConfig),
//	    milvus.FXModule,
//	)
var FXModule = fx.Module("milvus",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterMilvusLifecycle),
)

// MilvusParams groups the dependencies needed to create a client.
type MilvusParams struct {
	fx.In

	Config   *Config
	Logger   logger.Logger          `optional:"true"`
	Observer observability.Observer `optional:"true"`
	Tracer   *tracer.Tracer         `optional:"true"`
}

// NewClientWithDI creates a client from injected dependencies. Missing
// optional dependencies fall back to the NewClient defaults.
func NewClientWithDI(params MilvusParams) (*Client, error) {
	var opts []Option
	if params.Logger != nil {
		opts = append(opts, WithLogger(params.Logger))
	}
	if params.Observer != nil {
		opts = append(opts, WithObserver(params.Observer))
	}
	if params.Tracer != nil {
		opts = append(opts, WithTracer(params.Tracer))
	}
	return NewClient(params.Config, opts...)
}

// MilvusLifecycleParams groups the dependencies needed for lifecycle management.
type MilvusLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *Client
	Logger    logger.Logger `optional:"true"`
}

// RegisterMilvusLifecycle closes idle connections when the application stops.
// The client is stateless towards the server, so there is nothing to do on start.
func RegisterMilvusLifecycle(params MilvusLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if params.Logger != nil {
				params.Logger.Info("shutting down milvus client", nil, map[string]interface{}{
					"base_url": params.Client.ResolveBaseURL(),
				})
			}
			params.Client.Close()
			return nil
		},
	})
}
