package milvus

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"

	"github.com/Aleph-Alpha/milvus-client/v1/logger"
	"github.com/Aleph-Alpha/milvus-client/v1/observability"
)

func TestNewClientWithDI_OptionalDependenciesAbsent(t *testing.T) {
	client, err := NewClientWithDI(MilvusParams{Config: DefaultConfig()})
	require.NoError(t, err)

	assert.Nil(t, client.observer)
	assert.Nil(t, client.tracer)
	assert.NotNil(t, client.logger)
	assert.Equal(t, "http://localhost:19530", client.ResolveBaseURL())
}

func TestNewClientWithDI_InvalidConfig(t *testing.T) {
	_, err := NewClientWithDI(MilvusParams{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFXModule_ProvidesClient(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"code":0,"data":[]}`)
	obs := &TestObserver{}

	core, logs := zapobserver.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core), false)

	var client *Client
	app := fxtest.New(t,
		FXModule,
		fx.Provide(
			func() *Config { return configFor(t, fs.URL) },
			func() observability.Observer { return obs },
			func() logger.Logger { return log },
		),
		fx.Populate(&client),
	)
	app.RequireStart()

	resp, err := client.Collection().List(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Len(t, obs.GetOperations(), 1)

	app.RequireStop()
	assert.Equal(t, 1, logs.FilterMessage("shutting down milvus client").Len())
}
