package milvus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/milvus-client/v1/observability"
	"github.com/Aleph-Alpha/milvus-client/v1/tracer"
)

// capturedRequest is what the fake Milvus server saw.
type capturedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

// fakeServer records every request and answers with a fixed status and body.
type fakeServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []capturedRequest
}

func newFakeServer(t *testing.T, status int, body string) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	fs.Server = httptest.NewServer(fs.handler(status, body))
	t.Cleanup(fs.Close)
	return fs
}

func newFakeTLSServer(t *testing.T, status int, body string) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	fs.Server = httptest.NewTLSServer(fs.handler(status, body))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) handler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		fs.mu.Lock()
		fs.requests = append(fs.requests, capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   string(raw),
		})
		fs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (fs *fakeServer) Requests() []capturedRequest {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	out := make([]capturedRequest, len(fs.requests))
	copy(out, fs.requests)
	return out
}

func (fs *fakeServer) Last(t *testing.T) capturedRequest {
	t.Helper()
	reqs := fs.Requests()
	require.NotEmpty(t, reqs, "server received no request")
	return reqs[len(reqs)-1]
}

// configFor splits an httptest URL into the host and port of a Config.
func configFor(t *testing.T, serverURL string) *Config {
	t.Helper()
	idx := strings.LastIndex(serverURL, ":")
	require.Positive(t, idx)
	return FromHost(serverURL[:idx], serverURL[idx+1:])
}

func newTestClient(t *testing.T, fs *fakeServer, opts ...Option) *Client {
	t.Helper()
	client, err := NewClient(configFor(t, fs.URL), opts...)
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

// TestObserver collects observed operations.
type TestObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (o *TestObserver) ObserveOperation(ctx observability.OperationContext) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.operations = append(o.operations, ctx)
}

func (o *TestObserver) GetOperations() []observability.OperationContext {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]observability.OperationContext, len(o.operations))
	copy(out, o.operations)
	return out
}

func TestSend_URLMethodAndDefaultHeaders(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"code":0,"data":{}}`)
	client := newTestClient(t, fs)

	req, err := NewRequest(OpDropCollection, Params{"collectionName": "docs"})
	require.NoError(t, err)

	resp, err := client.Send(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, OpDropCollection, resp.Operation())

	got := fs.Last(t)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/v2/vectordb/collections/drop", got.Path)
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Empty(t, got.Header.Get("Authorization"))
	assert.Equal(t, `{"collectionName":"docs"}`, got.Body)
}

func TestSend_HeaderPrecedence(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"code":0}`)

	cfg := configFor(t, fs.URL).
		WithToken("root:Milvus").
		WithHeader("X-Tenant", "from-config")
	client, err := NewClient(cfg)
	require.NoError(t, err)

	req, err := NewRequest(OpListUsers, nil)
	require.NoError(t, err)
	req = req.WithHeader("X-Tenant", "from-request").
		WithHeader("Request-Timeout", "5").
		WithHeader("Authorization", "Bearer overridden")

	_, err = client.Send(context.Background(), req)
	require.NoError(t, err)

	got := fs.Last(t)
	assert.Equal(t, "Bearer root:Milvus", got.Header.Get("Authorization"))
	assert.Equal(t, "from-config", got.Header.Get("X-Tenant"))
	assert.Equal(t, "5", got.Header.Get("Request-Timeout"))
	assert.Equal(t, "{}", got.Body)
}

func TestSend_CustomAuthenticator(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"code":0}`)
	client := newTestClient(t, fs, WithAuthenticator(TokenAuthenticator{Token: "k", Prefix: "Token"}))

	_, err := client.Role().List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Token k", fs.Last(t).Header.Get("Authorization"))
}

func TestSend_ErrorStatusIsAResponse(t *testing.T) {
	fs := newFakeServer(t, http.StatusServiceUnavailable, `upstream unavailable`)
	client := newTestClient(t, fs)

	resp, err := client.Collection().List(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Status())
	assert.False(t, resp.Successful())
	assert.Equal(t, "upstream unavailable", resp.Body())
	assert.Nil(t, resp.JSON())
}

func TestSend_ApplicationErrorIsNotAGoError(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"code":1100,"message":"invalid parameter"}`)
	client := newTestClient(t, fs)

	resp, err := client.Collection().Describe(context.Background(), "docs", nil)
	require.NoError(t, err)
	code, ok := resp.Code()
	assert.True(t, ok)
	assert.Equal(t, int64(1100), code)
	assert.True(t, IsAPIError(resp.Err()))
}

func TestSend_TransportError(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"code":0}`)
	cfg := configFor(t, fs.URL)
	fs.Close()

	client, err := NewClient(cfg)
	require.NoError(t, err)

	resp, err := client.User().List(context.Background())
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.True(t, IsTransportError(err))

	var tErr *TransportError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, OpListUsers, tErr.Operation)
	assert.Equal(t, client.ResolveBaseURL()+"/v2/vectordb/users/list", tErr.URL)
}

func TestSend_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(configFor(t, srv.URL).WithTimeout(50 * time.Millisecond))
	require.NoError(t, err)

	_, err = client.Role().List(context.Background())
	require.Error(t, err)

	var tErr *TransportError
	require.True(t, errors.As(err, &tErr))
	assert.True(t, tErr.Timeout())
}

func TestSend_CancelledContext(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"code":0}`)
	client := newTestClient(t, fs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.User().List(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSend_TLSVerificationDisabledByDefault(t *testing.T) {
	fs := newFakeTLSServer(t, http.StatusOK, `{"code":0,"data":[]}`)

	client := newTestClient(t, fs)
	resp, err := client.User().List(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.OK())

	strict, err := NewClient(configFor(t, fs.URL).WithTLSVerification(true))
	require.NoError(t, err)
	_, err = strict.User().List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestSend_NilRequest(t *testing.T) {
	client, err := NewClient(DefaultConfig())
	require.NoError(t, err)

	_, err = client.Send(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestSend_ConcurrentUse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"code":0,"data":{"echo":%q}}`, body["collectionName"])
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(configFor(t, srv.URL))
	require.NoError(t, err)

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 32; i++ {
		name := fmt.Sprintf("c%d", i)
		g.Go(func() error {
			resp, err := client.Collection().Describe(ctx, name, nil)
			if err != nil {
				return err
			}
			if got, _ := resp.String("data.echo"); got != name {
				return fmt.Errorf("expected echo %q, got %q", name, got)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestSend_ObserverReceivesOneEventPerCall(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"code":0}`)
	obs := &TestObserver{}
	client := newTestClient(t, fs, WithObserver(obs))

	ctx := context.Background()
	_, err := client.Collection().Load(ctx, "docs", &DBOptions{DBName: String("analytics")})
	require.NoError(t, err)
	_, err = client.Role().Create(ctx, "reader")
	require.NoError(t, err)

	ops := obs.GetOperations()
	require.Len(t, ops, 2)

	assert.Equal(t, "milvus", ops[0].Component)
	assert.Equal(t, string(OpLoadCollection), ops[0].Operation)
	assert.Equal(t, "docs", ops[0].Resource)
	assert.Equal(t, "analytics", ops[0].SubResource)
	assert.NoError(t, ops[0].Error)
	assert.Equal(t, int64(len(`{"dbName":"analytics","collectionName":"docs"}`)), ops[0].Size)
	assert.Equal(t, http.StatusOK, ops[0].Metadata["status_code"])
	assert.Equal(t, int64(0), ops[0].Metadata["code"])

	assert.Equal(t, "reader", ops[1].Resource)
}

func TestSend_ObserverSeesTransportErrors(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"code":0}`)
	cfg := configFor(t, fs.URL)
	fs.Close()

	obs := &TestObserver{}
	client, err := NewClient(cfg, WithObserver(obs))
	require.NoError(t, err)

	_, err = client.User().Drop(context.Background(), "alice")
	require.Error(t, err)

	ops := obs.GetOperations()
	require.Len(t, ops, 1)
	assert.True(t, errors.Is(ops[0].Error, ErrTransport))
	assert.Equal(t, "alice", ops[0].Resource)
}

func TestSend_Logging(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := NewMockLogger(ctrl)

	fs := newFakeServer(t, http.StatusOK, `{"code":0}`)
	client := newTestClient(t, fs, WithLogger(log))

	log.EXPECT().Debug("sending milvus request", nil, gomock.Any()).Times(1)
	log.EXPECT().Debug("milvus request completed", nil, gomock.Any()).Times(1)

	_, err := client.User().Describe(context.Background(), "alice")
	require.NoError(t, err)
}

func TestSend_LogsTransportFailuresWithoutCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := NewMockLogger(ctrl)

	fs := newFakeServer(t, http.StatusOK, `{"code":0}`)
	cfg := configFor(t, fs.URL).WithToken("root:Milvus")
	fs.Close()

	client, err := NewClient(cfg, WithLogger(log))
	require.NoError(t, err)

	log.EXPECT().Debug("sending milvus request", nil, gomock.Any())
	log.EXPECT().Error("milvus request failed", gomock.Any(), gomock.Any()).
		Do(func(_ string, err error, fields ...map[string]interface{}) {
			assert.True(t, errors.Is(err, ErrTransport))
			for _, f := range fields {
				for _, v := range f {
					assert.NotContains(t, fmt.Sprint(v), "root:Milvus")
				}
			}
		})

	_, err = client.Role().List(context.Background())
	require.Error(t, err)
}

func TestSend_TracerSpanAndPropagation(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	fs := newFakeServer(t, http.StatusOK, `{"code":0}`)
	client := newTestClient(t, fs, WithTracer(tracer.NewWithProvider(tp, nil)))

	_, err := client.Collection().Flush(context.Background(), "docs", nil)
	require.NoError(t, err)

	traceparent := fs.Last(t).Header.Get("Traceparent")
	assert.NotEmpty(t, traceparent)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "milvus.collections.flush", spans[0].Name())
	assert.Contains(t, traceparent, spans[0].SpanContext().TraceID().String())
}
