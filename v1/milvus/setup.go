package milvus

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/milvus-client/v1/observability"
)

const component = "milvus"

// Client is the connector to one Milvus REST endpoint.
//
// A Client is configured once by NewClient and never mutated afterwards, so a
// single instance may be shared by any number of goroutines.
type Client struct {
	cfg     *Config
	baseURL string

	httpClient HTTPDoer
	auth       Authenticator

	logger   Logger
	observer observability.Observer
	tracer   Tracer

	collection *CollectionEndpoint
	vector     *VectorEndpoint
	role       *RoleEndpoint
	user       *UserEndpoint
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithLogger sets the logger used for request and failure logs.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver sets the observer notified once per Send.
func WithObserver(observer observability.Observer) Option {
	return func(c *Client) { c.observer = observer }
}

// WithTracer wraps every Send in a span and propagates trace headers.
func WithTracer(tracer Tracer) Option {
	return func(c *Client) { c.tracer = tracer }
}

// WithHTTPClient replaces the HTTP client built from the config. The
// replacement is responsible for its own timeout and TLS settings.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		if doer != nil {
			c.httpClient = doer
		}
	}
}

// WithAuthenticator replaces the bearer authenticator derived from Config.Token.
func WithAuthenticator(auth Authenticator) Option {
	return func(c *Client) {
		if auth != nil {
			c.auth = auth
		}
	}
}

// NewClient creates a connector for the configured endpoint.
//
// Example:
//
//	client, err := milvus.NewClient(milvus.NewConfig(),
//	    milvus.WithLogger(log),
//	    milvus.WithObserver(metricsInstance),
//	)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	resp, err := client.Collection().Describe(ctx, "docs", nil)
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg = cfg.clone()
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		cfg:        cfg,
		baseURL:    cfg.Host + ":" + cfg.Port,
		httpClient: newHTTPClient(cfg),
		auth:       NewTokenAuthenticator(cfg.Token),
		logger:     nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.collection = &CollectionEndpoint{sender: c}
	c.vector = &VectorEndpoint{sender: c}
	c.role = &RoleEndpoint{sender: c}
	c.user = &UserEndpoint{sender: c}

	return c, nil
}

func newHTTPClient(cfg *Config) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: !cfg.VerifyTLS, //nolint:gosec // local deployments use self-signed certificates
		MinVersion:         tls.VersionTLS12,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}
}

// ResolveBaseURL returns "{Host}:{Port}" exactly as configured.
func (c *Client) ResolveBaseURL() string {
	return c.baseURL
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return *c.cfg.clone()
}

// Collection returns the collection management endpoints.
func (c *Client) Collection() *CollectionEndpoint { return c.collection }

// Vector returns the entity read and write endpoints.
func (c *Client) Vector() *VectorEndpoint { return c.vector }

// Role returns the role and privilege endpoints.
func (c *Client) Role() *RoleEndpoint { return c.role }

// User returns the user endpoints.
func (c *Client) User() *UserEndpoint { return c.user }

// Send performs one HTTP exchange for req.
//
// Every completed exchange yields a Response regardless of status code or
// envelope code. A nil Response is returned only together with a
// *TransportError, when no HTTP response was received at all.
func (c *Client) Send(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidArgument)
	}

	body, err := req.Encode()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	url := c.baseURL + req.Path
	resource, subResource := requestResources(req)

	var span trace.Span
	if c.tracer != nil {
		ctx, span = c.tracer.StartSpan(ctx, "milvus."+string(req.Operation))
		defer span.End()
		c.tracer.SetAttributes(span, map[string]interface{}{
			"milvus.operation":  string(req.Operation),
			"milvus.resource":   resource,
			"http.method":       req.Method,
			"http.url":          url,
			"http.request_size": len(body),
		})
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Operation: req.Operation, URL: url, Err: err}
	}
	c.applyHeaders(ctx, httpReq, req)

	c.logger.Debug("sending milvus request", nil, map[string]interface{}{
		"operation": string(req.Operation),
		"method":    req.Method,
		"url":       url,
		"size":      len(body),
	})

	start := time.Now()
	resp, raw, err := c.do(httpReq)
	duration := time.Since(start)

	if err != nil {
		tErr := &TransportError{Operation: req.Operation, URL: url, Err: err}
		c.logger.Error("milvus request failed", tErr, map[string]interface{}{
			"operation": string(req.Operation),
			"url":       url,
			"duration":  duration.String(),
		})
		c.recordSpanError(span, tErr)
		c.observeOperation(string(req.Operation), resource, subResource, duration, tErr, int64(len(body)), nil)
		return nil, tErr
	}

	out := NewResponse(req.Operation, resp.StatusCode, resp.Header, raw)

	metadata := map[string]interface{}{"status_code": out.Status()}
	if code, ok := out.Code(); ok {
		metadata["code"] = code
	}

	c.logger.Debug("milvus request completed", nil, map[string]interface{}{
		"operation":   string(req.Operation),
		"status_code": out.Status(),
		"duration":    duration.String(),
	})
	c.setSpanResult(span, metadata)
	c.observeOperation(string(req.Operation), resource, subResource, duration, nil, int64(len(body)), metadata)

	return out, nil
}

// do runs the exchange and reads the whole body. A failure while reading the
// body counts as a transport failure.
func (c *Client) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read body: %w", err)
	}
	return resp, raw, nil
}

// applyHeaders sets headers in increasing precedence: defaults, request
// headers, authentication, configured extras.
func (c *Client) applyHeaders(ctx context.Context, httpReq *http.Request, req *Request) {
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	if c.tracer != nil {
		for k, v := range c.tracer.GetCarrier(ctx) {
			httpReq.Header.Set(k, v)
		}
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range c.auth.Headers() {
		httpReq.Header.Set(k, v)
	}
	for k, v := range c.cfg.Headers {
		httpReq.Header.Set(k, v)
	}
}

// Close releases idle keep-alive connections. The client stays usable.
func (c *Client) Close() {
	if closer, ok := c.httpClient.(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}
}

// requestResources picks the object a request targets for observability.
func requestResources(req *Request) (resource, subResource string) {
	for _, key := range []string{"collectionName", "roleName", "userName"} {
		if s, ok := stringValue(req, key); ok {
			resource = s
			break
		}
	}
	subResource, _ = stringValue(req, "dbName")
	return resource, subResource
}

// stringValue reads key from the request body as a string, following a
// non-nil *string.
func stringValue(req *Request, key string) (string, bool) {
	v, ok := req.Value(key)
	if !ok {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case *string:
		if s != nil {
			return *s, true
		}
	}
	return "", false
}
