package milvus

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Response wraps one completed HTTP exchange.
//
// Every Milvus endpoint answers with the envelope
//
//	{"code": 0, "data": ..., "cost": 0}
//
// where code 0 means success and anything else is an application error
// defined by the server. A Response is returned for every status code; the
// raw body is always available through Body, and JSON lookups return nil when
// the body is not valid JSON.
type Response struct {
	operation  OperationName
	statusCode int
	header     http.Header
	raw        []byte
	parsed     any
	parseErr   error
}

// NewResponse parses raw into a Response. Numbers are decoded as
// json.Number so 64-bit IDs keep full precision.
func NewResponse(operation OperationName, statusCode int, header http.Header, raw []byte) *Response {
	r := &Response{
		operation:  operation,
		statusCode: statusCode,
		header:     header,
		raw:        raw,
	}
	r.parsed, r.parseErr = parseJSON(raw)
	return r
}

func parseJSON(raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.New("empty body")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode body: trailing data after JSON value")
	}
	return v, nil
}

// Operation returns the operation that produced the response.
func (r *Response) Operation() OperationName { return r.operation }

// Status returns the HTTP status code.
func (r *Response) Status() int { return r.statusCode }

// Headers returns the HTTP response headers.
func (r *Response) Headers() http.Header { return r.header }

// Body returns the raw payload, whatever it contains.
func (r *Response) Body() string { return string(r.raw) }

// Bytes returns the raw payload.
func (r *Response) Bytes() []byte { return r.raw }

// Valid reports whether the body parsed as JSON.
func (r *Response) Valid() bool { return r.parseErr == nil }

// ParseError returns why the body could not be parsed, or nil.
func (r *Response) ParseError() error { return r.parseErr }

// Successful reports a 2xx status code.
func (r *Response) Successful() bool {
	return r.statusCode >= 200 && r.statusCode < 300
}

// JSON returns the parsed document, or the value at a dotted path.
// Segments may be joined in one string or passed separately:
//
//	resp.JSON()                    // whole document
//	resp.JSON("data.rowCount")     // nested key
//	resp.JSON("data", "rowCount")  // same lookup
//	resp.JSON("data.0.id")         // numeric segments index arrays
//
// It returns nil when the body is not JSON or the path does not resolve.
func (r *Response) JSON(path ...string) any {
	if r.parseErr != nil {
		return nil
	}
	v, _ := lookup(r.parsed, strings.Join(path, "."))
	return v
}

// Lookup is JSON with an explicit found flag, so a JSON null can be told
// apart from a missing key.
func (r *Response) Lookup(path string) (any, bool) {
	if r.parseErr != nil {
		return nil, false
	}
	return lookup(r.parsed, path)
}

func lookup(doc any, path string) (any, bool) {
	if path == "" {
		return doc, true
	}
	cur := doc
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// String returns the string at path.
func (r *Response) String(path string) (string, bool) {
	s, ok := r.JSON(path).(string)
	return s, ok
}

// Int returns the integer at path.
func (r *Response) Int(path string) (int64, bool) {
	n, ok := r.JSON(path).(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

// Float returns the number at path as float64.
func (r *Response) Float(path string) (float64, bool) {
	n, ok := r.JSON(path).(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// Bool returns the boolean at path.
func (r *Response) Bool(path string) (bool, bool) {
	b, ok := r.JSON(path).(bool)
	return b, ok
}

// Decode unmarshals the value at path into out. An empty path decodes the
// whole document.
//
//	var desc struct {
//	    CollectionName string `json:"collectionName"`
//	    ShardsNum      int    `json:"shardsNum"`
//	}
//	err := resp.Decode("data", &desc)
func (r *Response) Decode(path string, out any) error {
	if r.parseErr != nil {
		return fmt.Errorf("milvus: %s: %w", r.operation, r.parseErr)
	}
	v, ok := lookup(r.parsed, path)
	if !ok {
		return fmt.Errorf("%w: %q", ErrPathNotFound, path)
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("re-encode %q: %w", path, err)
	}
	if err := json.Unmarshal(buf, out); err != nil {
		return fmt.Errorf("decode %q: %w", path, err)
	}
	return nil
}

// Code returns the envelope code when present.
func (r *Response) Code() (int64, bool) { return r.Int("code") }

// Message returns the envelope error message, if any.
func (r *Response) Message() string {
	msg, _ := r.String("message")
	return msg
}

// Data returns the envelope payload.
func (r *Response) Data() any { return r.JSON("data") }

// Cost returns the optional envelope cost.
func (r *Response) Cost() (int64, bool) { return r.Int("cost") }

// OK reports an envelope with code 0.
func (r *Response) OK() bool {
	code, ok := r.Code()
	return ok && code == 0
}

// Err returns an *APIError when the envelope carries a non-zero code and
// nil otherwise. A body without an envelope yields nil; check Valid and
// Status for those cases.
func (r *Response) Err() error {
	code, ok := r.Code()
	if !ok || code == 0 {
		return nil
	}
	return &APIError{Operation: r.operation, Code: code, Message: r.Message()}
}
