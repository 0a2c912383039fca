package milvus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Params are the typed arguments of one call, keyed by wire field name.
//
// A key is absent when it is missing or its value is nil (including a nil
// pointer, slice or map). Absent keys never reach the wire. Every other
// value is sent as is: "", false, 0 and empty non-nil slices are preserved.
type Params map[string]any

// Field is one serialized body entry.
type Field struct {
	Key   string
	Value any
}

// Request is an immutable description of one API call.
type Request struct {
	Operation OperationName
	Method    string
	Path      string
	Headers   map[string]string

	body []Field
}

// NewRequest builds the request for the named operation.
//
// Keys not declared by the operation are rejected with ErrUnknownField and
// absent required keys with ErrMissingField. The body keeps the declared
// field order of the operation.
//
// Example:
//
//	req, err := milvus.NewRequest(milvus.OpDropCollection, milvus.Params{
//	    "collectionName": "docs",
//	    "dbName":         (*string)(nil), // absent, not sent
//	})
func NewRequest(name OperationName, params Params) (*Request, error) {
	op, ok := LookupOperation(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op.Build(params)
}

// Build turns params into a Request for op.
func (op Operation) Build(params Params) (*Request, error) {
	if unknown := op.unknownFields(params); len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s does not accept %s", ErrUnknownField, op.Name, strings.Join(unknown, ", "))
	}

	var missing []string
	for _, key := range op.Required {
		if isAbsent(params[key]) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s requires %s", ErrMissingField, op.Name, strings.Join(missing, ", "))
	}

	body := make([]Field, 0, len(op.Fields))
	for _, key := range op.Fields {
		value, ok := params[key]
		if !ok || isAbsent(value) {
			continue
		}
		body = append(body, Field{Key: key, Value: value})
	}

	return &Request{
		Operation: op.Name,
		Method:    op.Method,
		Path:      op.Path,
		Headers:   map[string]string{},
		body:      body,
	}, nil
}

func (op Operation) unknownFields(params Params) []string {
	var unknown []string
	for _, key := range slices.Sorted(maps.Keys(params)) {
		if !slices.Contains(op.Fields, key) {
			unknown = append(unknown, key)
		}
	}
	return unknown
}

// WithHeader returns a copy of the request carrying an extra header.
// Milvus honours e.g. "Request-Timeout" per call.
func (r *Request) WithHeader(key, value string) *Request {
	out := *r
	out.Headers = maps.Clone(r.Headers)
	if out.Headers == nil {
		out.Headers = map[string]string{}
	}
	out.Headers[key] = value
	out.body = slices.Clone(r.body)
	return &out
}

// Body returns the pruned body fields in wire order.
func (r *Request) Body() []Field {
	return slices.Clone(r.body)
}

// Value returns the body value for key and whether it is present.
func (r *Request) Value(key string) (any, bool) {
	for _, f := range r.body {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Encode serializes the body as a JSON object. An empty body encodes as {}.
func (r *Request) Encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.body {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeJSON(f.Key)
		if err != nil {
			return nil, fmt.Errorf("encode key %q: %w", f.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := encodeJSON(f.Value)
		if err != nil {
			return nil, fmt.Errorf("encode field %q: %w", f.Key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (r *Request) MarshalJSON() ([]byte, error) {
	return r.Encode()
}

// encodeJSON marshals v without HTML escaping so filter expressions such as
// "age > 5" stay readable on the wire.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// isAbsent reports whether v stands for "not supplied".
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
