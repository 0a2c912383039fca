package milvus

import (
	"errors"
	"fmt"
	"net"
)

// Client errors. Transport failures, argument errors and application errors
// travel on separate channels: the first two are Go errors returned by the
// client, the last one is carried inside a Response envelope.
var (
	// ErrTransport is returned when the HTTP exchange could not complete
	// (DNS failure, refused connection, timeout, cancelled context).
	ErrTransport = errors.New("milvus: transport error")

	// ErrInvalidArgument is returned when a method argument fails validation
	// before any request is sent.
	ErrInvalidArgument = errors.New("milvus: invalid argument")

	// ErrInvalidConfig is returned by NewClient for an unusable configuration.
	ErrInvalidConfig = errors.New("milvus: invalid config")

	// ErrUnknownOperation is returned when a request is built for an
	// operation that is not in the operation table.
	ErrUnknownOperation = errors.New("milvus: unknown operation")

	// ErrMissingField is returned when a required body field is absent.
	ErrMissingField = errors.New("milvus: missing required field")

	// ErrUnknownField is returned when a body field is not declared for the operation.
	ErrUnknownField = errors.New("milvus: unknown field")

	// ErrPathNotFound is returned by Response.Decode when the path does not resolve.
	ErrPathNotFound = errors.New("milvus: path not found in response")
)

// TransportError describes a request that never produced an HTTP response.
type TransportError struct {
	Operation OperationName
	URL       string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("milvus: %s %s: %v", e.Operation, e.URL, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// Timeout reports whether the failure was a timeout.
func (e *TransportError) Timeout() bool {
	var netErr net.Error
	if errors.As(e.Err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

// APIError is an application-level failure reported by Milvus in the
// response envelope (code != 0). The client never returns it from Send;
// callers opt in through Response.Err.
type APIError struct {
	Operation OperationName
	Code      int64
	Message   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("milvus: %s failed with code %d: %s", e.Operation, e.Code, e.Message)
}

// IsTransportError reports whether err is a connection-level failure.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsAPIError reports whether err is an application error from the envelope.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsInvalidArgument reports whether err was raised by argument validation or
// request construction.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrUnknownField) ||
		errors.Is(err, ErrUnknownOperation)
}

func invalidArgument(field string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidArgument, field, err)
}
