package tszclient

import (
	"errors"
	"fmt"
)

// ErrorCode is a namespaced error code carried by ClientError.
type ErrorCode string

const (
	// ErrConfigInvalid indicates the client was constructed with an
	// invalid configuration. Never reaches the network.
	ErrConfigInvalid ErrorCode = "TSZ_CONFIG_INVALID"

	// ErrTransportFailed indicates a network-level failure (connection
	// refused, DNS failure) before an HTTP status was received.
	ErrTransportFailed ErrorCode = "TSZ_TRANSPORT_FAILED"

	// ErrTransportTimeout indicates the request exceeded the configured
	// timeout or the caller's context deadline.
	ErrTransportTimeout ErrorCode = "TSZ_TRANSPORT_TIMEOUT"

	// ErrEncodeFailed indicates the request body could not be
	// serialized to JSON.
	ErrEncodeFailed ErrorCode = "TSZ_REQUEST_ENCODE_FAILED"

	// ErrDecodeFailed indicates a 2xx response body could not be
	// interpreted as the expected JSON object shape.
	ErrDecodeFailed ErrorCode = "TSZ_DECODE_FAILED"
)

// ClientError is a structured error with a code, message, retryability
// hint, and optional cause. It covers every failure class except
// non-2xx gateway responses, which are reported as *APIError so the raw
// status and body stay available to callers.
type ClientError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface.
// Format: "[CODE] message" or "[CODE] message: cause" if a cause exists.
func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/errors.As chains.
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches another ClientError by code.
func (e *ClientError) Is(target error) bool {
	var clientErr *ClientError
	if errors.As(target, &clientErr) {
		return e.Code == clientErr.Code
	}
	return false
}

// NewConfigError creates a construction-time configuration error.
func NewConfigError(message string) *ClientError {
	return &ClientError{Code: ErrConfigInvalid, Message: message}
}

// NewTransportError creates a retryable error for network failures.
func NewTransportError(message string, cause error) *ClientError {
	return &ClientError{
		Code:      ErrTransportFailed,
		Message:   message,
		Retryable: true,
		Cause:     cause,
	}
}

// NewTimeoutError creates a retryable error for timeout failures.
func NewTimeoutError(message string, cause error) *ClientError {
	return &ClientError{
		Code:      ErrTransportTimeout,
		Message:   message,
		Retryable: true,
		Cause:     cause,
	}
}

// NewDecodeError creates an error for malformed gateway responses.
func NewDecodeError(message string, cause error) *ClientError {
	return &ClientError{
		Code:    ErrDecodeFailed,
		Message: message,
		Cause:   cause,
	}
}

// NewEncodeError creates an error for request serialization failures.
func NewEncodeError(message string, cause error) *ClientError {
	return &ClientError{
		Code:    ErrEncodeFailed,
		Message: message,
		Cause:   cause,
	}
}

// APIError is an HTTP/API level error returned by the gateway: the
// service was reachable but responded with a non-2xx status. Body holds
// the exact response bytes; the client never parses them, so gateway
// diagnostic detail is preserved for the caller.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("tsz api error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("tsz api error: status=%d body=%s", e.StatusCode, string(e.Body))
}

// IsRetryable reports whether an error is transient and may succeed on
// retry. The client itself never retries; this is a hint for caller-side
// retry policy.
func IsRetryable(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Retryable
	}
	// Gateway responses and unknown errors are not retried blindly.
	return false
}
