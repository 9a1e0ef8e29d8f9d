package tszclient

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientError_Error(t *testing.T) {
	err := NewConfigError("BaseURL is required")
	assert.Equal(t, "[TSZ_CONFIG_INVALID] BaseURL is required", err.Error())

	cause := fmt.Errorf("dial tcp: connection refused")
	err = NewTransportError("http request failed", cause)
	assert.Equal(t, "[TSZ_TRANSPORT_FAILED] http request failed: dial tcp: connection refused", err.Error())
}

func TestClientError_UnwrapAndIs(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := NewDecodeError("failed to decode response body", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, &ClientError{Code: ErrDecodeFailed}), "matches by code")
	assert.False(t, errors.Is(err, &ClientError{Code: ErrTransportFailed}))
}

func TestClientError_AsFromWrappedChain(t *testing.T) {
	inner := NewTimeoutError("http request timed out", nil)
	wrapped := fmt.Errorf("detect failed: %w", inner)

	var clientErr *ClientError
	require.True(t, errors.As(wrapped, &clientErr))
	assert.Equal(t, ErrTransportTimeout, clientErr.Code)
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 429, Body: []byte(`{"error":"rate limited"}`)}
	assert.Equal(t, `tsz api error: status=429 body={"error":"rate limited"}`, err.Error())

	err = &APIError{StatusCode: 503}
	assert.Equal(t, "tsz api error: status=503", err.Error())
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"transport failure", NewTransportError("down", nil), true},
		{"timeout", NewTimeoutError("slow", nil), true},
		{"config error", NewConfigError("bad"), false},
		{"decode error", NewDecodeError("bad body", nil), false},
		{"encode error", NewEncodeError("bad req", nil), false},
		{"api error", &APIError{StatusCode: 500}, false},
		{"plain error", fmt.Errorf("boom"), false},
		{"wrapped transport failure", fmt.Errorf("wrap: %w", NewTransportError("down", nil)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
