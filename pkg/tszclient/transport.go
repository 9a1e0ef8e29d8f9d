package tszclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Conventional TSZ header names observed at the gateway boundary. All
// values are opaque strings from the client's perspective.
const (
	// HeaderRID carries the caller's correlation identifier.
	HeaderRID = "X-TSZ-RID"

	// HeaderGuardrails selects guardrails for LLM gateway calls.
	HeaderGuardrails = "X-TSZ-Guardrails"

	// HeaderGuardrailsMode selects the gateway screening mode.
	HeaderGuardrailsMode = "X-TSZ-Guardrails-Mode"

	// HeaderGuardrailsOnFail selects the gateway failure behaviour.
	HeaderGuardrailsOnFail = "X-TSZ-Guardrails-OnFail"

	// HeaderAdminKey authenticates management API calls.
	HeaderAdminKey = "X-ADMIN-KEY"
)

// normalizeBaseURL inserts a default http:// scheme when none is present
// and strips any trailing slash, so repeated calls build a stable URL
// regardless of how the base was supplied.
func normalizeBaseURL(baseURL string) string {
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}
	return strings.TrimRight(baseURL, "/")
}

// postJSON POSTs a JSON body to a gateway path and returns the raw
// response bytes. Any 2xx status is success; a non-2xx status is an
// *APIError carrying the status and body verbatim; a network-level
// failure is a retryable *ClientError so callers can tell "the gateway
// rejected the request" from "the gateway was unreachable".
func (c *Client) postJSON(ctx context.Context, path string, body any, headers map[string]string) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, NewEncodeError("failed to marshal request body", err)
	}
	return c.roundTrip(ctx, http.MethodPost, path, payload, headers)
}

// getJSON GETs a gateway path and returns the raw response bytes.
func (c *Client) getJSON(ctx context.Context, path string) ([]byte, error) {
	return c.roundTrip(ctx, http.MethodGet, path, nil, nil)
}

// deleteRequest issues a DELETE against a gateway path, discarding any
// response body on success.
func (c *Client) deleteRequest(ctx context.Context, path string) error {
	_, err := c.roundTrip(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, headers map[string]string) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, spanName(method),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	raw, err := c.do(ctx, method, path, payload, headers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			span.SetAttributes(attribute.Int("http.response.status_code", apiErr.StatusCode))
		}
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return raw, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, headers map[string]string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, NewTransportError("failed to create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(HeaderAdminKey, c.apiKey)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	// When no client was injected, a transient one is scoped to this
	// call and its idle connections are released on every exit path.
	hc := c.httpClient
	if hc == nil {
		transient := &http.Client{Timeout: c.timeout}
		defer transient.CloseIdleConnections()
		hc = transient
	}

	resp, err := hc.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, NewTimeoutError("http request timed out", err)
		}
		return nil, NewTransportError("http request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewTransportError("failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Raw bytes, never parsed: the error schema belongs to the
		// gateway, and callers may want to inspect it.
		return nil, &APIError{StatusCode: resp.StatusCode, Body: respBody}
	}

	return respBody, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

func spanName(method string) string {
	switch method {
	case http.MethodGet:
		return "tszclient.get"
	case http.MethodDelete:
		return "tszclient.delete"
	default:
		return "tszclient.post"
	}
}
