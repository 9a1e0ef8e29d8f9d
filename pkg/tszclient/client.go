package tszclient

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const defaultTimeout = 60 * time.Second

// Config holds client configuration for talking to a TSZ gateway.
//
// BaseURL should point to the TSZ HTTP endpoint, for example:
//   - http://localhost:8080
//   - https://tsz-gateway.your-company.com
//
// A missing scheme defaults to http:// and a trailing slash is
// stripped, so "localhost:8080" and "http://localhost:8080/" address
// the same gateway.
type Config struct {
	// BaseURL is the gateway endpoint. Required.
	BaseURL string

	// APIKey is the optional admin API key, sent as X-ADMIN-KEY.
	// Required only for management API calls.
	APIKey string

	// HTTPClient is an optional reusable HTTP client (connection
	// pooling, proxies, custom timeouts). When nil, a transient client
	// with Timeout is created per call and released afterwards; the
	// package holds no hidden global connection state.
	HTTPClient *http.Client

	// Timeout bounds each round trip when no HTTPClient is injected.
	// Defaults to 60s. Timeout expiry surfaces as a transport error,
	// never as a silent empty response.
	Timeout time.Duration

	// TracerProvider enables OpenTelemetry spans around each round
	// trip. When nil, a no-op provider is used and tracing has zero
	// overhead.
	TracerProvider trace.TracerProvider
}

// Client is a lightweight TSZ API client. It is immutable after New,
// holds no per-call state, and is safe for concurrent use provided any
// injected HTTP client is.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	tracer     trace.Tracer
}

// New creates a TSZ client, validating the configuration eagerly: an
// empty BaseURL fails here rather than on first use.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, NewConfigError("BaseURL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = noop.NewTracerProvider()
	}

	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
		timeout:    timeout,
		tracer:     tp.Tracer("github.com/zero-day-ai/tsz/pkg/tszclient"),
	}, nil
}

// BaseURL returns the normalized gateway endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Detect calls the /detect endpoint. Optional headers (for example
// HeaderRID) are attached to the request; pass nil when none are
// needed. The client does not interpret the Blocked decision.
func (c *Client) Detect(ctx context.Context, req DetectRequest, headers map[string]string) (*DetectResponse, error) {
	raw, err := c.postJSON(ctx, "/detect", req.ToPayload(), headers)
	if err != nil {
		return nil, err
	}
	return decodeDetectResponse(raw)
}

// DetectOption configures a DetectText call.
type DetectOption func(*detectCall)

type detectCall struct {
	req     DetectRequest
	headers map[string]string
}

// WithRID sets the correlation identifier on the request.
func WithRID(rid string) DetectOption {
	return func(c *detectCall) {
		c.req.RID = rid
	}
}

// WithExpectedFormat sets the expected-format hint on the request.
func WithExpectedFormat(format string) DetectOption {
	return func(c *detectCall) {
		c.req.ExpectedFormat = format
	}
}

// WithGuardrails appends one or more guardrail identifiers to the
// request.
//
// Example:
//
//	resp, err := client.DetectText(
//	    ctx,
//	    "Contact me at john@example.com",
//	    tszclient.WithGuardrails("TOXIC_LANGUAGE", "FINANCIAL_DATA"),
//	)
func WithGuardrails(guardrails ...string) DetectOption {
	return func(c *detectCall) {
		c.req.Guardrails = append(c.req.Guardrails, guardrails...)
	}
}

// WithHeader attaches an extra header to the call.
func WithHeader(key, value string) DetectOption {
	return func(c *detectCall) {
		if c.headers == nil {
			c.headers = make(map[string]string)
		}
		c.headers[key] = value
	}
}

// WithHeaders attaches extra headers to the call.
func WithHeaders(headers map[string]string) DetectOption {
	return func(c *detectCall) {
		if c.headers == nil {
			c.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// DetectText is a convenience wrapper around Detect for plain text:
// it builds a DetectRequest, applies the options, and delegates. Pure
// sugar, no additional semantics.
func (c *Client) DetectText(ctx context.Context, text string, opts ...DetectOption) (*DetectResponse, error) {
	call := detectCall{req: DetectRequest{Text: text}}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&call)
	}
	return c.Detect(ctx, call.req, call.headers)
}

// ChatCompletions calls the OpenAI-compatible LLM gateway
// (/v1/chat/completions) exposed by TSZ.
//
// The response is returned as a generic JSON object because the chat
// schema is owned by the upstream provider, not this client. Optional
// headers control gateway behaviour, for example:
//   - X-TSZ-RID
//   - X-TSZ-Guardrails
func (c *Client) ChatCompletions(ctx context.Context, req ChatCompletionRequest, headers map[string]string) (ChatCompletionResponse, error) {
	raw, err := c.postJSON(ctx, "/v1/chat/completions", req.ToPayload(), headers)
	if err != nil {
		return nil, err
	}
	obj, err := decodeJSONObject(raw)
	if err != nil {
		return nil, err
	}
	return ChatCompletionResponse(obj), nil
}
