// Package tszclient is a lightweight Go client for a TSZ text-safety
// gateway.
//
// The gateway screens arbitrary text for PII, prompt-injection attempts,
// and other guardrail violations, and can proxy OpenAI-compatible chat
// completion calls through the same safety layer. This package owns the
// wire contract for the /detect endpoint and exposes the LLM gateway
// passthrough; it deliberately does not implement detection, redaction,
// retries, or streaming.
//
// # Usage
//
//	client, err := tszclient.New(tszclient.Config{
//		BaseURL: "http://localhost:8080",
//	})
//	if err != nil {
//		// invalid configuration
//	}
//
//	resp, err := client.DetectText(ctx, "Contact me at john@example.com",
//		tszclient.WithGuardrails("TOXIC_LANGUAGE"),
//	)
//
// # Error handling
//
// Every failure surfaces as one of four distinguishable classes:
//
//   - configuration errors (*ClientError, code TSZ_CONFIG_INVALID) at
//     construction time
//   - transport errors (*ClientError, codes TSZ_TRANSPORT_FAILED and
//     TSZ_TRANSPORT_TIMEOUT) when the gateway is unreachable
//   - *APIError when the gateway responds with a non-2xx status; the
//     raw status and body are preserved verbatim
//   - decode errors (*ClientError, code TSZ_DECODE_FAILED) when a 2xx
//     body is not the expected JSON object shape
//
// A successful decode with Blocked=true is not an error: "blocked by
// policy" and "request failed" are orthogonal outcomes.
package tszclient
