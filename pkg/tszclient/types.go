package tszclient

import (
	"encoding/json"
	"strconv"
)

// Score is a confidence score transported as an opaque string. The
// gateway formats scores server-side; preserving the exact wire token
// (whether it arrived quoted or as a bare JSON number) avoids the
// rounding and formatting drift that a float round trip would introduce.
// Callers that need numeric comparison parse on demand via Float64.
type Score string

// UnmarshalJSON accepts a JSON string, number, or null and keeps the
// token text as-is. "0.95" and 0.95 both become Score("0.95"); 95e-2
// stays Score("95e-2").
func (s *Score) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Score(str)
		return nil
	}
	*s = Score(data)
	return nil
}

// MarshalJSON always emits the score as a JSON string.
func (s Score) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// Float64 parses the score for numeric comparison. Empty scores parse
// as 0 with ok=false.
func (s Score) Float64() (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// DetectRequest is the payload for the /detect endpoint.
type DetectRequest struct {
	// Text is the content to screen. Required.
	Text string `json:"text"`

	// RID is an optional caller-supplied correlation identifier used
	// for request tracing across systems.
	RID string `json:"rid,omitempty"`

	// ExpectedFormat is an optional hint for format validators.
	ExpectedFormat string `json:"expected_format,omitempty"`

	// Guardrails names the detector/policy categories to enable.
	// When empty the field is omitted and the gateway applies its
	// default set.
	Guardrails []string `json:"guardrails,omitempty"`
}

// ToPayload builds the outbound JSON object. Optional fields are
// omitted when unset rather than sent as null or empty: the gateway
// treats "field absent" (use server defaults) differently from "field
// present but empty".
func (r DetectRequest) ToPayload() map[string]any {
	payload := map[string]any{"text": r.Text}
	if r.RID != "" {
		payload["rid"] = r.RID
	}
	if r.ExpectedFormat != "" {
		payload["expected_format"] = r.ExpectedFormat
	}
	if len(r.Guardrails) > 0 {
		payload["guardrails"] = r.Guardrails
	}
	return payload
}

// DetectionResult is a single flagged span in a detect response.
type DetectionResult struct {
	// Type is the detector type name, for example EMAIL_ADDRESS.
	Type string `json:"type"`

	// Value is the raw matched text.
	Value string `json:"value"`

	// Placeholder is the token substituted for Value in the redacted
	// output.
	Placeholder string `json:"placeholder"`

	// Start and End delimit the half-open character span [Start, End)
	// into the original text.
	Start int `json:"start"`
	End   int `json:"end"`

	// ConfidenceScore is the detector's confidence, kept as an opaque
	// string.
	ConfidenceScore Score `json:"confidence_score"`

	// ConfidenceExplanation is a free-form structure the gateway may
	// attach; the client does not interpret it.
	ConfidenceExplanation map[string]any `json:"confidence_explanation,omitempty"`
}

// ValidatorResult is the verdict of a single policy validator.
type ValidatorResult struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	Passed          bool   `json:"passed"`
	ConfidenceScore Score  `json:"confidence_score"`
}

// DetectResponse is the decoded /detect response.
type DetectResponse struct {
	// RedactedText is the input with detected spans replaced by
	// placeholders. Nil means the gateway applied no redaction, which
	// is distinct from "redacted to empty".
	RedactedText *string `json:"redacted_text"`

	// Detections lists flagged spans in gateway order.
	Detections []DetectionResult `json:"detections"`

	// ValidatorResults lists validator verdicts in gateway order.
	ValidatorResults []ValidatorResult `json:"validator_results"`

	// Breakdown maps detection-type name to occurrence count. It is
	// informational: the gateway may report types that do not appear
	// in Detections, so the counts are not assumed to match.
	Breakdown map[string]int `json:"breakdown"`

	// Blocked is the gateway's authoritative decision.
	Blocked bool `json:"blocked"`

	// ContainsPII is a narrower signal orthogonal to Blocked: a
	// response can be blocked by a non-PII validator while
	// ContainsPII stays false. The two are set independently by the
	// gateway and neither is derivable from the other.
	ContainsPII bool `json:"contains_pii"`

	// OverallConfidence is the gateway's aggregate confidence.
	OverallConfidence Score `json:"overall_confidence"`

	// Message is an optional human-readable note, populated mainly
	// (but not only) when the request was blocked.
	Message *string `json:"message,omitempty"`
}

// ChatCompletionResponse is the undecoded LLM gateway response. The
// chat schema belongs to the upstream provider, not this client, so
// only the detection contract is modeled strongly.
type ChatCompletionResponse map[string]any

// ChatCompletionRequest is a minimal OpenAI-style chat completion
// request for the gateway passthrough (/v1/chat/completions).
type ChatCompletionRequest struct {
	// Model is the upstream model identifier. Required.
	Model string `json:"model"`

	// Messages are opaque role/content mappings; the client does not
	// inspect their content.
	Messages []map[string]any `json:"messages"`

	// Stream requests a streaming response from the upstream provider.
	Stream bool `json:"stream,omitempty"`

	// Extra holds vendor-specific fields merged into the top-level
	// payload. Merged last, so a colliding key shadows the standard
	// fields: avoiding collisions with model/messages/stream is the
	// caller's responsibility.
	Extra map[string]any `json:"-"`
}

// ToPayload builds the outbound JSON object, including stream only when
// true and merging Extra last.
func (r ChatCompletionRequest) ToPayload() map[string]any {
	payload := map[string]any{
		"model":    r.Model,
		"messages": r.Messages,
	}
	if r.Stream {
		payload["stream"] = true
	}
	for k, v := range r.Extra {
		payload[k] = v
	}
	return payload
}
