package tszclient

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRequest_ToPayload_AlwaysIncludesText(t *testing.T) {
	payload := DetectRequest{Text: "hello"}.ToPayload()

	assert.Equal(t, "hello", payload["text"])
	assert.Len(t, payload, 1, "optional fields should be omitted when unset")
}

func TestDetectRequest_ToPayload_OptionalFields(t *testing.T) {
	tests := []struct {
		name     string
		req      DetectRequest
		wantKeys []string
	}{
		{
			name:     "only text",
			req:      DetectRequest{Text: "t"},
			wantKeys: []string{"text"},
		},
		{
			name:     "with rid",
			req:      DetectRequest{Text: "t", RID: "RID-1"},
			wantKeys: []string{"text", "rid"},
		},
		{
			name:     "with expected format",
			req:      DetectRequest{Text: "t", ExpectedFormat: "email"},
			wantKeys: []string{"text", "expected_format"},
		},
		{
			name:     "with guardrails",
			req:      DetectRequest{Text: "t", Guardrails: []string{"TOXIC_LANGUAGE"}},
			wantKeys: []string{"text", "guardrails"},
		},
		{
			name:     "empty guardrail slice is omitted",
			req:      DetectRequest{Text: "t", Guardrails: []string{}},
			wantKeys: []string{"text"},
		},
		{
			name: "all fields",
			req: DetectRequest{
				Text:           "t",
				RID:            "RID-1",
				ExpectedFormat: "email",
				Guardrails:     []string{"PII"},
			},
			wantKeys: []string{"text", "rid", "expected_format", "guardrails"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := tt.req.ToPayload()
			assert.Len(t, payload, len(tt.wantKeys))
			for _, key := range tt.wantKeys {
				assert.Contains(t, payload, key)
			}
		})
	}
}

func TestChatCompletionRequest_ToPayload(t *testing.T) {
	req := ChatCompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []map[string]any{
			{"role": "user", "content": "hi"},
		},
	}

	payload := req.ToPayload()
	assert.Equal(t, "gpt-4o-mini", payload["model"])
	assert.Len(t, payload, 2, "stream should be omitted when false")

	req.Stream = true
	payload = req.ToPayload()
	assert.Equal(t, true, payload["stream"])
}

func TestChatCompletionRequest_ToPayload_ExtraMergedLast(t *testing.T) {
	req := ChatCompletionRequest{
		Model:    "gpt-4o-mini",
		Messages: []map[string]any{{"role": "user", "content": "hi"}},
		Extra: map[string]any{
			"temperature": 0.2,
			"model":       "shadowed", // last-write-wins, caller's responsibility
		},
	}

	payload := req.ToPayload()
	assert.Equal(t, 0.2, payload["temperature"])
	assert.Equal(t, "shadowed", payload["model"])
}

func TestScore_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		wire string
		want Score
	}{
		{"number", `0.95`, "0.95"},
		{"quoted string", `"0.95"`, "0.95"},
		{"exponent notation preserved", `95e-2`, "95e-2"},
		{"integer", `1`, "1"},
		{"null", `null`, ""},
		{"empty string", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Score
			require.NoError(t, json.Unmarshal([]byte(tt.wire), &s))
			assert.Equal(t, tt.want, s)

			// Format stability: a second decode of the same input
			// yields the same representation.
			var again Score
			require.NoError(t, json.Unmarshal([]byte(tt.wire), &again))
			assert.Equal(t, s, again)
		})
	}
}

func TestScore_MarshalJSON_AlwaysString(t *testing.T) {
	b, err := json.Marshal(Score("0.95"))
	require.NoError(t, err)
	assert.Equal(t, `"0.95"`, string(b))
}

func TestScore_Float64(t *testing.T) {
	f, ok := Score("95e-2").Float64()
	assert.True(t, ok)
	assert.InDelta(t, 0.95, f, 1e-9)

	_, ok = Score("").Float64()
	assert.False(t, ok)

	_, ok = Score("not-a-number").Float64()
	assert.False(t, ok)
}
