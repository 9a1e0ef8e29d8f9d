package tszclient

import (
	"encoding/json"
)

// decodeDetectResponse turns raw gateway bytes into a DetectResponse.
//
// The gateway's payload is heterogeneous and partially optional, so
// every field is read independently and defensively: absent collections
// decode to empty containers, absent booleans to false, absent nullable
// strings to nil, and a malformed array element never aborts the whole
// decode. Only a body that is not a JSON object is an error.
func decodeDetectResponse(raw []byte) (*DetectResponse, error) {
	fields, err := rawObject(raw)
	if err != nil {
		return nil, err
	}

	resp := &DetectResponse{
		RedactedText:      rawStringPtr(fields, "redacted_text"),
		Detections:        decodeDetections(rawArray(fields, "detections")),
		ValidatorResults:  decodeValidators(rawArray(fields, "validator_results")),
		Breakdown:         decodeBreakdown(fields["breakdown"]),
		Blocked:           rawBool(fields, "blocked"),
		ContainsPII:       rawBool(fields, "contains_pii"),
		OverallConfidence: rawScore(fields, "overall_confidence"),
		Message:           rawStringPtr(fields, "message"),
	}
	return resp, nil
}

// decodeJSONObject parses raw bytes into a generic JSON object,
// reporting a decode error for non-JSON bodies and for valid JSON whose
// top level is not an object. Used for the chat completion passthrough.
func decodeJSONObject(raw []byte) (map[string]any, error) {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, NewDecodeError("failed to decode response body", err)
	}
	obj, ok := data.(map[string]any)
	if !ok {
		return nil, NewDecodeError("expected JSON object in response body", nil)
	}
	return obj, nil
}

func decodeDetections(elems []json.RawMessage) []DetectionResult {
	detections := make([]DetectionResult, 0, len(elems))
	for _, elem := range elems {
		fields, err := rawObject(elem)
		if err != nil {
			// Malformed entry: keep a zero-valued result rather than
			// dropping information about how many entries the gateway
			// reported.
			detections = append(detections, DetectionResult{})
			continue
		}
		detections = append(detections, DetectionResult{
			Type:                  rawString(fields, "type"),
			Value:                 rawString(fields, "value"),
			Placeholder:           rawString(fields, "placeholder"),
			Start:                 rawInt(fields, "start"),
			End:                   rawInt(fields, "end"),
			ConfidenceScore:       rawScore(fields, "confidence_score"),
			ConfidenceExplanation: rawAnyMap(fields, "confidence_explanation"),
		})
	}
	return detections
}

func decodeValidators(elems []json.RawMessage) []ValidatorResult {
	validators := make([]ValidatorResult, 0, len(elems))
	for _, elem := range elems {
		fields, err := rawObject(elem)
		if err != nil {
			validators = append(validators, ValidatorResult{})
			continue
		}
		validators = append(validators, ValidatorResult{
			Name:            rawString(fields, "name"),
			Type:            rawString(fields, "type"),
			Passed:          rawBool(fields, "passed"),
			ConfidenceScore: rawScore(fields, "confidence_score"),
		})
	}
	return validators
}

// decodeBreakdown tolerates counts sent as numbers or numeric strings;
// an unparsable count decodes as 0 so the type name is still reported.
func decodeBreakdown(raw json.RawMessage) map[string]int {
	breakdown := make(map[string]int)
	if len(raw) == 0 || string(raw) == "null" {
		return breakdown
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return breakdown
	}
	for name, value := range entries {
		breakdown[name] = coerceInt(value)
	}
	return breakdown
}

// --- Raw field helpers ----------------------------------------------

// rawObject parses bytes as a JSON object, keeping each field raw so
// callers can apply per-field defaults independently.
func rawObject(raw []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		if json.Valid(raw) {
			return nil, NewDecodeError("expected JSON object in response body", nil)
		}
		return nil, NewDecodeError("failed to decode response body", err)
	}
	if fields == nil {
		// A bare JSON null is valid JSON but not an object.
		return nil, NewDecodeError("expected JSON object in response body", nil)
	}
	return fields, nil
}

func rawString(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func rawStringPtr(fields map[string]json.RawMessage, key string) *string {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

func rawBool(fields map[string]json.RawMessage, key string) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}

func rawInt(fields map[string]json.RawMessage, key string) int {
	raw, ok := fields[key]
	if !ok {
		return 0
	}
	return coerceInt(raw)
}

func rawScore(fields map[string]json.RawMessage, key string) Score {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s Score
	if err := s.UnmarshalJSON(raw); err != nil {
		return ""
	}
	return s
}

func rawArray(fields map[string]json.RawMessage, key string) []json.RawMessage {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}
	return elems
}

func rawAnyMap(fields map[string]json.RawMessage, key string) map[string]any {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

// coerceInt accepts a JSON number, a numeric string, or a float-formatted
// count and truncates to int. Anything else is 0.
func coerceInt(raw json.RawMessage) int {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		n = json.Number(s)
	}
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	if f, err := n.Float64(); err == nil {
		return int(f)
	}
	return 0
}
