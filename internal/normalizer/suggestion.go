package normalizer

import (
	"encoding/json"
	"fmt"

	"openclaw/internal/spec"
)

// Normalization method labels, in chain order.
const (
	MethodPattern  = "pattern_matching"
	MethodKimi     = "kimi_k2.5"
	MethodFallback = "fallback"
)

// Suggestion is the normalizer's result record for one raw intent.
type Suggestion struct {
	ID                  string              `json:"id"`
	RawIntent           string              `json:"raw_intent"`
	NormalizationMethod string              `json:"normalization_method"`
	Confidence          float64             `json:"confidence"`
	ToolsRecommended    []string            `json:"tools_recommended"`
	CanonicalSpec       *spec.CanonicalSpec `json:"canonical_spec"`
}

// MarshalIndent pretty-prints the suggestion for --format json output.
func (s *Suggestion) MarshalIndent() (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal suggestion: %w", err)
	}
	return string(data), nil
}

// MarshalLine renders the suggestion as a single JSONL record.
func (s *Suggestion) MarshalLine() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal suggestion: %w", err)
	}
	return string(data), nil
}
