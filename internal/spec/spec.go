// Package spec defines the canonical JSON-LD intent specification produced by
// the L1 normalizer, its compliance validator, and the IntentHash.
package spec

import (
	"encoding/json"
	"fmt"
)

// JSON-LD envelope constants for canonical intent documents.
const (
	Context = "https://openclaw.dev/schema/v1"
	Type    = "CanonicalIntent"
	LayerL1 = "L1"
)

// CanonicalSpec is the normalized, structured representation of a raw intent.
type CanonicalSpec struct {
	Context    string            `json:"@context"`
	Type       string            `json:"@type"`
	Layer      string            `json:"layer"`
	Citizen    string            `json:"citizen"`
	Tools      []string          `json:"tools"`
	Parameters map[string]string `json:"parameters"`
	Source     string            `json:"source"`
}

// New returns a canonical spec for the given citizen with the L1 envelope
// filled in. Parameters is never nil so documents round-trip as objects.
func New(citizen, source string, tools []string) *CanonicalSpec {
	return &CanonicalSpec{
		Context:    Context,
		Type:       Type,
		Layer:      LayerL1,
		Citizen:    citizen,
		Tools:      tools,
		Parameters: make(map[string]string),
		Source:     source,
	}
}

// Marshal renders the spec as pretty-printed JSON.
func (s *CanonicalSpec) Marshal() (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal canonical spec: %w", err)
	}
	return string(data), nil
}
