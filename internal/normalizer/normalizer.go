// Package normalizer implements the L1 semantic intent normalizer: raw
// free-form intents in, canonical JSON-LD specifications out.
//
// The method chain is deterministic pattern matching first, then delegation
// to the Kimi K2.5 local service when one is attached, then a low-confidence
// fallback. The normalizer is stateless; every call stands alone.
package normalizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"openclaw/internal/kimi"
	"openclaw/internal/logging"
	"openclaw/internal/spec"
)

const fallbackConfidence = 0.30

// KimiClient is the slice of the local service client the normalizer needs.
type KimiClient interface {
	Normalize(ctx context.Context, intent string) (*kimi.Normalization, error)
}

// Normalizer turns raw intents into suggestions.
type Normalizer struct {
	patterns []Pattern
	kimi     KimiClient // nil when Kimi delegation is disabled
}

// New creates a normalizer. Pass a nil client to disable Kimi delegation.
func New(client KimiClient) *Normalizer {
	return &Normalizer{
		patterns: BuiltinPatterns(),
		kimi:     client,
	}
}

// Normalize runs the method chain for one raw intent.
func (n *Normalizer) Normalize(ctx context.Context, raw string) (*Suggestion, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty intent")
	}

	if p, keyword, ok := matchBest(n.patterns, raw); ok {
		logging.Normalize("pattern %q matched intent (keyword %q)", p.Expression, keyword)
		s := spec.New(p.Citizen, raw, p.Tools)
		s.Parameters["matched_keyword"] = keyword
		return n.suggest(raw, MethodPattern, p.Confidence, p.Tools, s), nil
	}

	if n.kimi != nil {
		result, err := n.kimi.Normalize(ctx, raw)
		if err != nil {
			// No retry policy: a failing delegation falls through to
			// the fallback method.
			logging.Kimi("delegation failed, falling back: %v", err)
		} else {
			s := spec.New(result.Citizen, raw, result.Tools)
			for k, v := range result.Parameters {
				s.Parameters[k] = v
			}
			return n.suggest(raw, MethodKimi, result.Confidence, result.Tools, s), nil
		}
	}

	logging.Normalize("no pattern matched, using fallback for intent")
	s := spec.New("UnclassifiedIntent", raw, nil)
	return n.suggest(raw, MethodFallback, fallbackConfidence, nil, s), nil
}

func (n *Normalizer) suggest(raw, method string, confidence float64, tools []string, s *spec.CanonicalSpec) *Suggestion {
	return &Suggestion{
		ID:                  uuid.NewString(),
		RawIntent:           raw,
		NormalizationMethod: method,
		Confidence:          confidence,
		ToolsRecommended:    tools,
		CanonicalSpec:       s,
	}
}
