package spec

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Validation levels. L1 checks the JSON-LD envelope; L2 additionally checks
// the normalizer payload fields.
const (
	LevelL1 = "L1"
	LevelL2 = "L2"
)

var toolIDPattern = regexp.MustCompile(`^C[0-9]+$`)

// Finding is a single compliance problem found in a spec document.
type Finding struct {
	Field   string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// Validator checks canonical spec documents for compliance.
// In strict mode any finding fails validation; otherwise findings are
// surfaced as warnings and only malformed JSON fails.
type Validator struct {
	level  string
	strict bool
}

// NewValidator creates a validator for the given level. Unknown levels
// degrade to L1 so a typo never silently tightens validation.
func NewValidator(level string, strict bool) *Validator {
	switch strings.ToUpper(level) {
	case LevelL1, LevelL2:
		level = strings.ToUpper(level)
	default:
		level = LevelL1
	}
	return &Validator{level: level, strict: strict}
}

// Level returns the effective validation level.
func (v *Validator) Level() string { return v.level }

// Strict returns whether findings fail validation.
func (v *Validator) Strict() bool { return v.strict }

// Validate checks a raw JSON document. The error is non-nil only when the
// document is not well-formed JSON; compliance problems come back as
// findings, and the caller decides what strictness means for exit status.
func (v *Validator) Validate(doc []byte) ([]Finding, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var findings []Finding
	findings = append(findings, v.checkEnvelope(fields)...)
	if v.level == LevelL2 {
		findings = append(findings, v.checkPayload(fields)...)
	}
	return findings, nil
}

// Failed reports whether the findings fail validation under this validator's
// strictness.
func (v *Validator) Failed(findings []Finding) bool {
	return v.strict && len(findings) > 0
}

func (v *Validator) checkEnvelope(fields map[string]json.RawMessage) []Finding {
	var findings []Finding

	if ctx, ok := stringField(fields, "@context"); !ok {
		findings = append(findings, Finding{"@context", "missing JSON-LD context"})
	} else if ctx != Context {
		findings = append(findings, Finding{"@context", fmt.Sprintf("unexpected context %q", ctx)})
	}

	if typ, ok := stringField(fields, "@type"); !ok {
		findings = append(findings, Finding{"@type", "missing JSON-LD type"})
	} else if typ != Type {
		findings = append(findings, Finding{"@type", fmt.Sprintf("expected %q, got %q", Type, typ)})
	}

	if src, ok := stringField(fields, "source"); !ok || strings.TrimSpace(src) == "" {
		findings = append(findings, Finding{"source", "missing or empty source intent"})
	}

	return findings
}

func (v *Validator) checkPayload(fields map[string]json.RawMessage) []Finding {
	var findings []Finding

	if citizen, ok := stringField(fields, "citizen"); !ok || strings.TrimSpace(citizen) == "" {
		findings = append(findings, Finding{"citizen", "missing or empty citizen"})
	}

	if layer, ok := stringField(fields, "layer"); ok && layer != LayerL1 {
		findings = append(findings, Finding{"layer", fmt.Sprintf("expected %q, got %q", LayerL1, layer)})
	}

	if raw, ok := fields["confidence"]; ok {
		var conf float64
		if err := json.Unmarshal(raw, &conf); err != nil {
			findings = append(findings, Finding{"confidence", "not a number"})
		} else if conf < 0 || conf > 1 {
			findings = append(findings, Finding{"confidence", fmt.Sprintf("out of range [0,1]: %v", conf)})
		}
	}

	if raw, ok := fields["tools"]; ok {
		var tools []string
		if err := json.Unmarshal(raw, &tools); err != nil {
			findings = append(findings, Finding{"tools", "not a string array"})
		} else {
			for _, id := range tools {
				if !toolIDPattern.MatchString(id) {
					findings = append(findings, Finding{"tools", fmt.Sprintf("malformed tool identifier %q", id)})
				}
			}
		}
	}

	if raw, ok := fields["parameters"]; ok {
		var params map[string]interface{}
		if err := json.Unmarshal(raw, &params); err != nil {
			findings = append(findings, Finding{"parameters", "not an object"})
		}
	}

	return findings
}

func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
