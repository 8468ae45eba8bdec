package normalizer

import (
	"regexp"
	"strings"
)

// Pattern is one built-in deterministic normalization rule. The expression is
// an alternation of keywords matched case-insensitively against the raw
// intent.
type Pattern struct {
	Expression string
	Citizen    string
	Confidence float64
	Tools      []string

	re *regexp.Regexp
}

// BuiltinPatterns returns the five deterministic L1 patterns in their
// canonical display order.
func BuiltinPatterns() []Pattern {
	patterns := []Pattern{
		{Expression: `budget|φ-budget`, Citizen: "PhiBudgetGuardian", Confidence: 0.91, Tools: []string{"C49"}},
		{Expression: `heartbeat|drift`, Citizen: "EconomicHeartbeat", Confidence: 0.89, Tools: []string{"C51"}},
		{Expression: `semantic|anchor`, Citizen: "SemanticAnchorCitizen", Confidence: 0.93, Tools: []string{"C47"}},
		{Expression: `rollback|undo`, Citizen: "RollbackGuardian", Confidence: 0.87, Tools: []string{"C50"}},
		{Expression: `consensus|vote`, Citizen: "ConsensusEngine", Confidence: 0.85, Tools: []string{"C54"}},
	}
	for i := range patterns {
		patterns[i].re = regexp.MustCompile(`(?i)(?:` + patterns[i].Expression + `)`)
	}
	return patterns
}

// Match reports whether the pattern fires for the given intent and returns
// the keyword that triggered it.
func (p *Pattern) Match(intent string) (string, bool) {
	keyword := p.re.FindString(intent)
	if keyword == "" {
		return "", false
	}
	return strings.ToLower(keyword), true
}

// matchBest returns the highest-confidence pattern matching the intent.
func matchBest(patterns []Pattern, intent string) (*Pattern, string, bool) {
	var best *Pattern
	var bestKeyword string
	for i := range patterns {
		keyword, ok := patterns[i].Match(intent)
		if !ok {
			continue
		}
		if best == nil || patterns[i].Confidence > best.Confidence {
			best = &patterns[i]
			bestKeyword = keyword
		}
	}
	return best, bestKeyword, best != nil
}
