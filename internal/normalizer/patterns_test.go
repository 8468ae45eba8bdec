package normalizer

import (
	"testing"
)

func TestBuiltinPatterns_Table(t *testing.T) {
	tests := []struct {
		name        string
		intent      string
		wantCitizen string
		wantConf    float64
	}{
		{"Budget", "surveille le budget phi", "PhiBudgetGuardian", 0.91},
		{"PhiBudget", "check the φ-budget drift guard", "PhiBudgetGuardian", 0.91},
		{"Heartbeat", "monitor heartbeat of the system", "EconomicHeartbeat", 0.89},
		{"Drift", "detect drift in the economy", "EconomicHeartbeat", 0.89},
		{"SemanticAnchor", "pin a semantic anchor here", "SemanticAnchorCitizen", 0.93},
		{"Rollback", "rollback the last change", "RollbackGuardian", 0.87},
		{"Undo", "please UNDO everything", "RollbackGuardian", 0.87},
		{"Consensus", "run a consensus round", "ConsensusEngine", 0.85},
		{"Vote", "collect the vote results", "ConsensusEngine", 0.85},
	}

	patterns := BuiltinPatterns()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, ok := matchBest(patterns, tt.intent)
			if !ok {
				t.Fatalf("no pattern matched %q", tt.intent)
			}
			if p.Citizen != tt.wantCitizen {
				t.Errorf("citizen = %q, want %q", p.Citizen, tt.wantCitizen)
			}
			if p.Confidence != tt.wantConf {
				t.Errorf("confidence = %v, want %v", p.Confidence, tt.wantConf)
			}
		})
	}
}

func TestMatchBest_HighestConfidenceWins(t *testing.T) {
	// "semantic" (0.93) and "budget" (0.91) both fire; semantic wins.
	p, _, ok := matchBest(BuiltinPatterns(), "semantic budget check")
	if !ok {
		t.Fatal("expected a match")
	}
	if p.Citizen != "SemanticAnchorCitizen" {
		t.Errorf("citizen = %q, want SemanticAnchorCitizen", p.Citizen)
	}
}

func TestMatchBest_NoMatch(t *testing.T) {
	if _, _, ok := matchBest(BuiltinPatterns(), "make coffee"); ok {
		t.Error("expected no match for unrelated intent")
	}
}

func TestPattern_MatchCaseInsensitive(t *testing.T) {
	patterns := BuiltinPatterns()
	for i := range patterns {
		if patterns[i].Citizen != "RollbackGuardian" {
			continue
		}
		keyword, ok := patterns[i].Match("ROLLBACK now")
		if !ok {
			t.Fatal("expected match")
		}
		if keyword != "rollback" {
			t.Errorf("keyword = %q, want lowercase rollback", keyword)
		}
	}
}

func TestBuiltinPatterns_DisplayOrder(t *testing.T) {
	want := []string{
		"PhiBudgetGuardian",
		"EconomicHeartbeat",
		"SemanticAnchorCitizen",
		"RollbackGuardian",
		"ConsensusEngine",
	}
	patterns := BuiltinPatterns()
	if len(patterns) != len(want) {
		t.Fatalf("expected %d built-in patterns, got %d", len(want), len(patterns))
	}
	for i, citizen := range want {
		if patterns[i].Citizen != citizen {
			t.Errorf("patterns[%d].Citizen = %q, want %q", i, patterns[i].Citizen, citizen)
		}
	}
}
