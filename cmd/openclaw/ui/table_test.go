package ui

import (
	"strings"
	"testing"
)

func TestSimpleTable_View(t *testing.T) {
	table := NewSimpleTable("Patterns", []string{"Pattern", "Citizen"})
	table.AddRow("budget|φ-budget", "PhiBudgetGuardian")
	table.AddRow("rollback|undo", "RollbackGuardian")

	out := table.View(NewStyles(LightTheme()))

	for _, want := range []string{"Patterns", "Pattern", "Citizen", "PhiBudgetGuardian", "RollbackGuardian"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestSimpleTable_EmptyRowsRendersNothing(t *testing.T) {
	table := NewSimpleTable("Empty", []string{"A"})
	if out := table.View(NewStyles(LightTheme())); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestPanel_View(t *testing.T) {
	panel := NewPanel("Info", "line one", "line two")
	out := panel.View(NewStyles(DarkTheme()))

	for _, want := range []string{"Info", "line one", "line two"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel output missing %q", want)
		}
	}
}

func TestDetectTheme_EnvOverride(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("OPENCLAW_DARK_MODE", "1")
	if !DetectTheme().IsDark {
		t.Error("OPENCLAW_DARK_MODE=1 should select the dark theme")
	}

	t.Setenv("OPENCLAW_DARK_MODE", "")
	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Error("dark COLORFGBG background should select the dark theme")
	}
}
