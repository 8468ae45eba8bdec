package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"openclaw/cmd/openclaw/ui"
	"openclaw/internal/config"
	"openclaw/internal/kimi"
	"openclaw/internal/normalizer"
)

var (
	infoPatterns bool
	infoKimi     bool
	infoVersion  bool
)

// infoCmd displays normalizer information
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display OpenClaw normalizer information",
	Long: `Displays information about the L1 normalizer.

Examples:
  openclaw info
  openclaw info --patterns
  openclaw info --kimi`,
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoPatterns, "patterns", false, "Show built-in normalization patterns")
	infoCmd.Flags().BoolVar(&infoKimi, "kimi", false, "Check Kimi K2.5 local availability")
	infoCmd.Flags().BoolVar(&infoVersion, "version", false, "Show version")
}

func runInfo(cmd *cobra.Command, args []string) error {
	if infoVersion {
		fmt.Printf("OpenClaw CLI v%s\n", config.Version)
		return nil
	}

	cfg, err := config.Load(config.Path(workspace))
	if err != nil {
		return err
	}

	switch {
	case infoPatterns:
		showPatterns()
	case infoKimi:
		checkKimi(cfg)
	default:
		showInfo()
	}
	return nil
}

// showPatterns renders the built-in pattern table.
func showPatterns() {
	table := ui.NewSimpleTable("Built-in Normalization Patterns",
		[]string{"Pattern", "Citizen", "Confidence", "Tools"})

	for _, p := range normalizer.BuiltinPatterns() {
		table.AddRow(
			p.Expression,
			p.Citizen,
			fmt.Sprintf("%.2f", p.Confidence),
			strings.Join(p.Tools, ", "),
		)
	}
	fmt.Print(table.View(styles))
}

// checkKimi performs a single health check against the local service.
func checkKimi(cfg *config.Config) {
	client := kimi.NewClient(cfg.Kimi.Endpoint)
	if client.HealthCheck(cfg.GetHealthTimeout()) {
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Kimi K2.5 local available at %s", client.Endpoint())))
		return
	}
	fmt.Println(styles.Warning.Render("⚠ Kimi K2.5 local not available"))
	fmt.Println("  Pattern matching will be used as primary method")
}

// showInfo prints the general normalizer panel.
func showInfo() {
	panel := ui.NewPanel("OpenClaw Info",
		styles.Bold.Render("OpenClaw L1 Semantic Normalizer"),
		"",
		"Layer: L1 (Semantic)",
		"Status: Stateless",
		"Methods: Pattern Matching -> Kimi K2.5 -> Fallback",
		fmt.Sprintf("Patterns: %d built-in deterministic patterns", len(normalizer.BuiltinPatterns())),
		"",
		"Use --patterns to see available patterns",
		"Use --kimi to check Kimi availability",
	)
	fmt.Print(panel.View(styles))
}
