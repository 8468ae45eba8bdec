package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"openclaw/cmd/openclaw/ui"
	"openclaw/internal/logging"
	"openclaw/internal/spec"
)

var (
	validateHash   bool
	validateLevel  string
	validateStrict bool
)

// validateCmd checks canonical spec files for compliance
var validateCmd = &cobra.Command{
	Use:   "validate [spec-file]",
	Short: "Validate canonical specification compliance",
	Long: `Validates a canonical JSON-LD specification file.

L1 checks the JSON-LD envelope (@context, @type, source); L2 additionally
checks the normalizer payload (citizen, confidence range, tool identifiers,
parameters). Findings are warnings unless --strict is set, in which case any
finding fails validation.

Examples:
  openclaw validate spec.json
  openclaw validate spec.json --hash --level L2 --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateHash, "hash", false, "Calculate the IntentHash of the spec")
	validateCmd.Flags().StringVar(&validateLevel, "level", spec.LevelL1, "Validation level: L1 or L2")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat findings as failures")
}

func runValidate(cmd *cobra.Command, args []string) error {
	specFile := args[0]

	doc, err := os.ReadFile(specFile)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", specFile)
		}
		return fmt.Errorf("failed to read spec file: %w", err)
	}

	validator := spec.NewValidator(validateLevel, validateStrict)
	findings, err := validator.Validate(doc)
	if err != nil {
		return err
	}
	logging.Validate("validated %s: level=%s strict=%v findings=%d",
		specFile, validator.Level(), validator.Strict(), len(findings))

	lines := []string{
		fmt.Sprintf("Level: %s", validator.Level()),
		fmt.Sprintf("Strict: %v", validator.Strict()),
	}
	if len(findings) == 0 {
		lines = append([]string{styles.Success.Render("✓") + " Valid JSON-LD specification"}, lines...)
	} else {
		header := fmt.Sprintf("%s %d finding(s)", styles.Warning.Render("⚠"), len(findings))
		if validator.Failed(findings) {
			header = fmt.Sprintf("%s %d finding(s)", styles.Error.Render("✗"), len(findings))
		}
		lines = append([]string{header}, lines...)
		for _, f := range findings {
			lines = append(lines, "  - "+f.String())
		}
	}
	fmt.Print(ui.NewPanel("Validation Result", lines...).View(styles))

	if validateHash {
		hash, err := spec.IntentHash(doc)
		if err != nil {
			return err
		}
		logger.Debug("Computed IntentHash", zap.String("hash", hash))
		fmt.Printf("IntentHash: %s\n", hash)
	}

	if validator.Failed(findings) {
		return fmt.Errorf("spec failed %s validation with %d finding(s)", validator.Level(), len(findings))
	}
	return nil
}
