package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"openclaw/cmd/openclaw/ui"
	"openclaw/internal/normalizer"
)

var styles = ui.NewStyles(ui.DetectTheme())

// writeSingle renders one suggestion in the requested format and sends it to
// stdout or the --output file.
func writeSingle(s *normalizer.Suggestion, format, outputPath string) error {
	var payload string
	var err error

	switch format {
	case "json":
		payload, err = s.MarshalIndent()
	case "jsonl":
		payload, err = s.MarshalLine()
	default:
		payload, err = renderSuggestionText(s)
	}
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(payload+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("Saved to %s", outputPath)))
		return nil
	}
	fmt.Println(payload)
	return nil
}

// writeBatch renders batch results. Text format is a summary; json is a
// pretty-printed array; jsonl is one record per line.
func writeBatch(results []*normalizer.Suggestion, format, outputPath string) error {
	var payload string

	switch format {
	case "jsonl":
		lines := make([]string, 0, len(results))
		for _, s := range results {
			line, err := s.MarshalLine()
			if err != nil {
				return err
			}
			lines = append(lines, line)
		}
		payload = strings.Join(lines, "\n")
	case "json":
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		payload = string(data)
	default:
		payload = fmt.Sprintf("Processed %d intents", len(results))
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(payload+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("Saved %d results to %s", len(results), outputPath)))
		return nil
	}
	fmt.Println(payload)
	return nil
}

// renderSuggestionText is the human-readable single-result format.
func renderSuggestionText(s *normalizer.Suggestion) (string, error) {
	specJSON, err := s.CanonicalSpec.Marshal()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Raw Intent: %s\n", s.RawIntent))
	sb.WriteString(fmt.Sprintf("Method: %s\n", s.NormalizationMethod))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", s.Confidence))
	sb.WriteString(fmt.Sprintf("Tools: %s\n", strings.Join(s.ToolsRecommended, ", ")))
	sb.WriteString("Canonical Spec:\n")
	sb.WriteString(specJSON)
	return sb.String(), nil
}
