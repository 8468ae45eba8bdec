package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"openclaw/internal/config"
	"openclaw/internal/kimi"
	"openclaw/internal/normalizer"
)

var (
	normalizeFile       string
	normalizeOutput     string
	normalizeFormat     string
	normalizeKimi       bool
	normalizeNoKimi     bool
	normalizeConfidence float64
)

// normalizeCmd normalizes raw intents to canonical specs
var normalizeCmd = &cobra.Command{
	Use:   "normalize [intent]",
	Short: "Normalize raw intent to canonical JSON-LD specification",
	Long: `Normalizes a raw intent through the L1 method chain and prints the
resulting suggestion.

Provide either a single intent argument or --file with newline-delimited
intents. In batch mode each line is normalized sequentially and results below
the confidence threshold are excluded.

Examples:
  openclaw normalize "surveille le budget phi"
  openclaw normalize --file intents.txt --format json
  openclaw normalize --file intents.txt --format jsonl --confidence 0.9`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeFile, "file", "f", "", "Input file with newline-delimited intents")
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "output", "o", "", "Write output to file instead of stdout")
	normalizeCmd.Flags().StringVar(&normalizeFormat, "format", "text", "Output format: text, json, or jsonl")
	normalizeCmd.Flags().BoolVar(&normalizeKimi, "kimi", true, "Enable Kimi K2.5 local delegation")
	normalizeCmd.Flags().BoolVar(&normalizeNoKimi, "no-kimi", false, "Disable Kimi K2.5 local delegation")
	normalizeCmd.Flags().Float64Var(&normalizeConfidence, "confidence", 0.0, "Minimum confidence for batch results")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	intent := ""
	if len(args) == 1 {
		intent = args[0]
	}

	// Exactly one input source
	if intent == "" && normalizeFile == "" {
		return fmt.Errorf("provide either an intent argument or --file")
	}
	if intent != "" && normalizeFile != "" {
		return fmt.Errorf("provide an intent argument or --file, not both")
	}

	switch normalizeFormat {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("unknown format %q (expected text, json, or jsonl)", normalizeFormat)
	}

	cfg, err := config.Load(config.Path(workspace))
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	minConfidence := cfg.Normalizer.MinConfidence
	if cmd.Flags().Changed("confidence") {
		minConfidence = normalizeConfidence
	}

	norm := normalizer.New(kimiClientFromConfig(cfg))

	baseCtx := cmd.Context()
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, cancel := context.WithTimeout(baseCtx, timeout)
	defer cancel()

	if intent != "" {
		logger.Debug("Normalizing single intent", zap.String("intent", intent))
		suggestion, err := norm.Normalize(ctx, intent)
		if err != nil {
			return err
		}
		return writeSingle(suggestion, normalizeFormat, normalizeOutput)
	}

	return normalizeBatch(ctx, norm.Normalize, minConfidence)
}

// normalizeFunc normalizes one raw intent.
type normalizeFunc func(ctx context.Context, raw string) (*normalizer.Suggestion, error)

// kimiClientFromConfig resolves the effective Kimi client: nil when disabled
// by flag or config. The return type is the interface so a disabled client is
// a true nil, not a typed nil pointer.
func kimiClientFromConfig(cfg *config.Config) normalizer.KimiClient {
	enabled := cfg.Kimi.Enabled && normalizeKimi && !normalizeNoKimi
	if !enabled {
		return nil
	}
	return kimi.NewClient(cfg.Kimi.Endpoint)
}

// normalizeBatch processes a file of newline-delimited intents sequentially.
// Blank lines are skipped; failing lines are counted and reported on stderr
// but do not stop the batch or change the exit status.
func normalizeBatch(ctx context.Context, normalize normalizeFunc, minConfidence float64) error {
	f, err := os.Open(normalizeFile)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", normalizeFile)
		}
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	// Empty batches still serialize as an empty collection, not null.
	results := make([]*normalizer.Suggestion, 0)
	var (
		lineNo   int
		total    int
		failed   int
		filtered int
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		total++

		suggestion, err := normalize(ctx, line)
		if err != nil {
			failed++
			logger.Warn("Intent failed to normalize", zap.Int("line", lineNo), zap.Error(err))
			continue
		}
		if suggestion.Confidence < minConfidence {
			filtered++
			continue
		}
		results = append(results, suggestion)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	logger.Info("Batch complete",
		zap.Int("intents", total),
		zap.Int("results", len(results)),
		zap.Int("filtered", filtered),
		zap.Int("failed", failed))

	if err := writeBatch(results, normalizeFormat, normalizeOutput); err != nil {
		return err
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d intents failed to normalize\n", failed, total)
	}
	return nil
}
