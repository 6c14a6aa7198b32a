package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"asrbench/internal/fileutil"
	"asrbench/internal/logging"
	"asrbench/internal/scoring"
)

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var (
		refStart   int
		refEnd     int
		hypStart   int
		hypEnd     int
		ignore     []string
		langFlag   string
		jsonOutput bool
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "score <reference-file> <hypothesis-file>",
		Short: "Score one hypothesis transcript against a reference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			reference, err := fileutil.ReadText(args[0])
			if err != nil {
				return err
			}
			hypothesis, err := fileutil.ReadText(args[1])
			if err != nil {
				return err
			}

			opts := scoring.Options{
				RefStart:              optionalIndex(refStart),
				RefEnd:                optionalIndex(refEnd),
				HypStart:              optionalIndex(hypStart),
				HypEnd:                optionalIndex(hypEnd),
				IgnoredInsertionWords: mergeIgnoreWords(cfg.Scoring.IgnoredInsertionWords, ignore),
				Language:              resolveLanguage(langFlag, cfg.Scoring.Language),
				Limits:                cfg.Limits(),
			}

			runCtx := logging.WithRunID(cmd.Context(), uuid.NewString())
			logger := logging.WithContext(runCtx, logging.NewComponentLogger(ctx.ensureLogger(), "score"))
			logger.Debug("scoring transcript",
				logging.String("reference", args[0]),
				logging.String("hypothesis", args[1]),
				logging.String(logging.FieldLanguage, opts.Language))

			result := scoring.Calculate(reference, hypothesis, opts)

			strategy := "linear"
			if result.Itemized() {
				strategy = "detailed"
			}
			logger.Debug("scoring complete",
				logging.Float64("wer", result.WER),
				logging.Float64("cer", result.CER),
				logging.String(logging.FieldStrategy, strategy))

			if outputPath != "" {
				if err := writeResultFile(outputPath, result); err != nil {
					return err
				}
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}

			renderScore(cmd, args[0], args[1], result)
			return nil
		},
	}

	cmd.Flags().IntVar(&refStart, "ref-start", -1, "First reference word index to score (0-based, inclusive)")
	cmd.Flags().IntVar(&refEnd, "ref-end", -1, "Last reference word index to score (0-based, inclusive)")
	cmd.Flags().IntVar(&hypStart, "hyp-start", -1, "First hypothesis word index to score (0-based, inclusive)")
	cmd.Flags().IntVar(&hypEnd, "hyp-end", -1, "Last hypothesis word index to score (0-based, inclusive)")
	cmd.Flags().StringArrayVar(&ignore, "ignore", nil, "Filler word to drop from the hypothesis (repeatable)")
	cmd.Flags().StringVarP(&langFlag, "language", "l", "", "Transcript language code (overrides configuration)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Also write the JSON result to this file")
	return cmd
}

// optionalIndex converts the -1 flag sentinel into an unset bound.
func optionalIndex(value int) *int {
	if value < 0 {
		return nil
	}
	return &value
}

func mergeIgnoreWords(configured, flags []string) []string {
	merged := make([]string, 0, len(configured)+len(flags))
	merged = append(merged, configured...)
	merged = append(merged, flags...)
	return merged
}

func resolveLanguage(flag, configured string) string {
	if trimmed := strings.TrimSpace(flag); trimmed != "" {
		return trimmed
	}
	return configured
}

func writeResultFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return fileutil.WriteFileAtomic(path, append(data, '\n'), 0o644)
}

func renderScore(cmd *cobra.Command, refPath, hypPath string, result scoring.Result) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	for _, line := range renderSectionHeader(fmt.Sprintf("%s vs %s", refPath, hypPath), colorize) {
		fmt.Fprintln(out, line)
	}

	fmt.Fprintln(out, renderTable(
		[]string{"Metric", "Value"},
		[][]string{
			{"WER", formatPercent(result.WER)},
			{"CER", formatPercent(result.CER)},
			{"Accuracy", formatPercent(result.Accuracy())},
			{"Substitutions", strconv.Itoa(result.Substitutions)},
			{"Insertions", strconv.Itoa(result.Insertions)},
			{"Deletions", strconv.Itoa(result.Deletions)},
			{"Reference words", strconv.Itoa(result.ReferenceWords)},
			{"Hypothesis words", strconv.Itoa(result.HypothesisWords)},
		},
		2,
	))

	if result.Itemized() && len(result.Errors) > 0 {
		rows := make([][]string, 0, len(result.Errors))
		for _, op := range result.Errors {
			rows = append(rows, []string{
				string(op.Kind),
				strconv.Itoa(op.Pos),
				dashIfEmpty(op.Ref),
				dashIfEmpty(op.Hyp),
			})
		}
		fmt.Fprintln(out, renderTable([]string{"Error", "Position", "Reference", "Hypothesis"}, rows, 2))
	}

	verdict := fmt.Sprintf("%s accuracy", formatPercent(result.Accuracy()))
	fmt.Fprintln(out, renderStatusLine("Verdict", accuracyKind(result.Accuracy()), verdict, colorize))
}

func formatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64) + "%"
}

func dashIfEmpty(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
