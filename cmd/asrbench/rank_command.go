package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"asrbench/internal/fileutil"
	"asrbench/internal/logging"
	"asrbench/internal/scoring"
)

type rankedResult struct {
	Rank       int            `json:"rank"`
	Hypothesis string         `json:"hypothesis"`
	Result     scoring.Result `json:"result"`
}

func newRankCommand(ctx *commandContext) *cobra.Command {
	var (
		ignore     []string
		langFlag   string
		jsonOutput bool
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "rank <reference-file> <hypothesis-file>...",
		Short: "Score several hypothesis transcripts and rank them by WER",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			reference, err := fileutil.ReadText(args[0])
			if err != nil {
				return err
			}

			opts := scoring.Options{
				IgnoredInsertionWords: mergeIgnoreWords(cfg.Scoring.IgnoredInsertionWords, ignore),
				Language:              resolveLanguage(langFlag, cfg.Scoring.Language),
				Limits:                cfg.Limits(),
			}

			runCtx := logging.WithRunID(cmd.Context(), uuid.NewString())
			logger := logging.WithContext(runCtx, logging.NewComponentLogger(ctx.ensureLogger(), "rank"))

			ranked := make([]rankedResult, 0, len(args)-1)
			for _, hypPath := range args[1:] {
				hypothesis, err := fileutil.ReadText(hypPath)
				if err != nil {
					return err
				}
				result := scoring.Calculate(reference, hypothesis, opts)
				logger.Debug("hypothesis scored",
					logging.String("hypothesis", hypPath),
					logging.Float64("wer", result.WER))
				ranked = append(ranked, rankedResult{Hypothesis: hypPath, Result: result})
			}

			// Ties keep the command-line order.
			sort.SliceStable(ranked, func(i, j int) bool {
				return ranked[i].Result.WER < ranked[j].Result.WER
			})
			for i := range ranked {
				ranked[i].Rank = i + 1
			}

			if outputPath != "" {
				if err := writeResultFile(outputPath, ranked); err != nil {
					return err
				}
			}

			if jsonOutput {
				return writeJSON(cmd, ranked)
			}

			renderRanking(cmd, args[0], ranked)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&ignore, "ignore", nil, "Filler word to drop from the hypotheses (repeatable)")
	cmd.Flags().StringVarP(&langFlag, "language", "l", "", "Transcript language code (overrides configuration)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the ranking as JSON")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Also write the JSON ranking to this file")
	return cmd
}

func renderRanking(cmd *cobra.Command, refPath string, ranked []rankedResult) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	for _, line := range renderSectionHeader("Ranking against "+refPath, colorize) {
		fmt.Fprintln(out, line)
	}

	rows := make([][]string, 0, len(ranked))
	for _, entry := range ranked {
		rows = append(rows, []string{
			strconv.Itoa(entry.Rank),
			entry.Hypothesis,
			formatPercent(entry.Result.WER),
			formatPercent(entry.Result.CER),
			formatPercent(entry.Result.Accuracy()),
			fmt.Sprintf("%d/%d/%d",
				entry.Result.Substitutions,
				entry.Result.Insertions,
				entry.Result.Deletions),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Rank", "Hypothesis", "WER", "CER", "Accuracy", "S/I/D"},
		rows,
		1, 3, 4, 5, 6,
	))

	if len(ranked) > 0 {
		best := ranked[0]
		message := fmt.Sprintf("%s (%s WER)", best.Hypothesis, formatPercent(best.Result.WER))
		fmt.Fprintln(out, renderStatusLine("Best", accuracyKind(best.Result.Accuracy()), message, colorize))
	}
}
