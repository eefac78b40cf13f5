package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"voicecal/internal/harness"
	harnessUC "voicecal/internal/harness/usecase"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func newBatchCmd(root *rootOptions) *cobra.Command {
	var (
		input     string
		workers   int
		format    string
		reference string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Parse a file of texts in parallel",
		Long: `Batch reads one text per line (blank lines and # comments are skipped)
and parses them on a worker pool. Output order follows the input.

Example:
  voicecal batch --input texts.txt
  voicecal batch --input texts.txt --workers 8 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown --format %q (want text, json or yaml)", format)
			}

			a, err := root.load()
			if err != nil {
				return err
			}
			ref, err := a.reference(reference)
			if err != nil {
				return err
			}
			texts, err := harness.ReadTexts(input)
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = a.cfg.Harness.Workers
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			uc := harnessUC.New(a.l, nil, a.dateMath, harnessUC.Options{Workers: workers})
			results, batchErr := uc.Batch(ctx, texts, ref, workers)
			if err := writeResults(cmd.OutOrStdout(), format, results); err != nil {
				return err
			}
			return batchErr
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "file with one text per line")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of workers (default: harness.workers)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")
	cmd.Flags().StringVar(&reference, "reference", "", "reference day YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func writeResults(w io.Writer, format string, results []harness.ParseResult) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(results)
	default:
		harness.NewPrinter(w).PrintParseResults(results)
		return nil
	}
}
