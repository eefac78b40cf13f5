package main

import (
	"github.com/spf13/cobra"

	"voicecal/internal/harness"
	harnessUC "voicecal/internal/harness/usecase"
)

func newParseCmd(root *rootOptions) *cobra.Command {
	var reference string

	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Run the extractor only, without calling the workflow",
		Long: `Parse prints the date, time and event markers found in each text and
what they resolve to. With no arguments the built-in smoke texts are used.

Example:
  voicecal parse
  voicecal parse 明天下午3點開會 --reference 2024-05-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.load()
			if err != nil {
				return err
			}
			ref, err := a.reference(reference)
			if err != nil {
				return err
			}

			texts := args
			if len(texts) == 0 {
				texts = harness.DefaultParseTexts()
			}

			uc := harnessUC.New(a.l, nil, a.dateMath, harnessUC.Options{})
			harness.NewPrinter(cmd.OutOrStdout()).PrintParseResults(uc.ParseOnly(texts, ref))
			return nil
		},
	}

	cmd.Flags().StringVar(&reference, "reference", "", "reference day YYYY-MM-DD (default: today)")
	return cmd
}
