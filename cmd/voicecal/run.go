package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"voicecal/internal/harness"
	harnessUC "voicecal/internal/harness/usecase"
	"voicecal/pkg/workflow"
)

var errCasesFailed = errors.New("not all cases passed")

func newRunCmd(root *rootOptions) *cobra.Command {
	var casesFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Send every test case to the workflow webhook",
		Long: `Run probes the workflow, then posts each case with a pause between
requests and compares the reported start time with the expectation.

Example:
  voicecal run
  voicecal run --cases cases.yaml
  VOICECAL_WORKFLOW_WEBHOOK_URL=https://n8n.example.com/webhook/voice-calendar voicecal run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if casesFile == "" {
				casesFile = a.cfg.Harness.CasesFile
			}
			cases := harness.DefaultCases()
			if casesFile != "" {
				if cases, err = harness.LoadCases(casesFile); err != nil {
					return err
				}
			}

			uc, err := a.newHarness(ctx)
			if err != nil {
				return err
			}

			report, runErr := uc.Run(ctx, harness.RunInput{Cases: cases})
			harness.NewPrinter(cmd.OutOrStdout()).PrintReport(report)
			if runErr != nil {
				return runErr
			}
			if !report.Summary.OK() {
				return errCasesFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&casesFile, "cases", "", "YAML file of test cases (default: built-in cases)")
	return cmd
}

func (a *app) newHarness(ctx context.Context) (harness.UseCase, error) {
	wf := a.cfg.Workflow
	client, err := workflow.NewClient(wf.WebhookURL,
		workflow.WithTimeout(wf.Timeout),
		workflow.WithHealthTimeout(wf.HealthTimeout),
		workflow.WithToken(a.cfg.WorkflowToken()),
	)
	if err != nil {
		return nil, err
	}

	opts := harnessUC.Options{
		WebhookURL: client.URL(),
		AudioFile:  wf.AudioFile,
		Delay:      a.cfg.Harness.Delay,
		Workers:    a.cfg.Harness.Workers,
		CalendarID: a.cfg.GoogleCalendar.CalendarID,
	}
	if a.cfg.GoogleCalendar.Verify {
		cal, err := a.calendar(ctx)
		if err != nil {
			return nil, fmt.Errorf("calendar verification: %w", err)
		}
		if cal != nil {
			opts.Verifier = cal
		} else {
			a.l.Warn(ctx, "google_calendar.verify is set but no credentials_path, skipping verification")
		}
	}

	return harnessUC.New(a.l, client, a.dateMath, opts), nil
}
