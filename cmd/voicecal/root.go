package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"voicecal/config"
	"voicecal/pkg/datemath"
	"voicecal/pkg/gcalendar"
	"voicecal/pkg/log"
	"voicecal/pkg/phrase"
)

type rootOptions struct {
	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "voicecal",
		Short: "Voice-to-calendar workflow tester and phrase parser",
		Long: `voicecal exercises a voice-to-calendar webhook end to end.

It sends transcribed Traditional Chinese scheduling requests to the workflow,
compares the reported start time with what the local extractor expects, and
can serve an offline reference implementation of the same webhook.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: ./config/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(
		newRunCmd(opts),
		newParseCmd(opts),
		newBatchCmd(opts),
		newServeCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// app is what every subcommand needs after config is loaded.
type app struct {
	cfg      *config.Config
	l        log.Logger
	dateMath *datemath.Parser
}

func (o *rootOptions) load() (*app, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.Logger.Level
	if o.verbose {
		level = "debug"
	}
	l := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	dm, err := datemath.NewParser(cfg.Harness.Timezone)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, l: l, dateMath: dm}, nil
}

// calendar connects to Google Calendar. It returns nil, nil when no
// credentials are configured.
func (a *app) calendar(ctx context.Context) (*gcalendar.Client, error) {
	path := a.cfg.GoogleCalendar.CredentialsPath
	if path == "" {
		return nil, nil
	}
	c, err := gcalendar.NewClientFromCredentialsFile(ctx, path)
	if err != nil {
		return nil, err
	}
	a.l.Info(ctx, "✅ Google Calendar initialized")
	return c, nil
}

// reference resolves --reference, defaulting to today in the configured zone.
func (a *app) reference(value string) (phrase.Reference, error) {
	if value == "" {
		return phrase.ReferenceOf(a.dateMath.Today(time.Now())), nil
	}
	d, err := datemath.ParseDate(value)
	if err != nil {
		return phrase.Reference{}, fmt.Errorf("--reference: %w", err)
	}
	return phrase.ReferenceOf(d), nil
}
