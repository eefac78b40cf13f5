package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"voicecal/internal/httpserver"
	"voicecal/internal/middleware"
	"voicecal/internal/webhook"
	webhookUC "voicecal/internal/webhook/usecase"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the reference voice-calendar webhook",
		Long: `Serve starts an HTTP server that speaks the same contract as the
workflow webhook. Events go to Google Calendar when credentials are
configured and get a local id otherwise.

Point the harness at it with
  VOICECAL_WORKFLOW_WEBHOOK_URL=http://localhost:8080/webhook/voice-calendar voicecal run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.l.Info(ctx, "Starting voicecal reference webhook...")
			a.l.Infof(ctx, "Environment: %s", a.cfg.Environment.Name)

			var creator webhook.EventCreator
			cal, err := a.calendar(ctx)
			if err != nil {
				a.l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
				a.l.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate token.json")
			} else if cal != nil {
				creator = cal
			}

			uc := webhookUC.New(a.l, creator, a.dateMath, a.cfg.GoogleCalendar.CalendarID)

			srv, err := httpserver.New(a.l, httpserver.Config{
				Logger:      a.l,
				Port:        a.cfg.HTTPServer.Port,
				Mode:        a.cfg.HTTPServer.Mode,
				Environment: a.cfg.Environment.Name,
				WebhookUC:   uc,
				Security: middleware.SecurityConfig{
					Secret:          a.cfg.Webhook.Secret,
					RateLimitPerMin: a.cfg.Webhook.RateLimitPerMin,
				},
				CalendarEnabled: creator != nil,
			})
			if err != nil {
				return err
			}

			if err := srv.Run(ctx); err != nil {
				return err
			}
			a.l.Info(ctx, "Server stopped gracefully")
			return nil
		},
	}
}
