package usecase

import (
	"time"

	"voicecal/internal/harness"
	"voicecal/pkg/datemath"
	pkgLog "voicecal/pkg/log"
	"voicecal/pkg/workflow"
)

// Options are the tunables of a harness run.
type Options struct {
	WebhookURL string
	AudioFile  string
	// Delay is the minimum gap between two workflow requests.
	Delay   time.Duration
	Workers int
	// Verifier, when set, looks up each created event in CalendarID.
	Verifier   harness.CalendarVerifier
	CalendarID string
}

type implUseCase struct {
	l          pkgLog.Logger
	webhook    workflow.Webhook
	dateMath   *datemath.Parser
	verifier   harness.CalendarVerifier
	calendarID string
	webhookURL string
	audioFile  string
	delay      time.Duration
	workers    int
	now        func() time.Time
}

// New creates a new harness UseCase instance.
func New(
	l pkgLog.Logger,
	webhook workflow.Webhook,
	dateMath *datemath.Parser,
	opts Options,
) *implUseCase {
	return &implUseCase{
		l:          l,
		webhook:    webhook,
		dateMath:   dateMath,
		verifier:   opts.Verifier,
		calendarID: opts.CalendarID,
		webhookURL: opts.WebhookURL,
		audioFile:  opts.AudioFile,
		delay:      opts.Delay,
		workers:    opts.Workers,
		now:        time.Now,
	}
}

var _ harness.UseCase = (*implUseCase)(nil)
