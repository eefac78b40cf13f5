package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"voicecal/internal/harness"
	"voicecal/internal/model"
	"voicecal/pkg/datemath"
	pkgLog "voicecal/pkg/log"
	"voicecal/pkg/workflow"
)

// Run sends every case to the workflow and grades the replies.
func (uc *implUseCase) Run(ctx context.Context, input harness.RunInput) (harness.Report, error) {
	if len(input.Cases) == 0 {
		return harness.Report{}, harness.ErrNoCases
	}

	now := input.Now
	if now.IsZero() {
		now = uc.now()
	}

	expected := make([]model.Slot, len(input.Cases))
	for i, c := range input.Cases {
		slot, err := uc.expectation(c, now)
		if err != nil {
			return harness.Report{}, err
		}
		expected[i] = slot
	}

	report := harness.Report{
		RunID:      uuid.NewString(),
		WebhookURL: uc.webhookURL,
		Outcomes:   make([]model.Outcome, 0, len(input.Cases)),
	}
	ctx = pkgLog.WithTraceID(ctx, report.RunID)
	uc.l.Infof(ctx, "Run: %d cases against %s", len(input.Cases), uc.webhookURL)

	if err := uc.webhook.Health(ctx); err != nil {
		uc.l.Warnf(ctx, "Run: health probe failed, continuing: %v", err)
	} else {
		report.Healthy = true
	}

	audio, mocked := workflow.EncodeAudio(uc.audioFile)
	report.AudioMocked = mocked
	if mocked {
		uc.l.Infof(ctx, "Run: audio sample %q not found, sending mock audio", uc.audioFile)
	}

	limiter := uc.newPacer()
	for i, c := range input.Cases {
		if err := limiter.Wait(ctx); err != nil {
			report.Interrupted = true
			uc.l.Warnf(ctx, "Run: stopped after %d of %d cases: %v", len(report.Outcomes), len(input.Cases), err)
			return report, fmt.Errorf("run interrupted: %w", err)
		}

		outcome := uc.runCase(ctx, c, expected[i], audio)
		report.Outcomes = append(report.Outcomes, outcome)
		report.Summary.Add(outcome)
		uc.l.Infof(ctx, "Run: case %q status=%s", c.Name, outcome.Status)
	}

	return report, nil
}

// newPacer allows one request immediately and then one per delay.
func (uc *implUseCase) newPacer() *rate.Limiter {
	if uc.delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(uc.delay), 1)
}

func (uc *implUseCase) runCase(ctx context.Context, c model.Case, expected model.Slot, audio string) model.Outcome {
	outcome := model.Outcome{Case: c, Expected: expected}

	resp, err := uc.webhook.Submit(ctx, workflow.Request{AudioFile: audio, MockTranscription: c.Text})
	if err != nil {
		outcome.Status = model.StatusError
		var se *workflow.StatusError
		switch {
		case errors.As(err, &se):
			outcome.HTTPStatus = se.StatusCode
			outcome.Detail = se.Body
		case errors.Is(err, workflow.ErrUnreachable):
			outcome.Detail = "無法連接到工作流實例，請檢查 URL 和網路連接"
		default:
			outcome.Detail = err.Error()
		}
		uc.l.Errorf(ctx, "runCase: %q: %v", c.Name, err)
		return outcome
	}

	outcome.EventID = resp.EventID
	outcome.Summary = resp.Summary
	outcome.StartTime = resp.StartTime
	outcome.Message = resp.Message

	if !resp.Success {
		outcome.Status = model.StatusFailed
		return outcome
	}

	date, clock, err := workflow.SplitStartTime(resp.StartTime)
	if err != nil {
		outcome.Status = model.StatusError
		outcome.Detail = err.Error()
		return outcome
	}
	outcome.Actual = model.Slot{Date: date, Time: clock}

	if matches(expected, outcome.Actual) {
		outcome.Status = model.StatusPassed
	} else {
		outcome.Status = model.StatusMismatch
	}

	if uc.verifier != nil && resp.EventID != "" {
		outcome.Calendar = uc.verify(ctx, resp.EventID, outcome.Actual)
		if outcome.Calendar.Found && !outcome.Calendar.Matches && outcome.Status == model.StatusPassed {
			outcome.Status = model.StatusMismatch
			outcome.Detail = "calendar event start differs from the reported start time"
		}
	}

	return outcome
}

// verify looks the event up in the calendar. Lookup failures are recorded
// on the check and do not change the case status.
func (uc *implUseCase) verify(ctx context.Context, eventID string, reported model.Slot) *model.CalendarCheck {
	check := &model.CalendarCheck{}
	event, err := uc.verifier.GetEvent(ctx, uc.calendarID, eventID)
	if err != nil {
		uc.l.Warnf(ctx, "verify: event %s: %v", eventID, err)
		check.Error = err.Error()
		return check
	}

	check.Found = true
	start := event.StartTime
	if !event.AllDay {
		start = start.In(uc.dateMath.Location())
		check.Start = model.Slot{Date: start.Format(datemath.DateFormat), Time: start.Format(datemath.ClockFormat)}
	} else {
		check.Start = model.Slot{Date: start.Format(datemath.DateFormat)}
	}
	check.Matches = matches(check.Start, reported)
	return check
}
