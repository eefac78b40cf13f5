package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"voicecal/internal/model"
	"voicecal/internal/webhook"
	"voicecal/pkg/datemath"
	"voicecal/pkg/gcalendar"
	"voicecal/pkg/phrase"
)

// Schedule creates an event from a transcript.
func (uc *implUseCase) Schedule(ctx context.Context, input webhook.ScheduleInput) (webhook.ScheduleOutput, error) {
	text := strings.TrimSpace(input.Transcript)
	if text == "" {
		return webhook.ScheduleOutput{}, webhook.ErrEmptyTranscript
	}

	now := uc.now().In(uc.dateMath.Location())
	p := phrase.Parse(text, phrase.ReferenceFrom(now))
	uc.l.Infof(ctx, "Schedule: text=%q date=%q time=%q event=%q audio_bytes=%d",
		text, p.DateMarker, p.TimeMarker, p.EventMarker, input.AudioBytes)

	event := model.ScheduledEvent{
		Summary:    summaryOf(p),
		Transcript: text,
	}

	day := datemath.DateOf(now)
	if p.Date != nil {
		day = *p.Date
	} else {
		event.DateDefaulted = true
	}

	clock := datemath.Clock{Hour: webhook.DefaultHour}
	if p.Time != nil {
		clock = *p.Time
	} else {
		event.TimeDefaulted = true
	}

	event.Start = uc.dateMath.At(day, clock)
	event.End = event.Start.Add(webhook.DefaultDuration)

	if uc.calendar == nil {
		event.ID = uuid.NewString()
		event.Source = model.SourceLocal
		return webhook.ScheduleOutput{Event: event, Phrase: p}, nil
	}

	created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     event.Summary,
		Description: text,
		StartTime:   event.Start,
		EndTime:     event.End,
		Timezone:    uc.dateMath.Location().String(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "Schedule: calendar create failed for %q: %v", text, err)
		return webhook.ScheduleOutput{}, fmt.Errorf("%w: %w", webhook.ErrCalendarCreate, err)
	}

	event.ID = created.ID
	event.Link = created.HtmlLink
	event.Source = model.SourceGoogleCalendar
	uc.l.Infof(ctx, "Schedule: created event %s at %s", event.ID, event.Start)

	return webhook.ScheduleOutput{Event: event, Phrase: p}, nil
}

// summaryOf names the event after its keyword, falling back to the whole text.
func summaryOf(p phrase.Phrase) string {
	if p.EventMarker != "" {
		return p.EventMarker
	}
	return p.Text
}
