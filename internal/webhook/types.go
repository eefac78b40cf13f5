package webhook

import (
	"time"

	"voicecal/internal/model"
	"voicecal/pkg/datemath"
	"voicecal/pkg/phrase"
)

const (
	DefaultDuration = time.Hour
	DefaultHour     = 9
)

// ScheduleInput is the transcribed request.
type ScheduleInput struct {
	Transcript string
	// AudioBytes is the size of the decoded audio payload, 0 when absent or mocked.
	AudioBytes int
}

// ScheduleOutput is the created event plus what the extractor saw.
type ScheduleOutput struct {
	Event  model.ScheduledEvent
	Phrase phrase.Phrase
}

type ParseInput struct {
	Text string
	// Reference overrides today. Nil means the current day in the server timezone.
	Reference *datemath.Date
}

type ParseOutput struct {
	Reference datemath.Date
	Phrase    phrase.Phrase
}
