package webhook

import (
	"context"

	"voicecal/pkg/gcalendar"
)

// UseCase turns transcribed voice requests into calendar events.
type UseCase interface {
	// Schedule parses the transcript and creates a one-hour event.
	// A missing date means today; a missing time means 09:00.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)

	// Parse runs the extractor against the given reference day, or today.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
}

// EventCreator stores events. *gcalendar.Client satisfies it.
type EventCreator interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}
