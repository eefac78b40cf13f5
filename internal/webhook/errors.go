package webhook

import "errors"

var (
	ErrEmptyTranscript = errors.New("transcription is empty")
	ErrEmptyText       = errors.New("text is empty")
	ErrCalendarCreate  = errors.New("failed to create calendar event")
)
