package harness

import (
	"context"

	"voicecal/pkg/gcalendar"
	"voicecal/pkg/phrase"
)

// UseCase drives the voice-calendar workflow and the local extractor.
type UseCase interface {
	// Run probes the workflow, then sends every case in order, pacing
	// between requests. A cancelled ctx stops the run; the report holds
	// the cases that completed.
	Run(ctx context.Context, input RunInput) (Report, error)

	// ParseOnly runs the extractor over texts without touching the network.
	ParseOnly(texts []string, ref phrase.Reference) []ParseResult

	// Batch is ParseOnly spread over a worker pool. Output order equals input order.
	Batch(ctx context.Context, texts []string, ref phrase.Reference, workers int) ([]ParseResult, error)
}

// CalendarVerifier looks up the event the workflow reports as created.
// *gcalendar.Client satisfies it.
type CalendarVerifier interface {
	GetEvent(ctx context.Context, calendarID, eventID string) (*gcalendar.Event, error)
}
