package workflow

import "context"

// MockAudio is sent instead of audio bytes when no sample file is available.
const MockAudio = "mock-base64-audio-data"

// Webhook is the voice-calendar workflow endpoint.
type Webhook interface {
	Submit(ctx context.Context, req Request) (Response, error)
	Health(ctx context.Context) error
}

// Request is the JSON body posted to the workflow.
// MockTranscription stands in for the speech-to-text step.
type Request struct {
	AudioFile         string `json:"audioFile"`
	MockTranscription string `json:"mockTranscription"`
}

// Response is the workflow reply. StartTime is an ISO-8601 instant.
type Response struct {
	Success   bool   `json:"success"`
	EventID   string `json:"eventId,omitempty"`
	Summary   string `json:"summary,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	Message   string `json:"message,omitempty"`
}
