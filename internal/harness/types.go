package harness

import (
	"time"

	"voicecal/internal/model"
	"voicecal/pkg/phrase"
)

// RunInput is the input for a full workflow run.
type RunInput struct {
	Cases []model.Case
	// Now anchors relative expectations. Zero means the current time.
	Now time.Time
}

// Summary counts outcomes by status.
type Summary struct {
	Total    int `json:"total" yaml:"total"`
	Passed   int `json:"passed" yaml:"passed"`
	Mismatch int `json:"mismatch" yaml:"mismatch"`
	Failed   int `json:"failed" yaml:"failed"`
	Errored  int `json:"errored" yaml:"errored"`
}

// Add counts one outcome.
func (s *Summary) Add(o model.Outcome) {
	s.Total++
	switch o.Status {
	case model.StatusPassed:
		s.Passed++
	case model.StatusMismatch:
		s.Mismatch++
	case model.StatusFailed:
		s.Failed++
	default:
		s.Errored++
	}
}

// OK reports whether every case passed.
func (s Summary) OK() bool { return s.Total > 0 && s.Passed == s.Total }

// Report is the result of Run.
type Report struct {
	RunID       string          `json:"run_id" yaml:"run_id"`
	WebhookURL  string          `json:"webhook_url" yaml:"webhook_url"`
	Healthy     bool            `json:"healthy" yaml:"healthy"`
	AudioMocked bool            `json:"audio_mocked" yaml:"audio_mocked"`
	Outcomes    []model.Outcome `json:"outcomes" yaml:"outcomes"`
	Summary     Summary         `json:"summary" yaml:"summary"`
	Interrupted bool            `json:"interrupted,omitempty" yaml:"interrupted,omitempty"`
}

// ParseResult pairs a text with what the extractor found.
type ParseResult struct {
	phrase.Phrase `yaml:",inline"`
}
