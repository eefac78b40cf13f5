package http

import (
	"time"

	"voicecal/internal/webhook"
	"voicecal/pkg/datemath"
	"voicecal/pkg/phrase"
	"voicecal/pkg/workflow"
)

const msgEventCreated = "event created"

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required"`
	// Reference is YYYY-MM-DD; empty means today.
	Reference string `json:"reference,omitempty"`
}

func (r parseReq) toInput() (webhook.ParseInput, error) {
	in := webhook.ParseInput{Text: r.Text}
	if r.Reference != "" {
		d, err := datemath.ParseDate(r.Reference)
		if err != nil {
			return in, errInvalidReference
		}
		in.Reference = &d
	}
	return in, nil
}

// --- Response DTOs ---

type parseResp struct {
	Reference    string `json:"reference"`
	Text         string `json:"text"`
	DateMarker   string `json:"date_marker,omitempty"`
	TimeMarker   string `json:"time_marker,omitempty"`
	EventMarker  string `json:"event_marker,omitempty"`
	ResolvedDate string `json:"resolved_date,omitempty"`
	ResolvedTime string `json:"resolved_time,omitempty"`
}

func (h *handler) newParseResp(o webhook.ParseOutput) parseResp {
	return parseResp{
		Reference:    o.Reference.String(),
		Text:         o.Phrase.Text,
		DateMarker:   o.Phrase.DateMarker,
		TimeMarker:   o.Phrase.TimeMarker,
		EventMarker:  o.Phrase.EventMarker,
		ResolvedDate: resolvedDate(o.Phrase),
		ResolvedTime: resolvedTime(o.Phrase),
	}
}

func (h *handler) newVoiceResp(o webhook.ScheduleOutput) workflow.Response {
	return workflow.Response{
		Success:   true,
		EventID:   o.Event.ID,
		Summary:   o.Event.Summary,
		StartTime: o.Event.Start.Format(time.RFC3339),
		Message:   msgEventCreated,
	}
}

func resolvedDate(p phrase.Phrase) string {
	if p.Date == nil {
		return ""
	}
	return p.Date.String()
}

func resolvedTime(p phrase.Phrase) string {
	if p.Time == nil {
		return ""
	}
	return p.Time.String()
}
