package http

import (
	"errors"
	"net/http"

	"voicecal/internal/webhook"
)

var (
	errInvalidBody      = errors.New("invalid request body")
	errInvalidReference = errors.New("reference must be YYYY-MM-DD")
)

// mapError translates use-case errors into an HTTP status and client message.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, webhook.ErrEmptyTranscript), errors.Is(err, webhook.ErrEmptyText):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, webhook.ErrCalendarCreate):
		return http.StatusBadGateway, webhook.ErrCalendarCreate.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
