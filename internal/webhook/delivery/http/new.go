package http

import (
	"voicecal/internal/webhook"
	"voicecal/pkg/log"
)

type handler struct {
	l  log.Logger
	uc webhook.UseCase
}

// New creates a new HTTP handler for the voice webhook.
func New(l log.Logger, uc webhook.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
