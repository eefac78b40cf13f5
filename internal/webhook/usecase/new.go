package usecase

import (
	"time"

	"voicecal/internal/webhook"
	"voicecal/pkg/datemath"
	pkgLog "voicecal/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	calendar   webhook.EventCreator
	dateMath   *datemath.Parser
	calendarID string
	now        func() time.Time
}

// New creates a new webhook UseCase instance. calendar may be nil, in which
// case events get a local id and are not stored anywhere.
func New(
	l pkgLog.Logger,
	calendar webhook.EventCreator,
	dateMath *datemath.Parser,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		calendar:   calendar,
		dateMath:   dateMath,
		calendarID: calendarID,
		now:        time.Now,
	}
}

var _ webhook.UseCase = (*implUseCase)(nil)
