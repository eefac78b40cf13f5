package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicecal/internal/model"
	"voicecal/internal/webhook"
	"voicecal/pkg/datemath"
	"voicecal/pkg/gcalendar"
	pkgLog "voicecal/pkg/log"
)

type fakeCalendar struct {
	requests []gcalendar.CreateEventRequest
	err      error
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &gcalendar.Event{ID: "gcal-1", HtmlLink: "https://calendar.google.com/e/gcal-1", StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

// newTestUseCase pins "now" to Wednesday 2024-05-01 23:30 in Taipei,
// which is still Wednesday afternoon in UTC.
func newTestUseCase(t *testing.T, cal webhook.EventCreator) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("Asia/Taipei")
	require.NoError(t, err)
	uc := New(pkgLog.NewNop(), cal, parser, "primary")
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) }
	return uc
}

func TestSchedule(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		start         string
		summary       string
		dateDefaulted bool
		timeDefaulted bool
	}{
		{"full", "明天下午3點開會討論專案進度", "2024-05-02T15:00:00+08:00", "開會", false, false},
		{"evening", "今天晚上7點和朋友聚餐", "2024-05-01T19:00:00+08:00", "聚餐", false, false},
		{"next monday", "下週一上午9點面試新員工", "2024-05-06T09:00:00+08:00", "面試", false, false},
		{"no time", "後天去健身", "2024-05-03T09:00:00+08:00", "健身", false, true},
		{"no date", "下午2點30分上課", "2024-05-01T14:30:00+08:00", "上課", true, false},
		{"nothing", "記得買牛奶", "2024-05-01T09:00:00+08:00", "記得買牛奶", true, true},
		{"impossible date", "2月30日晚上8點約會", "2024-05-01T20:00:00+08:00", "約會", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, nil)
			out, err := uc.Schedule(context.Background(), webhook.ScheduleInput{Transcript: tt.text})
			require.NoError(t, err)

			ev := out.Event
			assert.Equal(t, tt.start, ev.Start.Format(time.RFC3339))
			assert.Equal(t, time.Hour, ev.End.Sub(ev.Start))
			assert.Equal(t, tt.summary, ev.Summary)
			assert.Equal(t, tt.dateDefaulted, ev.DateDefaulted)
			assert.Equal(t, tt.timeDefaulted, ev.TimeDefaulted)
			assert.Equal(t, model.SourceLocal, ev.Source)
			assert.Len(t, ev.ID, 36)
		})
	}
}

func TestSchedule_EmptyTranscript(t *testing.T) {
	uc := newTestUseCase(t, nil)
	_, err := uc.Schedule(context.Background(), webhook.ScheduleInput{Transcript: "  \n"})
	assert.ErrorIs(t, err, webhook.ErrEmptyTranscript)
}

func TestSchedule_GoogleCalendar(t *testing.T) {
	cal := &fakeCalendar{}
	uc := newTestUseCase(t, cal)

	out, err := uc.Schedule(context.Background(), webhook.ScheduleInput{Transcript: "明天下午3點開會"})
	require.NoError(t, err)

	assert.Equal(t, "gcal-1", out.Event.ID)
	assert.Equal(t, model.SourceGoogleCalendar, out.Event.Source)
	assert.Equal(t, "https://calendar.google.com/e/gcal-1", out.Event.Link)

	require.Len(t, cal.requests, 1)
	req := cal.requests[0]
	assert.Equal(t, "primary", req.CalendarID)
	assert.Equal(t, "Asia/Taipei", req.Timezone)
	assert.Equal(t, "明天下午3點開會", req.Description)
	assert.Equal(t, "2024-05-02T15:00:00+08:00", req.StartTime.Format(time.RFC3339))
}

func TestSchedule_CalendarError(t *testing.T) {
	cause := errors.New("quota exceeded")
	uc := newTestUseCase(t, &fakeCalendar{err: cause})

	_, err := uc.Schedule(context.Background(), webhook.ScheduleInput{Transcript: "明天開會"})
	assert.ErrorIs(t, err, webhook.ErrCalendarCreate)
	assert.ErrorIs(t, err, cause)
}

func TestParse(t *testing.T) {
	uc := newTestUseCase(t, nil)

	out, err := uc.Parse(context.Background(), webhook.ParseInput{Text: "下週三晚上8點運動"})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", out.Reference.String())
	assert.Equal(t, "下週三", out.Phrase.DateMarker)
	require.NotNil(t, out.Phrase.Date)
	assert.Equal(t, "2024-05-08", out.Phrase.Date.String())
	assert.Equal(t, "20:00", out.Phrase.Time.String())

	ref := datemath.Date{Year: 2024, Month: time.December, Day: 31}
	out, err = uc.Parse(context.Background(), webhook.ParseInput{Text: "明天工作", Reference: &ref})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", out.Phrase.Date.String())
	assert.Nil(t, out.Phrase.Time)

	_, err = uc.Parse(context.Background(), webhook.ParseInput{Text: ""})
	assert.ErrorIs(t, err, webhook.ErrEmptyText)
}
