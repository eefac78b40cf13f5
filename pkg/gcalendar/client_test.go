package gcalendar_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"voicecal/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("broken JSON", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`{"broken":true}`), "")
		if !errors.Is(err, gcalendar.ErrUnsupportedCredentials) {
			t.Errorf("expected ErrUnsupportedCredentials, got %v", err)
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		dir := t.TempDir()
		credsPath := filepath.Join(dir, "credentials.json")
		os.WriteFile(credsPath, []byte(installedCreds), 0o600)
		tok := &oauth2.Token{AccessToken: "dummy", TokenType: "Bearer", Expiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
		if err := gcalendar.SaveToken(filepath.Join(dir, gcalendar.DefaultTokenFile), tok); err != nil {
			t.Fatal(err)
		}

		if _, err := gcalendar.NewClientFromCredentialsFile(ctx, credsPath); err != nil {
			t.Fatalf("expected client from installed credentials: %v", err)
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), filepath.Join(t.TempDir(), "token.json"))
		if !errors.Is(err, gcalendar.ErrMissingToken) {
			t.Errorf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("installed app bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), tokenPath); err == nil {
			t.Fatal("expected parsing to fail on bad token")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsFile(ctx, filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected reading file error")
		}
	})

	t.Run("redirect url", func(t *testing.T) {
		cfg, err := gcalendar.InstalledAppConfig([]byte(installedCreds))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.RedirectURL != "http://localhost" || cfg.ClientID != "test-client-id.apps.googleusercontent.com" {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})
}

func TestCreateEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			w.Write([]byte(`{"id": "event-123", "summary": "開會", "htmlLink": "https://calendar.google.com/event-uri"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	loc := time.FixedZone("CST", 8*3600)
	start := time.Date(2024, 5, 2, 15, 0, 0, 0, loc)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "開會",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Timezone:  "Asia/Taipei",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected event: %+v", event)
	}
	if !event.StartTime.Equal(start) {
		t.Errorf("start = %v", event.StartTime)
	}
}

func TestCreateEvent_Error(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{}); err == nil {
		t.Fatal("expected create event error")
	}
}

func TestGetEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/calendar/v3/calendars/primary/events/evt-timed":
			w.Write([]byte(`{
				"id": "evt-timed",
				"summary": "面試",
				"start": {"dateTime": "2024-05-06T09:00:00+08:00"},
				"end": {"dateTime": "2024-05-06T10:00:00+08:00"}
			}`))
		case "/calendar/v3/calendars/work/events/evt-allday":
			w.Write([]byte(`{
				"id": "evt-allday",
				"start": {"date": "2024-05-06", "timeZone": "Asia/Taipei"},
				"end": {"date": "2024-05-07", "timeZone": "Asia/Taipei"}
			}`))
		case "/calendar/v3/calendars/primary/events/evt-broken":
			w.Write([]byte(`{"id": "evt-broken"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": {"code": 404, "message": "Not Found"}}`))
		}
	})
	ctx := context.Background()

	t.Run("timed", func(t *testing.T) {
		e, err := client.GetEvent(ctx, "", "evt-timed")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Summary != "面試" || e.AllDay {
			t.Errorf("unexpected event: %+v", e)
		}
		if got := e.StartTime.Format(time.RFC3339); got != "2024-05-06T09:00:00+08:00" {
			t.Errorf("start = %s", got)
		}
		if e.EndTime.Sub(e.StartTime) != time.Hour {
			t.Errorf("duration = %v", e.EndTime.Sub(e.StartTime))
		}
	})

	t.Run("all day", func(t *testing.T) {
		e, err := client.GetEvent(ctx, "work", "evt-allday")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !e.AllDay || e.StartTime.Format(time.DateOnly) != "2024-05-06" {
			t.Errorf("unexpected event: %+v", e)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := client.GetEvent(ctx, "", "missing"); !errors.Is(err, gcalendar.ErrEventNotFound) {
			t.Errorf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("no start", func(t *testing.T) {
		if _, err := client.GetEvent(ctx, "", "evt-broken"); !errors.Is(err, gcalendar.ErrInvalidEventTime) {
			t.Errorf("expected ErrInvalidEventTime, got %v", err)
		}
	})
}
