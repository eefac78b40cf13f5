package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Workflow.WebhookURL != "http://localhost:5678/webhook/voice-calendar" {
		t.Errorf("webhook url = %q", cfg.Workflow.WebhookURL)
	}
	if cfg.Workflow.AudioFile != "./test-audio-samples/test-voice.wav" {
		t.Errorf("audio file = %q", cfg.Workflow.AudioFile)
	}
	if cfg.Workflow.Timeout != 30*time.Second || cfg.Workflow.HealthTimeout != 5*time.Second {
		t.Errorf("timeouts = %v / %v", cfg.Workflow.Timeout, cfg.Workflow.HealthTimeout)
	}
	if cfg.Harness.Delay != 2*time.Second {
		t.Errorf("delay = %v", cfg.Harness.Delay)
	}
	if cfg.Harness.Timezone != "Asia/Taipei" {
		t.Errorf("timezone = %q", cfg.Harness.Timezone)
	}
	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d", cfg.HTTPServer.Port)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voicecal.yaml")
	content := []byte(`
workflow:
  webhook_url: https://n8n.example.com/webhook/voice-calendar
  timeout: 10s
harness:
  delay: 500ms
  timezone: UTC
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VOICECAL_HTTP_SERVER_PORT", "9090")
	t.Setenv("VOICECAL_WEBHOOK_SECRET", "s3cret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Workflow.WebhookURL != "https://n8n.example.com/webhook/voice-calendar" {
		t.Errorf("webhook url = %q", cfg.Workflow.WebhookURL)
	}
	if cfg.Workflow.Timeout != 10*time.Second {
		t.Errorf("timeout = %v", cfg.Workflow.Timeout)
	}
	if cfg.Workflow.HealthTimeout != 5*time.Second {
		t.Errorf("health timeout should keep its default, got %v", cfg.Workflow.HealthTimeout)
	}
	if cfg.Harness.Delay != 500*time.Millisecond {
		t.Errorf("delay = %v", cfg.Harness.Delay)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("port = %d, want env override 9090", cfg.HTTPServer.Port)
	}
	if cfg.Webhook.Secret != "s3cret" {
		t.Errorf("secret = %q", cfg.Webhook.Secret)
	}
	if got := cfg.Redacted().Webhook.Secret; got != "******" {
		t.Errorf("redacted secret = %q", got)
	}
	if cfg.Location() != time.UTC {
		t.Errorf("location = %v", cfg.Location())
	}
}

func TestWorkflowToken(t *testing.T) {
	cfg := Default()
	if got := cfg.WorkflowToken(); got != "" {
		t.Errorf("default token = %q, want empty", got)
	}

	cfg.Webhook.Secret = "s3cret"
	if got := cfg.WorkflowToken(); got != "s3cret" {
		t.Errorf("token should fall back to webhook.secret, got %q", got)
	}

	cfg.Workflow.Token = "remote"
	if got := cfg.WorkflowToken(); got != "remote" {
		t.Errorf("token = %q, want workflow.token", got)
	}
	if got := cfg.Redacted().Workflow.Token; got != "******" {
		t.Errorf("redacted token = %q", got)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"relative url", func(c *Config) { c.Workflow.WebhookURL = "/webhook" }, ErrInvalidWebhookURL},
		{"ftp url", func(c *Config) { c.Workflow.WebhookURL = "ftp://host/x" }, ErrInvalidWebhookURL},
		{"bad zone", func(c *Config) { c.Harness.Timezone = "Mars/Olympus" }, ErrInvalidTimezone},
		{"zero timeout", func(c *Config) { c.Workflow.Timeout = 0 }, ErrInvalidTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
