package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "VOICECAL"

var (
	ErrInvalidWebhookURL = errors.New("workflow.webhook_url must be an absolute http(s) URL")
	ErrInvalidTimezone   = errors.New("harness.timezone is not a known IANA zone")
	ErrInvalidTimeout    = errors.New("timeouts must be positive")
)

// Config holds all service configuration.
type Config struct {
	Environment    EnvironmentConfig    `yaml:"environment"`
	HTTPServer     HTTPServerConfig     `yaml:"http_server"`
	Logger         LoggerConfig         `yaml:"logger"`
	Workflow       WorkflowConfig       `yaml:"workflow"`
	Harness        HarnessConfig        `yaml:"harness"`
	GoogleCalendar GoogleCalendarConfig `yaml:"google_calendar"`
	Webhook        WebhookConfig        `yaml:"webhook"`
}

type EnvironmentConfig struct {
	Name string `yaml:"name"`
}

type HTTPServerConfig struct {
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"`
}

type LoggerConfig struct {
	Level        string `yaml:"level"`
	Mode         string `yaml:"mode"`
	Encoding     string `yaml:"encoding"`
	ColorEnabled bool   `yaml:"color_enabled"`
}

// WorkflowConfig points at the external workflow webhook under test.
type WorkflowConfig struct {
	WebhookURL    string        `yaml:"webhook_url"`
	AudioFile     string        `yaml:"audio_file"`
	Timeout       time.Duration `yaml:"timeout"`
	HealthTimeout time.Duration `yaml:"health_timeout"`
	// Token is sent as X-Webhook-Token. Empty falls back to webhook.secret.
	Token string `yaml:"token"`
}

type HarnessConfig struct {
	CasesFile string        `yaml:"cases_file"`
	Delay     time.Duration `yaml:"delay"`
	Timezone  string        `yaml:"timezone"`
	Workers   int           `yaml:"workers"`
}

type GoogleCalendarConfig struct {
	CredentialsPath string `yaml:"credentials_path"`
	CalendarID      string `yaml:"calendar_id"`
	Verify          bool   `yaml:"verify"`
}

// WebhookConfig configures the reference webhook served by `voicecal serve`.
type WebhookConfig struct {
	Secret          string `yaml:"secret"`
	RateLimitPerMin int    `yaml:"rate_limit_per_min"`
}

// Load loads configuration using Viper.
// An explicit path wins; otherwise config.yaml is searched in ./config, ., /etc/voicecal/.
// A missing file is not an error; defaults and VOICECAL_* env apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/voicecal/")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(v)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("workflow.webhook_url", "http://localhost:5678/webhook/voice-calendar")
	v.SetDefault("workflow.audio_file", "./test-audio-samples/test-voice.wav")
	v.SetDefault("workflow.timeout", 30*time.Second)
	v.SetDefault("workflow.health_timeout", 5*time.Second)
	v.SetDefault("workflow.token", "")

	v.SetDefault("harness.cases_file", "")
	v.SetDefault("harness.delay", 2*time.Second)
	v.SetDefault("harness.timezone", "Asia/Taipei")
	v.SetDefault("harness.workers", 4)

	v.SetDefault("google_calendar.credentials_path", "")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.verify", false)

	v.SetDefault("webhook.secret", "")
	v.SetDefault("webhook.rate_limit_per_min", 60)
}

// Default returns the configuration used when no file or env is present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Workflow.WebhookURL = v.GetString("workflow.webhook_url")
	cfg.Workflow.AudioFile = v.GetString("workflow.audio_file")
	cfg.Workflow.Timeout = v.GetDuration("workflow.timeout")
	cfg.Workflow.HealthTimeout = v.GetDuration("workflow.health_timeout")
	cfg.Workflow.Token = v.GetString("workflow.token")

	cfg.Harness.CasesFile = v.GetString("harness.cases_file")
	cfg.Harness.Delay = v.GetDuration("harness.delay")
	cfg.Harness.Timezone = v.GetString("harness.timezone")
	cfg.Harness.Workers = v.GetInt("harness.workers")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Verify = v.GetBool("google_calendar.verify")

	cfg.Webhook.Secret = v.GetString("webhook.secret")
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")

	return cfg
}

// Validate checks the values later stages rely on.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Workflow.WebhookURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidWebhookURL, c.Workflow.WebhookURL)
	}
	if _, err := time.LoadLocation(c.Harness.Timezone); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimezone, c.Harness.Timezone)
	}
	if c.Workflow.Timeout <= 0 || c.Workflow.HealthTimeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// Location returns the harness timezone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Harness.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// WorkflowToken is the token the harness sends, falling back to the
// secret of the local reference webhook.
func (c *Config) WorkflowToken() string {
	if c.Workflow.Token != "" {
		return c.Workflow.Token
	}
	return c.Webhook.Secret
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	out := *c
	if out.Webhook.Secret != "" {
		out.Webhook.Secret = "******"
	}
	if out.Workflow.Token != "" {
		out.Workflow.Token = "******"
	}
	return out
}
