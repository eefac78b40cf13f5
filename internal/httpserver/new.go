package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"voicecal/internal/middleware"
	"voicecal/internal/webhook"
	"voicecal/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Webhook domain
	webhookUC webhook.UseCase
	security  middleware.SecurityConfig
	calendar  bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	WebhookUC webhook.UseCase
	Security  middleware.SecurityConfig
	// CalendarEnabled is reported by /ready.
	CalendarEnabled bool
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		webhookUC:   cfg.WebhookUC,
		security:    cfg.Security,
		calendar:    cfg.CalendarEnabled,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.webhookUC == nil {
		return errors.New("webhook usecase is required")
	}
	return nil
}
