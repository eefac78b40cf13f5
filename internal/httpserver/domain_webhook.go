package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"voicecal/internal/middleware"
	webhookHTTP "voicecal/internal/webhook/delivery/http"
)

// setupWebhookDomain registers the voice webhook and the parse API.
func (srv *HTTPServer) setupWebhookDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := webhookHTTP.New(srv.l, srv.webhookUC)
	webhookHTTP.RegisterRoutes(srv.gin, api, h, mw)

	srv.l.Infof(ctx, "Voice webhook registered at POST %s", webhookHTTP.VoiceCalendarPath)
	return nil
}
