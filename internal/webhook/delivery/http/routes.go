package http

import (
	"github.com/gin-gonic/gin"

	"voicecal/internal/middleware"
)

const VoiceCalendarPath = "/webhook/voice-calendar"

// RegisterRoutes mounts the workflow-compatible webhook on r and the parse
// API on api. Both go through the token and rate-limit middleware.
func RegisterRoutes(r gin.IRoutes, api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	r.POST(VoiceCalendarPath, mw.Token(), mw.RateLimit(), h.VoiceCalendar)
	api.POST("/parse", mw.Token(), mw.RateLimit(), h.Parse)
}
