package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicecal/pkg/response"
	"voicecal/pkg/workflow"
)

// VoiceCalendar godoc
// @Summary     Create a calendar event from a voice request
// @Description Parses mockTranscription, defaults to today and 09:00 when the
// @Description phrase has no date or time, and creates a one hour event.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-Webhook-Token header string false "Shared secret when configured"
// @Param       body body workflow.Request true "Voice request"
// @Success     200 {object} workflow.Response
// @Failure     400 {object} workflow.Response "Empty transcription or bad body"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     502 {object} workflow.Response "Calendar error"
// @Router      /webhook/voice-calendar [POST]
func (h *handler) VoiceCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processVoiceReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, workflow.Response{Success: false, Message: err.Error()})
		return
	}

	output, err := h.uc.Schedule(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		status, msg := h.mapError(err)
		c.JSON(status, workflow.Response{Success: false, Message: msg})
		return
	}

	c.JSON(http.StatusOK, h.newVoiceResp(output))
}

// Parse godoc
// @Summary     Parse a scheduling phrase
// @Description Extracts the date, time and event markers and resolves them
// @Description against reference (YYYY-MM-DD) or today.
// @Tags        Parse
// @Accept      json
// @Produce     json
// @Param       X-Webhook-Token header string false "Shared secret when configured"
// @Param       body body parseReq true "Text to parse"
// @Success     200 {object} response.Resp{data=parseResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, input)
	if err != nil {
		status, _ := h.mapError(err)
		if status != http.StatusBadRequest {
			h.l.Errorf(ctx, "uc.Parse: %v", err)
			response.InternalError(c, err)
			return
		}
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}
