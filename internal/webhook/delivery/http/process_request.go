package http

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"

	"voicecal/internal/webhook"
	"voicecal/pkg/workflow"
)

// processVoiceReq binds the workflow request body.
// Audio that is not valid base64, such as the mock payload, counts as absent.
func (h *handler) processVoiceReq(c *gin.Context) (webhook.ScheduleInput, error) {
	var req workflow.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		return webhook.ScheduleInput{}, errInvalidBody
	}

	in := webhook.ScheduleInput{Transcript: req.MockTranscription}
	if req.AudioFile != "" && req.AudioFile != workflow.MockAudio {
		if raw, err := base64.StdEncoding.DecodeString(req.AudioFile); err == nil {
			in.AudioBytes = len(raw)
		}
	}
	return in, nil
}

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (webhook.ParseInput, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return webhook.ParseInput{}, errInvalidBody
	}
	return req.toInput()
}
