// README: Chat webhook handler; the single entry point of the message pipeline.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"dreamstate/internal/modules/chat"
)

// Pipeline is the message pipeline behind the webhook.
type Pipeline interface {
	Process(ctx context.Context, message string) (*chat.Envelope, error)
}

type ChatHandler struct {
	pipeline Pipeline
}

func NewChatHandler(pipeline Pipeline) *ChatHandler {
	return &ChatHandler{pipeline: pipeline}
}

// chatReq accepts the message under any of the legacy client key names.
type chatReq struct {
	Message      string `json:"message"`
	InputMessage string `json:"inputMessage"`
	Text         string `json:"text"`
}

func (r chatReq) message() string {
	for _, v := range []string{r.Message, r.InputMessage, r.Text} {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// Handle handles POST /api/chat.
func (h *ChatHandler) Handle(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	message := req.message()
	if message == "" {
		writeError(c, http.StatusBadRequest, "missing 'message' in request body")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	envelope, err := h.pipeline.Process(ctx, message)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, envelope)
}
