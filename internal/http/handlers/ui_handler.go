// README: UI config handler; serves the cached sheet-backed action buttons.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dreamstate/internal/modules/uiconfig"
)

// ActionSource serves the prepared UI action list.
type ActionSource interface {
	Actions(ctx context.Context) ([]uiconfig.ActionItem, bool, error)
}

type UIHandler struct {
	actions ActionSource
}

func NewUIHandler(actions ActionSource) *UIHandler {
	return &UIHandler{actions: actions}
}

// List handles GET /api/ui/actions.
func (h *UIHandler) List(c *gin.Context) {
	if h.actions == nil {
		writeError(c, http.StatusInternalServerError, "ui config source not configured")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	items, cached, err := h.actions.Actions(ctx)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"items": items, "cached": cached})
}
