// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dreamstate/internal/http/handlers"
	"dreamstate/internal/http/middleware"
)

// NewRouter builds the gin engine with the chat webhook and the UI config
// endpoint. uiActions may be nil when no spreadsheet is configured.
func NewRouter(pipeline handlers.Pipeline, uiActions handlers.ActionSource) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logging())
	r.Use(middleware.CORS())

	chatHandler := handlers.NewChatHandler(pipeline)
	r.POST("/api/chat", chatHandler.Handle)

	uiHandler := handlers.NewUIHandler(uiActions)
	r.GET("/api/ui/actions", uiHandler.List)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
