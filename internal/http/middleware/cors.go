// README: CORS middleware for the browser chat client.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows the chat UI, served from any origin, to call the API.
// Preflight requests are answered with 204 and never reach a handler.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
