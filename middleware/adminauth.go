package middleware

import (
	"crypto/subtle"
	"net/http"

	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

// AdminToken gates the admin routes behind a shared token from the
// X-Admin-Token header. An empty apiKey disables the gate, keeping the routes
// open for deployments that front them with something else.
func AdminToken(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		token := c.GetHeader("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
			utils.JSONError(c, http.StatusUnauthorized, "invalid admin token")
			c.Abort()
			return
		}
		c.Next()
	}
}
