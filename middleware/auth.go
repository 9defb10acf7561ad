package middleware

import (
	"net/http"
	"strings"

	"gym-backend/utils"

	"github.com/gin-gonic/gin"
)

// RequireAuth validates a Bearer access token and stores the admin id in the
// context under "admin_id". The secret must match the one used at login.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		adminID, err := utils.ParseAccessToken(secret, strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set("admin_id", adminID)
		c.Next()
	}
}
