package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"workwithme/pkg/utils"
)

// AdminVerifier checks admin credentials. Implemented by the auth service.
type AdminVerifier interface {
	VerifyPassword(password string) bool
	VerifySessionToken(token string) bool
}

// AdminAuthMiddleware guards admin routes. It accepts either the shared
// admin password via Basic auth or a session token via Bearer auth, and
// rejects the request before any handler logic runs otherwise.
func AdminAuthMiddleware(verifier AdminVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, password, ok := c.Request.BasicAuth(); ok {
			if verifier.VerifyPassword(password) {
				c.Next()
				return
			}
			utils.RespondError(c, http.StatusUnauthorized, "Invalid admin credentials")
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if verifier.VerifySessionToken(token) {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusUnauthorized, "Missing or invalid admin credentials")
		c.Abort()
	}
}
