package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Verifier checks an admin access code.
type Verifier interface {
	VerifyCode(ctx context.Context, code string) (bool, error)
}

// RequireAccessCode gates mutating routes on a valid active access code in
// the X-Admin-Code header. The code is verified on every request; there is
// no session.
func RequireAccessCode(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.TrimSpace(c.GetHeader("X-Admin-Code"))
		if code == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "missing access code",
			})
			return
		}

		ok, err := v.VerifyCode(c.Request.Context(), code)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"ok":    false,
				"error": "access check failed",
			})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "invalid access code",
			})
			return
		}

		c.Next()
	}
}

// NotConfigured replaces the access gate in degraded mode so mutating
// routes fail with a configuration error instead of a nil verifier panic.
func NotConfigured() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"ok":    false,
			"error": "storage backend is not configured",
		})
	}
}
