package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harborview/realty-core/internal/pkg/jwt"
	"github.com/harborview/realty-core/internal/pkg/response"
)

// Auth returns a middleware that enforces the admin credential. It rejects
// the request before any store access happens, so an invalid token never
// leaks information about record existence.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !jwt.Verify(ExtractToken(c)) {
			response.Unauthorized(c, "Invalid or expired token")
			return
		}
		c.Next()
	}
}

// ExtractToken pulls the bearer token from the Authorization header, with a
// ?token= query fallback for callers that cannot set headers.
func ExtractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
