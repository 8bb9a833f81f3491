package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"patrol-watch/backend/internal/api/middleware"
	"patrol-watch/backend/pkg/response"
)

// MustGetUserID extracts the caller's user id from the gin context.
// Writes a 401 and returns false when the auth middleware did not run.
// Callers should return immediately on ok=false.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxUserID)
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole extracts the caller's role from the gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxRole)
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetToken extracts the token's jti and expiry from the gin context.
func MustGetToken(c *gin.Context) (string, time.Time, bool) {
	jtiVal, exists := c.Get(middleware.CtxTokenJTI)
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	jti, ok := jtiVal.(string)
	if !ok || jti == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}

	expVal, exists := c.Get(middleware.CtxTokenExp)
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	exp, ok := expVal.(time.Time)
	if !ok {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}

	return jti, exp, true
}
