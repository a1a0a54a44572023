package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionIDHeader carries the caller's session id. Carts, rate
	// limits and idempotency keys are all scoped by it.
	SessionIDHeader = "X-Session-ID"

	// SessionIDKey is the gin context key the session id is stored under.
	SessionIDKey = "session_id"
)

// Session ensures every request carries a session id. A missing header
// gets a fresh server-issued id, echoed back so the client can keep it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionIDHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		c.Set(SessionIDKey, sessionID)
		c.Header(SessionIDHeader, sessionID)
		c.Next()
	}
}

// GetSessionID extracts the session id from the Gin context.
func GetSessionID(c *gin.Context) string {
	sessionID, exists := c.Get(SessionIDKey)
	if !exists {
		return ""
	}
	id, ok := sessionID.(string)
	if !ok {
		return ""
	}
	return id
}
