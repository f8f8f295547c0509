package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "sessionId"

// SessionIDKey is the gin context key the resolved token is stored under.
const SessionIDKey = "session_id"

// RequireSession rejects requests that carry no session cookie. It does not
// resolve the token to a user; handlers do that themselves and answer 400
// when the lookup fails.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.String(http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session token stored by RequireSession.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
