package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "session_id"

const contextKeyFounderID = "founder_id"

// FounderIDFromContext returns the founder ID set by RequireSession, or "".
func FounderIDFromContext(c *gin.Context) string {
	v, ok := c.Get(contextKeyFounderID)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

// SetFounderID places a founder ID in the request context. Exposed for
// handler tests that bypass the session store.
func SetFounderID(c *gin.Context, founderID string) {
	c.Set(contextKeyFounderID, founderID)
}

// RequireSession checks for a valid session cookie and records the founder ID
// in context. Missing or invalid sessions get a 401.
func RequireSession(sessions *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		founderID, ok := sessions.GetFounderID(c.Request.Context(), sessionID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(contextKeyFounderID, founderID)
		c.Next()
	}
}
