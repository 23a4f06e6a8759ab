package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-booster/internal/identity"
	"resume-booster/internal/shared/server/respond"
)

const userIDKey = "userId"

// Auth validates the bearer credential on every request and stores the
// verified identity in context. Paths matching a skip prefix pass through
// unauthenticated (OAuth redirect endpoints). Verification happens before
// any handler runs; no storage or inference work starts for a rejected call.
func Auth(verifier identity.Verifier, skipPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		path := c.Request.URL.Path
		for _, prefix := range skipPrefixes {
			if prefix != "" && strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "Invalid authentication credentials: missing bearer token")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "Invalid authentication credentials: missing bearer token")
			return
		}

		ident, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, identity.ErrUserNotFound) {
				respond.Error(c, http.StatusNotFound, "user not found")
				return
			}
			respond.Error(c, http.StatusUnauthorized, "Invalid authentication credentials: "+err.Error())
			return
		}

		c.Set(identity.ContextKey, ident)
		c.Set(userIDKey, ident.ID)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
