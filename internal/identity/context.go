package identity

import "github.com/gin-gonic/gin"

// ContextKey is the gin context key under which the auth middleware stores
// the verified caller identity.
const ContextKey = "identity"

// FromContext fetches the identity stored by the auth middleware.
func FromContext(c *gin.Context) (Identity, bool) {
	if c == nil {
		return Identity{}, false
	}
	val, ok := c.Get(ContextKey)
	if !ok {
		return Identity{}, false
	}
	ident, ok := val.(Identity)
	return ident, ok
}
