package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-booster/internal/shared/server/respond"
)

// Handler exposes the authenticated-identity routes.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches identity routes to the router group. The routes sit
// behind the auth middleware, so a verified identity is always present.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.me)
	rg.POST("/auth/verify-token", h.verifyToken)
}

func (h *Handler) me(c *gin.Context) {
	ident, ok := FromContext(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "Invalid authentication credentials")
		return
	}
	respond.OK(c, ident)
}

func (h *Handler) verifyToken(c *gin.Context) {
	ident, ok := FromContext(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "Invalid authentication credentials")
		return
	}
	respond.OK(c, gin.H{"valid": true, "user": ident})
}
