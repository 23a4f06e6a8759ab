package respond

import (
	"github.com/gin-gonic/gin"

	"resume-booster/internal/shared/telemetry"
)

// ErrorResponse is the error body every endpoint returns. Detail is either a
// human-readable string or a structured object; existing clients depend on
// the "detail" field name.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

// Error sends a standardized error response and aborts the request.
func Error(c *gin.Context, status int, detail interface{}) {
	fields := map[string]any{
		"status":     status,
		"detail":     detail,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}
