package respond

import (
	"github.com/gin-gonic/gin"

	"resume-editor/internal/shared/telemetry"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Error logs the failure and aborts with a {"detail": message} body.
func Error(c *gin.Context, status int, message string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if resumeID := c.GetString("resumeId"); resumeID != "" {
		fields["resume_id"] = resumeID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Detail: message})
}
