package response

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"yourssu.com/blog/pkg/apperror"
)

// ErrorBody is the uniform error envelope. Every failure leaving the service
// carries the request path and the time the failure was reported.
type ErrorBody struct {
	Time      string `json:"time"`
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	RequestID string `json:"request_id,omitempty"`
}

// Error writes the standardized error response for a domain failure.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error] %s: %v", c.Request.URL.Path, err)
		message = apperror.ErrInternal.Error()
	}

	ErrorMessage(c, code, message)
}

// ErrorMessage writes the envelope with an explicit status and message,
// used for validation and binding failures that never reach a service.
func ErrorMessage(c *gin.Context, code int, message string) {
	requestID := c.GetString("request_id")

	c.AbortWithStatusJSON(code, ErrorBody{
		Time:      time.Now().Format(time.RFC3339),
		Status:    code,
		Message:   message,
		Path:      c.Request.URL.Path,
		RequestID: requestID,
	})
}
