package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the only response shape this service emits. Every request
// resolves to exactly one of the two fields.
type Envelope struct {
	Success any    `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success writes the payload under the "success" key.
func Success(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, Envelope{Success: payload})
}

// Error writes the message under the "error" key. The original service
// delivered validation failures with the default success status code, and
// clients depend on that, so errors ship as 200 as well.
func Error(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Error: message})
}
