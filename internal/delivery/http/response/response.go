package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope standardizes the API JSON response shape.
type Envelope struct {
	IsSuccess  bool        `json:"isSuccess"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	ID         *int64      `json:"id,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	RequestID  string      `json:"requestId,omitempty"`
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}

// Success sends a success envelope.
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Envelope{
		IsSuccess:  true,
		StatusCode: code,
		Message:    message,
		Data:       data,
		RequestID:  requestID(c),
	})
}

// SuccessWithID sends a success envelope carrying a new entity id.
func SuccessWithID(c *gin.Context, code int, message string, id int64) {
	c.JSON(code, Envelope{
		IsSuccess:  true,
		StatusCode: code,
		Message:    message,
		ID:         &id,
		RequestID:  requestID(c),
	})
}

// Error sends a failure envelope.
func Error(c *gin.Context, code int, message string, errs []string) {
	c.JSON(code, Envelope{
		IsSuccess:  false,
		StatusCode: code,
		Message:    message,
		Errors:     errs,
		RequestID:  requestID(c),
	})
}
