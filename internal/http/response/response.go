package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the body of cart mutation responses. CartItems is
// the number of distinct lines in the cart after the operation.
type MessageResponse struct {
	Message   string `json:"message"`
	CartItems int64  `json:"cart_items"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// OK writes data as-is with status 200. Collection endpoints pass
// slices directly; the body is a bare JSON array.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message writes a 200 with a message body.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// MessageWithCount writes a 200 cart mutation body.
func MessageWithCount(c *gin.Context, msg string, cartItems int64) {
	c.JSON(http.StatusOK, MessageResponse{Message: msg, CartItems: cartItems})
}

// Error writes an error body with the given status.
func Error(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorResponse{Detail: detail})
}

// NotFound writes a 404.
func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

// UnprocessableEntity writes a 422 for malformed or unparseable input.
func UnprocessableEntity(c *gin.Context, detail string) {
	Error(c, http.StatusUnprocessableEntity, detail)
}

// Internal writes a 500.
func Internal(c *gin.Context, detail string) {
	Error(c, http.StatusInternalServerError, detail)
}
