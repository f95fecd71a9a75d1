package public

import (
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Welcome greets API clients at the root path.
func (h *Handler) Welcome(c *gin.Context) {
	response.Message(c, "Welcome to Luxe Jewelry Store API")
}

// Health reports process liveness.
func (h *Handler) Health(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}
