package public

import (
	"strings"

	handlershared "github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/http/handlers/shared"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/models"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

// bearerToken extracts the token from the Authorization header, or ""
// when the header is missing or not a Bearer scheme.
func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// resolveOwner picks the cart owner for the request from the bearer
// token and the given session id.
func (h *Handler) resolveOwner(c *gin.Context, sessionID string) models.CartOwner {
	return h.IdentityService.Resolve(c.Request.Context(), bearerToken(c), sessionID)
}
