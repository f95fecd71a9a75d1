package public

import (
	"errors"
	"net/http"

	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds a service error to an HTTP status and a
// client-facing detail message.
type mappedHandlerError struct {
	target error
	code   int
	detail string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackDetail string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.detail, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackDetail, err)
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: http.StatusNotFound, detail: "Product not found"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: http.StatusNotFound, detail: "Product not found"},
	{target: service.ErrCartNotFound, code: http.StatusNotFound, detail: "Cart not found"},
	{target: service.ErrLineNotFound, code: http.StatusNotFound, detail: "Item not found in cart"},
	{target: service.ErrInvalidQuantity, code: http.StatusUnprocessableEntity, detail: "Invalid quantity"},
}

func respondCatalogError(c *gin.Context, err error) {
	respondWithMappedError(c, err, catalogErrorRules, http.StatusInternalServerError, "Failed to load product")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "Cart operation failed")
}
