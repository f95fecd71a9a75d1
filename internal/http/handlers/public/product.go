package public

import (
	"net/http"
	"strconv"

	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetProducts returns the catalog as a bare array, optionally filtered
// by the exact category query parameter.
func (h *Handler) GetProducts(c *gin.Context) {
	category := c.Query("category")
	products, err := h.CatalogService.List(category)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load products", err)
		return
	}
	response.OK(c, products)
}

// GetProduct returns a single product by id.
func (h *Handler) GetProduct(c *gin.Context) {
	rawID := c.Param("product_id")
	productID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		response.UnprocessableEntity(c, "Invalid product id")
		return
	}
	product, err := h.CatalogService.Get(uint(productID))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.OK(c, product)
}

// GetCategories returns the distinct product categories.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CatalogService.Categories()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load categories", err)
		return
	}
	response.OK(c, gin.H{"categories": categories})
}
