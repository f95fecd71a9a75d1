package public

import (
	"net/http"
	"strconv"

	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/http/response"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/service"

	"github.com/gin-gonic/gin"
)

// AddToCartRequest is the body of an add-to-cart call.
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// GetCart returns the cart for the resolved owner as a bare array.
// The session_id query parameter names an anonymous cart; a valid
// bearer token overrides it.
func (h *Handler) GetCart(c *gin.Context) {
	owner := h.resolveOwner(c, c.Query("session_id"))
	items, err := h.CartService.List(owner)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load cart", err)
		return
	}
	response.OK(c, items)
}

// AddToCart puts a product in the cart named by the session_id path
// parameter. Adding a product already present merges quantities.
func (h *Handler) AddToCart(c *gin.Context) {
	owner := h.resolveOwner(c, c.Param("session_id"))
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Invalid request body")
		return
	}
	count, err := h.CartService.Add(owner, req.ProductID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.MessageWithCount(c, "Item added to cart", count)
}

// UpdateCartItem sets a line's quantity from the quantity query
// parameter. Quantity zero removes the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	owner := h.resolveOwner(c, c.Param("session_id"))
	itemID := c.Param("item_id")
	rawQuantity := c.Query("quantity")
	quantity, err := strconv.Atoi(rawQuantity)
	if err != nil {
		response.UnprocessableEntity(c, "Invalid quantity")
		return
	}
	outcome, count, err := h.CartService.UpdateQuantity(owner, itemID, quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	if outcome == service.OutcomeRemoved {
		response.MessageWithCount(c, "Item removed from cart", count)
		return
	}
	response.MessageWithCount(c, "Item quantity updated", count)
}

// RemoveCartItem deletes a line from the cart.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	owner := h.resolveOwner(c, c.Param("session_id"))
	itemID := c.Param("item_id")
	count, err := h.CartService.Remove(owner, itemID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.MessageWithCount(c, "Item removed from cart", count)
}

// ClearCart empties the cart. Clearing an absent cart succeeds.
func (h *Handler) ClearCart(c *gin.Context) {
	owner := h.resolveOwner(c, c.Param("session_id"))
	if err := h.CartService.Clear(owner); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to clear cart", err)
		return
	}
	response.Message(c, "Cart cleared")
}
