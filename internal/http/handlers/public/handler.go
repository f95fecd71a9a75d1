package public

import "github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/provider"

// Handler serves the storefront API.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
