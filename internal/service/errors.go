package service

import "errors"

// Sentinel errors mapped to HTTP statuses by the handler layer.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrLineNotFound    = errors.New("cart item not found")
	ErrInvalidQuantity = errors.New("invalid quantity")
)
