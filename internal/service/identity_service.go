package service

import (
	"context"
	"strings"

	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/auth"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/logger"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/models"
)

// IdentityService maps request credentials to a cart owner.
type IdentityService struct {
	validator      auth.TokenValidator
	defaultSession string
}

// NewIdentityService creates an identity service. defaultSession is
// the owner used when a request carries neither token nor session id.
func NewIdentityService(validator auth.TokenValidator, defaultSession string) *IdentityService {
	return &IdentityService{validator: validator, defaultSession: defaultSession}
}

// Resolve picks the cart owner for a request. A valid token wins over
// the session id. An invalid or unverifiable token is ignored, not
// rejected: the request proceeds under its session identity. Carts
// are never blocked on the auth service being down.
func (s *IdentityService) Resolve(ctx context.Context, token, sessionID string) models.CartOwner {
	token = strings.TrimSpace(token)
	if token != "" && s.validator != nil {
		identity, err := s.validator.Validate(ctx, token)
		if err == nil && identity != nil {
			return models.UserOwner(identity.ID)
		}
		logger.Debugw("token_validation_failed", "error", err)
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID != "" {
		return models.SessionOwner(sessionID)
	}
	return models.SessionOwner(s.defaultSession)
}
