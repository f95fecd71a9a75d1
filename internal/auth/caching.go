package auth

import (
	"context"
	"time"

	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/cache"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/logger"
)

// CachingValidator wraps a validator with a Redis-backed identity
// cache. Cache failures never fail validation; they only cost a
// round-trip to the inner validator.
type CachingValidator struct {
	inner TokenValidator
	ttl   time.Duration
}

// NewCachingValidator wraps inner with caching. A non-positive ttl
// disables the write path.
func NewCachingValidator(inner TokenValidator, ttl time.Duration) *CachingValidator {
	return &CachingValidator{inner: inner, ttl: ttl}
}

// Validate checks the cache, then delegates and caches the result.
func (v *CachingValidator) Validate(ctx context.Context, tokenString string) (*Identity, error) {
	if cached, hit, err := cache.GetTokenIdentity(ctx, tokenString); err != nil {
		logger.Warnw("token_cache_read_failed", "error", err)
	} else if hit {
		return &Identity{ID: cached.UserID, Email: cached.Email}, nil
	}

	identity, err := v.inner.Validate(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	if v.ttl > 0 {
		entry := &cache.TokenIdentity{
			UserID:    identity.ID,
			Email:     identity.Email,
			CachedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(v.ttl).Unix(),
		}
		if err := cache.SetTokenIdentity(ctx, tokenString, entry, v.ttl); err != nil {
			logger.Warnw("token_cache_write_failed", "error", err)
		}
	}
	return identity, nil
}
