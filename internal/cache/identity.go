package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// TokenIdentity is the cached result of a successful token validation.
// Tokens themselves are never stored; the cache key is a SHA-256 digest
// of the raw token.
type TokenIdentity struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	CachedAt  int64  `json:"cached_at"`
	ExpiresAt int64  `json:"expires_at"`
}

func tokenIdentityKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("auth:token:%s", hex.EncodeToString(sum[:]))
}

// GetTokenIdentity reads a cached identity for the token.
func GetTokenIdentity(ctx context.Context, token string) (*TokenIdentity, bool, error) {
	if token == "" {
		return nil, false, nil
	}
	var identity TokenIdentity
	hit, err := GetJSON(ctx, tokenIdentityKey(token), &identity)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &identity, true, nil
}

// SetTokenIdentity caches the identity resolved for the token.
func SetTokenIdentity(ctx context.Context, token string, identity *TokenIdentity, ttl time.Duration) error {
	if token == "" || identity == nil || identity.UserID == "" {
		return nil
	}
	if identity.CachedAt == 0 {
		identity.CachedAt = time.Now().Unix()
	}
	return SetJSON(ctx, tokenIdentityKey(token), identity, ttl)
}

// DelTokenIdentity drops the cached identity for the token.
func DelTokenIdentity(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return Del(ctx, tokenIdentityKey(token))
}
