package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is returned when a token fails validation. Callers
// treat it as "not logged in", never as a request failure.
var ErrTokenInvalid = errors.New("token invalid")

// Identity is the authenticated principal a token resolves to.
type Identity struct {
	ID    string
	Email string
}

// TokenValidator resolves a bearer token to an identity. A nil error
// with a nil identity never happens; failures return ErrTokenInvalid
// or a transport error.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*Identity, error)
}

// TokenClaims are the claims carried by locally issued tokens. The
// user id travels in the registered Subject field.
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// LocalValidator verifies HS256 tokens signed with a shared secret.
type LocalValidator struct {
	secret []byte
}

// NewLocalValidator creates a local validator.
func NewLocalValidator(secret string) *LocalValidator {
	return &LocalValidator{secret: []byte(secret)}
}

// Validate parses and verifies the token signature and expiry.
func (v *LocalValidator) Validate(_ context.Context, tokenString string) (*Identity, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &TokenClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	return &Identity{ID: claims.Subject, Email: claims.Email}, nil
}

// RemoteValidator asks an external auth service to validate the token.
type RemoteValidator struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// NewRemoteValidator creates a remote validator against the auth
// service at baseURL.
func NewRemoteValidator(baseURL string, timeout time.Duration) *RemoteValidator {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &RemoteValidator{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

type remoteIdentityResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Validate calls GET /api/auth/me with the bearer token. Any non-200
// answer means the token is invalid; transport errors surface as-is so
// callers can distinguish "rejected" from "unreachable".
func (v *RemoteValidator) Validate(ctx context.Context, tokenString string) (*Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/api/auth/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tokenString)
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, ErrTokenInvalid
	}

	var payload remoteIdentityResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("auth service response: %w", err)
	}
	if payload.ID == "" {
		return nil, ErrTokenInvalid
	}
	return &Identity{ID: payload.ID, Email: payload.Email}, nil
}
