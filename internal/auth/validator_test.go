package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, secret string, claims TokenClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	return signed
}

func TestLocalValidatorAcceptsSignedToken(t *testing.T) {
	validator := NewLocalValidator("unit-test-secret")
	tokenString := signTestToken(t, "unit-test-secret", TokenClaims{
		Email: "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	identity, err := validator.Validate(context.Background(), tokenString)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if identity.ID != "user123" || identity.Email != "test@example.com" {
		t.Fatalf("identity want user123/test@example.com got %+v", identity)
	}
}

func TestLocalValidatorRejectsBadTokens(t *testing.T) {
	validator := NewLocalValidator("unit-test-secret")

	if _, err := validator.Validate(context.Background(), "not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("garbage token want ErrTokenInvalid got %v", err)
	}

	wrongSecret := signTestToken(t, "other-secret", TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user123"},
	})
	if _, err := validator.Validate(context.Background(), wrongSecret); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("wrong secret want ErrTokenInvalid got %v", err)
	}

	expired := signTestToken(t, "unit-test-secret", TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	if _, err := validator.Validate(context.Background(), expired); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expired token want ErrTokenInvalid got %v", err)
	}

	noSubject := signTestToken(t, "unit-test-secret", TokenClaims{Email: "x@example.com"})
	if _, err := validator.Validate(context.Background(), noSubject); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("token without subject want ErrTokenInvalid got %v", err)
	}
}

func TestRemoteValidatorResolvesIdentity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/me" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer token-abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"user123","email":"test@example.com"}`))
	}))
	defer server.Close()

	validator := NewRemoteValidator(server.URL, time.Second)

	identity, err := validator.Validate(context.Background(), "token-abc")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if identity.ID != "user123" {
		t.Fatalf("identity want user123 got %+v", identity)
	}

	if _, err := validator.Validate(context.Background(), "bad-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("rejected token want ErrTokenInvalid got %v", err)
	}
}

func TestRemoteValidatorUnreachableServiceIsNotTokenInvalid(t *testing.T) {
	validator := NewRemoteValidator("http://127.0.0.1:1", 200*time.Millisecond)

	_, err := validator.Validate(context.Background(), "token-abc")
	if err == nil {
		t.Fatalf("unreachable service must fail")
	}
	if errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("transport failure must not look like a rejected token")
	}
}

func TestCachingValidatorDelegatesWithoutRedis(t *testing.T) {
	validator := NewCachingValidator(NewLocalValidator("unit-test-secret"), time.Minute)
	tokenString := signTestToken(t, "unit-test-secret", TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user123"},
	})

	identity, err := validator.Validate(context.Background(), tokenString)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if identity.ID != "user123" {
		t.Fatalf("identity want user123 got %+v", identity)
	}

	if _, err := validator.Validate(context.Background(), "junk"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("invalid token want ErrTokenInvalid got %v", err)
	}
}
