package service

import (
	"context"
	"testing"

	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/auth"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/constants"
)

type stubValidator struct {
	identity *auth.Identity
	err      error
}

func (v *stubValidator) Validate(_ context.Context, _ string) (*auth.Identity, error) {
	return v.identity, v.err
}

func TestResolveValidTokenWinsOverSession(t *testing.T) {
	svc := NewIdentityService(&stubValidator{identity: &auth.Identity{ID: "user123"}}, constants.DefaultSessionID)

	owner := svc.Resolve(context.Background(), "some-token", "session-abc")
	if owner.Kind != constants.OwnerKindUser || owner.ID != "user123" {
		t.Fatalf("valid token want user owner got %+v", owner)
	}
}

func TestResolveInvalidTokenFallsBackToSession(t *testing.T) {
	svc := NewIdentityService(&stubValidator{err: auth.ErrTokenInvalid}, constants.DefaultSessionID)

	owner := svc.Resolve(context.Background(), "broken-token", "session-abc")
	if owner.Kind != constants.OwnerKindSession || owner.ID != "session-abc" {
		t.Fatalf("invalid token want session owner got %+v", owner)
	}
}

func TestResolveNoCredentialsUsesDefaultSession(t *testing.T) {
	svc := NewIdentityService(&stubValidator{err: auth.ErrTokenInvalid}, constants.DefaultSessionID)

	owner := svc.Resolve(context.Background(), "", "")
	if owner.Kind != constants.OwnerKindSession || owner.ID != constants.DefaultSessionID {
		t.Fatalf("anonymous request want default session owner got %+v", owner)
	}
}

func TestResolveSessionOnlyRequest(t *testing.T) {
	svc := NewIdentityService(&stubValidator{identity: &auth.Identity{ID: "user123"}}, constants.DefaultSessionID)

	owner := svc.Resolve(context.Background(), "", "sess-42")
	if owner.Kind != constants.OwnerKindSession || owner.ID != "sess-42" {
		t.Fatalf("session-only request want session owner got %+v", owner)
	}
}
