package identity

import (
	"context"
	"errors"
	"testing"

	sharedauth "resume-booster/internal/shared/auth"
)

func TestVerifyAdaptsClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "dev")

	token, err := sharedauth.SignJWT(sharedauth.Claims{
		Sub:           "google:42",
		Email:         "user@example.com",
		Name:          "Test User",
		Picture:       "https://example.com/p.png",
		EmailVerified: true,
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	ident, err := NewTokenVerifier().Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	want := Identity{
		ID:            "google:42",
		Email:         "user@example.com",
		Name:          "Test User",
		PictureURL:    "https://example.com/p.png",
		EmailVerified: true,
	}
	if ident != want {
		t.Fatalf("identity = %+v, want %+v", ident, want)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "dev")

	_, err := NewTokenVerifier().Verify(context.Background(), "not-a-token")
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestVerifyHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTokenVerifier().Verify(ctx, "anything")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
