package identity

import (
	"context"
	"errors"
)

// Identity is the typed view of an authenticated principal. It is built at
// the provider boundary; no provider-specific object crosses into the core.
type Identity struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	PictureURL    string `json:"photoUrl,omitempty"`
	EmailVerified bool   `json:"emailVerified"`
}

var (
	// ErrUnauthenticated signals a missing, invalid, expired or revoked credential.
	ErrUnauthenticated = errors.New("invalid authentication credentials")
	// ErrUserNotFound signals a credential referencing a principal the
	// provider no longer knows.
	ErrUserNotFound = errors.New("user not found")
)

// Verifier validates a bearer credential and resolves the caller identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
