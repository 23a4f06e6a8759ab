package identity

import (
	"context"
	"fmt"
	"strings"

	sharedauth "resume-booster/internal/shared/auth"
)

// TokenVerifier verifies the HS256 session tokens minted by the Google OAuth
// callback. It is the default Verifier for this deployment.
type TokenVerifier struct{}

// NewTokenVerifier constructs a TokenVerifier.
func NewTokenVerifier() *TokenVerifier {
	return &TokenVerifier{}
}

// Verify checks the token signature and expiry and adapts the claims into a
// typed Identity.
func (v *TokenVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	if err := ctx.Err(); err != nil {
		return Identity{}, err
	}

	claims, err := sharedauth.VerifyJWT(token)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if strings.TrimSpace(claims.Sub) == "" {
		return Identity{}, ErrUserNotFound
	}

	return Identity{
		ID:            claims.Sub,
		Email:         claims.Email,
		Name:          claims.Name,
		PictureURL:    claims.Picture,
		EmailVerified: claims.EmailVerified,
	}, nil
}

var _ Verifier = (*TokenVerifier)(nil)
