package ports

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenVerifier resolves a bearer credential to the acting user's
// identifier. Verification failures surface as ErrInvalidToken.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}
