// Package refreshtokens declares the server-side repository contract for
// refresh tokens and its PostgreSQL, Redis and in-memory implementations.
//
// Tokens are addressed by the SHA-256 of the raw token. Revoked records are
// kept so that a second presentation of a rotated token can be recognized.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/server/models"
)

// Repository defines storage operations for refresh tokens.
type Repository interface {
	// Create stores a new live token.
	Create(ctx context.Context, t *models.RefreshToken) error

	// FindByHash returns the token with the given hash or common.ErrorNotFound.
	FindByHash(ctx context.Context, hash []byte) (*models.RefreshToken, error)

	// Rotate atomically revokes the live token presentedHash (reason
	// "rotated") and stores next for the same account. Only one of several
	// concurrent rotations of the same token can return RotateOK; the others
	// see RotateAlreadyRevoked. The returned account id is set for every
	// status except RotateNotFound. next.AccountID is filled in on success.
	Rotate(ctx context.Context, presentedHash []byte, next *models.RefreshToken, now time.Time) (models.RotateStatus, string, error)

	// Revoke marks one live token revoked. Unknown or already revoked tokens are a no-op.
	Revoke(ctx context.Context, hash []byte, now time.Time, reason models.RevokeReason) error

	// RevokeAllForAccount revokes every unrevoked token of the account and
	// returns how many were revoked.
	RevokeAllForAccount(ctx context.Context, accountID string, now time.Time, reason models.RevokeReason) (int64, error)
}
