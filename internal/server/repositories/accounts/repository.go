// Package accounts stores zkkeeper accounts: verifier hashes, public KDF
// parameters, the two master-key wraps and lockout state.
package accounts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/server/models"
)

// Repository is the account store contract.
type Repository interface {
	// Create inserts a new account. A duplicate id yields common.ErrorAlreadyExists.
	Create(ctx context.Context, account *models.Account) error

	// Get returns the account or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.Account, error)

	// UpdateLockout overwrites the lockout fields.
	UpdateLockout(ctx context.Context, id string, state models.Lockout, now time.Time) error

	// UpdatePasswordCredentials replaces the password-derived credentials.
	UpdatePasswordCredentials(ctx context.Context, id string, creds models.PasswordCredentials, now time.Time) error

	// ReplaceAllCredentials replaces every credential in one statement and
	// clears the lockout state.
	ReplaceAllCredentials(ctx context.Context, id string, creds models.RecoveryCredentials, now time.Time) error
}
