package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/server/models"
)

// MemoryRepository keeps accounts in process memory. It backs the server when
// no database is configured and is used by service tests. Values are copied
// on the way in and out so callers cannot alias stored state.
type MemoryRepository struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]*models.Account)}
}

func (r *MemoryRepository) Create(_ context.Context, a *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[a.ID]; ok {
		return common.ErrorAlreadyExists
	}
	r.accounts[a.ID] = cloneAccount(a)
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneAccount(a), nil
}

func (r *MemoryRepository) UpdateLockout(_ context.Context, id string, s models.Lockout, now time.Time) error {
	return r.update(id, now, func(a *models.Account) {
		a.Lockout = cloneLockout(s)
	})
}

func (r *MemoryRepository) UpdatePasswordCredentials(_ context.Context, id string, c models.PasswordCredentials, now time.Time) error {
	return r.update(id, now, func(a *models.Account) {
		applyPassword(a, c)
	})
}

func (r *MemoryRepository) ReplaceAllCredentials(_ context.Context, id string, c models.RecoveryCredentials, now time.Time) error {
	return r.update(id, now, func(a *models.Account) {
		applyPassword(a, c.PasswordCredentials)
		a.RecoveryVerifier = clone(c.RecoveryVerifier)
		a.RecoverySalt = clone(c.RecoverySalt)
		a.WrappedMKRecovery = c.WrappedMKRecovery.Clone()
		a.Lockout = models.Lockout{}
	})
}

func (r *MemoryRepository) update(id string, now time.Time, fn func(a *models.Account)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	fn(a)
	a.UpdatedAt = now
	return nil
}

func applyPassword(a *models.Account, c models.PasswordCredentials) {
	a.LoginVerifier = clone(c.LoginVerifier)
	a.LoginSalt = clone(c.LoginSalt)
	a.AdminVerifier = clone(c.AdminVerifier)
	a.AdminSalt = clone(c.AdminSalt)
	a.KDFSalt = clone(c.KDFSalt)
	a.KDFMode = c.KDFMode
	a.WrappedMKPassword = c.WrappedMKPassword.Clone()
	if c.WrappedMKRecovery != nil {
		a.WrappedMKRecovery = c.WrappedMKRecovery.Clone()
	}
	a.SchemaVersion = c.SchemaVersion
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneLockout(s models.Lockout) models.Lockout {
	return models.Lockout{
		FailedCount:  s.FailedCount,
		LastFailedAt: cloneTime(s.LastFailedAt),
		LockedUntil:  cloneTime(s.LockedUntil),
	}
}

func cloneAccount(a *models.Account) *models.Account {
	c := *a
	c.LoginVerifier = clone(a.LoginVerifier)
	c.LoginSalt = clone(a.LoginSalt)
	c.AdminVerifier = clone(a.AdminVerifier)
	c.AdminSalt = clone(a.AdminSalt)
	c.RecoveryVerifier = clone(a.RecoveryVerifier)
	c.RecoverySalt = clone(a.RecoverySalt)
	c.KDFSalt = clone(a.KDFSalt)
	c.WrappedMKPassword = a.WrappedMKPassword.Clone()
	c.WrappedMKRecovery = a.WrappedMKRecovery.Clone()
	c.Lockout = cloneLockout(a.Lockout)
	return &c
}
