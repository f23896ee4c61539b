package refreshtokens

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/server/models"
)

// MemoryRepository keeps refresh tokens in process memory behind one mutex,
// which makes every operation, Rotate included, atomic.
type MemoryRepository struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tokens: make(map[string]*models.RefreshToken)}
}

func (r *MemoryRepository) Create(_ context.Context, t *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[string(t.TokenHash)]; ok {
		return common.ErrorAlreadyExists
	}
	r.tokens[string(t.TokenHash)] = cloneToken(t)
	return nil
}

func (r *MemoryRepository) FindByHash(_ context.Context, hash []byte) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[string(hash)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneToken(t), nil
}

func (r *MemoryRepository) Rotate(_ context.Context, presentedHash []byte, next *models.RefreshToken, now time.Time) (models.RotateStatus, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.tokens[string(presentedHash)]
	if !ok {
		return models.RotateNotFound, "", nil
	}
	if cur.RevokedAt != nil {
		return models.RotateAlreadyRevoked, cur.AccountID, nil
	}
	if !now.Before(cur.ExpiresAt) {
		return models.RotateExpired, cur.AccountID, nil
	}

	revoke(cur, now, models.RevokeRotated)
	next.AccountID = cur.AccountID
	r.tokens[string(next.TokenHash)] = cloneToken(next)
	return models.RotateOK, cur.AccountID, nil
}

func (r *MemoryRepository) Revoke(_ context.Context, hash []byte, now time.Time, reason models.RevokeReason) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.tokens[string(hash)]; ok && t.RevokedAt == nil {
		revoke(t, now, reason)
	}
	return nil
}

func (r *MemoryRepository) RevokeAllForAccount(_ context.Context, accountID string, now time.Time, reason models.RevokeReason) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, t := range r.tokens {
		if t.AccountID == accountID && t.RevokedAt == nil {
			revoke(t, now, reason)
			n++
		}
	}
	return n, nil
}

func revoke(t *models.RefreshToken, now time.Time, reason models.RevokeReason) {
	at := now
	rr := reason
	t.RevokedAt = &at
	t.RevokedReason = &rr
}

func cloneToken(t *models.RefreshToken) *models.RefreshToken {
	c := *t
	c.TokenHash = append([]byte(nil), t.TokenHash...)
	if t.AccessJTIHash != nil {
		c.AccessJTIHash = append([]byte(nil), t.AccessJTIHash...)
	}
	if t.RevokedAt != nil {
		at := *t.RevokedAt
		c.RevokedAt = &at
	}
	if t.RevokedReason != nil {
		rr := *t.RevokedReason
		c.RevokedReason = &rr
	}
	return &c
}
