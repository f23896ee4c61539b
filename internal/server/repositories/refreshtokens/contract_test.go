package refreshtokens

import (
	"context"
	"crypto/sha256"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/server/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

func hashOf(s string) []byte {
	h := sha256.Sum256([]byte(s))
	return h[:]
}

func newToken(account, raw string, created time.Time) *models.RefreshToken {
	return &models.RefreshToken{
		ID:            uuid.NewString(),
		AccountID:     account,
		TokenHash:     hashOf(raw),
		AccessJTIHash: hashOf("jti-" + raw),
		CreatedAt:     created,
		ExpiresAt:     created.Add(time.Hour),
	}
}

func newMiniredisRepo(t *testing.T) *RedisRepository {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})
	return NewRedisRepository(rdb)
}

func repos(t *testing.T) map[string]Repository {
	return map[string]Repository{
		"memory": NewMemoryRepository(),
		"redis":  newMiniredisRepo(t),
	}
}

func TestRepository_CreateFind(t *testing.T) {
	for name, repo := range repos(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			tok := newToken("acc-1", "raw-1", base)
			require.NoError(t, repo.Create(ctx, tok))

			got, err := repo.FindByHash(ctx, tok.TokenHash)
			require.NoError(t, err)
			assert.Equal(t, tok.ID, got.ID)
			assert.Equal(t, "acc-1", got.AccountID)
			assert.Equal(t, tok.AccessJTIHash, got.AccessJTIHash)
			assert.True(t, tok.ExpiresAt.Equal(got.ExpiresAt))
			assert.Nil(t, got.RevokedAt)
			assert.True(t, got.Live(base))

			_, err = repo.FindByHash(ctx, hashOf("nope"))
			assert.ErrorIs(t, err, common.ErrorNotFound)
		})
	}
}

func TestRepository_Rotate(t *testing.T) {
	for name, repo := range repos(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := newToken("acc-1", "raw-1", base)
			require.NoError(t, repo.Create(ctx, first))

			next := newToken("", "raw-2", base.Add(time.Minute))
			status, acc, err := repo.Rotate(ctx, first.TokenHash, next, base.Add(time.Minute))
			require.NoError(t, err)
			assert.Equal(t, models.RotateOK, status)
			assert.Equal(t, "acc-1", acc)
			assert.Equal(t, "acc-1", next.AccountID)

			old, err := repo.FindByHash(ctx, first.TokenHash)
			require.NoError(t, err)
			require.NotNil(t, old.RevokedAt)
			assert.Equal(t, models.RevokeRotated, *old.RevokedReason)

			fresh, err := repo.FindByHash(ctx, next.TokenHash)
			require.NoError(t, err)
			assert.Equal(t, "acc-1", fresh.AccountID)
			assert.Nil(t, fresh.RevokedAt)

			again := newToken("", "raw-3", base.Add(2*time.Minute))
			status, acc, err = repo.Rotate(ctx, first.TokenHash, again, base.Add(2*time.Minute))
			require.NoError(t, err)
			assert.Equal(t, models.RotateAlreadyRevoked, status)
			assert.Equal(t, "acc-1", acc)

			_, err = repo.FindByHash(ctx, again.TokenHash)
			assert.ErrorIs(t, err, common.ErrorNotFound, "a refused rotation must not store anything")
		})
	}
}

func TestRepository_RotateUnknownAndExpired(t *testing.T) {
	for name, repo := range repos(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			status, acc, err := repo.Rotate(ctx, hashOf("ghost"), newToken("", "x", base), base)
			require.NoError(t, err)
			assert.Equal(t, models.RotateNotFound, status)
			assert.Empty(t, acc)

			tok := newToken("acc-2", "raw-exp", base)
			require.NoError(t, repo.Create(ctx, tok))

			status, acc, err = repo.Rotate(ctx, tok.TokenHash, newToken("", "y", base), tok.ExpiresAt)
			require.NoError(t, err)
			assert.Equal(t, models.RotateExpired, status)
			assert.Equal(t, "acc-2", acc)
		})
	}
}

func TestRepository_ConcurrentRotateSingleWinner(t *testing.T) {
	for name, repo := range repos(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			tok := newToken("acc-c", "raw-c", base)
			require.NoError(t, repo.Create(ctx, tok))

			const n = 16
			var ok, revoked atomic.Int32
			var wg sync.WaitGroup
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					next := newToken("", uuid.NewString(), base)
					status, _, err := repo.Rotate(ctx, tok.TokenHash, next, base.Add(time.Second))
					if err != nil {
						t.Errorf("rotate: %v", err)
						return
					}
					switch status {
					case models.RotateOK:
						ok.Add(1)
					case models.RotateAlreadyRevoked:
						revoked.Add(1)
					}
				}(i)
			}
			wg.Wait()

			assert.Equal(t, int32(1), ok.Load())
			assert.Equal(t, int32(n-1), revoked.Load())
		})
	}
}

func TestRepository_RevokeAndRevokeAll(t *testing.T) {
	for name, repo := range repos(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			a1 := newToken("acc-a", "a1", base)
			a2 := newToken("acc-a", "a2", base)
			a3 := newToken("acc-a", "a3", base)
			b1 := newToken("acc-b", "b1", base)
			for _, tok := range []*models.RefreshToken{a1, a2, a3, b1} {
				require.NoError(t, repo.Create(ctx, tok))
			}

			require.NoError(t, repo.Revoke(ctx, a1.TokenHash, base, models.RevokeLogout))
			require.NoError(t, repo.Revoke(ctx, a1.TokenHash, base.Add(time.Hour), models.RevokeLogoutAll))
			require.NoError(t, repo.Revoke(ctx, hashOf("ghost"), base, models.RevokeLogout))

			got, _ := repo.FindByHash(ctx, a1.TokenHash)
			require.NotNil(t, got.RevokedAt)
			assert.Equal(t, models.RevokeLogout, *got.RevokedReason, "second revoke is a no-op")
			assert.True(t, base.Equal(*got.RevokedAt))

			n, err := repo.RevokeAllForAccount(ctx, "acc-a", base, models.RevokeReuseDetected)
			require.NoError(t, err)
			assert.Equal(t, int64(2), n)

			for _, tok := range []*models.RefreshToken{a2, a3} {
				got, _ := repo.FindByHash(ctx, tok.TokenHash)
				require.NotNil(t, got.RevokedAt)
				assert.Equal(t, models.RevokeReuseDetected, *got.RevokedReason)
			}

			other, _ := repo.FindByHash(ctx, b1.TokenHash)
			assert.Nil(t, other.RevokedAt, "other accounts are untouched")

			n, err = repo.RevokeAllForAccount(ctx, "acc-a", base, models.RevokeLogoutAll)
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestRepositories_ImplementInterface(t *testing.T) {
	var _ Repository = NewMemoryRepository()
	var _ Repository = NewRedisRepository(nil)
	var _ Repository = NewPostgresRepository(nil)
}
