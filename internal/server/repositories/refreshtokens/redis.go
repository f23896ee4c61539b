package refreshtokens

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/server/models"
	"github.com/redis/go-redis/v9"
)

// Redis layout:
//
//	rt:<hex(token_hash)>  HASH  id account_id jti_hash created_at expires_at [revoked_at revoked_reason]
//	rta:<account_id>      SET   hex(token_hash) of every token ever issued to the account
//
// Timestamps are unix milliseconds. Records carry no TTL; revoked ones must
// outlive their expiry so reuse is still detected.
const (
	tokenKeyPrefix   = "rt:"
	accountKeyPrefix = "rta:"
)

const rotateScript = `
local rec = redis.call("HMGET", KEYS[1], "account_id", "expires_at", "revoked_at")
if not rec[1] then
  return {0, ""}
end
if rec[3] then
  return {2, rec[1]}
end
local now = tonumber(ARGV[1])
if tonumber(rec[2]) <= now then
  return {1, rec[1]}
end

redis.call("HSET", KEYS[1], "revoked_at", ARGV[1], "revoked_reason", ARGV[2])
redis.call("HSET", KEYS[2],
  "id", ARGV[3], "account_id", rec[1], "jti_hash", ARGV[4],
  "created_at", ARGV[5], "expires_at", ARGV[6])
redis.call("SADD", ARGV[7] .. rec[1], ARGV[8])
return {3, rec[1]}
`

const revokeScript = `
if redis.call("EXISTS", KEYS[1]) == 0 then
  return 0
end
if redis.call("HEXISTS", KEYS[1], "revoked_at") == 1 then
  return 0
end
redis.call("HSET", KEYS[1], "revoked_at", ARGV[1], "revoked_reason", ARGV[2])
return 1
`

const revokeAllScript = `
local n = 0
for _, h in ipairs(redis.call("SMEMBERS", KEYS[1])) do
  local k = ARGV[3] .. h
  if redis.call("EXISTS", k) == 1 and redis.call("HEXISTS", k, "revoked_at") == 0 then
    redis.call("HSET", k, "revoked_at", ARGV[1], "revoked_reason", ARGV[2])
    n = n + 1
  end
end
return n
`

var (
	rotateLua    = redis.NewScript(rotateScript)
	revokeLua    = redis.NewScript(revokeScript)
	revokeAllLua = redis.NewScript(revokeAllScript)
)

// RedisRepository keeps refresh tokens in Redis. Every state change runs as
// a Lua script, so a rotation is a single compare-and-set.
type RedisRepository struct {
	rdb redis.UniversalClient
}

func NewRedisRepository(rdb redis.UniversalClient) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

func tokenKey(hash []byte) string {
	return tokenKeyPrefix + hex.EncodeToString(hash)
}

func accountKey(accountID string) string {
	return accountKeyPrefix + accountID
}

func millis(t time.Time) int64 {
	return t.UnixMilli()
}

func (r *RedisRepository) Create(ctx context.Context, t *models.RefreshToken) error {
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, tokenKey(t.TokenHash),
			"id", t.ID,
			"account_id", t.AccountID,
			"jti_hash", hex.EncodeToString(t.AccessJTIHash),
			"created_at", millis(t.CreatedAt),
			"expires_at", millis(t.ExpiresAt),
		)
		pipe.SAdd(ctx, accountKey(t.AccountID), hex.EncodeToString(t.TokenHash))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}

func (r *RedisRepository) FindByHash(ctx context.Context, hash []byte) (*models.RefreshToken, error) {
	fields, err := r.rdb.HGetAll(ctx, tokenKey(hash)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if len(fields) == 0 {
		return nil, common.ErrorNotFound
	}

	t := &models.RefreshToken{
		ID:        fields["id"],
		AccountID: fields["account_id"],
		TokenHash: append([]byte(nil), hash...),
	}
	if t.AccessJTIHash, err = hex.DecodeString(fields["jti_hash"]); err != nil {
		return nil, fmt.Errorf("%w: jti_hash: %v", common.ErrIntegrity, err)
	}
	if t.CreatedAt, err = parseMillis(fields["created_at"]); err != nil {
		return nil, err
	}
	if t.ExpiresAt, err = parseMillis(fields["expires_at"]); err != nil {
		return nil, err
	}
	if v, ok := fields["revoked_at"]; ok {
		at, err := parseMillis(v)
		if err != nil {
			return nil, err
		}
		reason := models.RevokeReason(fields["revoked_reason"])
		t.RevokedAt = &at
		t.RevokedReason = &reason
	}
	if len(t.AccessJTIHash) == 0 {
		t.AccessJTIHash = nil
	}
	return t, nil
}

func parseMillis(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q", common.ErrIntegrity, s)
	}
	return time.UnixMilli(ms).UTC(), nil
}

func (r *RedisRepository) Rotate(ctx context.Context, presentedHash []byte, next *models.RefreshToken, now time.Time) (models.RotateStatus, string, error) {
	result, err := rotateLua.Run(ctx, r.rdb,
		[]string{tokenKey(presentedHash), tokenKey(next.TokenHash)},
		millis(now),
		string(models.RevokeRotated),
		next.ID,
		hex.EncodeToString(next.AccessJTIHash),
		millis(next.CreatedAt),
		millis(next.ExpiresAt),
		accountKeyPrefix,
		hex.EncodeToString(next.TokenHash),
	).Result()
	if err != nil {
		return models.RotateNotFound, "", fmt.Errorf("redis error: %w", err)
	}

	parts, ok := result.([]interface{})
	if !ok || len(parts) != 2 {
		return models.RotateNotFound, "", errors.New("redis error: invalid rotate script response")
	}
	code, ok := parts[0].(int64)
	if !ok {
		return models.RotateNotFound, "", errors.New("redis error: invalid rotate script status")
	}
	accountID, _ := parts[1].(string)

	switch models.RotateStatus(code) {
	case models.RotateNotFound:
		return models.RotateNotFound, "", nil
	case models.RotateExpired, models.RotateAlreadyRevoked:
		return models.RotateStatus(code), accountID, nil
	case models.RotateOK:
		next.AccountID = accountID
		return models.RotateOK, accountID, nil
	default:
		return models.RotateNotFound, "", fmt.Errorf("redis error: unknown rotate status %d", code)
	}
}

func (r *RedisRepository) Revoke(ctx context.Context, hash []byte, now time.Time, reason models.RevokeReason) error {
	if err := revokeLua.Run(ctx, r.rdb, []string{tokenKey(hash)}, millis(now), string(reason)).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}

func (r *RedisRepository) RevokeAllForAccount(ctx context.Context, accountID string, now time.Time, reason models.RevokeReason) (int64, error) {
	n, err := revokeAllLua.Run(ctx, r.rdb, []string{accountKey(accountID)}, millis(now), string(reason), tokenKeyPrefix).Int64()
	if err != nil {
		return 0, fmt.Errorf("redis error: %w", err)
	}
	return n, nil
}
