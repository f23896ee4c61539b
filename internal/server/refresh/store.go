// Package refresh mints, rotates and revokes opaque refresh tokens.
//
// A raw token is 64 random bytes, base64url encoded without padding. It is
// returned to the client once; only its SHA-256 is stored.
package refresh

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/server/models"
	"github.com/dmitrijs2005/zkkeeper/internal/server/repositories/refreshtokens"
	"github.com/google/uuid"
)

// TokenSize is the raw token length in bytes.
const TokenSize = 64

var encoding = base64.RawURLEncoding

// Outcome is the result class of a rotation.
type Outcome int

const (
	// Invalid covers unknown, malformed and expired tokens.
	Invalid Outcome = iota
	// Revoked means an already revoked token was presented again.
	Revoked
	// Rotated means a new token replaced the presented one.
	Rotated
)

func (o Outcome) String() string {
	switch o {
	case Revoked:
		return "revoked"
	case Rotated:
		return "rotated"
	default:
		return "invalid"
	}
}

// Minted is a freshly issued token.
type Minted struct {
	Token     string
	ExpiresAt time.Time
}

// RotateResult describes a rotation. AccountID is set for Revoked and
// Rotated; Token and ExpiresAt only for Rotated.
type RotateResult struct {
	Outcome   Outcome
	AccountID string
	Token     string
	ExpiresAt time.Time
}

// Store wraps a refreshtokens.Repository with token generation and hashing.
type Store struct {
	repo refreshtokens.Repository
	ttl  time.Duration
}

func NewStore(repo refreshtokens.Repository, ttl time.Duration) *Store {
	return &Store{repo: repo, ttl: ttl}
}

// HashToken returns the storage key of a raw token, or false if the token is
// not well formed.
func HashToken(token string) ([]byte, bool) {
	raw, err := encoding.DecodeString(token)
	if err != nil || len(raw) != TokenSize {
		return nil, false
	}
	sum := sha256.Sum256(raw)
	common.WipeByteArray(raw)
	return sum[:], true
}

func (s *Store) newRecord(accountID string, jtiHash []byte, now time.Time) (*models.RefreshToken, string) {
	raw := common.GenerateRandByteArray(TokenSize)
	defer common.WipeByteArray(raw)

	sum := sha256.Sum256(raw)
	return &models.RefreshToken{
		ID:            uuid.NewString(),
		AccountID:     accountID,
		TokenHash:     sum[:],
		AccessJTIHash: jtiHash,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.ttl),
	}, encoding.EncodeToString(raw)
}

// Mint stores a new live token for accountID.
func (s *Store) Mint(ctx context.Context, accountID string, jtiHash []byte, now time.Time) (*Minted, error) {
	rec, token := s.newRecord(accountID, jtiHash, now)
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return &Minted{Token: token, ExpiresAt: rec.ExpiresAt}, nil
}

// Rotate exchanges presented for a new token. A Revoked outcome is a reuse
// signal; the caller decides how to react.
func (s *Store) Rotate(ctx context.Context, presented string, newJTIHash []byte, now time.Time) (*RotateResult, error) {
	hash, ok := HashToken(presented)
	if !ok {
		return &RotateResult{Outcome: Invalid}, nil
	}

	next, token := s.newRecord("", newJTIHash, now)

	status, accountID, err := s.repo.Rotate(ctx, hash, next, now)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.RotateOK:
		return &RotateResult{Outcome: Rotated, AccountID: accountID, Token: token, ExpiresAt: next.ExpiresAt}, nil
	case models.RotateAlreadyRevoked:
		return &RotateResult{Outcome: Revoked, AccountID: accountID}, nil
	default:
		return &RotateResult{Outcome: Invalid}, nil
	}
}

// Revoke revokes the presented token if it is live. Malformed and unknown
// tokens are ignored.
func (s *Store) Revoke(ctx context.Context, presented string, now time.Time, reason models.RevokeReason) error {
	hash, ok := HashToken(presented)
	if !ok {
		return nil
	}
	return s.repo.Revoke(ctx, hash, now, reason)
}

// RevokeAll revokes every live token of the account.
func (s *Store) RevokeAll(ctx context.Context, accountID string, now time.Time, reason models.RevokeReason) (int64, error) {
	return s.repo.RevokeAllForAccount(ctx, accountID, now, reason)
}

// Lookup returns the stored record of a presented token.
func (s *Store) Lookup(ctx context.Context, presented string) (*models.RefreshToken, error) {
	hash, ok := HashToken(presented)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return s.repo.FindByHash(ctx, hash)
}
