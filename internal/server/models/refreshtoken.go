package models

import "time"

// RevokeReason records why a refresh token stopped being live.
type RevokeReason string

const (
	RevokeLogout             RevokeReason = "logout"
	RevokeRotated            RevokeReason = "rotated"
	RevokeReuseDetected      RevokeReason = "reuse_detected"
	RevokeLogoutAll          RevokeReason = "logout_all"
	RevokeCredentialsChanged RevokeReason = "credentials_changed"
)

// RefreshToken is a stored refresh token. Only the SHA-256 of the raw token
// is kept. Revoked records are never deleted so reuse can be detected.
type RefreshToken struct {
	ID            string
	AccountID     string
	TokenHash     []byte
	AccessJTIHash []byte
	CreatedAt     time.Time
	ExpiresAt     time.Time
	RevokedAt     *time.Time
	RevokedReason *RevokeReason
}

// Live reports whether the token is unrevoked and unexpired at now.
func (t *RefreshToken) Live(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

// RotateStatus is the storage-level outcome of a rotation attempt.
type RotateStatus int

const (
	RotateNotFound RotateStatus = iota
	RotateExpired
	RotateAlreadyRevoked
	RotateOK
)
