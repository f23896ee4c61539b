// Package models defines server-side data models persisted in the database.
package models

import (
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
)

// Account is everything the server knows about a user. Verifier fields hold
// the server's own peppered hash, never the value the client sent.
type Account struct {
	ID string

	LoginVerifier    []byte
	LoginSalt        []byte
	AdminVerifier    []byte
	AdminSalt        []byte
	RecoveryVerifier []byte
	RecoverySalt     []byte

	// KDFSalt and KDFMode are public parameters echoed back on PreLogin.
	KDFSalt []byte
	KDFMode cryptox.KDFMode

	WrappedMKPassword *cryptox.Envelope
	WrappedMKRecovery *cryptox.Envelope

	SchemaVersion int

	Lockout Lockout

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Lockout is the persisted part of the lockout state machine.
type Lockout struct {
	FailedCount  int
	LastFailedAt *time.Time
	LockedUntil  *time.Time
}

// PasswordCredentials replace the password-derived part of an account.
// WrappedMKRecovery is optional; nil keeps the stored recovery wrap.
type PasswordCredentials struct {
	LoginVerifier     []byte
	LoginSalt         []byte
	AdminVerifier     []byte
	AdminSalt         []byte
	KDFSalt           []byte
	KDFMode           cryptox.KDFMode
	WrappedMKPassword *cryptox.Envelope
	WrappedMKRecovery *cryptox.Envelope
	SchemaVersion     int
}

// RecoveryCredentials replace every credential of an account at once.
type RecoveryCredentials struct {
	PasswordCredentials
	RecoveryVerifier []byte
	RecoverySalt     []byte
}
