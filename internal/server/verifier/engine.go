// Package verifier hashes client verifiers for storage and checks them.
//
// The client already sends a high-entropy value, but the server still runs
// its own peppered PBKDF2 so a dump of the account table is useless without
// the pepper, and a stolen hash cannot be replayed as a verifier.
package verifier

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	"golang.org/x/crypto/pbkdf2"
)

const fakeSaltLabel = "zkkeeper/v1/prelogin-salt|"

// Engine computes stored verifiers. It is safe for concurrent use.
type Engine struct {
	pepper         []byte
	fakeSaltSecret []byte
	iterations     int
}

// NewEngine copies pepper and fakeSaltSecret.
func NewEngine(pepper, fakeSaltSecret []byte, iterations int) (*Engine, error) {
	if len(pepper) == 0 || len(fakeSaltSecret) == 0 {
		return nil, fmt.Errorf("pepper and fake salt secret are required")
	}
	if iterations < 1 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}
	return &Engine{
		pepper:         append([]byte(nil), pepper...),
		fakeSaltSecret: append([]byte(nil), fakeSaltSecret...),
		iterations:     iterations,
	}, nil
}

// ComputeStoredVerifier returns PBKDF2-SHA256(raw || pepper, salt).
func (e *Engine) ComputeStoredVerifier(raw, salt []byte) ([]byte, error) {
	if len(raw) != cryptox.VerifierSize {
		return nil, common.NewValidationError("verifier", fmt.Sprintf("must be %d bytes", cryptox.VerifierSize))
	}
	if len(salt) != cryptox.SaltSize {
		return nil, common.NewValidationError("salt", fmt.Sprintf("must be %d bytes", cryptox.SaltSize))
	}
	return e.compute(raw, salt), nil
}

func (e *Engine) compute(raw, salt []byte) []byte {
	input := make([]byte, 0, len(raw)+len(e.pepper))
	input = append(input, raw...)
	input = append(input, e.pepper...)
	defer common.WipeByteArray(input)

	return pbkdf2.Key(input, salt, e.iterations, cryptox.VerifierSize, sha256.New)
}

// Verify recomputes the stored form of raw and compares it in constant time.
// Malformed input still costs one full computation.
func (e *Engine) Verify(raw, salt, stored []byte) bool {
	if len(raw) != cryptox.VerifierSize || len(salt) != cryptox.SaltSize {
		e.PerformDummyVerifierWork()
		return false
	}
	got := e.compute(raw, salt)
	if len(got) != len(stored) {
		return false
	}
	return subtle.ConstantTimeCompare(got, stored) == 1
}

// PerformDummyVerifierWork burns the same CPU as Verify on zeroed inputs.
// Callers invoke it wherever a real verification is skipped (unknown or
// locked account) so that the response time does not reveal which case hit.
func (e *Engine) PerformDummyVerifierWork() {
	zero := make([]byte, cryptox.VerifierSize)
	got := e.compute(zero, make([]byte, cryptox.SaltSize))
	_ = subtle.ConstantTimeCompare(got, zero)
}

// NewSalt returns a fresh per-verifier salt.
func (e *Engine) NewSalt() []byte {
	return common.GenerateRandByteArray(cryptox.SaltSize)
}

// FakeSalt derives a stable KDF salt for an account id that does not exist.
// Unknown ids always get the same answer, and answers for different ids are
// unrelated, so PreLogin cannot be used to enumerate accounts.
func (e *Engine) FakeSalt(accountID string) []byte {
	mac := hmac.New(sha256.New, e.fakeSaltSecret)
	mac.Write([]byte(fakeSaltLabel))
	mac.Write([]byte(accountID))
	return mac.Sum(nil)[:cryptox.SaltSize]
}
