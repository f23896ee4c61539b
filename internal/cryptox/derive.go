package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"golang.org/x/crypto/hkdf"
)

// HKDF info strings. Each sub-key gets its own label; the verifiers that are
// sent to the server share no derivation path with the KEKs.
const (
	infoLoginVerifier    = "zkkeeper/v1/verifier/login"
	infoAdminVerifier    = "zkkeeper/v1/verifier/admin"
	infoPasswordKEK      = "zkkeeper/v1/kek/password"
	infoRecoveryVerifier = "zkkeeper/v1/verifier/recovery"
	infoRecoveryKEK      = "zkkeeper/v1/kek/recovery"

	recoveryExtractSalt = "zkkeeper/v1/recovery"
)

// RecoverySecretSize is the size of the out-of-band recovery secret.
const RecoverySecretSize = 32

var newKEK = NewKEK

func expand(secret, salt []byte, info string) ([]byte, error) {
	out := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, []byte(info)), out); err != nil {
		return nil, fmt.Errorf("hkdf %s: %w", info, err)
	}
	return out, nil
}

// PasswordKeys are the sub-keys expanded from a password base key.
type PasswordKeys struct {
	LoginVerifier []byte
	AdminVerifier []byte
	KEK           *KEK
}

// Wipe zeroes every sub-key.
func (k *PasswordKeys) Wipe() {
	if k == nil {
		return
	}
	common.WipeAll(k.LoginVerifier, k.AdminVerifier)
	k.KEK.Wipe()
}

// DerivePasswordKeys expands baseKey into the login verifier, the admin
// verifier and the password KEK. baseKey is not modified.
func DerivePasswordKeys(baseKey []byte) (*PasswordKeys, error) {
	if len(baseKey) != KeySize {
		return nil, fmt.Errorf("base key must be %d bytes", KeySize)
	}

	keys := &PasswordKeys{}
	var err error
	if keys.LoginVerifier, err = expand(baseKey, nil, infoLoginVerifier); err != nil {
		return nil, err
	}
	if keys.AdminVerifier, err = expand(baseKey, nil, infoAdminVerifier); err != nil {
		keys.Wipe()
		return nil, err
	}
	kek, err := expand(baseKey, nil, infoPasswordKEK)
	if err != nil {
		keys.Wipe()
		return nil, err
	}
	if keys.KEK, err = newKEK(kek); err != nil {
		common.WipeByteArray(kek)
		keys.Wipe()
		return nil, fmt.Errorf("password kek: %w", err)
	}
	return keys, nil
}

// RecoveryKeys are the sub-keys expanded from the recovery secret.
type RecoveryKeys struct {
	Verifier []byte
	KEK      *KEK
}

// Wipe zeroes every sub-key.
func (k *RecoveryKeys) Wipe() {
	if k == nil {
		return
	}
	common.WipeByteArray(k.Verifier)
	k.KEK.Wipe()
}

// DeriveRecoveryKeys expands a RecoverySecretSize secret. The secret is
// uniformly random, so it is not stretched and does not depend on the
// account's KDF salt, which changes on every password change.
func DeriveRecoveryKeys(secret []byte) (*RecoveryKeys, error) {
	if len(secret) != RecoverySecretSize {
		return nil, common.NewValidationError("recovery_secret", fmt.Sprintf("must be %d bytes", RecoverySecretSize))
	}

	keys := &RecoveryKeys{}
	var err error
	if keys.Verifier, err = expand(secret, []byte(recoveryExtractSalt), infoRecoveryVerifier); err != nil {
		return nil, err
	}
	kek, err := expand(secret, []byte(recoveryExtractSalt), infoRecoveryKEK)
	if err != nil {
		keys.Wipe()
		return nil, err
	}
	if keys.KEK, err = newKEK(kek); err != nil {
		common.WipeByteArray(kek)
		keys.Wipe()
		return nil, fmt.Errorf("recovery kek: %w", err)
	}
	return keys, nil
}

// NewRecoverySecret returns a fresh recovery secret.
func NewRecoverySecret() []byte {
	return common.GenerateRandByteArray(RecoverySecretSize)
}

// FormatRecoverySecret renders the secret as dash-separated hex groups.
func FormatRecoverySecret(secret []byte) string {
	h := hex.EncodeToString(secret)
	groups := make([]string, 0, len(h)/8+1)
	for len(h) > 8 {
		groups = append(groups, h[:8])
		h = h[8:]
	}
	groups = append(groups, h)
	return strings.Join(groups, "-")
}

// ParseRecoverySecret reverses FormatRecoverySecret. Whitespace and dashes are ignored.
func ParseRecoverySecret(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
	secret, err := hex.DecodeString(strings.ToLower(clean))
	if err != nil || len(secret) != RecoverySecretSize {
		return nil, common.NewValidationError("recovery_secret", "malformed")
	}
	return secret, nil
}
