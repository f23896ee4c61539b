package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
)

// Envelope is the {nonce, ciphertext, tag} triple produced by AES-256-GCM.
// It is used both for master-key wraps and for vault payloads.
type Envelope struct {
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
	Tag        []byte `json:"tag"`
}

// Validate checks the fixed-size fields. ciphertextLen < 0 accepts any
// ciphertext length; otherwise the ciphertext must have exactly that length.
func (e *Envelope) Validate(field string, ciphertextLen int) error {
	if e == nil {
		return common.NewValidationError(field, "missing")
	}
	if len(e.Nonce) != NonceSize {
		return common.NewValidationError(field+".nonce", fmt.Sprintf("must be %d bytes", NonceSize))
	}
	if len(e.Tag) != TagSize {
		return common.NewValidationError(field+".tag", fmt.Sprintf("must be %d bytes", TagSize))
	}
	if ciphertextLen >= 0 && len(e.Ciphertext) != ciphertextLen {
		return common.NewValidationError(field+".ciphertext", fmt.Sprintf("must be %d bytes", ciphertextLen))
	}
	return nil
}

// Clone returns a deep copy of e.
func (e *Envelope) Clone() *Envelope {
	if e == nil {
		return nil
	}
	return &Envelope{
		Nonce:      append([]byte(nil), e.Nonce...),
		Ciphertext: append([]byte(nil), e.Ciphertext...),
		Tag:        append([]byte(nil), e.Tag...),
	}
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("aead key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext under key, binding aad. A fresh random nonce is
// drawn on every call.
func Seal(key, plaintext, aad []byte) (*Envelope, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("nonce generation: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, plaintext, aad)
	split := len(sealed) - TagSize

	return &Envelope{
		Nonce:      nonce,
		Ciphertext: sealed[:split:split],
		Tag:        sealed[split:],
	}, nil
}

// Open decrypts env under key. Any tag mismatch, including a different aad,
// yields common.ErrAuthenticationFailed and no plaintext.
func Open(key []byte, env *Envelope, aad []byte) ([]byte, error) {
	if err := env.Validate("envelope", -1); err != nil {
		return nil, err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(env.Ciphertext)+TagSize)
	sealed = append(sealed, env.Ciphertext...)
	sealed = append(sealed, env.Tag...)

	plaintext, err := gcm.Open(nil, env.Nonce, sealed, aad)
	if err != nil {
		return nil, common.ErrAuthenticationFailed
	}
	return plaintext, nil
}

// Slot names one of the two master-key wraps.
type Slot string

const (
	SlotPassword Slot = "password"
	SlotRecovery Slot = "recovery"
)

// MasterKeyAAD binds a master-key wrap to its account and slot, so a wrap
// cannot be replayed into a different account or slot.
func MasterKeyAAD(accountID string, slot Slot) []byte {
	return []byte("zkkeeper/v1/mk|" + string(slot) + "|" + accountID)
}

// EntryAAD binds a vault payload to its account and entry.
func EntryAAD(accountID, entryID string) []byte {
	return []byte("zkkeeper/v1/entry|" + accountID + "|" + entryID)
}
