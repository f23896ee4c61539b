package cryptox

import (
	"fmt"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
)

// KEK is a key-encryption key. The raw key never leaves the value; callers
// can only wrap, unwrap and wipe.
type KEK struct {
	key []byte
}

// NewKEK takes ownership of key.
func NewKEK(key []byte) (*KEK, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("kek must be %d bytes, got %d", KeySize, len(key))
	}
	return &KEK{key: key}, nil
}

// Wrap encrypts a KeySize master key.
func (k *KEK) Wrap(masterKey, aad []byte) (*Envelope, error) {
	if k == nil || k.key == nil {
		return nil, fmt.Errorf("kek is wiped")
	}
	if len(masterKey) != KeySize {
		return nil, fmt.Errorf("master key must be %d bytes, got %d", KeySize, len(masterKey))
	}
	return Seal(k.key, masterKey, aad)
}

// Unwrap decrypts a master-key wrap. A tag failure is a hard
// common.ErrAuthenticationFailed.
func (k *KEK) Unwrap(env *Envelope, aad []byte) ([]byte, error) {
	if k == nil || k.key == nil {
		return nil, fmt.Errorf("kek is wiped")
	}
	if err := env.Validate("wrapped_mk", WrappedKeySize); err != nil {
		return nil, err
	}
	return Open(k.key, env, aad)
}

// Wipe zeroes the key. The KEK is unusable afterwards.
func (k *KEK) Wipe() {
	if k == nil {
		return
	}
	common.WipeByteArray(k.key)
	k.key = nil
}

// NewMasterKey returns a fresh random master key.
func NewMasterKey() []byte {
	return common.GenerateRandByteArray(KeySize)
}
