package cryptox

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// KDFMode selects the stretching algorithm and its cost. It is chosen by the
// client at registration, stored with the account and echoed back on PreLogin.
type KDFMode string

const (
	KDFArgon2idDefault KDFMode = "argon2id-default"
	KDFArgon2idStrong  KDFMode = "argon2id-strong"
	KDFPBKDF2Default   KDFMode = "pbkdf2-sha256-default"
	KDFPBKDF2Strong    KDFMode = "pbkdf2-sha256-strong"
)

// DefaultKDFMode is used for fake PreLogin answers and new registrations
// that did not run a benchmark.
const DefaultKDFMode = KDFArgon2idDefault

// Valid reports whether m is one of the known modes.
func (m KDFMode) Valid() bool {
	switch m {
	case KDFArgon2idDefault, KDFArgon2idStrong, KDFPBKDF2Default, KDFPBKDF2Strong:
		return true
	}
	return false
}

// Strong reports whether m is a high-cost mode.
func (m KDFMode) Strong() bool {
	return m == KDFArgon2idStrong || m == KDFPBKDF2Strong
}

// ParseKDFMode validates a wire value.
func ParseKDFMode(s string) (KDFMode, error) {
	m := KDFMode(s)
	if !m.Valid() {
		return "", common.NewValidationError("kdf_mode", fmt.Sprintf("unknown mode %q", s))
	}
	return m, nil
}

// Argon2Params are the Argon2id cost parameters.
type Argon2Params struct {
	Time        uint32
	MemoryKiB   uint32
	Parallelism uint8
}

// KDFParams holds the cost parameters of every mode.
type KDFParams struct {
	Argon2Default Argon2Params
	Argon2Strong  Argon2Params
	PBKDF2Default int
	PBKDF2Strong  int
}

// DefaultKDFParams returns production parameters.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Argon2Default: Argon2Params{Time: 3, MemoryKiB: 64 * 1024, Parallelism: 4},
		Argon2Strong:  Argon2Params{Time: 4, MemoryKiB: 256 * 1024, Parallelism: 4},
		PBKDF2Default: 600_000,
		PBKDF2Strong:  1_200_000,
	}
}

// KDF stretches a password and a public salt into a base key.
type KDF struct {
	params KDFParams
}

// NewKDF constructs a KDF with the given parameters.
func NewKDF(p KDFParams) *KDF {
	return &KDF{params: p}
}

// DeriveBaseKey returns a KeySize base key for (password, salt, mode).
// The password buffer is wiped before returning, on success and on failure.
// The caller owns the returned key and must wipe it.
func (k *KDF) DeriveBaseKey(password, salt []byte, mode KDFMode) ([]byte, error) {
	defer common.WipeByteArray(password)

	if len(salt) != SaltSize {
		return nil, common.NewValidationError("kdf_salt", fmt.Sprintf("must be %d bytes", SaltSize))
	}
	if len(password) == 0 {
		return nil, common.NewValidationError("password", "must not be empty")
	}

	switch mode {
	case KDFArgon2idDefault:
		return k.argon2(password, salt, k.params.Argon2Default), nil
	case KDFArgon2idStrong:
		return k.argon2(password, salt, k.params.Argon2Strong), nil
	case KDFPBKDF2Default:
		return pbkdf2.Key(password, salt, k.params.PBKDF2Default, KeySize, sha256.New), nil
	case KDFPBKDF2Strong:
		return pbkdf2.Key(password, salt, k.params.PBKDF2Strong, KeySize, sha256.New), nil
	default:
		return nil, common.NewValidationError("kdf_mode", fmt.Sprintf("unknown mode %q", mode))
	}
}

func (k *KDF) argon2(password, salt []byte, p Argon2Params) []byte {
	return argon2.IDKey(password, salt, p.Time, p.MemoryKiB, p.Parallelism, KeySize)
}

// Benchmark runs the same derivation as DeriveBaseKey and reports how long it
// took. The derived key is wiped immediately; only the timing is kept.
func (k *KDF) Benchmark(password, salt []byte, mode KDFMode) (time.Duration, error) {
	start := time.Now()
	key, err := k.DeriveBaseKey(password, salt, mode)
	elapsed := time.Since(start)
	if err != nil {
		return 0, err
	}
	common.WipeByteArray(key)
	return elapsed, nil
}

// NewSalt returns a fresh random KDF salt.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}
