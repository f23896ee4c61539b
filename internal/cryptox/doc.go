// Package cryptox holds the client-side key schedule of zkkeeper: password
// stretching (Argon2id or PBKDF2), HKDF context separation into verifiers and
// key-encryption keys, and the AES-GCM envelope used for master-key wraps and
// vault payloads.
//
// The server only imports the size constants and the Envelope type from this
// package; it never derives or unwraps keys.
package cryptox

// Fixed wire sizes, in bytes.
const (
	SaltSize       = 16
	KeySize        = 32
	VerifierSize   = 32
	NonceSize      = 12
	TagSize        = 16
	WrappedKeySize = KeySize
)
