package cryptox

import (
	"testing"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)
	aad := EntryAAD("acc", "entry-1")

	for _, pt := range [][]byte{{}, []byte("x"), make([]byte, 4096)} {
		env, err := Seal(key, pt, aad)
		require.NoError(t, err)
		assert.Len(t, env.Nonce, NonceSize)
		assert.Len(t, env.Tag, TagSize)
		assert.Len(t, env.Ciphertext, len(pt))

		got, err := Open(key, env, aad)
		require.NoError(t, err)
		assert.Equal(t, len(pt), len(got))
		assert.Equal(t, string(pt), string(got))
	}
}

func TestSeal_FreshNonce(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)

	a, err := Seal(key, []byte("same"), nil)
	require.NoError(t, err)
	b, err := Seal(key, []byte("same"), nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.Nonce, b.Nonce)
}

func TestOpen_TamperFails(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)
	aad := MasterKeyAAD("acc", SlotPassword)

	env, err := Seal(key, []byte("payload bytes"), aad)
	require.NoError(t, err)

	flip := func(name string, mutate func(e *Envelope)) {
		t.Run(name, func(t *testing.T) {
			e := env.Clone()
			mutate(e)
			pt, err := Open(key, e, aad)
			assert.ErrorIs(t, err, common.ErrAuthenticationFailed)
			assert.Nil(t, pt)
		})
	}

	flip("nonce", func(e *Envelope) { e.Nonce[0] ^= 0x01 })
	flip("ciphertext", func(e *Envelope) { e.Ciphertext[3] ^= 0x80 })
	flip("tag", func(e *Envelope) { e.Tag[TagSize-1] ^= 0x10 })

	t.Run("aad", func(t *testing.T) {
		_, err := Open(key, env, MasterKeyAAD("acc", SlotRecovery))
		assert.ErrorIs(t, err, common.ErrAuthenticationFailed)
	})

	t.Run("key", func(t *testing.T) {
		_, err := Open(common.GenerateRandByteArray(KeySize), env, aad)
		assert.ErrorIs(t, err, common.ErrAuthenticationFailed)
	})
}

func TestOpen_Malformed(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)

	_, err := Open(key, nil, nil)
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = Open(key, &Envelope{Nonce: make([]byte, 8), Tag: make([]byte, TagSize)}, nil)
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = Seal(make([]byte, 5), []byte("x"), nil)
	assert.Error(t, err)
}

func TestEnvelope_Validate(t *testing.T) {
	env := &Envelope{
		Nonce:      make([]byte, NonceSize),
		Ciphertext: make([]byte, WrappedKeySize),
		Tag:        make([]byte, TagSize),
	}
	assert.NoError(t, env.Validate("wrapped_mk_password", WrappedKeySize))
	assert.NoError(t, env.Validate("payload", -1))

	err := env.Validate("wrapped_mk_password", 16)
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "wrapped_mk_password.ciphertext", ve.Field)
}

func TestKEK_WrapUnwrap(t *testing.T) {
	kek, err := NewKEK(common.GenerateRandByteArray(KeySize))
	require.NoError(t, err)

	mk := NewMasterKey()
	aad := MasterKeyAAD("acc-1", SlotPassword)

	env, err := kek.Wrap(mk, aad)
	require.NoError(t, err)
	assert.Len(t, env.Ciphertext, WrappedKeySize)

	got, err := kek.Unwrap(env, aad)
	require.NoError(t, err)
	assert.Equal(t, mk, got)

	_, err = kek.Unwrap(env, MasterKeyAAD("acc-2", SlotPassword))
	assert.ErrorIs(t, err, common.ErrAuthenticationFailed)

	_, err = kek.Wrap([]byte("short"), aad)
	assert.Error(t, err)

	kek.Wipe()
	_, err = kek.Unwrap(env, aad)
	assert.Error(t, err)
}

func TestNewKEK_BadLength(t *testing.T) {
	_, err := NewKEK(make([]byte, 10))
	assert.Error(t, err)
}
