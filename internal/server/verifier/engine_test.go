package verifier

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, pepper byte) *Engine {
	t.Helper()
	e, err := NewEngine(bytes.Repeat([]byte{pepper}, 32), bytes.Repeat([]byte{0xF5}, 32), 10)
	require.NoError(t, err)
	return e
}

func TestComputeStoredVerifier(t *testing.T) {
	e := newTestEngine(t, 1)
	raw := bytes.Repeat([]byte{7}, 32)
	salt := bytes.Repeat([]byte{3}, 16)

	a, err := e.ComputeStoredVerifier(raw, salt)
	require.NoError(t, err)
	b, err := e.ComputeStoredVerifier(raw, salt)
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.Equal(t, a, b)
	assert.NotEqual(t, raw, a)

	otherSalt := bytes.Repeat([]byte{4}, 16)
	c, err := e.ComputeStoredVerifier(raw, otherSalt)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	d, err := newTestEngine(t, 2).ComputeStoredVerifier(raw, salt)
	require.NoError(t, err)
	assert.NotEqual(t, a, d, "pepper must change the output")
}

func TestComputeStoredVerifier_Validation(t *testing.T) {
	e := newTestEngine(t, 1)

	_, err := e.ComputeStoredVerifier(make([]byte, 31), make([]byte, 16))
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = e.ComputeStoredVerifier(make([]byte, 32), make([]byte, 15))
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestVerify(t *testing.T) {
	e := newTestEngine(t, 1)
	raw := bytes.Repeat([]byte{7}, 32)
	salt := e.NewSalt()

	stored, err := e.ComputeStoredVerifier(raw, salt)
	require.NoError(t, err)

	assert.True(t, e.Verify(raw, salt, stored))

	wrong := append([]byte(nil), raw...)
	wrong[31] ^= 1
	assert.False(t, e.Verify(wrong, salt, stored))
	assert.False(t, e.Verify(raw[:16], salt, stored))
	assert.False(t, e.Verify(raw, salt, stored[:16]))
}

func TestFakeSalt(t *testing.T) {
	e := newTestEngine(t, 1)

	a1 := e.FakeSalt("11111111-1111-4111-8111-111111111111")
	a2 := e.FakeSalt("11111111-1111-4111-8111-111111111111")
	b := e.FakeSalt("22222222-2222-4222-8222-222222222222")

	assert.Len(t, a1, 16)
	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, b)

	other, err := NewEngine(bytes.Repeat([]byte{1}, 32), bytes.Repeat([]byte{0x99}, 32), 10)
	require.NoError(t, err)
	assert.NotEqual(t, a1, other.FakeSalt("11111111-1111-4111-8111-111111111111"))
}

func TestNewEngine_Validation(t *testing.T) {
	_, err := NewEngine(nil, []byte{1}, 10)
	assert.Error(t, err)

	_, err = NewEngine([]byte{1}, []byte{1}, 0)
	assert.Error(t, err)
}

func TestNewEngine_CopiesSecrets(t *testing.T) {
	pepper := bytes.Repeat([]byte{1}, 32)
	e, err := NewEngine(pepper, bytes.Repeat([]byte{2}, 32), 10)
	require.NoError(t, err)

	raw := bytes.Repeat([]byte{7}, 32)
	salt := bytes.Repeat([]byte{3}, 16)
	before, _ := e.ComputeStoredVerifier(raw, salt)

	common.WipeByteArray(pepper)
	after, _ := e.ComputeStoredVerifier(raw, salt)
	assert.Equal(t, before, after)
}

func TestPerformDummyVerifierWork_DoesNotPanic(t *testing.T) {
	newTestEngine(t, 1).PerformDummyVerifierWork()
}
