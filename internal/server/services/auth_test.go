package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	"github.com/dmitrijs2005/zkkeeper/internal/logging"
	"github.com/dmitrijs2005/zkkeeper/internal/server/auth"
	"github.com/dmitrijs2005/zkkeeper/internal/server/config"
	"github.com/dmitrijs2005/zkkeeper/internal/server/models"
	"github.com/dmitrijs2005/zkkeeper/internal/server/refresh"
	"github.com/dmitrijs2005/zkkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/zkkeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/zkkeeper/internal/server/verifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc      *AuthService
	accounts *accounts.MemoryRepository
	tokens   *refresh.Store
	issuer   *auth.Issuer
	now      time.Time
}

func (f *fixture) clock() time.Time { return f.now }

func (f *fixture) advance(d time.Duration) { f.now = f.now.Add(d) }

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	engine, err := verifier.NewEngine(cfg.Pepper, cfg.FakeSaltSecret, 10)
	require.NoError(t, err)

	f := &fixture{
		accounts: accounts.NewMemoryRepository(),
		tokens:   refresh.NewStore(refreshtokens.NewMemoryRepository(), cfg.RefreshTokenValidityDuration),
		now:      time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
	f.issuer = auth.NewIssuer([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration, f.clock)
	f.svc = NewAuthService(Dependencies{
		Accounts: f.accounts,
		Tokens:   f.tokens,
		Issuer:   f.issuer,
		Verifier: engine,
		Logger:   logging.Discard(),
		Clock:    f.clock,
	}, cfg)
	return f
}

// clientKeys is what a client derives from a password.
type clientKeys struct {
	salt []byte
	keys *cryptox.PasswordKeys
}

func testKDF() *cryptox.KDF {
	return cryptox.NewKDF(cryptox.KDFParams{
		Argon2Default: cryptox.Argon2Params{Time: 1, MemoryKiB: 64, Parallelism: 1},
		Argon2Strong:  cryptox.Argon2Params{Time: 1, MemoryKiB: 64, Parallelism: 1},
		PBKDF2Default: 10,
		PBKDF2Strong:  10,
	})
}

func deriveClient(t *testing.T, password string, salt []byte) clientKeys {
	t.Helper()
	base, err := testKDF().DeriveBaseKey([]byte(password), salt, cryptox.DefaultKDFMode)
	require.NoError(t, err)
	keys, err := cryptox.DerivePasswordKeys(base)
	require.NoError(t, err)
	return clientKeys{salt: salt, keys: keys}
}

type registered struct {
	id        string
	mk        []byte
	pass      clientKeys
	recovery  *cryptox.RecoveryKeys
	secretHex string
}

func register(t *testing.T, f *fixture, password string) registered {
	t.Helper()
	ctx := context.Background()

	id := f.svc.PreRegister(ctx)
	pass := deriveClient(t, password, cryptox.NewSalt())

	secret := cryptox.NewRecoverySecret()
	rk, err := cryptox.DeriveRecoveryKeys(secret)
	require.NoError(t, err)

	mk := cryptox.NewMasterKey()
	wrapP := seal(t, pass.keys.KEK, mk, cryptox.MasterKeyAAD(id, cryptox.SlotPassword))
	wrapR := seal(t, rk.KEK, mk, cryptox.MasterKeyAAD(id, cryptox.SlotRecovery))

	got, err := f.svc.Register(ctx, &RegisterRequest{
		AccountID:         id,
		LoginVerifier:     pass.keys.LoginVerifier,
		AdminVerifier:     pass.keys.AdminVerifier,
		RecoveryVerifier:  rk.Verifier,
		KDFSalt:           pass.salt,
		KDFMode:           cryptox.DefaultKDFMode,
		WrappedMKPassword: wrapP,
		WrappedMKRecovery: wrapR,
		SchemaVersion:     common.CurrentSchemaVersion,
	})
	require.NoError(t, err)
	require.Equal(t, id, got)

	return registered{id: id, mk: mk, pass: pass, recovery: rk, secretHex: cryptox.FormatRecoverySecret(secret)}
}

func seal(t *testing.T, kek *cryptox.KEK, mk, aad []byte) *cryptox.Envelope {
	t.Helper()
	env, err := kek.Wrap(mk, aad)
	require.NoError(t, err)
	return env
}

func unwrap(t *testing.T, kek *cryptox.KEK, env *cryptox.Envelope, aad []byte) ([]byte, error) {
	t.Helper()
	return kek.Unwrap(env, aad)
}

func TestRegisterPreLoginLogin_UnwrapsMasterKey(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := register(t, f, "correct horse battery staple")

	pre, err := f.svc.PreLogin(ctx, acc.id)
	require.NoError(t, err)
	assert.Equal(t, acc.pass.salt, pre.KDFSalt)
	assert.Equal(t, cryptox.DefaultKDFMode, pre.KDFMode)
	assert.Equal(t, common.CurrentSchemaVersion, pre.SchemaVersion)

	client := deriveClient(t, "correct horse battery staple", pre.KDFSalt)
	res, err := f.svc.Login(ctx, acc.id, client.keys.LoginVerifier)
	require.NoError(t, err)

	mk, err := unwrap(t, client.keys.KEK, res.WrappedMKPassword, cryptox.MasterKeyAAD(acc.id, cryptox.SlotPassword))
	require.NoError(t, err)
	assert.Equal(t, acc.mk, mk)

	claims, err := f.issuer.Parse(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, acc.id, claims.Subject)

	rec, err := f.tokens.Lookup(ctx, res.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, auth.HashJTI(claims.ID), rec.AccessJTIHash)
	assert.Equal(t, f.now.Add(7*24*time.Hour), res.RefreshExpiresAt)
}

func TestRegister_StoresOnlyRehashedVerifiers(t *testing.T) {
	f := newFixture(t)
	acc := register(t, f, "pw")

	a, err := f.accounts.Get(context.Background(), acc.id)
	require.NoError(t, err)
	assert.NotEqual(t, acc.pass.keys.LoginVerifier, a.LoginVerifier)
	assert.NotEqual(t, acc.pass.keys.AdminVerifier, a.AdminVerifier)
	assert.NotEqual(t, acc.recovery.Verifier, a.RecoveryVerifier)
	assert.NotEqual(t, a.LoginSalt, a.AdminSalt)
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	good := func() *RegisterRequest {
		wrap := &cryptox.Envelope{
			Nonce:      make([]byte, cryptox.NonceSize),
			Ciphertext: make([]byte, cryptox.KeySize),
			Tag:        make([]byte, cryptox.TagSize),
		}
		return &RegisterRequest{
			AccountID:         f.svc.PreRegister(ctx),
			LoginVerifier:     make([]byte, cryptox.VerifierSize),
			AdminVerifier:     make([]byte, cryptox.VerifierSize),
			RecoveryVerifier:  make([]byte, cryptox.VerifierSize),
			KDFSalt:           make([]byte, cryptox.SaltSize),
			KDFMode:           cryptox.DefaultKDFMode,
			WrappedMKPassword: wrap,
			WrappedMKRecovery: wrap.Clone(),
			SchemaVersion:     common.CurrentSchemaVersion,
		}
	}

	tests := []struct {
		name   string
		mutate func(r *RegisterRequest)
		field  string
	}{
		{"bad id", func(r *RegisterRequest) { r.AccountID = "nope" }, "account_id"},
		{"short verifier", func(r *RegisterRequest) { r.LoginVerifier = r.LoginVerifier[:31] }, "login_verifier"},
		{"short salt", func(r *RegisterRequest) { r.KDFSalt = nil }, "kdf_salt"},
		{"unknown mode", func(r *RegisterRequest) { r.KDFMode = "scrypt" }, "kdf_mode"},
		{"schema", func(r *RegisterRequest) { r.SchemaVersion = 99 }, "schema_version"},
		{"missing wrap", func(r *RegisterRequest) { r.WrappedMKRecovery = nil }, "wrapped_mk_recovery"},
		{"bad nonce", func(r *RegisterRequest) { r.WrappedMKPassword.Nonce = []byte{1} }, "wrapped_mk_password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := good()
			tt.mutate(r)
			_, err := f.svc.Register(ctx, r)
			require.ErrorIs(t, err, common.ErrorValidation)

			var ve *common.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Contains(t, ve.Field, tt.field)
		})
	}

	_, err := f.svc.Register(ctx, good())
	require.NoError(t, err)
}

func TestRegister_DuplicateID(t *testing.T) {
	f := newFixture(t)
	acc := register(t, f, "pw")

	a, err := f.accounts.Get(context.Background(), acc.id)
	require.NoError(t, err)

	_, err = f.svc.Register(context.Background(), &RegisterRequest{
		AccountID:         acc.id,
		LoginVerifier:     acc.pass.keys.LoginVerifier,
		AdminVerifier:     acc.pass.keys.AdminVerifier,
		RecoveryVerifier:  acc.recovery.Verifier,
		KDFSalt:           acc.pass.salt,
		KDFMode:           cryptox.DefaultKDFMode,
		WrappedMKPassword: a.WrappedMKPassword,
		WrappedMKRecovery: a.WrappedMKRecovery,
		SchemaVersion:     common.CurrentSchemaVersion,
	})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestPreLogin_UnknownAccountGetsStableFakeSalt(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	id := f.svc.PreRegister(ctx)
	a, err := f.svc.PreLogin(ctx, id)
	require.NoError(t, err)
	b, err := f.svc.PreLogin(ctx, id)
	require.NoError(t, err)

	assert.Len(t, a.KDFSalt, cryptox.SaltSize)
	assert.Equal(t, a, b)
	assert.Equal(t, cryptox.DefaultKDFMode, a.KDFMode)

	other, err := f.svc.PreLogin(ctx, f.svc.PreRegister(ctx))
	require.NoError(t, err)
	assert.NotEqual(t, a.KDFSalt, other.KDFSalt)

	malformed, err := f.svc.PreLogin(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Len(t, malformed.KDFSalt, cryptox.SaltSize)
}

func TestLogin_FailuresLookAlike(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := register(t, f, "pw")

	wrong := deriveClient(t, "not pw", acc.pass.salt)

	_, errWrong := f.svc.Login(ctx, acc.id, wrong.keys.LoginVerifier)
	_, errUnknown := f.svc.Login(ctx, f.svc.PreRegister(ctx), wrong.keys.LoginVerifier)

	assert.ErrorIs(t, errWrong, common.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, common.ErrInvalidCredentials)
	assert.Equal(t, errWrong.Error(), errUnknown.Error())

	// The admin verifier is not a login credential.
	_, err := f.svc.Login(ctx, acc.id, acc.pass.keys.AdminVerifier)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_Lockout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := register(t, f, "pw")
	bad := bytes.Repeat([]byte{1}, cryptox.VerifierSize)

	for i := 0; i < 7; i++ {
		_, err := f.svc.Login(ctx, acc.id, bad)
		require.ErrorIs(t, err, common.ErrInvalidCredentials)
	}

	a, err := f.accounts.Get(ctx, acc.id)
	require.NoError(t, err)
	require.NotNil(t, a.Lockout.LockedUntil)
	assert.Equal(t, 0, a.Lockout.FailedCount)

	// The correct verifier is rejected while locked, with the same error.
	_, err = f.svc.Login(ctx, acc.id, acc.pass.keys.LoginVerifier)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	f.advance(10 * time.Minute)
	_, err = f.svc.Login(ctx, acc.id, acc.pass.keys.LoginVerifier)
	require.ErrorIs(t, err, common.ErrInvalidCredentials, "lock is inclusive of its end")

	f.advance(time.Second)
	_, err = f.svc.Login(ctx, acc.id, acc.pass.keys.LoginVerifier)
	require.NoError(t, err)

	a, err = f.accounts.Get(ctx, acc.id)
	require.NoError(t, err)
	assert.Equal(t, models.Lockout{}, a.Lockout)
}

func TestLogin_FailureAfterLockExpiryDropsStaleLock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := register(t, f, "pw")
	bad := bytes.Repeat([]byte{1}, cryptox.VerifierSize)

	for i := 0; i < 7; i++ {
		_, _ = f.svc.Login(ctx, acc.id, bad)
	}

	f.advance(time.Hour)
	_, err := f.svc.Login(ctx, acc.id, bad)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	a, err := f.accounts.Get(ctx, acc.id)
	require.NoError(t, err)
	assert.Equal(t, 1, a.Lockout.FailedCount)
	assert.Nil(t, a.Lockout.LockedUntil)
	require.NotNil(t, a.Lockout.LastFailedAt)
	assert.Equal(t, f.now, *a.Lockout.LastFailedAt)
}

func TestLogin_SuccessResetsFailures(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := register(t, f, "pw")
	bad := bytes.Repeat([]byte{1}, cryptox.VerifierSize)

	for i := 0; i < 6; i++ {
		_, _ = f.svc.Login(ctx, acc.id, bad)
	}
	_, err := f.svc.Login(ctx, acc.id, acc.pass.keys.LoginVerifier)
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, acc.id, bad)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	a, err := f.accounts.Get(ctx, acc.id)
	require.NoError(t, err)
	assert.Equal(t, 1, a.Lockout.FailedCount)
	assert.Nil(t, a.Lockout.LockedUntil)
}

func TestLogin_MalformedVerifier(t *testing.T) {
	f := newFixture(t)
	acc := register(t, f, "pw")

	_, err := f.svc.Login(context.Background(), acc.id, []byte("short"))
	assert.ErrorIs(t, err, common.ErrorValidation)

	a, err := f.accounts.Get(context.Background(), acc.id)
	require.NoError(t, err)
	assert.Zero(t, a.Lockout.FailedCount)
}

func TestRefresh_RotatesAndDetectsReuse(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := register(t, f, "pw")

	s1, err := f.svc.Login(ctx, acc.id, acc.pass.keys.LoginVerifier)
	require.NoError(t, err)
	s2, err := f.svc.Login(ctx, acc.id, acc.pass.keys.LoginVerifier)
	require.NoError(t, err)

	f.advance(time.Minute)
	p1, err := f.svc.Refresh(ctx, s1.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, s1.RefreshToken, p1.RefreshToken)

	claims, err := f.issuer.Parse(p1.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, acc.id, claims.Subject)

	// Replaying the rotated token burns every session of the account.
	_, err = f.svc.Refresh(ctx, s1.RefreshToken)
	require.ErrorIs(t, err, common.ErrInvalidRefreshToken)

	_, err = f.svc.Refresh(ctx, p1.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidRefreshToken)
	_, err = f.svc.Refresh(ctx, s2.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidRefreshToken)

	rec, err := f.tokens.Lookup(ctx, s2.RefreshToken)
	require.NoError(t, err)
	require.NotNil(t, rec.RevokedReason)
	assert.Equal(t, models.RevokeReuseDetected, *rec.RevokedReason)
}

func TestRefresh_InvalidAndExpired(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := register(t, f, "pw")

	_, err := f.svc.Refresh(ctx, "garbage")
	assert.ErrorIs(t, err, common.ErrInvalidRefreshToken)

	s, err := f.svc.Login(ctx, acc.id, acc.pass.keys.LoginVerifier)
	require.NoError(t, err)

	f.advance(8 * 24 * time.Hour)
	_, err = f.svc.Refresh(ctx, s.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidRefreshToken)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := register(t, f, "pw")

	s1, err := f.svc.Login(ctx, acc.id, acc.pass.keys.LoginVerifier)
	require.NoError(t, err)
	s2, err := f.svc.Login(ctx, acc.id, acc.pass.keys.LoginVerifier)
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, s1.RefreshToken))
	require.NoError(t, f.svc.Logout(ctx, s1.RefreshToken))
	require.NoError(t, f.svc.Logout(ctx, "unknown"))

	_, err = f.svc.Refresh(ctx, s2.RefreshToken)
	require.NoError(t, err, "other sessions survive a single logout")

	s3, err := f.svc.Login(ctx, acc.id, acc.pass.keys.LoginVerifier)
	require.NoError(t, err)
	require.NoError(t, f.svc.LogoutAll(ctx, acc.id))
	_, err = f.svc.Refresh(ctx, s3.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidRefreshToken)

	assert.ErrorIs(t, f.svc.LogoutAll(ctx, "x"), common.ErrorValidation)
}

func TestGetWraps(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := register(t, f, "pw")

	env, err := f.svc.GetWraps(ctx, acc.id, acc.pass.keys.AdminVerifier)
	require.NoError(t, err)
	mk, err := unwrap(t, acc.pass.keys.KEK, env, cryptox.MasterKeyAAD(acc.id, cryptox.SlotPassword))
	require.NoError(t, err)
	assert.Equal(t, acc.mk, mk)

	_, err = f.svc.GetWraps(ctx, acc.id, acc.pass.keys.LoginVerifier)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	renv, err := f.svc.GetRecoveryWraps(ctx, acc.id, acc.recovery.Verifier)
	require.NoError(t, err)
	mk, err = unwrap(t, acc.recovery.KEK, renv, cryptox.MasterKeyAAD(acc.id, cryptox.SlotRecovery))
	require.NoError(t, err)
	assert.Equal(t, acc.mk, mk)

	_, err = f.svc.GetRecoveryWraps(ctx, acc.id, acc.pass.keys.AdminVerifier)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := register(t, f, "old")

	s, err := f.svc.Login(ctx, acc.id, acc.pass.keys.LoginVerifier)
	require.NoError(t, err)

	next := deriveClient(t, "new", cryptox.NewSalt())
	req := &ChangePasswordRequest{
		AccountID:            acc.id,
		AdminVerifier:        acc.pass.keys.AdminVerifier,
		NewLoginVerifier:     next.keys.LoginVerifier,
		NewAdminVerifier:     next.keys.AdminVerifier,
		NewKDFSalt:           next.salt,
		NewKDFMode:           cryptox.DefaultKDFMode,
		NewWrappedMKPassword: seal(t, next.keys.KEK, acc.mk, cryptox.MasterKeyAAD(acc.id, cryptox.SlotPassword)),
		SchemaVersion:        common.CurrentSchemaVersion,
	}

	wrong := *req
	wrong.AdminVerifier = acc.pass.keys.LoginVerifier
	assert.ErrorIs(t, f.svc.ChangePassword(ctx, &wrong), common.ErrInvalidCredentials)

	require.NoError(t, f.svc.ChangePassword(ctx, req))

	_, err = f.svc.Refresh(ctx, s.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidRefreshToken)

	_, err = f.svc.Login(ctx, acc.id, acc.pass.keys.LoginVerifier)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	pre, err := f.svc.PreLogin(ctx, acc.id)
	require.NoError(t, err)
	assert.Equal(t, next.salt, pre.KDFSalt)

	res, err := f.svc.Login(ctx, acc.id, next.keys.LoginVerifier)
	require.NoError(t, err)
	mk, err := unwrap(t, next.keys.KEK, res.WrappedMKPassword, cryptox.MasterKeyAAD(acc.id, cryptox.SlotPassword))
	require.NoError(t, err)
	assert.Equal(t, acc.mk, mk)

	// The recovery wrap was not supplied and is kept.
	renv, err := f.svc.GetRecoveryWraps(ctx, acc.id, acc.recovery.Verifier)
	require.NoError(t, err)
	_, err = unwrap(t, acc.recovery.KEK, renv, cryptox.MasterKeyAAD(acc.id, cryptox.SlotRecovery))
	require.NoError(t, err)
}

func TestRecover(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := register(t, f, "forgotten")

	bad := bytes.Repeat([]byte{1}, cryptox.VerifierSize)
	for i := 0; i < 7; i++ {
		_, _ = f.svc.Login(ctx, acc.id, bad)
	}

	secret, err := cryptox.ParseRecoverySecret(acc.secretHex)
	require.NoError(t, err)
	rk, err := cryptox.DeriveRecoveryKeys(secret)
	require.NoError(t, err)

	renv, err := f.svc.GetRecoveryWraps(ctx, acc.id, rk.Verifier)
	require.ErrorIs(t, err, common.ErrInvalidCredentials, "lockout covers recovery too")
	assert.Nil(t, renv)

	f.advance(11 * time.Minute)
	renv, err = f.svc.GetRecoveryWraps(ctx, acc.id, rk.Verifier)
	require.NoError(t, err)
	mk, err := unwrap(t, rk.KEK, renv, cryptox.MasterKeyAAD(acc.id, cryptox.SlotRecovery))
	require.NoError(t, err)

	next := deriveClient(t, "fresh", cryptox.NewSalt())
	newSecret := cryptox.NewRecoverySecret()
	nrk, err := cryptox.DeriveRecoveryKeys(newSecret)
	require.NoError(t, err)

	err = f.svc.Recover(ctx, &RecoverRequest{
		AccountID:            acc.id,
		RecoveryVerifier:     rk.Verifier,
		NewLoginVerifier:     next.keys.LoginVerifier,
		NewAdminVerifier:     next.keys.AdminVerifier,
		NewRecoveryVerifier:  nrk.Verifier,
		NewKDFSalt:           next.salt,
		NewKDFMode:           cryptox.DefaultKDFMode,
		NewWrappedMKPassword: seal(t, next.keys.KEK, mk, cryptox.MasterKeyAAD(acc.id, cryptox.SlotPassword)),
		NewWrappedMKRecovery: seal(t, nrk.KEK, mk, cryptox.MasterKeyAAD(acc.id, cryptox.SlotRecovery)),
		SchemaVersion:        common.CurrentSchemaVersion,
	})
	require.NoError(t, err)

	_, err = f.svc.GetRecoveryWraps(ctx, acc.id, rk.Verifier)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials, "old recovery secret is dead")

	res, err := f.svc.Login(ctx, acc.id, next.keys.LoginVerifier)
	require.NoError(t, err)
	got, err := unwrap(t, nrk.KEK, res.WrappedMKRecovery, cryptox.MasterKeyAAD(acc.id, cryptox.SlotRecovery))
	require.NoError(t, err)
	assert.Equal(t, acc.mk, got)

	a, err := f.accounts.Get(ctx, acc.id)
	require.NoError(t, err)
	assert.Equal(t, models.Lockout{}, a.Lockout)
}
