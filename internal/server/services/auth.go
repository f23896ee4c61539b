// Package services contains server-side business logic. This file implements
// AuthService, the credential and session orchestrator: registration,
// verifier-based login, admin and recovery re-authentication, credential
// replacement and refresh token rotation.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	"github.com/dmitrijs2005/zkkeeper/internal/logging"
	"github.com/dmitrijs2005/zkkeeper/internal/server/auth"
	"github.com/dmitrijs2005/zkkeeper/internal/server/config"
	"github.com/dmitrijs2005/zkkeeper/internal/server/lockout"
	"github.com/dmitrijs2005/zkkeeper/internal/server/models"
	"github.com/dmitrijs2005/zkkeeper/internal/server/refresh"
	"github.com/dmitrijs2005/zkkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/zkkeeper/internal/server/verifier"
	"github.com/dmitrijs2005/zkkeeper/internal/timex"
	"github.com/google/uuid"
)

// CredentialFailure is the internal reason behind ErrInvalidCredentials.
// It is logged and never returned to callers.
type CredentialFailure string

const (
	FailureUnknownAccount CredentialFailure = "unknown_account"
	FailureLocked         CredentialFailure = "locked"
	FailureBadVerifier    CredentialFailure = "bad_verifier"
)

type credentialKind string

const (
	kindLogin    credentialKind = "login"
	kindAdmin    credentialKind = "admin"
	kindRecovery credentialKind = "recovery"
)

// Dependencies are the collaborators of AuthService.
type Dependencies struct {
	Accounts accounts.Repository
	Tokens   *refresh.Store
	Issuer   *auth.Issuer
	Verifier *verifier.Engine
	Logger   logging.Logger
	// Clock defaults to timex.Now.
	Clock timex.Clock
}

// AuthService implements the abstract account operations. It holds no
// per-request state; correctness under concurrency comes from the stores.
type AuthService struct {
	accounts accounts.Repository
	tokens   *refresh.Store
	issuer   *auth.Issuer
	verifier *verifier.Engine
	lockout  lockout.Policy
	cfg      *config.Config
	log      logging.Logger
	now      timex.Clock
}

// NewAuthService wires the service. cfg supplies the lockout policy and the
// supported schema versions.
func NewAuthService(d Dependencies, cfg *config.Config) *AuthService {
	now := d.Clock
	if now == nil {
		now = timex.Now
	}
	return &AuthService{
		accounts: d.Accounts,
		tokens:   d.Tokens,
		issuer:   d.Issuer,
		verifier: d.Verifier,
		lockout:  lockout.NewPolicy(cfg.LockoutThreshold, cfg.LockoutDuration),
		cfg:      cfg,
		log:      d.Logger,
		now:      now,
	}
}

// RegisterRequest carries everything a client derives locally at sign-up.
// Verifiers are the raw client values; the server hashes them again.
type RegisterRequest struct {
	AccountID         string
	LoginVerifier     []byte
	AdminVerifier     []byte
	RecoveryVerifier  []byte
	KDFSalt           []byte
	KDFMode           cryptox.KDFMode
	WrappedMKPassword *cryptox.Envelope
	WrappedMKRecovery *cryptox.Envelope
	SchemaVersion     int
}

// PreLoginResult holds the public parameters a client needs to derive keys.
type PreLoginResult struct {
	KDFSalt       []byte
	KDFMode       cryptox.KDFMode
	SchemaVersion int
}

// TokenPair is an access token with the refresh token minted alongside it.
type TokenPair struct {
	AccessToken          string
	AccessTokenExpiresAt time.Time
	RefreshToken         string
	RefreshExpiresAt     time.Time
}

// LoginResult is a TokenPair plus the master-key wraps.
type LoginResult struct {
	TokenPair
	WrappedMKPassword *cryptox.Envelope
	WrappedMKRecovery *cryptox.Envelope
}

// ChangePasswordRequest replaces the password-derived credentials.
// NewWrappedMKRecovery is optional.
type ChangePasswordRequest struct {
	AccountID            string
	AdminVerifier        []byte
	NewLoginVerifier     []byte
	NewAdminVerifier     []byte
	NewKDFSalt           []byte
	NewKDFMode           cryptox.KDFMode
	NewWrappedMKPassword *cryptox.Envelope
	NewWrappedMKRecovery *cryptox.Envelope
	SchemaVersion        int
}

// RecoverRequest replaces every credential after proving the recovery secret.
type RecoverRequest struct {
	AccountID            string
	RecoveryVerifier     []byte
	NewLoginVerifier     []byte
	NewAdminVerifier     []byte
	NewRecoveryVerifier  []byte
	NewKDFSalt           []byte
	NewKDFMode           cryptox.KDFMode
	NewWrappedMKPassword *cryptox.Envelope
	NewWrappedMKRecovery *cryptox.Envelope
	SchemaVersion        int
}

// PreRegister returns a fresh account id. Nothing is stored until Register.
func (s *AuthService) PreRegister(ctx context.Context) string {
	return uuid.NewString()
}

// Register creates the account.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (string, error) {
	v := &validator{}
	v.accountID(req.AccountID)
	v.schema(req.SchemaVersion, s.cfg.SupportsSchema)
	v.verifier("login_verifier", req.LoginVerifier)
	v.verifier("admin_verifier", req.AdminVerifier)
	v.verifier("recovery_verifier", req.RecoveryVerifier)
	v.salt("kdf_salt", req.KDFSalt)
	v.kdfMode(req.KDFMode)
	v.wrap("wrapped_mk_password", req.WrappedMKPassword)
	v.wrap("wrapped_mk_recovery", req.WrappedMKRecovery)
	if v.err != nil {
		return "", v.err
	}

	now := s.now()
	a := &models.Account{
		ID:                req.AccountID,
		KDFSalt:           req.KDFSalt,
		KDFMode:           req.KDFMode,
		WrappedMKPassword: req.WrappedMKPassword,
		WrappedMKRecovery: req.WrappedMKRecovery,
		SchemaVersion:     req.SchemaVersion,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	var err error
	if a.LoginVerifier, a.LoginSalt, err = s.storedVerifier(req.LoginVerifier); err != nil {
		return "", err
	}
	if a.AdminVerifier, a.AdminSalt, err = s.storedVerifier(req.AdminVerifier); err != nil {
		return "", err
	}
	if a.RecoveryVerifier, a.RecoverySalt, err = s.storedVerifier(req.RecoveryVerifier); err != nil {
		return "", err
	}

	if err := s.accounts.Create(ctx, a); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		s.log.Error(ctx, "register: create account", "account_id", a.ID, "error", err)
		return "", common.ErrorInternal
	}

	s.log.Info(ctx, "account registered", "account_id", a.ID, "kdf_mode", string(a.KDFMode), "schema_version", a.SchemaVersion)
	return a.ID, nil
}

// PreLogin returns the stored KDF parameters, or a deterministic fake salt
// with default parameters when the id is unknown or malformed. The two
// answers have the same shape.
func (s *AuthService) PreLogin(ctx context.Context, accountID string) (*PreLoginResult, error) {
	fake := &PreLoginResult{
		KDFSalt:       s.verifier.FakeSalt(accountID),
		KDFMode:       cryptox.DefaultKDFMode,
		SchemaVersion: common.CurrentSchemaVersion,
	}

	if _, err := uuid.Parse(accountID); err != nil {
		return fake, nil
	}

	a, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fake, nil
		}
		s.log.Error(ctx, "prelogin: get account", "account_id", accountID, "error", err)
		return nil, common.ErrorInternal
	}

	return &PreLoginResult{KDFSalt: a.KDFSalt, KDFMode: a.KDFMode, SchemaVersion: a.SchemaVersion}, nil
}

// Login checks the login verifier and opens a session.
func (s *AuthService) Login(ctx context.Context, accountID string, loginVerifier []byte) (*LoginResult, error) {
	a, err := s.authenticate(ctx, accountID, kindLogin, loginVerifier)
	if err != nil {
		return nil, err
	}

	pair, err := s.openSession(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "login succeeded", "account_id", a.ID)
	return &LoginResult{
		TokenPair:         *pair,
		WrappedMKPassword: a.WrappedMKPassword,
		WrappedMKRecovery: a.WrappedMKRecovery,
	}, nil
}

// GetWraps returns the password wrap to a caller holding the admin verifier.
func (s *AuthService) GetWraps(ctx context.Context, accountID string, adminVerifier []byte) (*cryptox.Envelope, error) {
	a, err := s.authenticate(ctx, accountID, kindAdmin, adminVerifier)
	if err != nil {
		return nil, err
	}
	return a.WrappedMKPassword, nil
}

// GetRecoveryWraps returns the recovery wrap to a caller holding the
// recovery verifier.
func (s *AuthService) GetRecoveryWraps(ctx context.Context, accountID string, recoveryVerifier []byte) (*cryptox.Envelope, error) {
	a, err := s.authenticate(ctx, accountID, kindRecovery, recoveryVerifier)
	if err != nil {
		return nil, err
	}
	return a.WrappedMKRecovery, nil
}

// ChangePassword re-authenticates with the admin verifier and replaces the
// password-derived credentials. Every session of the account is revoked.
func (s *AuthService) ChangePassword(ctx context.Context, req *ChangePasswordRequest) error {
	v := &validator{}
	v.accountID(req.AccountID)
	v.schema(req.SchemaVersion, s.cfg.SupportsSchema)
	v.verifier("admin_verifier", req.AdminVerifier)
	v.verifier("new_login_verifier", req.NewLoginVerifier)
	v.verifier("new_admin_verifier", req.NewAdminVerifier)
	v.salt("new_kdf_salt", req.NewKDFSalt)
	v.kdfMode(req.NewKDFMode)
	v.wrap("new_wrapped_mk_password", req.NewWrappedMKPassword)
	v.optionalWrap("new_wrapped_mk_recovery", req.NewWrappedMKRecovery)
	if v.err != nil {
		return v.err
	}

	a, err := s.authenticate(ctx, req.AccountID, kindAdmin, req.AdminVerifier)
	if err != nil {
		return err
	}

	creds := models.PasswordCredentials{
		KDFSalt:           req.NewKDFSalt,
		KDFMode:           req.NewKDFMode,
		WrappedMKPassword: req.NewWrappedMKPassword,
		WrappedMKRecovery: req.NewWrappedMKRecovery,
		SchemaVersion:     req.SchemaVersion,
	}
	if creds.LoginVerifier, creds.LoginSalt, err = s.storedVerifier(req.NewLoginVerifier); err != nil {
		return err
	}
	if creds.AdminVerifier, creds.AdminSalt, err = s.storedVerifier(req.NewAdminVerifier); err != nil {
		return err
	}

	now := s.now()
	if err := s.accounts.UpdatePasswordCredentials(ctx, a.ID, creds, now); err != nil {
		s.log.Error(ctx, "change password: update account", "account_id", a.ID, "error", err)
		return common.ErrorInternal
	}

	s.revokeSessions(ctx, a.ID, now, models.RevokeCredentialsChanged)
	s.log.Info(ctx, "password changed", "account_id", a.ID)
	return nil
}

// Recover re-authenticates with the recovery verifier and replaces all
// credentials, both wraps and the lockout state. Every session is revoked.
func (s *AuthService) Recover(ctx context.Context, req *RecoverRequest) error {
	v := &validator{}
	v.accountID(req.AccountID)
	v.schema(req.SchemaVersion, s.cfg.SupportsSchema)
	v.verifier("recovery_verifier", req.RecoveryVerifier)
	v.verifier("new_login_verifier", req.NewLoginVerifier)
	v.verifier("new_admin_verifier", req.NewAdminVerifier)
	v.verifier("new_recovery_verifier", req.NewRecoveryVerifier)
	v.salt("new_kdf_salt", req.NewKDFSalt)
	v.kdfMode(req.NewKDFMode)
	v.wrap("new_wrapped_mk_password", req.NewWrappedMKPassword)
	v.wrap("new_wrapped_mk_recovery", req.NewWrappedMKRecovery)
	if v.err != nil {
		return v.err
	}

	a, err := s.authenticate(ctx, req.AccountID, kindRecovery, req.RecoveryVerifier)
	if err != nil {
		return err
	}

	creds := models.RecoveryCredentials{
		PasswordCredentials: models.PasswordCredentials{
			KDFSalt:           req.NewKDFSalt,
			KDFMode:           req.NewKDFMode,
			WrappedMKPassword: req.NewWrappedMKPassword,
			WrappedMKRecovery: req.NewWrappedMKRecovery,
			SchemaVersion:     req.SchemaVersion,
		},
	}
	if creds.LoginVerifier, creds.LoginSalt, err = s.storedVerifier(req.NewLoginVerifier); err != nil {
		return err
	}
	if creds.AdminVerifier, creds.AdminSalt, err = s.storedVerifier(req.NewAdminVerifier); err != nil {
		return err
	}
	if creds.RecoveryVerifier, creds.RecoverySalt, err = s.storedVerifier(req.NewRecoveryVerifier); err != nil {
		return err
	}

	now := s.now()
	if err := s.accounts.ReplaceAllCredentials(ctx, a.ID, creds, now); err != nil {
		s.log.Error(ctx, "recover: replace credentials", "account_id", a.ID, "error", err)
		return common.ErrorInternal
	}

	s.revokeSessions(ctx, a.ID, now, models.RevokeCredentialsChanged)
	s.log.Info(ctx, "account recovered", "account_id", a.ID)
	return nil
}

// Refresh rotates a refresh token and issues a new access token. Presenting
// an already revoked token revokes every session of its account.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	now := s.now()
	jti := auth.NewJTI()

	res, err := s.tokens.Rotate(ctx, refreshToken, auth.HashJTI(jti), now)
	if err != nil {
		s.log.Error(ctx, "refresh: rotate", "error", err)
		return nil, common.ErrorInternal
	}

	switch res.Outcome {
	case refresh.Rotated:
		access, err := s.issuer.IssueWithJTI(res.AccountID, jti)
		if err != nil {
			s.log.Error(ctx, "refresh: issue access token", "account_id", res.AccountID, "error", err)
			return nil, common.ErrorInternal
		}
		return &TokenPair{
			AccessToken:          access.Token,
			AccessTokenExpiresAt: access.ExpiresAt,
			RefreshToken:         res.Token,
			RefreshExpiresAt:     res.ExpiresAt,
		}, nil

	case refresh.Revoked:
		s.log.Warn(ctx, "refresh token reuse detected", "account_id", res.AccountID)
		s.revokeSessions(ctx, res.AccountID, now, models.RevokeReuseDetected)
		return nil, common.ErrInvalidRefreshToken

	default:
		return nil, common.ErrInvalidRefreshToken
	}
}

// Logout revokes one refresh token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.tokens.Revoke(ctx, refreshToken, s.now(), models.RevokeLogout); err != nil {
		s.log.Error(ctx, "logout: revoke", "error", err)
		return common.ErrorInternal
	}
	return nil
}

// LogoutAll revokes every refresh token of the account. Authorization is the
// transport's job.
func (s *AuthService) LogoutAll(ctx context.Context, accountID string) error {
	v := &validator{}
	v.accountID(accountID)
	if v.err != nil {
		return v.err
	}

	n, err := s.tokens.RevokeAll(ctx, accountID, s.now(), models.RevokeLogoutAll)
	if err != nil {
		s.log.Error(ctx, "logout all: revoke", "account_id", accountID, "error", err)
		return common.ErrorInternal
	}
	s.log.Info(ctx, "all sessions revoked", "account_id", accountID, "count", n)
	return nil
}

// --- helpers below ---

// authenticate is the single path for every verifier check. Unknown and
// locked accounts still pay for one verifier computation, and every failure
// leaves as ErrInvalidCredentials.
func (s *AuthService) authenticate(ctx context.Context, accountID string, kind credentialKind, raw []byte) (*models.Account, error) {
	v := &validator{}
	v.accountID(accountID)
	v.verifier(string(kind)+"_verifier", raw)
	if v.err != nil {
		return nil, v.err
	}

	log := s.log.With("account_id", accountID, "credential", string(kind))

	a, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.verifier.PerformDummyVerifierWork()
			log.Info(ctx, "authentication failed", "reason", string(FailureUnknownAccount))
			return nil, common.ErrInvalidCredentials
		}
		log.Error(ctx, "authenticate: get account", "error", err)
		return nil, common.ErrorInternal
	}

	now := s.now()
	if s.lockout.IsLocked(a.Lockout, now) {
		s.verifier.PerformDummyVerifierWork()
		log.Info(ctx, "authentication failed", "reason", string(FailureLocked))
		return nil, common.ErrInvalidCredentials
	}

	stored, salt := credentialOf(a, kind)
	if !s.verifier.Verify(raw, salt, stored) {
		next := s.lockout.RegisterFailure(a.Lockout, now)
		if err := s.accounts.UpdateLockout(ctx, a.ID, next, now); err != nil {
			log.Error(ctx, "authenticate: record failure", "error", err)
		}
		log.Info(ctx, "authentication failed", "reason", string(FailureBadVerifier), "locked", s.lockout.IsLocked(next, now))
		return nil, common.ErrInvalidCredentials
	}

	if a.Lockout.FailedCount != 0 || a.Lockout.LockedUntil != nil {
		a.Lockout = s.lockout.RegisterSuccess(a.Lockout)
		if err := s.accounts.UpdateLockout(ctx, a.ID, a.Lockout, now); err != nil {
			log.Error(ctx, "authenticate: reset lockout", "error", err)
			return nil, common.ErrorInternal
		}
	}

	return a, nil
}

func credentialOf(a *models.Account, kind credentialKind) (stored, salt []byte) {
	switch kind {
	case kindAdmin:
		return a.AdminVerifier, a.AdminSalt
	case kindRecovery:
		return a.RecoveryVerifier, a.RecoverySalt
	default:
		return a.LoginVerifier, a.LoginSalt
	}
}

func (s *AuthService) storedVerifier(raw []byte) (stored, salt []byte, err error) {
	salt = s.verifier.NewSalt()
	stored, err = s.verifier.ComputeStoredVerifier(raw, salt)
	if err != nil {
		return nil, nil, err
	}
	return stored, salt, nil
}

func (s *AuthService) openSession(ctx context.Context, accountID string) (*TokenPair, error) {
	jti := auth.NewJTI()
	now := s.now()

	minted, err := s.tokens.Mint(ctx, accountID, auth.HashJTI(jti), now)
	if err != nil {
		s.log.Error(ctx, "mint refresh token", "account_id", accountID, "error", err)
		return nil, common.ErrorInternal
	}

	access, err := s.issuer.IssueWithJTI(accountID, jti)
	if err != nil {
		s.log.Error(ctx, "issue access token", "account_id", accountID, "error", err)
		return nil, common.ErrorInternal
	}

	return &TokenPair{
		AccessToken:          access.Token,
		AccessTokenExpiresAt: access.ExpiresAt,
		RefreshToken:         minted.Token,
		RefreshExpiresAt:     minted.ExpiresAt,
	}, nil
}

// revokeSessions is best effort: the triggering operation already succeeded.
func (s *AuthService) revokeSessions(ctx context.Context, accountID string, now time.Time, reason models.RevokeReason) {
	n, err := s.tokens.RevokeAll(ctx, accountID, now, reason)
	if err != nil {
		s.log.Error(ctx, "revoke sessions", "account_id", accountID, "reason", string(reason), "error", err)
		return
	}
	s.log.Info(ctx, "sessions revoked", "account_id", accountID, "reason", string(reason), "count", n)
}
