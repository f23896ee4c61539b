// Package services contains application services for the zkkeeper client.
// This file defines the account service: register, login, admin unlock,
// password change, recovery and session teardown. All key material is
// derived and used inside the key worker.
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/api"
	"github.com/dmitrijs2005/zkkeeper/internal/client/client"
	"github.com/dmitrijs2005/zkkeeper/internal/client/keyworker"
	"github.com/dmitrijs2005/zkkeeper/internal/client/models"
	"github.com/dmitrijs2005/zkkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	"github.com/dmitrijs2005/zkkeeper/internal/logging"
	pb "github.com/dmitrijs2005/zkkeeper/internal/proto"
	"github.com/dmitrijs2005/zkkeeper/internal/timex"
	"github.com/google/uuid"
)

var (
	// ErrNoProfile means no profile was named and none is active.
	ErrNoProfile = errors.New("no profile selected")
	// ErrUnknownProfile means the name is neither a saved profile nor an account id.
	ErrUnknownProfile = errors.New("unknown profile")
	// ErrUnsupportedSchema means the account was written by a newer client.
	ErrUnsupportedSchema = errors.New("unsupported schema version")
)

// AuthService defines account operations for the CLI.
//
// A profile argument is a saved profile name or a raw account id; the empty
// string selects the active profile. Passwords passed in are never modified.
type AuthService interface {
	Register(ctx context.Context, profile string, password []byte, mode cryptox.KDFMode) (*Registration, error)
	Login(ctx context.Context, profile string, password []byte) ([]byte, error)
	UnlockWithAdmin(ctx context.Context, profile string, password []byte) ([]byte, error)
	ChangePassword(ctx context.Context, profile string, oldPassword, newPassword []byte, mode cryptox.KDFMode) error
	Recover(ctx context.Context, profile string, recoverySecret string, newPassword []byte, mode cryptox.KDFMode) (string, error)
	Logout(ctx context.Context) error
	LogoutAll(ctx context.Context) error
	Benchmark(ctx context.Context, mode cryptox.KDFMode) (time.Duration, error)
	Profiles(ctx context.Context) ([]*models.Profile, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Registration is what the user must keep after Register. RecoverySecret is
// shown once and never stored.
type Registration struct {
	AccountID      string
	RecoverySecret string
}

type authService struct {
	client   client.Client
	worker   *keyworker.Worker
	profiles metadata.Repository
	log      logging.Logger
	now      timex.Clock
}

// NewAuthService constructs an AuthService bound to the given API client, key
// worker and local profile store.
func NewAuthService(c client.Client, w *keyworker.Worker, profiles metadata.Repository, log logging.Logger) AuthService {
	return &authService{client: c, worker: w, profiles: profiles, log: log, now: timex.Now}
}

func (a *authService) Register(ctx context.Context, profile string, password []byte, mode cryptox.KDFMode) (*Registration, error) {
	if profile == "" {
		return nil, ErrNoProfile
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown kdf mode %q", mode)
	}

	accountID, err := a.client.PreRegister(ctx)
	if err != nil {
		return nil, fmt.Errorf("pre-register error: %w", err)
	}

	salt := cryptox.NewSalt()
	keys, err := a.deriveCredentials(ctx, password, salt, mode)
	if err != nil {
		return nil, err
	}
	defer keys.Wipe()

	secret := cryptox.NewRecoverySecret()
	defer common.WipeByteArray(secret)
	rk, err := a.deriveRecovery(ctx, secret)
	if err != nil {
		return nil, err
	}
	defer rk.Wipe()

	mk := cryptox.NewMasterKey()
	defer common.WipeByteArray(mk)

	wrapP, err := a.wrap(ctx, keys.KEK, mk, accountID, cryptox.SlotPassword)
	if err != nil {
		return nil, err
	}
	wrapR, err := a.wrap(ctx, rk.KEK, mk, accountID, cryptox.SlotRecovery)
	if err != nil {
		return nil, err
	}

	err = a.client.Register(ctx, &pb.RegisterRequest{
		AccountId:         accountID,
		LoginVerifier:     keys.LoginVerifier,
		AdminVerifier:     keys.AdminVerifier,
		RecoveryVerifier:  rk.Verifier,
		KdfSalt:           salt,
		KdfMode:           string(mode),
		WrappedMkPassword: api.EnvelopeToPB(wrapP),
		WrappedMkRecovery: api.EnvelopeToPB(wrapR),
		SchemaVersion:     common.CurrentSchemaVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}

	a.remember(ctx, &models.Profile{
		Name:          profile,
		AccountID:     accountID,
		KDFSalt:       salt,
		KDFMode:       mode,
		SchemaVersion: common.CurrentSchemaVersion,
	})

	return &Registration{AccountID: accountID, RecoverySecret: cryptox.FormatRecoverySecret(secret)}, nil
}

// Login authenticates and returns the unwrapped master key. The caller owns
// and must wipe it.
func (a *authService) Login(ctx context.Context, profile string, password []byte) ([]byte, error) {
	p, keys, err := a.prelogin(ctx, profile, password)
	if err != nil {
		return nil, err
	}
	defer keys.Wipe()

	resp, err := a.client.Login(ctx, &pb.LoginRequest{AccountId: p.AccountID, LoginVerifier: keys.LoginVerifier})
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	mk, err := a.unwrap(ctx, keys.KEK, api.EnvelopeFromPB(resp.GetWrappedMkPassword()), p.AccountID, cryptox.SlotPassword)
	if err != nil {
		return nil, err
	}

	a.remember(ctx, p)
	return mk, nil
}

// UnlockWithAdmin fetches the password wrap with the admin verifier and
// returns the master key without opening a session.
func (a *authService) UnlockWithAdmin(ctx context.Context, profile string, password []byte) ([]byte, error) {
	p, keys, err := a.prelogin(ctx, profile, password)
	if err != nil {
		return nil, err
	}
	defer keys.Wipe()

	env, err := a.client.GetWraps(ctx, &pb.GetWrapsRequest{AccountId: p.AccountID, AdminVerifier: keys.AdminVerifier})
	if err != nil {
		return nil, fmt.Errorf("get wraps error: %w", err)
	}
	return a.unwrap(ctx, keys.KEK, env, p.AccountID, cryptox.SlotPassword)
}

// ChangePassword re-wraps the master key under a key derived from
// newPassword with a fresh salt. The recovery wrap is left untouched.
func (a *authService) ChangePassword(ctx context.Context, profile string, oldPassword, newPassword []byte, mode cryptox.KDFMode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown kdf mode %q", mode)
	}

	p, old, err := a.prelogin(ctx, profile, oldPassword)
	if err != nil {
		return err
	}
	defer old.Wipe()

	env, err := a.client.GetWraps(ctx, &pb.GetWrapsRequest{AccountId: p.AccountID, AdminVerifier: old.AdminVerifier})
	if err != nil {
		return fmt.Errorf("get wraps error: %w", err)
	}
	mk, err := a.unwrap(ctx, old.KEK, env, p.AccountID, cryptox.SlotPassword)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(mk)

	salt := cryptox.NewSalt()
	next, err := a.deriveCredentials(ctx, newPassword, salt, mode)
	if err != nil {
		return err
	}
	defer next.Wipe()

	wrapP, err := a.wrap(ctx, next.KEK, mk, p.AccountID, cryptox.SlotPassword)
	if err != nil {
		return err
	}

	err = a.client.ChangePassword(ctx, &pb.ChangePasswordRequest{
		AccountId:            p.AccountID,
		AdminVerifier:        old.AdminVerifier,
		NewLoginVerifier:     next.LoginVerifier,
		NewAdminVerifier:     next.AdminVerifier,
		NewKdfSalt:           salt,
		NewKdfMode:           string(mode),
		NewWrappedMkPassword: api.EnvelopeToPB(wrapP),
		SchemaVersion:        common.CurrentSchemaVersion,
	})
	if err != nil {
		return fmt.Errorf("change password error: %w", err)
	}

	p.KDFSalt, p.KDFMode, p.SchemaVersion = salt, mode, common.CurrentSchemaVersion
	a.remember(ctx, p)
	return nil
}

// Recover unwraps the master key with the recovery secret, then replaces
// every credential. It returns the new recovery secret.
func (a *authService) Recover(ctx context.Context, profile string, recoverySecret string, newPassword []byte, mode cryptox.KDFMode) (string, error) {
	if !mode.Valid() {
		return "", fmt.Errorf("unknown kdf mode %q", mode)
	}
	p, err := a.resolve(ctx, profile)
	if err != nil {
		return "", err
	}

	secret, err := cryptox.ParseRecoverySecret(recoverySecret)
	if err != nil {
		return "", err
	}
	rk, err := a.deriveRecovery(ctx, secret)
	common.WipeByteArray(secret)
	if err != nil {
		return "", err
	}
	defer rk.Wipe()

	env, err := a.client.GetRecoveryWraps(ctx, &pb.GetRecoveryWrapsRequest{AccountId: p.AccountID, RecoveryVerifier: rk.Verifier})
	if err != nil {
		return "", fmt.Errorf("get recovery wraps error: %w", err)
	}
	mk, err := a.unwrap(ctx, rk.KEK, env, p.AccountID, cryptox.SlotRecovery)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(mk)

	salt := cryptox.NewSalt()
	next, err := a.deriveCredentials(ctx, newPassword, salt, mode)
	if err != nil {
		return "", err
	}
	defer next.Wipe()

	nextSecret := cryptox.NewRecoverySecret()
	defer common.WipeByteArray(nextSecret)
	nrk, err := a.deriveRecovery(ctx, nextSecret)
	if err != nil {
		return "", err
	}
	defer nrk.Wipe()

	wrapP, err := a.wrap(ctx, next.KEK, mk, p.AccountID, cryptox.SlotPassword)
	if err != nil {
		return "", err
	}
	wrapR, err := a.wrap(ctx, nrk.KEK, mk, p.AccountID, cryptox.SlotRecovery)
	if err != nil {
		return "", err
	}

	err = a.client.Recover(ctx, &pb.RecoverRequest{
		AccountId:            p.AccountID,
		RecoveryVerifier:     rk.Verifier,
		NewLoginVerifier:     next.LoginVerifier,
		NewAdminVerifier:     next.AdminVerifier,
		NewRecoveryVerifier:  nrk.Verifier,
		NewKdfSalt:           salt,
		NewKdfMode:           string(mode),
		NewWrappedMkPassword: api.EnvelopeToPB(wrapP),
		NewWrappedMkRecovery: api.EnvelopeToPB(wrapR),
		SchemaVersion:        common.CurrentSchemaVersion,
	})
	if err != nil {
		return "", fmt.Errorf("recover error: %w", err)
	}

	p.KDFSalt, p.KDFMode, p.SchemaVersion = salt, mode, common.CurrentSchemaVersion
	a.remember(ctx, p)
	return cryptox.FormatRecoverySecret(nextSecret), nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.client.Logout(ctx)
}

func (a *authService) LogoutAll(ctx context.Context) error {
	return a.client.LogoutAll(ctx)
}

// Benchmark times one derivation with throwaway inputs.
func (a *authService) Benchmark(ctx context.Context, mode cryptox.KDFMode) (time.Duration, error) {
	resp, err := a.worker.Submit(ctx, keyworker.Request{
		Op:       keyworker.OpBenchmark,
		Password: common.GenerateRandByteArray(16),
		Salt:     cryptox.NewSalt(),
		Mode:     mode,
	})
	if err != nil {
		return 0, err
	}
	return resp.Elapsed, nil
}

func (a *authService) Profiles(ctx context.Context) ([]*models.Profile, error) {
	return a.profiles.ListProfiles(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close stops the key worker and releases the client connection.
func (a *authService) Close(ctx context.Context) error {
	a.worker.Close()
	return a.client.Close()
}

// resolve maps a profile argument to a profile. An unknown name that parses
// as an account id yields an unsaved profile for that id.
func (a *authService) resolve(ctx context.Context, name string) (*models.Profile, error) {
	if name == "" {
		active, err := a.profiles.Get(ctx, metadata.ActiveProfileKey)
		if err != nil {
			return nil, err
		}
		if len(active) == 0 {
			return nil, ErrNoProfile
		}
		name = string(active)
	}

	p, err := a.profiles.GetProfile(ctx, name)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}
	if _, perr := uuid.Parse(name); perr != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProfile, name)
	}
	return &models.Profile{Name: name, AccountID: name}, nil
}

// prelogin resolves the profile, asks the server for the KDF parameters and
// derives the password keys.
func (a *authService) prelogin(ctx context.Context, profile string, password []byte) (*models.Profile, *cryptox.PasswordKeys, error) {
	p, err := a.resolve(ctx, profile)
	if err != nil {
		return nil, nil, err
	}

	pre, err := a.client.PreLogin(ctx, p.AccountID)
	if err != nil {
		return nil, nil, fmt.Errorf("pre-login error: %w", err)
	}
	schema := int(pre.GetSchemaVersion())
	if schema > common.CurrentSchemaVersion {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedSchema, schema)
	}
	mode, err := cryptox.ParseKDFMode(pre.GetKdfMode())
	if err != nil {
		return nil, nil, err
	}

	keys, err := a.deriveCredentials(ctx, password, pre.GetKdfSalt(), mode)
	if err != nil {
		return nil, nil, err
	}

	p.KDFSalt, p.KDFMode, p.SchemaVersion = pre.GetKdfSalt(), mode, schema
	return p, keys, nil
}

// remember saves the profile and marks it active. Failures are logged only:
// the server side of the operation has already succeeded.
func (a *authService) remember(ctx context.Context, p *models.Profile) {
	p.UpdatedAt = a.now()
	if err := a.profiles.SaveProfile(ctx, p); err != nil {
		a.log.Warn(ctx, "failed to save profile", "profile", p.Name, "err", err)
		return
	}
	if err := a.profiles.Set(ctx, metadata.ActiveProfileKey, []byte(p.Name)); err != nil {
		a.log.Warn(ctx, "failed to set active profile", "profile", p.Name, "err", err)
	}
}

func (a *authService) deriveCredentials(ctx context.Context, password, salt []byte, mode cryptox.KDFMode) (*cryptox.PasswordKeys, error) {
	resp, err := a.worker.Submit(ctx, keyworker.Request{
		Op:       keyworker.OpDeriveCredentials,
		Password: bytes.Clone(password),
		Salt:     salt,
		Mode:     mode,
	})
	if err != nil {
		return nil, fmt.Errorf("derive credentials: %w", err)
	}
	return resp.Keys, nil
}

func (a *authService) deriveRecovery(ctx context.Context, secret []byte) (*cryptox.RecoveryKeys, error) {
	resp, err := a.worker.Submit(ctx, keyworker.Request{
		Op:             keyworker.OpDeriveRecovery,
		RecoverySecret: bytes.Clone(secret),
	})
	if err != nil {
		return nil, fmt.Errorf("derive recovery: %w", err)
	}
	return resp.Recovery, nil
}

// wrap hands kek to the worker, which consumes it.
func (a *authService) wrap(ctx context.Context, kek *cryptox.KEK, mk []byte, accountID string, slot cryptox.Slot) (*cryptox.Envelope, error) {
	resp, err := a.worker.Submit(ctx, keyworker.Request{
		Op:        keyworker.OpWrapKey,
		KEK:       kek,
		MasterKey: mk,
		AAD:       cryptox.MasterKeyAAD(accountID, slot),
	})
	if err != nil {
		return nil, fmt.Errorf("wrap %s: %w", slot, err)
	}
	return resp.Envelope, nil
}

// unwrap hands kek to the worker, which consumes it.
func (a *authService) unwrap(ctx context.Context, kek *cryptox.KEK, env *cryptox.Envelope, accountID string, slot cryptox.Slot) ([]byte, error) {
	resp, err := a.worker.Submit(ctx, keyworker.Request{
		Op:       keyworker.OpUnwrapKey,
		KEK:      kek,
		Envelope: env,
		AAD:      cryptox.MasterKeyAAD(accountID, slot),
	})
	if err != nil {
		return nil, fmt.Errorf("unwrap %s: %w", slot, err)
	}
	return resp.MasterKey, nil
}
