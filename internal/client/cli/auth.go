package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
)

// getSimpleText, getPassword and getNewPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getNewPassword = GetNewPassword

var ErrMissingArgument = errors.New("missing argument")

func (a *App) currentProfile() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profile
}

func (a *App) setProfile(name string) {
	if name == "" {
		return
	}
	a.mu.Lock()
	a.profile = name
	a.mu.Unlock()
}

// profileArg returns args[0] or the current profile.
func (a *App) profileArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.currentProfile()
}

func modeArg(args []string, i int) (cryptox.KDFMode, error) {
	if len(args) <= i {
		return cryptox.DefaultKDFMode, nil
	}
	return cryptox.ParseKDFMode(args[i])
}

// Register creates an account under a new local profile.
//
// Usage: register [profile] [kdf-mode]. The recovery secret is printed once
// and is not stored anywhere.
func (a *App) Register(ctx context.Context, args []string) error {
	profile := ""
	if len(args) > 0 {
		profile = args[0]
	} else {
		name, err := getSimpleText(a.reader, "Enter profile name", a.out)
		if err != nil {
			return err
		}
		profile = name
	}
	if profile == "" {
		return fmt.Errorf("%w: profile name", ErrMissingArgument)
	}

	mode, err := modeArg(args, 1)
	if err != nil {
		return err
	}

	password, err := getNewPassword(a.reader, "Master password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	reg, err := a.authService.Register(ctx, profile, password, mode)
	if err != nil {
		return err
	}
	a.setProfile(profile)

	printlnFn("Account created:", reg.AccountID)
	printlnFn("Recovery secret (write it down, it is shown only once):")
	printlnFn(reg.RecoverySecret)
	return nil
}

// Login authenticates and unwraps the master key.
//
// Usage: login [profile].
func (a *App) Login(ctx context.Context, args []string) error {
	profile := a.profileArg(args)

	password, err := getPassword(a.reader, "Master password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	mk, err := a.authService.Login(ctx, profile, password)
	if err != nil {
		a.log.Info(ctx, "login failed", "profile", profile, "error", err)
		return err
	}

	a.setMasterKey(mk)
	a.setProfile(profile)
	a.setMode(ModeOnline)
	printlnFn("Logged in")
	return nil
}

// Unlock re-derives the master key with the admin credential of the current
// profile.
func (a *App) Unlock(ctx context.Context, args []string) error {
	profile := a.profileArg(args)

	password, err := getPassword(a.reader, "Master password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	mk, err := a.authService.UnlockWithAdmin(ctx, profile, password)
	if err != nil {
		return err
	}

	a.setMasterKey(mk)
	printlnFn("Unlocked")
	return nil
}

// Lock forgets the master key but keeps the session.
func (a *App) Lock(ctx context.Context) error {
	a.setMasterKey(nil)
	printlnFn("Locked")
	return nil
}

// ChangePassword replaces the master password of the current profile.
//
// Usage: passwd [kdf-mode]. Every session is revoked, so the user has to log
// in again.
func (a *App) ChangePassword(ctx context.Context, args []string) error {
	mode, err := modeArg(args, 0)
	if err != nil {
		return err
	}

	oldPassword, err := getPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getNewPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	if err := a.authService.ChangePassword(ctx, a.currentProfile(), oldPassword, newPassword, mode); err != nil {
		return err
	}

	a.setMasterKey(nil)
	printlnFn("Password changed, please log in again")
	return nil
}

// Recover sets a new master password using the recovery secret.
//
// Usage: recover [profile] [kdf-mode]. A fresh recovery secret is printed.
func (a *App) Recover(ctx context.Context, args []string) error {
	profile := a.profileArg(args)
	mode, err := modeArg(args, 1)
	if err != nil {
		return err
	}

	secret, err := getSimpleText(a.reader, "Enter recovery secret", a.out)
	if err != nil {
		return err
	}

	newPassword, err := getNewPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	next, err := a.authService.Recover(ctx, profile, secret, newPassword, mode)
	if err != nil {
		return err
	}

	a.setMasterKey(nil)
	a.setProfile(profile)
	printlnFn("Password reset, please log in again")
	printlnFn("New recovery secret (the old one no longer works):")
	printlnFn(next)
	return nil
}

// Logout revokes the current session. The master key is dropped even when
// the server call fails.
func (a *App) Logout(ctx context.Context) error {
	a.setMasterKey(nil)
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

// LogoutAll revokes every session of the account.
func (a *App) LogoutAll(ctx context.Context) error {
	if err := a.authService.LogoutAll(ctx); err != nil {
		return err
	}
	a.setMasterKey(nil)
	printlnFn("All sessions revoked")
	return nil
}

// Benchmark times a single key derivation in the given mode.
func (a *App) Benchmark(ctx context.Context, args []string) error {
	mode, err := modeArg(args, 0)
	if err != nil {
		return err
	}

	d, err := a.authService.Benchmark(ctx, mode)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%s: %s", mode, d.Round(time.Millisecond)))
	return nil
}

// Profiles lists locally known profiles. The current one is starred.
func (a *App) Profiles(ctx context.Context) error {
	list, err := a.authService.Profiles(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No profiles")
		return nil
	}

	cur := a.currentProfile()
	for _, p := range list {
		mark := " "
		if p.Name == cur {
			mark = "*"
		}
		printlnFn(fmt.Sprintf("%s %-16s %s %s", mark, p.Name, p.AccountID, p.KDFMode))
	}
	return nil
}
