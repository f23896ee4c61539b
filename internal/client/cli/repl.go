package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/zkkeeper/internal/client/client"
	"github.com/dmitrijs2005/zkkeeper/internal/client/keyworker"
	"github.com/dmitrijs2005/zkkeeper/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Unlock(ctx context.Context, args []string) error
	Lock(ctx context.Context) error
	ChangePassword(ctx context.Context, args []string) error
	Recover(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	LogoutAll(ctx context.Context) error
	Benchmark(ctx context.Context, args []string) error
	Profiles(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register [profile] [kdf-mode], login [profile], recover [profile], profiles, benchmark [kdf-mode], exit"
	helpLoggedIn  = "Available commands: unlock, lock, passwd [kdf-mode], logout, logoutall, profiles, benchmark [kdf-mode], exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The first token is the command, the rest are its arguments. The loop exits
// on EOF or when the user types "exit" or "quit".
//
// Handler errors are reported to the user and never end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("zk %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cerr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			cerr = a.Register(ctx, args)
		case "login":
			cerr = a.Login(ctx, args)
		case "unlock":
			cerr = a.Unlock(ctx, args)
		case "lock":
			cerr = a.Lock(ctx)
		case "passwd":
			cerr = a.ChangePassword(ctx, args)
		case "recover":
			cerr = a.Recover(ctx, args)
		case "logout":
			cerr = a.Logout(ctx)
		case "logoutall":
			cerr = a.LogoutAll(ctx)
		case "benchmark":
			cerr = a.Benchmark(ctx, args)
		case "profiles":
			cerr = a.Profiles(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cerr != nil {
			printlnFn("Error:", describeError(cerr))
		}
	}
}

// describeError turns well-known failures into short user-facing text.
func describeError(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "invalid credentials"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, client.ErrNotLoggedIn):
		return "not logged in"
	case errors.Is(err, client.ErrConflict):
		return "account already exists"
	case errors.Is(err, keyworker.ErrBusy):
		return "another key operation is in progress"
	case errors.Is(err, keyworker.ErrTimeout):
		return "key operation timed out"
	case errors.Is(err, services.ErrNoProfile):
		return "no profile selected, pass a profile name"
	case errors.Is(err, services.ErrUnknownProfile):
		return "unknown profile, see 'profiles'"
	default:
		return err.Error()
	}
}
