package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	parts := make([]string, 0, 3)
	if a.profile != "" {
		parts = append(parts, a.profile)
	}
	if a.masterKey != nil {
		parts = append(parts, "unlocked")
	}
	if a.Mode != "" {
		parts = append(parts, string(a.Mode))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

// Root prints the banner, starts the connectivity watcher and runs the REPL
// until the user exits or input ends.
func (a *App) Root(ctx context.Context) {

	printlnFn("Welcome to zkkeeper CLI (type 'help' for commands)")

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartOnlineStatusWatcher(wctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
