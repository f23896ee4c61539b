package cli

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/client/config"
	"github.com/stretchr/testify/assert"
)

func TestGetStatus_Empty(t *testing.T) {
	a := &App{}
	if got := a.getStatus(); got != "" {
		t.Fatalf("want empty status, got %q", got)
	}
}

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name string
		app  *App
		want string
	}{
		{"profile only", &App{profile: "alice"}, "(alice)"},
		{"mode only", &App{Mode: ModeOffline}, "(offline)"},
		{"unlocked", &App{profile: "alice", masterKey: []byte{1}, Mode: ModeOnline}, "(alice unlocked online)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.app.getStatus())
		})
	}
}

func TestRoot_ExitsOnInputEnd(t *testing.T) {
	out := capturePrintln(t)

	f := &fakeAuth{}
	a := newTestApp(f, "help\nexit\n")
	a.config = &config.Config{OnlineCheckInterval: time.Hour}

	done := make(chan struct{})
	go func() {
		a.Root(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Root did not return")
	}

	assert.Equal(t, "Welcome to zkkeeper CLI (type 'help' for commands)", (*out)[0])
	assert.Contains(t, *out, helpLoggedOut)
}
