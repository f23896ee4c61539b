package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/logging"
	"github.com/dmitrijs2005/zkkeeper/internal/server/config"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.TokenStore = config.TokenStoreMemory
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.VerifierIterations = 10
	return c
}

func TestNewApp_Memory(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig(), logging.Discard())
	require.NoError(t, err)
	require.NotNil(t, app.server)
	require.NoError(t, app.Close())
}

func TestNewApp_BadVerifierConfig(t *testing.T) {
	c := memoryConfig()
	c.Pepper = nil

	_, err := NewApp(context.Background(), c, logging.Discard())
	require.Error(t, err)
}

func TestNewApp_PostgresUnreachable(t *testing.T) {
	c := memoryConfig()
	c.TokenStore = config.TokenStorePostgres
	c.DatabaseDSN = "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"

	_, err := NewApp(context.Background(), c, logging.Discard())
	require.Error(t, err)
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig(), logging.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}
