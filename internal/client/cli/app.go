package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/client/client"
	"github.com/dmitrijs2005/zkkeeper/internal/client/config"
	"github.com/dmitrijs2005/zkkeeper/internal/client/keyworker"
	"github.com/dmitrijs2005/zkkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/zkkeeper/internal/client/services"
	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	"github.com/dmitrijs2005/zkkeeper/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	db          *sql.DB
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer

	mu        sync.Mutex
	masterKey []byte
	profile   string
	Mode      Mode
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, client.WithCallTimeout(c.CallTimeout))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	w := keyworker.New(cryptox.NewKDF(cryptox.DefaultKDFParams()), c.WorkerTimeout, log)
	as := services.NewAuthService(apiClient, w, metadata.NewSQLiteRepository(db), log)

	return &App{
		config:      c,
		authService: as,
		db:          db,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		profile:     c.Profile,
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// Run blocks in the REPL and releases every resource on return.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)
	a.Root(ctx)
}

// Close wipes the master key and shuts down the worker, the connection and
// the local database.
func (a *App) Close(ctx context.Context) {
	a.setMasterKey(nil)
	if err := a.authService.Close(ctx); err != nil {
		a.log.Warn(ctx, "close client", "error", err)
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.masterKey != nil
}

// setMasterKey replaces the held master key, wiping the previous one.
func (a *App) setMasterKey(mk []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	common.WipeByteArray(a.masterKey)
	a.masterKey = mk
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
