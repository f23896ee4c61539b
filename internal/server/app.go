// Package server initializes and runs the account server. It selects the
// storage backends, runs migrations, wires the account service and serves it
// over gRPC until a signal or context cancellation arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/zkkeeper/internal/logging"
	"github.com/dmitrijs2005/zkkeeper/internal/server/auth"
	"github.com/dmitrijs2005/zkkeeper/internal/server/config"
	"github.com/dmitrijs2005/zkkeeper/internal/server/refresh"
	"github.com/dmitrijs2005/zkkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/zkkeeper/internal/server/services"
	"github.com/dmitrijs2005/zkkeeper/internal/server/verifier"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/zkkeeper/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	redis  *redis.Client
	server *gs.GRPCServer
}

// openStorage picks the repository manager for cfg.TokenStore. Accounts live
// in PostgreSQL unless everything is in memory.
func openStorage(ctx context.Context, cfg *config.Config) (repomanager.RepositoryManager, *sql.DB, *redis.Client, error) {
	if cfg.TokenStore == config.TokenStoreMemory {
		return repomanager.NewMemoryRepositoryManager(), nil, nil, nil
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("db ping error: %w", err)
	}

	if cfg.TokenStore != config.TokenStoreRedis {
		return repomanager.NewPostgresRepositoryManager(), db, nil, nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		db.Close()
		rdb.Close()
		return nil, nil, nil, fmt.Errorf("redis ping error: %w", err)
	}
	return repomanager.NewPostgresRepositoryManager(repomanager.WithRedisRefreshTokens(rdb)), db, rdb, nil
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	rm, db, rdb, err := openStorage(ctx, c)
	if err != nil {
		return nil, err
	}

	app := &App{config: c, logger: logger, db: db, redis: rdb}

	if err := rm.RunMigrations(ctx, db); err != nil {
		app.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	engine, err := verifier.NewEngine(c.Pepper, c.FakeSaltSecret, c.VerifierIterations)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("verifier init error: %w", err)
	}

	issuer := auth.NewIssuer([]byte(c.SecretKey), c.AccessTokenValidityDuration, nil)

	svc := services.NewAuthService(services.Dependencies{
		Accounts: rm.Accounts(db),
		Tokens:   refresh.NewStore(rm.RefreshTokens(db), c.RefreshTokenValidityDuration),
		Issuer:   issuer,
		Verifier: engine,
		Logger:   logger.With("module", "auth_service"),
	}, c)

	app.server = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, svc, issuer)

	logger.Info(ctx, "storage ready", "token_store", c.TokenStore)
	return app, nil
}

// Close releases the storage connections.
func (app *App) Close() error {
	var errs []error
	if app.redis != nil {
		errs = append(errs, app.redis.Close())
	}
	if app.db != nil {
		errs = append(errs, app.db.Close())
	}
	return errors.Join(errs...)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.Close(); err != nil {
		app.logger.Error(ctx, "close storage", "error", err)
	}
}
