// Package repomanager provides RepositoryManager implementations that vend
// account and refresh token repositories and run database migrations
// (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/zkkeeper/internal/dbx"
	"github.com/dmitrijs2005/zkkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/zkkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/zkkeeper/internal/server/repositories/refreshtokens"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories. Refresh
// tokens can be moved to Redis with WithRedisRefreshTokens.
type PostgresRepositoryManager struct {
	redis redis.UniversalClient
}

// Option configures a PostgresRepositoryManager.
type Option func(*PostgresRepositoryManager)

// WithRedisRefreshTokens keeps refresh tokens in Redis instead of PostgreSQL.
func WithRedisRefreshTokens(c redis.UniversalClient) Option {
	return func(m *PostgresRepositoryManager) {
		m.redis = c
	}
}

// Accounts returns an accounts.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db)
}

// RefreshTokens returns a refreshtokens.Repository. db is ignored when the
// tokens live in Redis.
func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	if m.redis != nil {
		return refreshtokens.NewRedisRepository(m.redis)
	}
	return refreshtokens.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(opts ...Option) RepositoryManager {
	m := &PostgresRepositoryManager{}
	for _, o := range opts {
		o(m)
	}
	return m
}
