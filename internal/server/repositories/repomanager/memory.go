package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/zkkeeper/internal/dbx"
	"github.com/dmitrijs2005/zkkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/zkkeeper/internal/server/repositories/refreshtokens"
)

// MemoryRepositoryManager serves process-local repositories for development
// and tests. Every call returns the same instances; db is ignored.
type MemoryRepositoryManager struct {
	accounts      *accounts.MemoryRepository
	refreshTokens *refreshtokens.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		accounts:      accounts.NewMemoryRepository(),
		refreshTokens: refreshtokens.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *MemoryRepositoryManager) Accounts(dbx.DBTX) accounts.Repository {
	return m.accounts
}

func (m *MemoryRepositoryManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return m.refreshTokens
}
