package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/zkkeeper/internal/client/models"
	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	"github.com/dmitrijs2005/zkkeeper/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

const profileColumns = `name, account_id, kdf_salt, kdf_mode, schema_version, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*models.Profile, error) {
	var (
		p    models.Profile
		mode string
	)
	if err := row.Scan(&p.Name, &p.AccountID, &p.KDFSalt, &mode, &p.SchemaVersion, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.KDFMode = cryptox.KDFMode(mode)
	return &p, nil
}

func (r *SQLiteRepository) GetProfile(ctx context.Context, name string) (*models.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE name = ?`, name)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile[%s]: %w", name, err)
	}
	return p, nil
}

func (r *SQLiteRepository) SaveProfile(ctx context.Context, p *models.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (name, account_id, kdf_salt, kdf_mode, schema_version, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			account_id = excluded.account_id,
			kdf_salt = excluded.kdf_salt,
			kdf_mode = excluded.kdf_mode,
			schema_version = excluded.schema_version,
			updated_at = excluded.updated_at
	`, p.Name, p.AccountID, p.KDFSalt, string(p.KDFMode), p.SchemaVersion, p.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save profile[%s]: %w", p.Name, err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteProfile(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete profile[%s]: %w", name, err)
	}
	return nil
}

func (r *SQLiteRepository) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var result []*models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profile rows: %w", err)
	}

	return result, nil
}
