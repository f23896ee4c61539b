package accounts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	"github.com/dmitrijs2005/zkkeeper/internal/dbx"
	"github.com/dmitrijs2005/zkkeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Account) error {
	query := `
		INSERT INTO accounts (id, login_verifier, login_salt, admin_verifier, admin_salt,
			recovery_verifier, recovery_salt, kdf_salt, kdf_mode,
			wrapped_mk_password, wrapped_mk_recovery, schema_version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	pw, err := json.Marshal(a.WrappedMKPassword)
	if err != nil {
		return err
	}
	rc, err := json.Marshal(a.WrappedMKRecovery)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		a.ID, a.LoginVerifier, a.LoginSalt, a.AdminVerifier, a.AdminSalt,
		a.RecoveryVerifier, a.RecoverySalt, a.KDFSalt, string(a.KDFMode),
		pw, rc, a.SchemaVersion, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Account, error) {
	query := `
		SELECT id, login_verifier, login_salt, admin_verifier, admin_salt,
			recovery_verifier, recovery_salt, kdf_salt, kdf_mode,
			wrapped_mk_password, wrapped_mk_recovery, schema_version,
			failed_login_count, last_failed_login_at, locked_until, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var (
		a           models.Account
		mode        string
		pw, rc      []byte
		lastFailed  sql.NullTime
		lockedUntil sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.LoginVerifier, &a.LoginSalt, &a.AdminVerifier, &a.AdminSalt,
		&a.RecoveryVerifier, &a.RecoverySalt, &a.KDFSalt, &mode,
		&pw, &rc, &a.SchemaVersion,
		&a.Lockout.FailedCount, &lastFailed, &lockedUntil, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	a.KDFMode = cryptox.KDFMode(mode)
	if a.WrappedMKPassword, err = decodeEnvelope(pw); err != nil {
		return nil, err
	}
	if a.WrappedMKRecovery, err = decodeEnvelope(rc); err != nil {
		return nil, err
	}
	if lastFailed.Valid {
		a.Lockout.LastFailedAt = &lastFailed.Time
	}
	if lockedUntil.Valid {
		a.Lockout.LockedUntil = &lockedUntil.Time
	}

	return &a, nil
}

func decodeEnvelope(b []byte) (*cryptox.Envelope, error) {
	env := &cryptox.Envelope{}
	if err := json.Unmarshal(b, env); err != nil {
		return nil, fmt.Errorf("%w: stored envelope: %v", common.ErrIntegrity, err)
	}
	return env, nil
}

func (r *PostgresRepository) UpdateLockout(ctx context.Context, id string, s models.Lockout, now time.Time) error {
	query := `
		UPDATE accounts
		SET failed_login_count = $2, last_failed_login_at = $3, locked_until = $4, updated_at = $5
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, s.FailedCount, s.LastFailedAt, s.LockedUntil, now)
	return affectedOne(res, err)
}

func (r *PostgresRepository) UpdatePasswordCredentials(ctx context.Context, id string, c models.PasswordCredentials, now time.Time) error {
	query := `
		UPDATE accounts
		SET login_verifier = $2, login_salt = $3, admin_verifier = $4, admin_salt = $5,
			kdf_salt = $6, kdf_mode = $7, wrapped_mk_password = $8,
			wrapped_mk_recovery = COALESCE($9, wrapped_mk_recovery),
			schema_version = $10, updated_at = $11
		WHERE id = $1
	`

	pw, err := json.Marshal(c.WrappedMKPassword)
	if err != nil {
		return err
	}
	// nil keeps the stored recovery wrap via COALESCE
	var rc any
	if c.WrappedMKRecovery != nil {
		b, err := json.Marshal(c.WrappedMKRecovery)
		if err != nil {
			return err
		}
		rc = b
	}

	res, err := r.db.ExecContext(ctx, query, id,
		c.LoginVerifier, c.LoginSalt, c.AdminVerifier, c.AdminSalt,
		c.KDFSalt, string(c.KDFMode), pw, rc, c.SchemaVersion, now)
	return affectedOne(res, err)
}

func (r *PostgresRepository) ReplaceAllCredentials(ctx context.Context, id string, c models.RecoveryCredentials, now time.Time) error {
	query := `
		UPDATE accounts
		SET login_verifier = $2, login_salt = $3, admin_verifier = $4, admin_salt = $5,
			recovery_verifier = $6, recovery_salt = $7,
			kdf_salt = $8, kdf_mode = $9, wrapped_mk_password = $10, wrapped_mk_recovery = $11,
			schema_version = $12, failed_login_count = 0, last_failed_login_at = NULL,
			locked_until = NULL, updated_at = $13
		WHERE id = $1
	`

	pw, err := json.Marshal(c.WrappedMKPassword)
	if err != nil {
		return err
	}
	rc, err := json.Marshal(c.WrappedMKRecovery)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, id,
		c.LoginVerifier, c.LoginSalt, c.AdminVerifier, c.AdminSalt,
		c.RecoveryVerifier, c.RecoverySalt,
		c.KDFSalt, string(c.KDFMode), pw, rc, c.SchemaVersion, now)
	return affectedOne(res, err)
}

func affectedOne(res sql.Result, err error) error {
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
