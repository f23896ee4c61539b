package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/dbx"
	"github.com/dmitrijs2005/zkkeeper/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.RefreshToken) error {
	return insert(ctx, r.db, t)
}

func insert(ctx context.Context, db dbx.DBTX, t *models.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (id, account_id, token_hash, access_jti_hash, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := db.ExecContext(ctx, query, t.ID, t.AccountID, t.TokenHash, t.AccessJTIHash, t.CreatedAt, t.ExpiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindByHash(ctx context.Context, hash []byte) (*models.RefreshToken, error) {
	query := `
		SELECT id, account_id, token_hash, access_jti_hash, created_at, expires_at, revoked_at, revoked_reason
		FROM refresh_tokens
		WHERE token_hash = $1
	`

	var (
		t         models.RefreshToken
		revokedAt sql.NullTime
		reason    sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, hash).Scan(
		&t.ID, &t.AccountID, &t.TokenHash, &t.AccessJTIHash, &t.CreatedAt, &t.ExpiresAt, &revokedAt, &reason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if revokedAt.Valid {
		t.RevokedAt = &revokedAt.Time
	}
	if reason.Valid {
		rr := models.RevokeReason(reason.String)
		t.RevokedReason = &rr
	}
	return &t, nil
}

// Rotate relies on the conditional UPDATE: a concurrent rotation of the same
// row blocks on the row lock, then re-checks revoked_at and matches nothing.
func (r *PostgresRepository) Rotate(ctx context.Context, presentedHash []byte, next *models.RefreshToken, now time.Time) (models.RotateStatus, string, error) {
	status := models.RotateNotFound
	var accountID string

	err := dbx.RunInTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		query := `
			UPDATE refresh_tokens
			SET revoked_at = $2, revoked_reason = $3
			WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > $2
			RETURNING account_id
		`
		err := tx.QueryRowContext(ctx, query, presentedHash, now, string(models.RevokeRotated)).Scan(&accountID)
		if errors.Is(err, sql.ErrNoRows) {
			status, accountID, err = classify(ctx, tx, presentedHash)
			return err
		}
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		next.AccountID = accountID
		if err := insert(ctx, tx, next); err != nil {
			return err
		}
		status = models.RotateOK
		return nil
	})
	if err != nil {
		return models.RotateNotFound, "", err
	}
	return status, accountID, nil
}

// classify explains why the conditional update matched nothing. A revoked
// token is reported as such even when it has also expired.
func classify(ctx context.Context, tx dbx.DBTX, hash []byte) (models.RotateStatus, string, error) {
	query := `
		SELECT account_id, revoked_at IS NOT NULL
		FROM refresh_tokens
		WHERE token_hash = $1
	`
	var (
		accountID string
		revoked   bool
	)
	err := tx.QueryRowContext(ctx, query, hash).Scan(&accountID, &revoked)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RotateNotFound, "", nil
	}
	if err != nil {
		return models.RotateNotFound, "", fmt.Errorf("db error: %w", err)
	}
	if revoked {
		return models.RotateAlreadyRevoked, accountID, nil
	}
	return models.RotateExpired, accountID, nil
}

func (r *PostgresRepository) Revoke(ctx context.Context, hash []byte, now time.Time, reason models.RevokeReason) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = $2, revoked_reason = $3
		WHERE token_hash = $1 AND revoked_at IS NULL
	`
	if _, err := r.db.ExecContext(ctx, query, hash, now, string(reason)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RevokeAllForAccount(ctx context.Context, accountID string, now time.Time, reason models.RevokeReason) (int64, error) {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = $2, revoked_reason = $3
		WHERE account_id = $1 AND revoked_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, accountID, now, string(reason))
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
