package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	insertQ    = `(?s)^\s*INSERT\s+INTO\s+refresh_tokens\s*\(id,\s*account_id,\s*token_hash,\s*access_jti_hash,\s*created_at,\s*expires_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*$`
	rotateQ    = `(?s)^\s*UPDATE\s+refresh_tokens\s+SET\s+revoked_at\s*=\s*\$2,\s*revoked_reason\s*=\s*\$3\s+WHERE\s+token_hash\s*=\s*\$1\s+AND\s+revoked_at\s+IS\s+NULL\s+AND\s+expires_at\s*>\s*\$2\s+RETURNING\s+account_id\s*$`
	classifyQ  = `(?s)^\s*SELECT\s+account_id,\s*revoked_at\s+IS\s+NOT\s+NULL\s+FROM\s+refresh_tokens\s+WHERE\s+token_hash\s*=\s*\$1\s*$`
	revokeQ    = `(?s)^\s*UPDATE\s+refresh_tokens\s+SET\s+revoked_at\s*=\s*\$2,\s*revoked_reason\s*=\s*\$3\s+WHERE\s+token_hash\s*=\s*\$1\s+AND\s+revoked_at\s+IS\s+NULL\s*$`
	revokeAllQ = `(?s)^\s*UPDATE\s+refresh_tokens\s+SET\s+revoked_at\s*=\s*\$2,\s*revoked_reason\s*=\s*\$3\s+WHERE\s+account_id\s*=\s*\$1\s+AND\s+revoked_at\s+IS\s+NULL\s*$`
)

func TestPostgresCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	tok := newToken("acc", "raw", base)
	mock.ExpectExec(insertQ).
		WithArgs(tok.ID, "acc", tok.TokenHash, tok.AccessJTIHash, tok.CreatedAt, tok.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertQ).WillReturnError(errors.New("db down"))

	require.NoError(t, repo.Create(context.Background(), tok))

	err := repo.Create(context.Background(), tok)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindByHash(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*account_id,.*FROM\s+refresh_tokens\s+WHERE\s+token_hash\s*=\s*\$1\s*$`
	tok := newToken("acc", "raw", base)
	revokedAt := base.Add(time.Minute)

	rows := sqlmock.NewRows([]string{"id", "account_id", "token_hash", "access_jti_hash", "created_at", "expires_at", "revoked_at", "revoked_reason"}).
		AddRow(tok.ID, "acc", tok.TokenHash, tok.AccessJTIHash, tok.CreatedAt, tok.ExpiresAt, revokedAt, "rotated")
	mock.ExpectQuery(q).WithArgs(tok.TokenHash).WillReturnRows(rows)
	mock.ExpectQuery(q).WithArgs(hashOf("ghost")).WillReturnError(sql.ErrNoRows)

	got, err := repo.FindByHash(context.Background(), tok.TokenHash)
	require.NoError(t, err)
	assert.Equal(t, tok.ID, got.ID)
	require.NotNil(t, got.RevokedAt)
	assert.Equal(t, revokedAt, *got.RevokedAt)
	assert.Equal(t, models.RevokeRotated, *got.RevokedReason)
	assert.False(t, got.Live(base))

	_, err = repo.FindByHash(context.Background(), hashOf("ghost"))
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresRotate_OK(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	presented := hashOf("raw-1")
	next := newToken("", "raw-2", base)

	mock.ExpectBegin()
	mock.ExpectQuery(rotateQ).
		WithArgs(presented, base, "rotated").
		WillReturnRows(sqlmock.NewRows([]string{"account_id"}).AddRow("acc"))
	mock.ExpectExec(insertQ).
		WithArgs(next.ID, "acc", next.TokenHash, next.AccessJTIHash, next.CreatedAt, next.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	status, acc, err := repo.Rotate(context.Background(), presented, next, base)
	require.NoError(t, err)
	assert.Equal(t, models.RotateOK, status)
	assert.Equal(t, "acc", acc)
	assert.Equal(t, "acc", next.AccountID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRotate_Classification(t *testing.T) {
	tests := []struct {
		name       string
		rows       *sqlmock.Rows
		err        error
		wantStatus models.RotateStatus
		wantAcc    string
	}{
		{name: "not found", err: sql.ErrNoRows, wantStatus: models.RotateNotFound},
		{name: "revoked", rows: sqlmock.NewRows([]string{"account_id", "revoked"}).AddRow("acc", true), wantStatus: models.RotateAlreadyRevoked, wantAcc: "acc"},
		{name: "expired", rows: sqlmock.NewRows([]string{"account_id", "revoked"}).AddRow("acc", false), wantStatus: models.RotateExpired, wantAcc: "acc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			presented := hashOf("raw-1")

			mock.ExpectBegin()
			mock.ExpectQuery(rotateQ).WithArgs(presented, base, "rotated").WillReturnError(sql.ErrNoRows)
			q := mock.ExpectQuery(classifyQ).WithArgs(presented)
			if tt.err != nil {
				q.WillReturnError(tt.err)
			} else {
				q.WillReturnRows(tt.rows)
			}
			mock.ExpectCommit()

			status, acc, err := repo.Rotate(context.Background(), presented, newToken("", "raw-2", base), base)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantAcc, acc)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRotate_InsertFailureRollsBack(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(rotateQ).WillReturnRows(sqlmock.NewRows([]string{"account_id"}).AddRow("acc"))
	mock.ExpectExec(insertQ).WillReturnError(errors.New("duplicate"))
	mock.ExpectRollback()

	_, _, err := repo.Rotate(context.Background(), hashOf("raw-1"), newToken("", "raw-2", base), base)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRevoke(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	h := hashOf("raw")
	mock.ExpectExec(revokeQ).WithArgs(h, base, "logout").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(revokeAllQ).WithArgs("acc", base, "reuse_detected").WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.Revoke(context.Background(), h, base, models.RevokeLogout))

	n, err := repo.RevokeAllForAccount(context.Background(), "acc", base, models.RevokeReuseDetected)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, mock.ExpectationsWereMet())
}
