package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
		AddRow(int64(1), "admin", "$2a$10$hash", now)

	mock.ExpectQuery(`SELECT id, username, password_hash, created_at\s+FROM users`).
		WithArgs("admin").
		WillReturnRows(rows)

	user, err := repo.GetByUsername(ctx, "admin")
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT id, username, password_hash, created_at\s+FROM users`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}))

	user, err := repo.GetByUsername(ctx, "ghost")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
		AddRow(int64(5), "alice", "$2a$10$hash", now)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "$2a$10$hash").
		WillReturnRows(rows)

	user, err := repo.Save(ctx, "alice", "$2a$10$hash")
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(5), user.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_DuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "$2a$10$hash").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	user, err := repo.Save(ctx, "alice", "$2a$10$hash")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}
