package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tammam101/temox/backend/internal/common"
)

type fakeRow struct {
	id, username string
	err          error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.id
	*dest[1].(*string) = r.username
	return nil
}

type fakeQuerier struct {
	row  fakeRow
	sql  string
	args []any
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql = sql
	q.args = args
	return q.row
}

func TestInsertUser_Success(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{id: "u-1", username: "alice"}}
	s := NewPostgresStore(q)

	got, err := s.InsertUser(context.Background(), "alice", "$2a$10$hash")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, "alice", got.Username)

	require.Len(t, q.args, 3)
	_, err = uuid.Parse(q.args[0].(string))
	assert.NoError(t, err, "id should be a generated uuid")
	assert.Equal(t, "alice", q.args[1])
	assert.Equal(t, "$2a$10$hash", q.args[2])
	assert.Contains(t, q.sql, "INSERT INTO users")
	assert.Contains(t, q.sql, "RETURNING id, username")
}

func TestInsertUser_UniqueViolationIsConflict(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}}}
	s := NewPostgresStore(q)

	_, err := s.InsertUser(context.Background(), "alice", "h")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConflict))
}

func TestInsertUser_OtherPgErrorIsNotConflict(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: &pgconn.PgError{Code: "23502"}}}
	s := NewPostgresStore(q)

	_, err := s.InsertUser(context.Background(), "alice", "h")
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrConflict))
}

func TestInsertUser_DBError(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: errors.New("db down")}}
	s := NewPostgresStore(q)

	_, err := s.InsertUser(context.Background(), "alice", "h")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.False(t, errors.Is(err, common.ErrConflict))
}
