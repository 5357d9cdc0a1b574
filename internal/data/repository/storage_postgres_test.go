package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRow struct {
	value string
	err   error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

type stubPgx struct {
	row      stubRow
	execErrs []error
	execs    int
	closed   bool
}

func (s *stubPgx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPgx) QueryRow(context.Context, string, ...any) pgx.Row {
	return s.row
}

func (s *stubPgx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	s.execs++
	if len(s.execErrs) > 0 {
		err := s.execErrs[0]
		s.execErrs = s.execErrs[1:]
		return pgconn.CommandTag{}, err
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (s *stubPgx) Begin(context.Context) (pgx.Tx, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPgx) Ping(context.Context) error { return nil }

func (s *stubPgx) Close() { s.closed = true }

func newTestPostgresStorage(db *stubPgx) *PostgresStorage {
	s := NewPostgresStorage(db, zap.NewNop())
	s.delays = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}
	return s
}

func TestPostgresStorage_GetItem(t *testing.T) {
	s := newTestPostgresStorage(&stubPgx{row: stubRow{value: "[]"}})

	value, ok, err := s.GetItem(context.Background(), KeyBookings)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
}

func TestPostgresStorage_GetItemMissing(t *testing.T) {
	s := newTestPostgresStorage(&stubPgx{row: stubRow{err: pgx.ErrNoRows}})

	_, ok, err := s.GetItem(context.Background(), KeyBookings)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostgresStorage_SetItemRetriesSerializationFailure(t *testing.T) {
	db := &stubPgx{execErrs: []error{
		&pgconn.PgError{Code: pgerrcode.SerializationFailure},
		&pgconn.PgError{Code: pgerrcode.DeadlockDetected},
	}}
	s := newTestPostgresStorage(db)

	require.NoError(t, s.SetItem(context.Background(), KeyUsername, "demo"))
	assert.Equal(t, 3, db.execs)
}

func TestPostgresStorage_SetItemDoesNotRetryOtherErrors(t *testing.T) {
	db := &stubPgx{execErrs: []error{&pgconn.PgError{Code: pgerrcode.UniqueViolation}}}
	s := newTestPostgresStorage(db)

	err := s.SetItem(context.Background(), KeyUsername, "demo")
	require.Error(t, err)
	assert.Equal(t, 1, db.execs)
}

func TestPostgresStorage_RemoveItemGivesUpAfterRetries(t *testing.T) {
	connErr := errors.New("dial tcp: connection refused")
	db := &stubPgx{execErrs: []error{connErr, connErr, connErr, connErr, connErr}}
	s := newTestPostgresStorage(db)

	err := s.RemoveItem(context.Background(), KeyUsername)
	assert.ErrorIs(t, err, connErr)
	assert.Equal(t, 4, db.execs)
}

func TestPostgresStorage_Close(t *testing.T) {
	db := &stubPgx{}
	s := newTestPostgresStorage(db)

	require.NoError(t, s.Close())
	assert.True(t, db.closed)
}
