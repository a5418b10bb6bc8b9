package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/casereg/internal/db"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertCache(ctx context.Context, tx db.DBTX, kind string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO reference_cache (kind, payload, fetched_at) VALUES (?, '[]', '2025-01-01T00:00:00Z')`, kind)
	return err
}

func cached(t *testing.T, uow *db.SQLiteUnitOfWork, kind string) bool {
	t.Helper()
	var found bool
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM reference_cache WHERE kind = ?`, kind).Scan(&n); err != nil {
			return err
		}
		found = n > 0
		return nil
	}))
	return found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertCache(ctx, tx, "offences")
	})
	require.NoError(t, err)

	assert.True(t, cached(t, uow, "offences"), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)
	sentinel := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertCache(ctx, tx, "prosecutors"); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	assert.False(t, cached(t, uow, "prosecutors"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertCache(ctx, tx, "caseworkers")
			panic("boom")
		})
	})

	assert.False(t, cached(t, uow, "caseworkers"), "row should not exist after panic rollback")
}

func TestWithinTx_RetriesWhileLocked(t *testing.T) {
	uow := openTestUoW(t)
	calls := 0

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		calls++
		if calls < 3 {
			return errors.New("database is locked (5) (SQLITE_BUSY)")
		}
		return insertCache(ctx, tx, "offences")
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, cached(t, uow, "offences"))
}

func TestWithinTx_GivesUpWhenAlwaysLocked(t *testing.T) {
	uow := openTestUoW(t)
	calls := 0

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		calls++
		return errors.New("database is locked")
	})
	require.Error(t, err)
	assert.True(t, db.IsBusy(err))
	assert.Equal(t, 5, calls)
}

func TestWithinTx_OtherErrorsAreNotRetried(t *testing.T) {
	uow := openTestUoW(t)
	calls := 0

	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		calls++
		return errors.New("constraint failed")
	})
	assert.Equal(t, 1, calls)
}

func TestIsBusy(t *testing.T) {
	assert.False(t, db.IsBusy(nil))
	assert.False(t, db.IsBusy(errors.New("no such table")))
	assert.True(t, db.IsBusy(errors.New("sqlite: step: database is locked")))
	assert.True(t, db.IsBusy(errors.New("SQLITE_BUSY")))
}
