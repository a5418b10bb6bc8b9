package db

import (
	"context"
	"database/sql"
)

// DBTX is what the submission and reference-cache repos need from a
// connection. Both the shared *sql.DB and a *sql.Tx from UnitOfWork satisfy
// it, so one repo type serves plain reads and transactional writes.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
