package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/casereg/internal/db"
)

// FailingUoW runs transactions against DB but makes the first write whose
// SQL starts with FailPrefix return Err, e.g. "UPDATE submissions" to fail
// recording a submission outcome. Reads pass through. An empty FailPrefix
// fails the first write of any kind.
type FailingUoW struct {
	DB         *sql.DB
	FailPrefix string
	Err        error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingTx{DBTX: tx, prefix: u.FailPrefix, err: u.Err}
	if err := fn(ctx, wrapped); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	prefix string
	err    error
	fired  bool
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if !f.fired && strings.HasPrefix(strings.TrimSpace(query), f.prefix) {
		f.fired = true
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
