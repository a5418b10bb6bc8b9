package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/casereg/internal/db"
	"github.com/alexanderramin/casereg/internal/domain"
)

// SQLiteReferenceCacheRepo implements ReferenceCacheRepo using a SQLite database.
type SQLiteReferenceCacheRepo struct {
	db db.DBTX
}

// NewSQLiteReferenceCacheRepo creates a new SQLiteReferenceCacheRepo.
func NewSQLiteReferenceCacheRepo(conn db.DBTX) *SQLiteReferenceCacheRepo {
	return &SQLiteReferenceCacheRepo{db: conn}
}

func (r *SQLiteReferenceCacheRepo) Get(ctx context.Context, kind domain.ReferenceKind) (*CachedReference, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT kind, payload, fetched_at FROM reference_cache WHERE kind = ?`, string(kind))

	var ref CachedReference
	var kindStr, payload, fetchedAt string
	if err := row.Scan(&kindStr, &payload, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reference %s: %w", kind, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning reference cache: %w", err)
	}
	return populateReference(&ref, kindStr, payload, fetchedAt)
}

func (r *SQLiteReferenceCacheRepo) Put(ctx context.Context, ref *CachedReference) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reference_cache (kind, payload, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(kind) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		string(ref.Kind), string(ref.Payload), formatTime(ref.FetchedAt))
	if err != nil {
		return fmt.Errorf("upserting reference cache: %w", err)
	}
	return nil
}

func (r *SQLiteReferenceCacheRepo) List(ctx context.Context) ([]*CachedReference, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, payload, fetched_at FROM reference_cache ORDER BY kind`)
	if err != nil {
		return nil, fmt.Errorf("listing reference cache: %w", err)
	}
	defer rows.Close()

	var refs []*CachedReference
	for rows.Next() {
		var ref CachedReference
		var kindStr, payload, fetchedAt string
		if err := rows.Scan(&kindStr, &payload, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scanning reference cache row: %w", err)
		}
		p, err := populateReference(&ref, kindStr, payload, fetchedAt)
		if err != nil {
			return nil, err
		}
		refs = append(refs, p)
	}
	return refs, rows.Err()
}

func (r *SQLiteReferenceCacheRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reference_cache`); err != nil {
		return fmt.Errorf("clearing reference cache: %w", err)
	}
	return nil
}

func populateReference(ref *CachedReference, kind, payload, fetchedAt string) (*CachedReference, error) {
	t, err := parseTime(fetchedAt)
	if err != nil {
		return nil, err
	}
	ref.Kind = domain.ReferenceKind(kind)
	ref.Payload = []byte(payload)
	ref.FetchedAt = t
	return ref, nil
}
