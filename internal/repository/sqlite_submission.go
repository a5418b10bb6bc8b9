package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/casereg/internal/db"
	"github.com/alexanderramin/casereg/internal/domain"
)

// SQLiteSubmissionRepo implements SubmissionRepo using a SQLite database.
type SQLiteSubmissionRepo struct {
	db db.DBTX
}

// NewSQLiteSubmissionRepo creates a new SQLiteSubmissionRepo.
func NewSQLiteSubmissionRepo(conn db.DBTX) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: conn}
}

const submissionColumns = `id, urn, case_id, status, defendants, payload, error, created_at, updated_at`

func (r *SQLiteSubmissionRepo) Create(ctx context.Context, s *domain.Submission) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO submissions (`+submissionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID,
		s.URN,
		s.CaseID,
		string(s.Status),
		s.Defendants,
		string(s.Payload),
		s.Error,
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

func (r *SQLiteSubmissionRepo) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = ?`, id)
	return scanSubmission(row)
}

// List returns the most recent submissions first. A non-positive limit
// returns all of them.
func (r *SQLiteSubmissionRepo) List(ctx context.Context, limit int) ([]*domain.Submission, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+submissionColumns+` FROM submissions ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

func (r *SQLiteSubmissionRepo) ListByURN(ctx context.Context, urn string) ([]*domain.Submission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE urn = ? ORDER BY created_at`, urn)
	if err != nil {
		return nil, fmt.Errorf("listing submissions by urn: %w", err)
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

func (r *SQLiteSubmissionRepo) Update(ctx context.Context, s *domain.Submission) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE submissions SET case_id = ?, status = ?, error = ?, updated_at = ? WHERE id = ?`,
		s.CaseID, string(s.Status), s.Error, formatTime(s.UpdatedAt), s.ID)
	if err != nil {
		return fmt.Errorf("updating submission: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("submission %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*domain.Submission, error) {
	var s domain.Submission
	var status, payload, createdAt, updatedAt string
	err := row.Scan(&s.ID, &s.URN, &s.CaseID, &status, &s.Defendants, &payload, &s.Error, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("submission: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning submission: %w", err)
	}
	s.Status = domain.SubmissionStatus(status)
	s.Payload = []byte(payload)
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSubmissions(rows *sql.Rows) ([]*domain.Submission, error) {
	var out []*domain.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
