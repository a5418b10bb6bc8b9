package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/casereg/internal/db"
	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/testutil"
)

func TestSubmissionRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sub := testutil.NewTestSubmission()
	require.NoError(t, repo.Create(ctx, sub))

	got, err := repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.URN, got.URN)
	assert.Equal(t, domain.SubmissionPending, got.Status)
	assert.Equal(t, 1, got.Defendants)
	assert.Equal(t, string(sub.Payload), string(got.Payload))
	assert.True(t, sub.CreatedAt.Equal(got.CreatedAt))
}

func TestSubmissionRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmissionRepo_Update(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sub := testutil.NewTestSubmission()
	require.NoError(t, repo.Create(ctx, sub))
	require.NoError(t, sub.MarkSubmitted("CASE-00042", time.Now()))
	require.NoError(t, repo.Update(ctx, sub))

	got, err := repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionSubmitted, got.Status)
	assert.Equal(t, "CASE-00042", got.CaseID)
}

func TestSubmissionRepo_UpdateMissing(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))

	err := repo.Update(context.Background(), testutil.NewTestSubmission())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmissionRepo_ListNewestFirst(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	old := testutil.NewTestSubmission(testutil.WithCreatedAt(base))
	mid := testutil.NewTestSubmission(testutil.WithCreatedAt(base.Add(time.Hour)))
	recent := testutil.NewTestSubmission(testutil.WithCreatedAt(base.Add(2 * time.Hour)))
	for _, s := range []*domain.Submission{mid, old, recent} {
		require.NoError(t, repo.Create(ctx, s))
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{recent.ID, mid.ID, old.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSubmissionRepo_ListByURN(t *testing.T) {
	repo := NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := testutil.NewTestSubmission(testutil.WithURN("01XY0000001/25"), testutil.WithSubmissionStatus(domain.SubmissionFailed))
	retry := testutil.NewTestSubmission(testutil.WithURN("01XY0000001/25"))
	other := testutil.NewTestSubmission()
	for _, s := range []*domain.Submission{first, retry, other} {
		require.NoError(t, repo.Create(ctx, s))
	}

	got, err := repo.ListByURN(ctx, "01XY0000001/25")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSubmissionRepo_TxRollback(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()
	sub := testutil.NewTestSubmission()
	boom := errors.New("gateway rejected")

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := NewSQLiteSubmissionRepo(tx).Create(ctx, sub); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewSQLiteSubmissionRepo(database).GetByID(ctx, sub.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
