package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAccess_ReadDuringWrite lists submissions from several readers
// while a single writer records new ones, as a 'submissions list' run during
// a wizard submission would.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteSubmissionRepo(database)

	const writes = 20
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			if err := repo.Create(ctx, testutil.NewTestSubmission()); err != nil {
				t.Errorf("writer: create submission %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				subs, err := repo.List(ctx, writes)
				if err != nil {
					t.Errorf("reader %d: list: %v", reader, err)
					return
				}
				for _, s := range subs {
					if s.ID == "" || s.URN == "" {
						t.Errorf("reader %d: got a half-written submission", reader)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	subs, err := repo.List(ctx, writes+1)
	require.NoError(t, err)
	assert.Len(t, subs, writes)
}

// TestConcurrentAccess_CacheReadsAfterRefresh fills the reference cache one
// kind at a time, then reads it back from many goroutines.
func TestConcurrentAccess_CacheReadsAfterRefresh(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteReferenceCacheRepo(database)

	fetched := time.Now().UTC().Truncate(time.Second)
	for i, kind := range domain.AllReferenceKinds {
		require.NoError(t, repo.Put(ctx, &CachedReference{
			Kind:      kind,
			Payload:   []byte(fmt.Sprintf(`[{"id":%d}]`, i)),
			FetchedAt: fetched,
		}))
	}

	var wg sync.WaitGroup
	const readers = 20

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()

			entries, err := repo.List(ctx)
			if err != nil {
				t.Errorf("reader %d: list: %v", reader, err)
				return
			}
			if len(entries) != len(domain.AllReferenceKinds) {
				t.Errorf("reader %d: expected %d entries, got %d", reader, len(domain.AllReferenceKinds), len(entries))
			}

			kind := domain.AllReferenceKinds[reader%len(domain.AllReferenceKinds)]
			got, err := repo.Get(ctx, kind)
			if err != nil {
				t.Errorf("reader %d: get %s: %v", reader, kind, err)
				return
			}
			if !got.FetchedAt.Equal(fetched) {
				t.Errorf("reader %d: %s fetched at %v, want %v", reader, kind, got.FetchedAt, fetched)
			}
		}(r)
	}

	wg.Wait()
}
