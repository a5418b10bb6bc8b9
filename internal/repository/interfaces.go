package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/casereg/internal/domain"
)

// CachedReference is the last payload fetched for a reference kind.
type CachedReference struct {
	Kind      domain.ReferenceKind
	Payload   []byte
	FetchedAt time.Time
}

type ReferenceCacheRepo interface {
	Get(ctx context.Context, kind domain.ReferenceKind) (*CachedReference, error)
	Put(ctx context.Context, ref *CachedReference) error
	List(ctx context.Context) ([]*CachedReference, error)
	Clear(ctx context.Context) error
}

type SubmissionRepo interface {
	Create(ctx context.Context, s *domain.Submission) error
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	List(ctx context.Context, limit int) ([]*domain.Submission, error)
	ListByURN(ctx context.Context, urn string) ([]*domain.Submission, error)
	Update(ctx context.Context, s *domain.Submission) error
}
