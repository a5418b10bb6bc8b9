package service

import (
	"context"
	"time"

	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/repository"
	"github.com/alexanderramin/casereg/internal/wizard"
)

// ReferenceSource says where a reference list came from.
type ReferenceSource string

const (
	SourceGateway ReferenceSource = "gateway"
	SourceCache   ReferenceSource = "cache"
)

// ReferenceResult is a loaded reference list, ready to be dispatched.
type ReferenceResult struct {
	Kind      domain.ReferenceKind
	Action    wizard.Action
	Count     int
	Source    ReferenceSource
	FetchedAt time.Time
	// Stale is set when the gateway failed and an expired cache entry was used.
	Stale bool
}

type ReferenceService interface {
	// Load returns a fresh cache entry when one exists, otherwise fetches from
	// the gateway, falling back to any cached copy when the gateway fails.
	Load(ctx context.Context, kind domain.ReferenceKind) (*ReferenceResult, error)
	// Refresh always fetches from the gateway and updates the cache.
	Refresh(ctx context.Context, kind domain.ReferenceKind) (*ReferenceResult, error)
	ListCached(ctx context.Context) ([]*repository.CachedReference, error)
	ClearCache(ctx context.Context) error
}

type SubmissionService interface {
	// Submit records a pending submission, posts the case and records the
	// outcome. The returned submission reflects the final status even when
	// err is non-nil.
	Submit(ctx context.Context, state *wizard.State) (*domain.Submission, error)
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	List(ctx context.Context, limit int) ([]*domain.Submission, error)
}
