package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/gateway"
	"github.com/alexanderramin/casereg/internal/repository"
)

// DefaultReferenceTTL is how long a cached reference list is served without
// asking the gateway.
const DefaultReferenceTTL = 60 * time.Minute

type referenceService struct {
	client   gateway.Client
	cache    repository.ReferenceCacheRepo
	ttl      time.Duration
	now      func() time.Time
	observer UseCaseObserver
}

// NewReferenceService creates a ReferenceService. A ttl of zero disables
// serving from cache while the gateway is healthy.
func NewReferenceService(
	client gateway.Client,
	cache repository.ReferenceCacheRepo,
	ttl time.Duration,
	observers ...UseCaseObserver,
) ReferenceService {
	return &referenceService{
		client:   client,
		cache:    cache,
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
		observer: combineObservers(observers),
	}
}

func (s *referenceService) Load(ctx context.Context, kind domain.ReferenceKind) (result *ReferenceResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"kind": string(kind)}
	defer func() {
		if result != nil {
			fields["source"] = string(result.Source)
			fields["count"] = result.Count
			fields["stale"] = result.Stale
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "load-reference",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Degraded:  result != nil && result.Stale,
			Fields:    fields,
		})
	}()

	cached, cacheErr := s.cache.Get(ctx, kind)
	if cacheErr != nil && !errors.Is(cacheErr, repository.ErrNotFound) {
		return nil, fmt.Errorf("reading reference cache: %w", cacheErr)
	}
	if cached != nil && s.ttl > 0 && s.now().Sub(cached.FetchedAt) < s.ttl {
		return fromCache(cached, false)
	}

	result, err = s.fetch(ctx, kind)
	if err == nil {
		return result, nil
	}
	if cached != nil && gatewayDown(err) {
		return fromCache(cached, true)
	}
	return nil, err
}

func (s *referenceService) Refresh(ctx context.Context, kind domain.ReferenceKind) (result *ReferenceResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "refresh-reference",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"kind": string(kind)},
		})
	}()
	return s.fetch(ctx, kind)
}

func (s *referenceService) ListCached(ctx context.Context) ([]*repository.CachedReference, error) {
	return s.cache.List(ctx)
}

func (s *referenceService) ClearCache(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

// fetch asks the gateway and caches a payload that decodes cleanly.
func (s *referenceService) fetch(ctx context.Context, kind domain.ReferenceKind) (*ReferenceResult, error) {
	payload, err := s.client.FetchReference(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", kind, err)
	}
	action, count, err := decodeReference(kind, payload)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", kind, err)
	}

	now := s.now()
	if err := s.cache.Put(ctx, &repository.CachedReference{Kind: kind, Payload: payload, FetchedAt: now}); err != nil {
		return nil, fmt.Errorf("caching %s: %w", kind, err)
	}
	return &ReferenceResult{
		Kind:      kind,
		Action:    action,
		Count:     count,
		Source:    SourceGateway,
		FetchedAt: now,
	}, nil
}

func fromCache(cached *repository.CachedReference, stale bool) (*ReferenceResult, error) {
	action, count, err := decodeReference(cached.Kind, cached.Payload)
	if err != nil {
		return nil, fmt.Errorf("decoding cached %s: %w", cached.Kind, err)
	}
	return &ReferenceResult{
		Kind:      cached.Kind,
		Action:    action,
		Count:     count,
		Source:    SourceCache,
		FetchedAt: cached.FetchedAt,
		Stale:     stale,
	}, nil
}
