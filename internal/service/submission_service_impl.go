package service

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/alexanderramin/casereg/internal/db"
	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/gateway"
	"github.com/alexanderramin/casereg/internal/repository"
	"github.com/alexanderramin/casereg/internal/wizard"
)

type submissionService struct {
	client      gateway.Client
	submissions repository.SubmissionRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewSubmissionService(
	client gateway.Client,
	submissions repository.SubmissionRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SubmissionService {
	return &submissionService{
		client:      client,
		submissions: submissions,
		uow:         uow,
		observer:    combineObservers(observers),
	}
}

func (s *submissionService) Submit(ctx context.Context, state *wizard.State) (sub *domain.Submission, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		if sub != nil {
			fields["submission_id"] = sub.ID
			fields["urn"] = sub.URN
			fields["status"] = string(sub.Status)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "submit-case",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	req := wizard.BuildCaseRequest(state)
	if req.URN == "" {
		return nil, fmt.Errorf("case has no URN")
	}
	if missing := wizard.SuspectsWithoutCharges(state.FormData); len(missing) > 0 {
		return nil, fmt.Errorf("suspects without charges: %v", missing)
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding case: %w", err)
	}

	now := time.Now().UTC()
	sub = &domain.Submission{
		ID:         uuid.New().String(),
		URN:        req.URN,
		Status:     domain.SubmissionPending,
		Defendants: len(req.Defendants),
		Payload:    payload,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, err
	}

	// The pending row is committed before the call so a crash mid-request
	// still leaves a trace.
	resp, callErr := s.client.SubmitCase(ctx, req)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSubs := repository.NewSQLiteSubmissionRepo(tx)
		current, err := txSubs.GetByID(ctx, sub.ID)
		if err != nil {
			return err
		}
		done := time.Now().UTC()
		if callErr != nil {
			if err := current.MarkFailed(callErr.Error(), done); err != nil {
				return err
			}
		} else if err := current.MarkSubmitted(resp.CaseID, done); err != nil {
			return err
		}
		if err := txSubs.Update(ctx, current); err != nil {
			return err
		}
		sub = current
		return nil
	})
	if err != nil {
		return sub, fmt.Errorf("recording submission outcome: %w", err)
	}
	if callErr != nil {
		return sub, fmt.Errorf("submitting case %s: %w", req.URN, callErr)
	}
	return sub, nil
}

func (s *submissionService) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	return s.submissions.GetByID(ctx, id)
}

func (s *submissionService) List(ctx context.Context, limit int) ([]*domain.Submission, error) {
	return s.submissions.List(ctx, limit)
}
