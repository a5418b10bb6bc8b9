package service

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/gateway"
	"github.com/alexanderramin/casereg/internal/gateway/stub"
	"github.com/alexanderramin/casereg/internal/repository"
	"github.com/alexanderramin/casereg/internal/testutil"
	"github.com/alexanderramin/casereg/internal/wizard"
)

func submittableState(t *testing.T) *wizard.State {
	t.Helper()
	store := wizard.NewStore(nil)
	store.Dispatch(
		wizard.SetFields{Patch: testutil.CompleteCaseFields()},
		wizard.AddSuspect{Suspect: testutil.NewTestPerson("Ann", "Lee", testutil.WithCharge(1, "Theft from a shop"))},
	)
	return store.State()
}

func newStubClient(t *testing.T) (gateway.Client, *stub.Server) {
	t.Helper()
	s := stub.New(stub.DefaultFixtures(), nil)
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	cfg := gateway.DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.MaxRetries = 0
	return gateway.NewClient(cfg, nil), s
}

func TestSubmissionService_Submit(t *testing.T) {
	database := testutil.NewTestDB(t)
	client, gw := newStubClient(t)
	svc := NewSubmissionService(client, repository.NewSQLiteSubmissionRepo(database), testutil.NewTestUoW(database))
	ctx := context.Background()

	sub, err := svc.Submit(ctx, submittableState(t))
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionSubmitted, sub.Status)
	assert.Equal(t, "CASE-00001", sub.CaseID)
	assert.Equal(t, 1, sub.Defendants)

	stored, err := svc.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionSubmitted, stored.Status)
	require.Len(t, gw.Submitted(), 1)
	assert.Equal(t, sub.URN, gw.Submitted()[0].URN)
}

func TestSubmissionService_GatewayFailureRecorded(t *testing.T) {
	database := testutil.NewTestDB(t)
	cfg := gateway.DefaultConfig()
	cfg.BaseURL = "http://127.0.0.1:1"
	cfg.MaxRetries = 0
	svc := NewSubmissionService(gateway.NewClient(cfg, nil), repository.NewSQLiteSubmissionRepo(database), testutil.NewTestUoW(database))
	ctx := context.Background()

	sub, err := svc.Submit(ctx, submittableState(t))
	require.ErrorIs(t, err, gateway.ErrGatewayUnavailable)
	require.NotNil(t, sub)
	assert.Equal(t, domain.SubmissionFailed, sub.Status)

	all, err := svc.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.SubmissionFailed, all[0].Status)
	assert.NotEmpty(t, all[0].Error)
}

func TestSubmissionService_RejectsIncompleteCase(t *testing.T) {
	database := testutil.NewTestDB(t)
	client, gw := newStubClient(t)
	svc := NewSubmissionService(client, repository.NewSQLiteSubmissionRepo(database), testutil.NewTestUoW(database))

	_, err := svc.Submit(context.Background(), wizard.InitialState())
	assert.Error(t, err)

	store := wizard.NewStore(nil)
	store.Dispatch(
		wizard.SetFields{Patch: testutil.CompleteCaseFields()},
		wizard.AddSuspect{Suspect: testutil.NewTestPerson("No", "Charges")},
	)
	_, err = svc.Submit(context.Background(), store.State())
	assert.ErrorContains(t, err, "No Charges")
	assert.Empty(t, gw.Submitted())
}

func TestSubmissionService_OutcomeWriteRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	client, _ := newStubClient(t)
	boom := errors.New("disk full")
	uow := &testutil.FailingUoW{DB: database, FailPrefix: "UPDATE submissions", Err: boom}
	svc := NewSubmissionService(client, repository.NewSQLiteSubmissionRepo(database), uow)

	_, err := svc.Submit(context.Background(), submittableState(t))
	require.ErrorIs(t, err, boom)

	all, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.SubmissionPending, all[0].Status, "failed outcome write leaves the row pending")
}
