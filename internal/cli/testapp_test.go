package cli

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/gateway"
	"github.com/alexanderramin/casereg/internal/gateway/stub"
	"github.com/alexanderramin/casereg/internal/repository"
	"github.com/alexanderramin/casereg/internal/service"
	"github.com/alexanderramin/casereg/internal/testutil"
	"github.com/alexanderramin/casereg/internal/wizard"
)

var testNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

// fixtureAction is the action a successful load of kind dispatches.
func fixtureAction(kind domain.ReferenceKind) (wizard.Action, int) {
	api := stub.DefaultFixtures()
	switch kind {
	case domain.RefAreasRegisteringUnits:
		return wizard.SetAreasAndRegisteringUnits{Areas: api.AreasAndRegisteringUnits}, len(api.AreasAndRegisteringUnits)
	case domain.RefAreasWitnessCareUnits:
		return wizard.SetAreasAndWitnessCareUnits{Areas: api.AreasAndWitnessCareUnits}, len(api.AreasAndWitnessCareUnits)
	case domain.RefCourtLocations:
		return wizard.SetCourtLocations{Items: api.CourtLocations}, len(api.CourtLocations)
	case domain.RefCaseComplexities:
		return wizard.SetCaseComplexities{Items: api.CaseComplexities}, len(api.CaseComplexities)
	case domain.RefMonitoringCodes:
		return wizard.SetCaseMonitoringCodes{Codes: api.CaseMonitoringCodes}, len(api.CaseMonitoringCodes)
	case domain.RefProsecutors:
		return wizard.SetCaseProsecutors{Items: api.CaseProsecutors}, len(api.CaseProsecutors)
	case domain.RefCaseworkers:
		return wizard.SetCaseCaseworkers{Items: api.CaseCaseworkers}, len(api.CaseCaseworkers)
	case domain.RefInvestigatorTitles:
		return wizard.SetCaseInvestigatorTitles{Items: api.CaseInvestigatorTitles}, len(api.CaseInvestigatorTitles)
	case domain.RefOffences:
		return wizard.SetOffences{Offences: api.Offences}, len(api.Offences)
	}
	return nil, 0
}

// fakeReferences answers loads from the stub fixtures without I/O, so the
// TUI driver never waits on a command.
type fakeReferences struct {
	mu     sync.Mutex
	errs   map[domain.ReferenceKind]error
	stale  map[domain.ReferenceKind]bool
	loads  int
	failed int
}

func newFakeReferences() *fakeReferences {
	return &fakeReferences{
		errs:  map[domain.ReferenceKind]error{},
		stale: map[domain.ReferenceKind]bool{},
	}
}

func (f *fakeReferences) fail(kind domain.ReferenceKind, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[kind] = err
}

func (f *fakeReferences) heal() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = map[domain.ReferenceKind]error{}
}

func (f *fakeReferences) Load(_ context.Context, kind domain.ReferenceKind) (*service.ReferenceResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if err := f.errs[kind]; err != nil {
		f.failed++
		return nil, fmt.Errorf("fetching %s: %w", kind, err)
	}
	action, count := fixtureAction(kind)
	source := service.SourceGateway
	if f.stale[kind] {
		source = service.SourceCache
	}
	return &service.ReferenceResult{
		Kind:      kind,
		Action:    action,
		Count:     count,
		Source:    source,
		FetchedAt: testNow,
		Stale:     f.stale[kind],
	}, nil
}

func (f *fakeReferences) Refresh(ctx context.Context, kind domain.ReferenceKind) (*service.ReferenceResult, error) {
	return f.Load(ctx, kind)
}

func (f *fakeReferences) ListCached(context.Context) ([]*repository.CachedReference, error) {
	return nil, nil
}

func (f *fakeReferences) ClearCache(context.Context) error { return nil }

// fakeSubmissions records submitted states and answers with a fixed
// outcome.
type fakeSubmissions struct {
	mu        sync.Mutex
	err       error
	submitted []*wizard.State
}

func (f *fakeSubmissions) Submit(_ context.Context, state *wizard.State) (*domain.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, state)
	req := wizard.BuildCaseRequest(state)
	sub := &domain.Submission{
		ID:         fmt.Sprintf("sub-%d", len(f.submitted)),
		URN:        req.URN,
		Defendants: len(req.Defendants),
		CreatedAt:  testNow,
		UpdatedAt:  testNow,
	}
	if f.err != nil {
		sub.Status = domain.SubmissionFailed
		sub.Error = f.err.Error()
		return sub, f.err
	}
	sub.Status = domain.SubmissionSubmitted
	sub.CaseID = "CASE-00001"
	return sub, nil
}

func (f *fakeSubmissions) GetByID(context.Context, string) (*domain.Submission, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeSubmissions) List(context.Context, int) ([]*domain.Submission, error) {
	return nil, nil
}

func (f *fakeSubmissions) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submitted)
}

// tuiFixture is an App backed by in-memory fakes for driving the TUI.
type tuiFixture struct {
	app         *App
	references  *fakeReferences
	submissions *fakeSubmissions
}

func newTUIApp(t *testing.T) *tuiFixture {
	t.Helper()
	refs := newFakeReferences()
	subs := &fakeSubmissions{}
	return &tuiFixture{
		app: &App{
			References:  refs,
			Submissions: subs,
			Now:         func() time.Time { return testNow },
		},
		references:  refs,
		submissions: subs,
	}
}

// newTestApp wires the real services to the stub gateway over HTTP and an
// in-memory database. Used by command tests, which run synchronously.
func newTestApp(t *testing.T) (*App, *stub.Server) {
	t.Helper()
	gw := stub.New(stub.DefaultFixtures(), nil)
	srv := httptest.NewServer(gw.Router())
	t.Cleanup(srv.Close)

	cfg := gateway.DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.MaxRetries = 0
	client := gateway.NewClient(cfg, nil)

	database := testutil.NewTestDB(t)
	return &App{
		References:   service.NewReferenceService(client, repository.NewSQLiteReferenceCacheRepo(database), time.Hour),
		Submissions:  service.NewSubmissionService(client, repository.NewSQLiteSubmissionRepo(database), testutil.NewTestUoW(database)),
		ReferenceTTL: time.Hour,
		Now:          func() time.Time { return testNow },
	}, gw
}

// loadedState is an empty form with every reference list loaded.
func loadedState() *wizard.State {
	s := wizard.InitialState()
	for _, kind := range domain.AllReferenceKinds {
		action, _ := fixtureAction(kind)
		s = wizard.Reduce(s, action)
	}
	return s
}

// submittableState is a loaded state with one charged suspect.
func submittableState(t *testing.T) *wizard.State {
	t.Helper()
	s := wizard.Reduce(loadedState(), wizard.SetFields{Patch: testutil.CompleteCaseFields()})
	s = wizard.Reduce(s, wizard.AddSuspect{Suspect: testutil.NewTestPerson("Ada", "Lovelace", testutil.WithCharge(1, "Theft from a shop"))})
	require.Empty(t, wizard.SuspectsWithoutCharges(s.FormData))
	return s
}
