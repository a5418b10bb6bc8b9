// Package stub serves the gateway API from in-memory fixtures so the wizard
// can run without a real backend.
package stub

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/alexanderramin/casereg/internal/contract"
	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/gateway"
)

// Server is an in-memory gateway. It records every accepted case.
type Server struct {
	logger   *slog.Logger
	fixtures domain.APIData

	mu        sync.Mutex
	submitted []contract.CaseRegistrationRequest
}

// New creates a Server answering reference lookups from fixtures.
func New(fixtures domain.APIData, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{logger: logger, fixtures: fixtures}
}

// NewRouter is shorthand for New(fixtures, nil).Router().
func NewRouter(fixtures domain.APIData) http.Handler {
	return New(fixtures, nil).Router()
}

// Router registers the gateway routes on a chi router.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get(gateway.PathRegisteringUnits, s.list(func() any { return s.fixtures.AreasAndRegisteringUnits }))
	r.Get(gateway.PathWitnessCareUnits, s.list(func() any { return s.fixtures.AreasAndWitnessCareUnits }))
	r.Get(gateway.PathCourtLocations, s.list(func() any { return s.fixtures.CourtLocations }))
	r.Get(gateway.PathCaseComplexities, s.list(func() any { return s.fixtures.CaseComplexities }))
	r.Get(gateway.PathMonitoringCodes, s.list(func() any { return s.fixtures.CaseMonitoringCodes }))
	r.Get(gateway.PathProsecutors, s.list(func() any { return s.fixtures.CaseProsecutors }))
	r.Get(gateway.PathCaseworkers, s.list(func() any { return s.fixtures.CaseCaseworkers }))
	r.Get(gateway.PathInvestigatorTitles, s.list(func() any { return s.fixtures.CaseInvestigatorTitles }))
	r.Get(gateway.PathOffences, s.list(func() any { return s.fixtures.Offences }))
	r.Post(gateway.PathCases, s.handleSubmitCase)
	return r
}

// Submitted returns the cases accepted so far.
func (s *Server) Submitted() []contract.CaseRegistrationRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]contract.CaseRegistrationRequest, len(s.submitted))
	copy(out, s.submitted)
	return out
}

func (s *Server) list(get func() any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := get()
		if isNilSlice(v) {
			v = []struct{}{}
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func (s *Server) handleSubmitCase(w http.ResponseWriter, r *http.Request) {
	var req contract.CaseRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed case"})
		return
	}
	if msg := validate(req); msg != "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": msg})
		return
	}

	s.mu.Lock()
	s.submitted = append(s.submitted, req)
	caseID := fmt.Sprintf("CASE-%05d", len(s.submitted))
	s.mu.Unlock()

	s.logger.InfoContext(r.Context(), "case_registered",
		"request_id", middleware.GetReqID(r.Context()),
		"case_id", caseID,
		"urn", req.URN,
		"defendants", len(req.Defendants),
	)
	writeJSON(w, http.StatusCreated, contract.CaseRegistrationResponse{CaseID: caseID, URN: req.URN})
}

var caseValidator = newCaseValidator()

// newCaseValidator reports fields by their JSON names so messages match the
// payload the client sent.
func newCaseValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validate returns the first rule the case breaks, or "" when it is
// acceptable.
func validate(req contract.CaseRegistrationRequest) string {
	err := caseValidator.Struct(req)
	if err == nil {
		return ""
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}
	return describe(fieldErrs[0])
}

func describe(fe validator.FieldError) string {
	switch fe.Field() {
	case "urn":
		return "urn is required"
	case "areaId", "registeringUnitId":
		return "area and registering unit are required"
	case "defendants":
		return "at least one defendant is required"
	case "charges":
		return fmt.Sprintf("defendant %d has no charges", defendantNumber(fe.Namespace()))
	case "offenceId":
		return fmt.Sprintf("defendant %d has a charge without an offence", defendantNumber(fe.Namespace()))
	}
	path := fe.Namespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}
	return fmt.Sprintf("%s fails %q", path, fe.Tag())
}

// defendantNumber extracts the 1-based defendant from a namespace such as
// "CaseRegistrationRequest.defendants[2].charges".
func defendantNumber(namespace string) int {
	_, rest, ok := strings.Cut(namespace, "defendants[")
	if !ok {
		return 0
	}
	idx, _, _ := strings.Cut(rest, "]")
	n, err := strconv.Atoi(idx)
	if err != nil {
		return 0
	}
	return n + 1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func isNilSlice(v any) bool {
	switch s := v.(type) {
	case []domain.AreaUnits:
		return s == nil
	case []domain.ReferenceItem:
		return s == nil
	case []domain.MonitoringCode:
		return s == nil
	case []domain.Offence:
		return s == nil
	}
	return v == nil
}
