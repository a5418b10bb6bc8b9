package stub

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/casereg/internal/contract"
	"github.com/alexanderramin/casereg/internal/domain"
)

func TestRouter_ServesFixtures(t *testing.T) {
	router := NewRouter(DefaultFixtures())

	req := httptest.NewRequest(http.MethodGet, "/api/areas/witness-care-units", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var areas []domain.AreaUnits
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &areas))
	assert.Equal(t, DefaultFixtures().AreasAndWitnessCareUnits, areas)
}

func TestRouter_UnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(DefaultFixtures()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nothing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitCase_Validation(t *testing.T) {
	one := 1
	tests := []struct {
		name    string
		body    contract.CaseRegistrationRequest
		wantMsg string
	}{
		{"missing urn", contract.CaseRegistrationRequest{}, "urn is required"},
		{"missing area", contract.CaseRegistrationRequest{URN: "x"}, "area and registering unit are required"},
		{"no defendants", contract.CaseRegistrationRequest{URN: "x", AreaID: &one, RegisteringUnitID: &one}, "at least one defendant is required"},
		{"defendant without charges", contract.CaseRegistrationRequest{
			URN: "x", AreaID: &one, RegisteringUnitID: &one,
			Defendants: []contract.Defendant{{Type: "person"}},
		}, "defendant 1 has no charges"},
		{"second defendant without charges", contract.CaseRegistrationRequest{
			URN: "x", AreaID: &one, RegisteringUnitID: &one,
			Defendants: []contract.Defendant{
				{Type: "person", Charges: []contract.Charge{{OffenceID: &one}}},
				{Type: "company"},
			},
		}, "defendant 2 has no charges"},
		{"charge without offence", contract.CaseRegistrationRequest{
			URN: "x", AreaID: &one, RegisteringUnitID: &one,
			Defendants: []contract.Defendant{{Type: "person", Charges: []contract.Charge{{FromDate: "2025-01-01"}}}},
		}, "defendant 1 has a charge without an offence"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(DefaultFixtures(), nil)
			data, err := json.Marshal(tt.body)
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cases", bytes.NewReader(data)))

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
			assert.Empty(t, s.Submitted())
		})
	}
}

func TestSubmitCase_MalformedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(DefaultFixtures()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cases", bytes.NewReader([]byte("{"))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDefendantNumber(t *testing.T) {
	assert.Equal(t, 1, defendantNumber("CaseRegistrationRequest.defendants[0].charges"))
	assert.Equal(t, 12, defendantNumber("CaseRegistrationRequest.defendants[11].charges[0].offenceId"))
	assert.Equal(t, 0, defendantNumber("CaseRegistrationRequest.urn"))
}
