package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/casereg/internal/contract"
	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/gateway"
	"github.com/alexanderramin/casereg/internal/gateway/stub"
)

type recordingObserver struct {
	events []gateway.CallEvent
}

func (r *recordingObserver) OnCallComplete(e gateway.CallEvent) {
	r.events = append(r.events, e)
}

func testConfig(baseURL string) gateway.Config {
	cfg := gateway.DefaultConfig()
	cfg.BaseURL = baseURL
	return cfg
}

func validCase() contract.CaseRegistrationRequest {
	one := 1
	return contract.CaseRegistrationRequest{
		URN:               "42AB1234567/25",
		AreaID:            &one,
		RegisteringUnitID: &one,
		MonitoringCodes:   []string{},
		Defendants: []contract.Defendant{{
			Type:      "person",
			FirstName: "Ann",
			LastName:  "Lee",
			Charges:   []contract.Charge{{OffenceID: &one, OffenceCode: "TH68001"}},
		}},
	}
}

func TestClient_FetchReference(t *testing.T) {
	srv := httptest.NewServer(stub.NewRouter(stub.DefaultFixtures()))
	defer srv.Close()

	obs := &recordingObserver{}
	client := gateway.NewClient(testConfig(srv.URL), obs)

	raw, err := client.FetchReference(context.Background(), domain.RefOffences)
	require.NoError(t, err)

	var offences []domain.Offence
	require.NoError(t, json.Unmarshal(raw, &offences))
	assert.Equal(t, stub.DefaultFixtures().Offences, offences)
	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, gateway.PathOffences, obs.events[0].Path)
}

func TestClient_FetchReference_EmptyFixtureIsEmptyArray(t *testing.T) {
	srv := httptest.NewServer(stub.NewRouter(domain.APIData{}))
	defer srv.Close()

	raw, err := gateway.NewClient(testConfig(srv.URL), nil).FetchReference(context.Background(), domain.RefProsecutors)

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestClient_FetchReference_RejectsNonArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"oops":true}`))
	}))
	defer srv.Close()

	_, err := gateway.NewClient(testConfig(srv.URL), nil).FetchReference(context.Background(), domain.RefCourtLocations)

	assert.ErrorIs(t, err, gateway.ErrDecode)
}

func TestClient_SubmitCase(t *testing.T) {
	s := stub.New(stub.DefaultFixtures(), nil)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := gateway.NewClient(testConfig(srv.URL), nil).SubmitCase(context.Background(), validCase())

	require.NoError(t, err)
	assert.Equal(t, "CASE-00001", resp.CaseID)
	assert.Equal(t, "42AB1234567/25", resp.URN)
	require.Len(t, s.Submitted(), 1)
	assert.Equal(t, "Ann", s.Submitted()[0].Defendants[0].FirstName)
}

func TestClient_SubmitCase_ValidationErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"urn is required"}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 3
	_, err := gateway.NewClient(cfg, nil).SubmitCase(context.Background(), contract.CaseRegistrationRequest{})

	require.ErrorIs(t, err, gateway.ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "422")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_ServerErrorRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[{"id":1,"description":"Standard"}]`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1
	_, err := gateway.NewClient(cfg, obs).FetchReference(context.Background(), domain.RefCaseComplexities)

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 2, obs.events[0].Attempts)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50
	_, err := gateway.NewClient(cfg, nil).FetchReference(context.Background(), domain.RefCaseworkers)

	assert.ErrorIs(t, err, gateway.ErrTimeout)
}

func TestClient_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.MaxRetries = 0

	client := gateway.NewClient(cfg, nil)
	_, err := client.FetchReference(context.Background(), domain.RefOffences)

	assert.ErrorIs(t, err, gateway.ErrGatewayUnavailable)
	assert.False(t, client.Available(context.Background()))
}

func TestPathFor_CoversEveryKind(t *testing.T) {
	for _, k := range domain.AllReferenceKinds {
		_, ok := gateway.PathFor(k)
		assert.True(t, ok, k)
	}
	_, ok := gateway.PathFor("nope")
	assert.False(t, ok)
}
