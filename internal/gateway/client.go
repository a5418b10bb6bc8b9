// Package gateway is the HTTP client for the case-registration backend: the
// reference-data lookups that populate the wizard's select lists and the
// final case submission.
package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/alexanderramin/casereg/internal/contract"
	"github.com/alexanderramin/casereg/internal/domain"
)

// Gateway endpoint paths.
const (
	PathRegisteringUnits   = "/api/areas/registering-units"
	PathWitnessCareUnits   = "/api/areas/witness-care-units"
	PathCourtLocations     = "/api/court-locations"
	PathCaseComplexities   = "/api/case-complexities"
	PathMonitoringCodes    = "/api/monitoring-codes"
	PathProsecutors        = "/api/prosecutors"
	PathCaseworkers        = "/api/caseworkers"
	PathInvestigatorTitles = "/api/investigator-titles"
	PathOffences           = "/api/offences"
	PathCases              = "/api/cases"
)

// PathFor returns the endpoint serving a reference kind.
func PathFor(kind domain.ReferenceKind) (string, bool) {
	switch kind {
	case domain.RefAreasRegisteringUnits:
		return PathRegisteringUnits, true
	case domain.RefAreasWitnessCareUnits:
		return PathWitnessCareUnits, true
	case domain.RefCourtLocations:
		return PathCourtLocations, true
	case domain.RefCaseComplexities:
		return PathCaseComplexities, true
	case domain.RefMonitoringCodes:
		return PathMonitoringCodes, true
	case domain.RefProsecutors:
		return PathProsecutors, true
	case domain.RefCaseworkers:
		return PathCaseworkers, true
	case domain.RefInvestigatorTitles:
		return PathInvestigatorTitles, true
	case domain.RefOffences:
		return PathOffences, true
	}
	return "", false
}

// Client provides access to the case-registration gateway.
type Client interface {
	// FetchReference returns the raw JSON array served for kind.
	FetchReference(ctx context.Context, kind domain.ReferenceKind) ([]byte, error)

	// SubmitCase posts a completed case and returns the gateway's identifiers.
	SubmitCase(ctx context.Context, req contract.CaseRegistrationRequest) (*contract.CaseRegistrationResponse, error)

	// Available checks whether the gateway is reachable.
	Available(ctx context.Context) bool
}

type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the gateway at cfg.BaseURL.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) FetchReference(ctx context.Context, kind domain.ReferenceKind) ([]byte, error) {
	path, ok := PathFor(kind)
	if !ok {
		return nil, fmt.Errorf("unknown reference kind %q", kind)
	}
	body, err := c.call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) || !bytes.HasPrefix(bytes.TrimSpace(body), []byte("[")) {
		return nil, fmt.Errorf("%w: %s is not a JSON array", ErrDecode, path)
	}
	return body, nil
}

func (c *httpClient) SubmitCase(ctx context.Context, req contract.CaseRegistrationRequest) (*contract.CaseRegistrationResponse, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling case: %w", err)
	}
	body, err := c.call(ctx, http.MethodPost, PathCases, data)
	if err != nil {
		return nil, err
	}
	var resp contract.CaseRegistrationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if resp.CaseID == "" {
		return nil, fmt.Errorf("%w: missing caseId", ErrDecode)
	}
	return &resp, nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+PathCourtLocations, nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// call performs one request with retries. Connection failures and 5xx
// responses are retried; client errors and context expiry are not.
func (c *httpClient) call(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout())
	defer cancel()

	var (
		lastErr  error
		status   int
		attempts int
	)
	for attempts < 1+c.cfg.MaxRetries {
		attempts++
		var body []byte
		body, status, lastErr = c.doRequest(ctx, method, path, payload)
		if lastErr == nil {
			c.observer.OnCallComplete(CallEvent{
				Method:    method,
				Path:      path,
				Status:    status,
				Attempts:  attempts,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return body, nil
		}
		if ctx.Err() != nil || !retryable(lastErr, status) {
			break
		}
	}

	err := classify(ctx, lastErr)
	c.observer.OnCallComplete(CallEvent{
		Method:    method,
		Path:      path,
		Status:    status,
		Attempts:  attempts,
		LatencyMs: time.Since(start).Milliseconds(),
		ErrorCode: errorCode(err),
	})
	return nil, err
}

func (c *httpClient) doRequest(ctx context.Context, method, path string, payload []byte) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, 0, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, httpResp.StatusCode, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, httpResp.StatusCode, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, httpResp.StatusCode, bytes.TrimSpace(respBody))
	}
	return respBody, httpResp.StatusCode, nil
}

func retryable(err error, status int) bool {
	if isConnectionError(err) {
		return true
	}
	return errors.Is(err, ErrUnexpectedStatus) && status >= 500
}

func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ErrTimeout
	case ctx.Err() != nil:
		return ctx.Err()
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	return err
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrGatewayUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrUnexpectedStatus):
		return "STATUS"
	case errors.Is(err, ErrDecode):
		return "DECODE"
	default:
		return "UNKNOWN"
	}
}
