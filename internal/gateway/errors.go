package gateway

import "errors"

var (
	// ErrGatewayUnavailable indicates the gateway could not be reached.
	ErrGatewayUnavailable = errors.New("gateway unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("gateway request timed out")

	// ErrUnexpectedStatus indicates a non-2xx response. The wrapping error
	// carries the status code and body.
	ErrUnexpectedStatus = errors.New("unexpected gateway status")

	// ErrDecode indicates the response body did not match the expected shape.
	ErrDecode = errors.New("invalid gateway response")
)
