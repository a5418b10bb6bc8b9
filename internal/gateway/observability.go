package gateway

import (
	"io"
	"log/slog"
)

// CallEvent records metadata about a single gateway call.
type CallEvent struct {
	Method    string
	Path      string
	Status    int
	Attempts  int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about gateway calls for logging.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to an io.Writer.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: slog.New(slog.NewTextHandler(w, nil))}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"method", event.Method,
		"path", event.Path,
		"status", event.Status,
		"attempts", event.Attempts,
		"latency_ms", event.LatencyMs,
	}
	if !event.Success {
		o.logger.Warn("gateway_call", append(attrs, "error_code", event.ErrorCode)...)
		return
	}
	o.logger.Info("gateway_call", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
