package wizard

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// DispatchEvent describes one action applied by a Store.
type DispatchEvent struct {
	Action   string
	Changed  bool
	Duration time.Duration
	Suspects int
}

// DispatchObserver receives an event for every dispatched action.
type DispatchObserver interface {
	ObserveDispatch(event DispatchEvent)
}

// NoopDispatchObserver ignores all events.
type NoopDispatchObserver struct{}

func (NoopDispatchObserver) ObserveDispatch(DispatchEvent) {}

type logDispatchObserver struct {
	logger *slog.Logger
}

// NewLogDispatchObserver writes dispatch events to w.
func NewLogDispatchObserver(w io.Writer) DispatchObserver {
	if w == nil {
		return NoopDispatchObserver{}
	}
	return &logDispatchObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func (o *logDispatchObserver) ObserveDispatch(event DispatchEvent) {
	level := slog.LevelDebug
	if event.Changed {
		level = slog.LevelInfo
	}
	o.logger.Log(context.Background(), level, "wizard_dispatch",
		"action", event.Action,
		"changed", event.Changed,
		"duration_us", event.Duration.Microseconds(),
		"suspects", event.Suspects,
	)
}
