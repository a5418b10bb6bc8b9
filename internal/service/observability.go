package service

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"time"
)

// UseCaseEvent describes one finished service call: a reference load or
// refresh, or a case submission.
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error
	// Degraded marks a call that succeeded on a fallback path, such as a
	// reference list served from an expired cache.
	Degraded bool
	Fields   map[string]any
}

type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// UseCaseObserverFunc adapts a function to UseCaseObserver.
type UseCaseObserverFunc func(ctx context.Context, event UseCaseEvent)

func (f UseCaseObserverFunc) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	f(ctx, event)
}

type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// observers fans one event out to several observers in order.
type observers []UseCaseObserver

func (o observers) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, obs := range o {
		obs.ObserveUseCase(ctx, event)
	}
}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver logs each event as one slog text line on w. Failures
// log at error level and degraded successes at warn.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil || w == io.Discard {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})).
			With("component", "service"),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success),
	}
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}

	level := slog.LevelInfo
	switch {
	case event.Err != nil:
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	case event.Degraded:
		level = slog.LevelWarn
	}
	o.logger.LogAttrs(ctx, level, "service_use_case", attrs...)
}

// combineObservers drops nil entries and returns a single observer.
func combineObservers(list []UseCaseObserver) UseCaseObserver {
	var out observers
	for _, obs := range list {
		if obs != nil {
			out = append(out, obs)
		}
	}
	switch len(out) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return out[0]
	}
	return out
}
