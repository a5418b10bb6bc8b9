package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_Levels(t *testing.T) {
	tests := []struct {
		name  string
		event UseCaseEvent
		want  string
	}{
		{"success", UseCaseEvent{Name: "load-reference", Success: true}, "level=INFO"},
		{"degraded", UseCaseEvent{Name: "load-reference", Success: true, Degraded: true}, "level=WARN"},
		{"failure", UseCaseEvent{Name: "submit-case", Err: errors.New("gateway unavailable")}, "level=ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), tt.event)
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "use_case="+tt.event.Name)
		})
	}
}

func TestLogUseCaseObserver_SortedFields(t *testing.T) {
	var buf bytes.Buffer
	NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "load-reference",
		Success: true,
		Fields:  map[string]any{"source": "cache", "kind": "offences", "count": 4},
	})

	line := buf.String()
	assert.Contains(t, line, "count=4 kind=offences source=cache")
	assert.Contains(t, line, "component=service")
}

func TestNewLogUseCaseObserver_DiscardIsNoop(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.Equal(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(io.Discard))
}

func TestCombineObservers(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, combineObservers(nil))
	assert.Equal(t, NoopUseCaseObserver{}, combineObservers([]UseCaseObserver{nil}))

	var got []string
	record := func(tag string) UseCaseObserver {
		return UseCaseObserverFunc(func(_ context.Context, e UseCaseEvent) { got = append(got, tag+":"+e.Name) })
	}
	combined := combineObservers([]UseCaseObserver{record("a"), nil, record("b")})
	combined.ObserveUseCase(context.Background(), UseCaseEvent{Name: "submit-case"})

	assert.Equal(t, []string{"a:submit-case", "b:submit-case"}, got)
}
