package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Yesterday", HumanTimestamp(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "Sep 30, 2022", HumanTimestamp(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC), now))
}

func TestHearingDate(t *testing.T) {
	now := time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)

	assert.Contains(t, HearingDate("2026-02-12", now), "2026-02-12")
	assert.Contains(t, HearingDate("2026-02-12", now), "(In 5d)")
	assert.Contains(t, HearingDate("2026-02-06", now), "(Yesterday)")
	assert.Contains(t, HearingDate("next tuesday", now), "next tuesday")
	assert.Contains(t, HearingDate("", now), "--")
}

func TestTruncID(t *testing.T) {
	assert.Contains(t, TruncID("0123456789abcdef"), "01234567")
	assert.NotContains(t, TruncID("0123456789abcdef"), "89")
	assert.Contains(t, TruncID("short"), "short")
}

func TestOrPlaceholder(t *testing.T) {
	assert.Contains(t, OrPlaceholder("  "), "--")
	assert.Contains(t, OrPlaceholder("Op Nimbus"), "Op Nimbus")
}
