package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a day-granular relative label ("Today", "In 3d",
// "2w ago") for t as seen from now.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := dayDiff(t, now)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

func dayDiff(t, now time.Time) int {
	return int(math.Round(t.Sub(now).Hours() / 24))
}

// HearingDate renders an ISO hearing date with its distance from now, e.g.
// "2026-03-02 (In 5d)". Unparseable dates are returned as entered.
func HearingDate(iso string, now time.Time) string {
	if iso == "" {
		return Placeholder()
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return StyleFg.Render(iso)
	}
	label := RelativeDateFrom(t, now)
	style := StyleFg
	if dayDiff(t, now) < 0 {
		style = StyleRed
	}
	return StyleFg.Render(iso) + " " + style.Render("("+label+")")
}

// HumanDate returns "Today", "Yesterday" or an absolute date.
func HumanDate(t time.Time, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a relative timestamp for recent times and falls
// back to HumanDate after a day.
func HumanTimestamp(t time.Time, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return HumanDate(t, now)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t, now)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Placeholder is shown for answers that were not given.
func Placeholder() string {
	return StyleDim.Render("--")
}

// OrPlaceholder renders s in the foreground color, or the placeholder when empty.
func OrPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder()
	}
	return StyleFg.Render(s)
}
