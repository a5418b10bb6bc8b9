package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/casereg/internal/domain"
)

// FormatSubmissionList renders recent submission attempts, newest first.
func FormatSubmissionList(subs []*domain.Submission, now time.Time) string {
	if len(subs) == 0 {
		return Dim("No submissions yet.") + "\n"
	}
	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, []string{
			TruncID(s.ID),
			Bold(s.URN),
			SubmissionStatusPill(s.Status),
			OrPlaceholder(s.CaseID),
			Dim(fmt.Sprintf("%d", s.Defendants)),
			Dim(HumanTimestamp(s.CreatedAt, now)),
		})
	}
	return RenderTable([]string{"ID", "URN", "STATUS", "CASE", "DEFENDANTS", "CREATED"}, rows)
}

// FormatSubmissionDetail renders one submission with its stored payload.
func FormatSubmissionDetail(s *domain.Submission, now time.Time) string {
	var b strings.Builder
	b.WriteString(RenderKeyValues([]KeyValue{
		{"ID", StyleFg.Render(s.ID)},
		{"URN", Bold(s.URN)},
		{"Status", SubmissionStatusPill(s.Status)},
		{"Case ID", OrPlaceholder(s.CaseID)},
		{"Defendants", StyleFg.Render(fmt.Sprintf("%d", s.Defendants))},
		{"Created", StyleFg.Render(s.CreatedAt.Format(time.RFC3339)) + " " + Dim("("+HumanTimestamp(s.CreatedAt, now)+")")},
		{"Updated", StyleFg.Render(s.UpdatedAt.Format(time.RFC3339))},
	}))
	if s.Error != "" {
		b.WriteString("\n" + StyleRed.Render("  ERROR: "+s.Error) + "\n")
	}
	if len(s.Payload) > 0 {
		b.WriteString("\n" + Header("Payload") + "\n")
		b.WriteString(Dim(string(s.Payload)) + "\n")
	}
	return RenderBox("Submission", b.String())
}

// FormatConfirmation is shown once the gateway accepts a case.
func FormatConfirmation(s *domain.Submission) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✔ Case registered") + "\n\n")
	b.WriteString(RenderKeyValues([]KeyValue{
		{"Case ID", Bold(s.CaseID)},
		{"URN", StyleFg.Render(s.URN)},
		{"Defendants", StyleFg.Render(fmt.Sprintf("%d", s.Defendants))},
	}))
	return RenderBox("Confirmation", b.String())
}
