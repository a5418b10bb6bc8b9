package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatSubmissionList(t *testing.T) {
	now := time.Now().UTC()
	ok := testutil.NewTestSubmission(testutil.WithURN("42AB0000001/25"), testutil.WithSubmissionStatus(domain.SubmissionSubmitted))
	ok.CaseID = "CASE-00001"
	failed := testutil.NewTestSubmission(testutil.WithSubmissionStatus(domain.SubmissionFailed), testutil.WithCreatedAt(now.Add(-2*time.Hour)))

	out := FormatSubmissionList([]*domain.Submission{ok, failed}, now)

	assert.Contains(t, out, "42AB0000001/25")
	assert.Contains(t, out, "CASE-00001")
	assert.Contains(t, out, "● Submitted")
	assert.Contains(t, out, "✖ Failed")
	assert.Contains(t, out, "2h ago")
}

func TestFormatSubmissionList_Empty(t *testing.T) {
	assert.Contains(t, FormatSubmissionList(nil, time.Now()), "No submissions yet.")
}

func TestFormatSubmissionDetail_ShowsError(t *testing.T) {
	s := testutil.NewTestSubmission(testutil.WithSubmissionStatus(domain.SubmissionFailed))
	s.Error = "gateway unavailable"

	out := FormatSubmissionDetail(s, time.Now())

	assert.Contains(t, out, s.ID)
	assert.Contains(t, out, "ERROR: gateway unavailable")
	assert.Contains(t, out, `{"urn":"test"}`)
}

func TestFormatConfirmation(t *testing.T) {
	s := testutil.NewTestSubmission(testutil.WithSubmissionStatus(domain.SubmissionSubmitted))
	s.CaseID = "CASE-00042"

	out := FormatConfirmation(s)

	assert.Contains(t, out, "Case registered")
	assert.Contains(t, out, "CASE-00042")
}
