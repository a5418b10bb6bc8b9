package domain

import (
	"fmt"
	"time"
)

// Submission records one attempt to send a registered case to the gateway.
type Submission struct {
	ID         string
	URN        string
	CaseID     string
	Status     SubmissionStatus
	Defendants int
	Payload    []byte
	Error      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MarkSubmitted records the gateway's case id. Only pending submissions can
// be completed.
func (s *Submission) MarkSubmitted(caseID string, now time.Time) error {
	if s.Status != SubmissionPending {
		return fmt.Errorf("cannot complete submission in status %s", s.Status)
	}
	s.Status = SubmissionSubmitted
	s.CaseID = caseID
	s.Error = ""
	s.UpdatedAt = now
	return nil
}

// MarkFailed records the failure reason. Only pending submissions can fail.
func (s *Submission) MarkFailed(reason string, now time.Time) error {
	if s.Status != SubmissionPending {
		return fmt.Errorf("cannot fail submission in status %s", s.Status)
	}
	s.Status = SubmissionFailed
	s.Error = reason
	s.UpdatedAt = now
	return nil
}
