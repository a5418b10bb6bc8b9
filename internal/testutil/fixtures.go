package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/casereg/internal/domain"
)

var testURNCounter atomic.Int64

// NextTestURN returns a distinct, well-formed URN per call.
func NextTestURN() string {
	n := testURNCounter.Add(1)
	return fmt.Sprintf("42AB%07d/25", n)
}

// Submission options
type SubmissionOption func(*domain.Submission)

func WithSubmissionStatus(s domain.SubmissionStatus) SubmissionOption {
	return func(sub *domain.Submission) {
		sub.Status = s
	}
}

func WithCreatedAt(t time.Time) SubmissionOption {
	return func(sub *domain.Submission) {
		sub.CreatedAt = t
		sub.UpdatedAt = t
	}
}

func WithURN(urn string) SubmissionOption {
	return func(sub *domain.Submission) {
		sub.URN = urn
	}
}

func NewTestSubmission(opts ...SubmissionOption) *domain.Submission {
	now := time.Now().UTC()
	s := &domain.Submission{
		ID:         uuid.New().String(),
		URN:        NextTestURN(),
		Status:     domain.SubmissionPending,
		Defendants: 1,
		Payload:    []byte(`{"urn":"test"}`),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Suspect options
type SuspectOption func(*domain.Suspect)

func WithCategories(cats ...domain.Category) SuspectOption {
	return func(s *domain.Suspect) {
		s.Fields = s.Fields.With(domain.Fields{
			domain.FieldSuspectAdditionalDetails: domain.Values(domain.CategoryLabels(cats)),
		})
	}
}

func WithCharge(offenceID int, description string) SuspectOption {
	return func(s *domain.Suspect) {
		c := domain.NewCharge(uuid.New().String())
		c.Fields = c.Fields.With(domain.Fields{domain.FieldChargeOffence: domain.NewSelection(offenceID, description)})
		s.Charges = append(s.Charges, c)
	}
}

// NewTestPerson returns a person suspect with a name and no details.
func NewTestPerson(first, last string, opts ...SuspectOption) domain.Suspect {
	s := domain.NewSuspect(uuid.New().String())
	s.Fields = s.Fields.With(domain.Fields{
		domain.FieldSuspectType:      domain.Text(domain.SuspectPerson),
		domain.FieldSuspectFirstName: domain.Text(first),
		domain.FieldSuspectLastName:  domain.Text(last),
	})
	for _, o := range opts {
		o(&s)
	}
	return s
}

// NewTestCompany returns a company suspect.
func NewTestCompany(name string, opts ...SuspectOption) domain.Suspect {
	s := domain.NewSuspect(uuid.New().String())
	s.Fields = s.Fields.With(domain.Fields{
		domain.FieldSuspectType:        domain.Text(domain.SuspectCompany),
		domain.FieldSuspectCompanyName: domain.Text(name),
	})
	for _, o := range opts {
		o(&s)
	}
	return s
}

// CompleteCaseFields are the flat answers of a case ready for submission.
func CompleteCaseFields() domain.Fields {
	return domain.Fields{
		domain.FieldCaseArea:              domain.NewSelection(1, "North East"),
		domain.FieldCaseRegisteringUnit:   domain.NewSelection(11, "Newcastle Magistrates"),
		domain.FieldURNPoliceForce:        domain.Text("42"),
		domain.FieldURNPoliceUnit:         domain.Text("AB"),
		domain.FieldURNUniqueReference:    domain.Text(fmt.Sprintf("%07d", testURNCounter.Add(1))),
		domain.FieldURNYear:               domain.Text("25"),
		domain.FieldOperationNameRadio:    domain.Text(domain.RadioNo),
		domain.FieldFirstHearingRadio:     domain.Text(domain.RadioNo),
		domain.FieldCaseProsecutorRadio:   domain.Text(domain.RadioNo),
		domain.FieldCaseInvestigatorRadio: domain.Text(domain.RadioNo),
	}
}
