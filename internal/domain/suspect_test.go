package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory_IgnoresCase(t *testing.T) {
	cases := []struct {
		label string
		want  Category
		ok    bool
	}{
		{"Date of Birth", CategoryDateOfBirth, true},
		{"Date of birth", CategoryDateOfBirth, true},
		{"  gender ", CategoryGender, true},
		{"alias details", CategoryAliases, true},
		{"Add suspect", CategoryAddSuspect, true},
		{"Shoe size", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseCategory(tc.label)
		assert.Equal(t, tc.ok, ok, "label=%q", tc.label)
		assert.Equal(t, tc.want, got, "label=%q", tc.label)
	}
}

func TestParseCategories_KeepsInputOrderAndDropsUnknown(t *testing.T) {
	got := ParseCategories([]string{"Gender", "bogus", "Date of birth"})
	assert.Equal(t, []Category{CategoryGender, CategoryDateOfBirth}, got)
}

func TestCategory_AppliesTo(t *testing.T) {
	assert.True(t, CategoryGender.AppliesTo(SuspectPerson))
	assert.False(t, CategoryGender.AppliesTo(SuspectCompany))
	assert.True(t, CategoryASN.AppliesTo(SuspectCompany))
	assert.False(t, CategoryAddSuspect.AppliesTo(SuspectPerson))
}

func TestSuspect_DisplayName(t *testing.T) {
	s := NewSuspect("s1")
	assert.Equal(t, "Unnamed suspect", s.DisplayName())

	s.Fields = s.Fields.With(Fields{FieldSuspectFirstName: Text("Ada"), FieldSuspectLastName: Text("Lovelace")})
	assert.Equal(t, "Ada Lovelace", s.DisplayName())

	s.Fields = s.Fields.With(Fields{FieldSuspectType: Text(SuspectCompany), FieldSuspectCompanyName: Text("Acme Ltd")})
	assert.Equal(t, "Acme Ltd", s.DisplayName())
}

func TestSuspect_Categories(t *testing.T) {
	s := NewSuspect("s1")
	s.Fields = s.Fields.With(Fields{FieldSuspectAdditionalDetails: Values{"Gender", "Alias details"}})
	assert.Equal(t, []Category{CategoryGender, CategoryAliases}, s.Categories())
	assert.False(t, s.HasAliases())
}

func TestSubmission_Transitions(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	s := &Submission{Status: SubmissionPending}
	require.NoError(t, s.MarkSubmitted("CASE-1", now))
	assert.Equal(t, SubmissionSubmitted, s.Status)
	assert.Equal(t, "CASE-1", s.CaseID)
	assert.Equal(t, now, s.UpdatedAt)

	err := s.MarkFailed("boom", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "submitted")

	f := &Submission{Status: SubmissionPending}
	require.NoError(t, f.MarkFailed("gateway unavailable", now))
	assert.Equal(t, SubmissionFailed, f.Status)
	assert.Equal(t, "gateway unavailable", f.Error)
}
