package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/casereg/internal/domain"
)

func TestGetResetFieldValues(t *testing.T) {
	tests := []struct {
		name  string
		field domain.Field
		value string
		want  domain.Fields
	}{
		{
			name:  "prosecutor no clears prosecutor and caseworker",
			field: domain.FieldCaseProsecutorRadio,
			value: "no",
			want: domain.Fields{
				domain.FieldCaseProsecutorText: domain.EmptySelection(),
				domain.FieldCaseCaseworkerText: domain.EmptySelection(),
			},
		},
		{
			name:  "operation name radio is not a gating field",
			field: domain.FieldOperationNameRadio,
			value: "no",
			want:  domain.Fields{},
		},
		{
			name:  "first hearing no",
			field: domain.FieldFirstHearingRadio,
			value: "no",
			want: domain.Fields{
				domain.FieldFirstHearingCourtLocation: domain.EmptySelection(),
				domain.FieldFirstHearingDate:          domain.Text(""),
			},
		},
		{
			name:  "prosecutor yes keeps everything",
			field: domain.FieldCaseProsecutorRadio,
			value: "yes",
			want:  domain.Fields{},
		},
		{
			name:  "non gating field",
			field: domain.FieldURNYear,
			value: "no",
			want:  domain.Fields{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetResetFieldValues(tt.field, tt.value))
		})
	}
}

func TestGetResetFieldValues_Investigator(t *testing.T) {
	patch := GetResetFieldValues(domain.FieldCaseInvestigatorRadio, domain.RadioNo)

	assert.Len(t, patch, 6)
	assert.True(t, patch.Selection(domain.FieldCaseInvestigatorTitle).IsEmpty())
	for _, f := range []domain.Field{
		domain.FieldCaseInvestigatorFirstName,
		domain.FieldCaseInvestigatorLastName,
		domain.FieldCaseInvestigatorShoulderName,
		domain.FieldCaseInvestigatorShoulderNumber,
		domain.FieldCaseInvestigatorPoliceUnit,
	} {
		assert.Equal(t, domain.Text(""), patch[f], f)
	}
}

func TestSuspectResetValues_AdditionalDetails(t *testing.T) {
	s := domain.NewSuspect("s1")

	patch, clearAliases := SuspectResetValues(s, domain.FieldSuspectAdditionalDetails,
		domain.Values{"Date of Birth", "Alias details"})

	assert.False(t, clearAliases)
	assert.NotContains(t, patch, domain.FieldSuspectDOBDay)
	assert.Contains(t, patch, domain.FieldSuspectGender)
	assert.Contains(t, patch, domain.FieldSuspectOffenderType)

	_, clearAliases = SuspectResetValues(s, domain.FieldSuspectAdditionalDetails, domain.Values{"Gender"})
	assert.True(t, clearAliases)
}

func TestSuspectResetValues_ToPerson(t *testing.T) {
	patch, clearAliases := SuspectResetValues(domain.NewSuspect("s1"), domain.FieldSuspectType, domain.Text(domain.SuspectPerson))

	assert.Equal(t, domain.Fields{domain.FieldSuspectCompanyName: domain.Text("")}, patch)
	assert.False(t, clearAliases)
}
