package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/casereg/internal/domain"
)

type bogusAction struct{}

func (bogusAction) Type() string { return "BOGUS" }
func (bogusAction) isAction()    {}

func stateWithSuspect(t *testing.T, id string) *State {
	t.Helper()
	s := Reduce(InitialState(), AddSuspect{Suspect: domain.NewSuspect(id)})
	require.Len(t, s.FormData.Suspects, 1)
	return s
}

func TestReduce_UnknownActionReturnsSameState(t *testing.T) {
	s := InitialState()
	assert.Same(t, s, Reduce(s, bogusAction{}))
}

func TestReduce_SetFieldDoesNotMutateInput(t *testing.T) {
	s := InitialState()
	next := Reduce(s, SetField{Field: domain.FieldOperationName, Value: domain.Text("Falcon")})

	assert.Equal(t, "Falcon", next.FormData.Fields.Text(domain.FieldOperationName))
	assert.Equal(t, "", s.FormData.Fields.Text(domain.FieldOperationName))
	assert.NotSame(t, s, next)
}

func TestReduce_SetFieldsMerges(t *testing.T) {
	s := Reduce(InitialState(), SetFields{Patch: domain.Fields{
		domain.FieldURNPoliceForce: domain.Text("42"),
		domain.FieldCaseArea:       domain.NewSelection(3, "North"),
	}})

	assert.Equal(t, "42", s.FormData.Fields.Text(domain.FieldURNPoliceForce))
	assert.Equal(t, 3, s.FormData.Fields.Selection(domain.FieldCaseArea).IDOr(0))
	assert.Equal(t, "", s.FormData.Fields.Text(domain.FieldURNYear))
}

func TestReduce_SuspectFieldsAddressedByID(t *testing.T) {
	s := stateWithSuspect(t, "s1")
	s = Reduce(s, AddSuspect{Suspect: domain.NewSuspect("s2")})

	next := Reduce(s, SetSuspectField{SuspectID: "s2", Field: domain.FieldSuspectFirstName, Value: domain.Text("Ann")})

	assert.Equal(t, "", next.FormData.Suspects[0].Fields.Text(domain.FieldSuspectFirstName))
	assert.Equal(t, "Ann", next.FormData.Suspects[1].Fields.Text(domain.FieldSuspectFirstName))
	assert.Equal(t, "", s.FormData.Suspects[1].Fields.Text(domain.FieldSuspectFirstName))
}

func TestReduce_UnresolvedIDsAreNoOps(t *testing.T) {
	s := stateWithSuspect(t, "s1")

	cases := []Action{
		SetSuspectField{SuspectID: "missing", Field: domain.FieldSuspectFirstName, Value: domain.Text("x")},
		SetSuspectFields{SuspectID: "missing"},
		RemoveSuspect{SuspectID: "missing"},
		AddSuspectCharge{SuspectID: "missing", Charge: domain.NewCharge("c1")},
		SetChargeField{SuspectID: "s1", ChargeID: "missing", Field: domain.FieldChargeFromDate, Value: domain.Text("2024-01-01")},
		RemoveVictim{VictimID: "missing"},
	}
	for _, a := range cases {
		t.Run(a.Type(), func(t *testing.T) {
			assert.Same(t, s, Reduce(s, a))
		})
	}
}

func TestReduce_RemoveSuspect(t *testing.T) {
	s := stateWithSuspect(t, "s1")
	s = Reduce(s, AddSuspect{Suspect: domain.NewSuspect("s2")})

	next := Reduce(s, RemoveSuspect{SuspectID: "s1"})
	require.Len(t, next.FormData.Suspects, 1)
	assert.Equal(t, "s2", next.FormData.Suspects[0].ID)
	assert.Len(t, s.FormData.Suspects, 2)

	cleared := Reduce(s, RemoveAllSuspects{})
	assert.Empty(t, cleared.FormData.Suspects)
}

func TestReduce_Charges(t *testing.T) {
	s := stateWithSuspect(t, "s1")
	s = Reduce(s, AddSuspectCharge{SuspectID: "s1", Charge: domain.NewCharge("c1")})
	s = Reduce(s, SetChargeFields{SuspectID: "s1", ChargeID: "c1", Patch: domain.Fields{
		domain.FieldChargeOffence:  domain.NewSelection(7, "Theft"),
		domain.FieldChargeFromDate: domain.Text("2024-03-01"),
	}})

	c := s.FormData.Suspects[0].Charges[0]
	assert.Equal(t, "Theft", c.Fields.Selection(domain.FieldChargeOffence).Description)
	assert.Equal(t, "2024-03-01", c.Fields.Text(domain.FieldChargeFromDate))

	s = Reduce(s, RemoveSuspectCharge{SuspectID: "s1", ChargeID: "c1"})
	assert.Empty(t, s.FormData.Suspects[0].Charges)
}

func TestReduce_RemoveVictimUnlinksCharges(t *testing.T) {
	s := stateWithSuspect(t, "s1")
	s = Reduce(s, AddVictim{Victim: domain.Victim{ID: "v1", FirstName: "Jo"}})
	s = Reduce(s, AddSuspectCharge{SuspectID: "s1", Charge: domain.NewCharge("c1")})
	s = Reduce(s, SetChargeVictim{SuspectID: "s1", ChargeID: "c1", VictimID: "v1"})
	require.Equal(t, "v1", s.FormData.Suspects[0].Charges[0].VictimID)

	next := Reduce(s, RemoveVictim{VictimID: "v1"})

	assert.Empty(t, next.FormData.Victims)
	assert.Equal(t, "", next.FormData.Suspects[0].Charges[0].VictimID)
	assert.Equal(t, "v1", s.FormData.Suspects[0].Charges[0].VictimID)
}

func TestReduce_SetChargeVictimRejectsUnknownVictim(t *testing.T) {
	s := stateWithSuspect(t, "s1")
	s = Reduce(s, AddSuspectCharge{SuspectID: "s1", Charge: domain.NewCharge("c1")})

	assert.Same(t, s, Reduce(s, SetChargeVictim{SuspectID: "s1", ChargeID: "c1", VictimID: "ghost"}))
}

func TestReduce_Aliases(t *testing.T) {
	s := stateWithSuspect(t, "s1")
	s = Reduce(s, AddSuspectAlias{SuspectID: "s1", Alias: domain.Alias{ID: "a1", FirstName: "Jay"}})
	s = Reduce(s, AddSuspectAlias{SuspectID: "s1", Alias: domain.Alias{ID: "a2", FirstName: "Kay"}})
	require.Len(t, s.FormData.Suspects[0].Aliases, 2)

	s = Reduce(s, RemoveSuspectAlias{SuspectID: "s1", AliasID: "a1"})
	require.Len(t, s.FormData.Suspects[0].Aliases, 1)
	assert.Equal(t, "a2", s.FormData.Suspects[0].Aliases[0].ID)
}

func TestReduce_ResetSuspectFieldToCompany(t *testing.T) {
	s := stateWithSuspect(t, "s1")
	s = Reduce(s, SetSuspectFields{SuspectID: "s1", Patch: domain.Fields{
		domain.FieldSuspectFirstName:         domain.Text("Ann"),
		domain.FieldSuspectGender:            domain.Text("Female"),
		domain.FieldSuspectASN:               domain.Text("ASN-1"),
		domain.FieldSuspectAdditionalDetails: domain.Values{"Gender", "Alias details", "Arrest summons number (ASN)"},
	}})
	s = Reduce(s, AddSuspectAlias{SuspectID: "s1", Alias: domain.Alias{ID: "a1"}})

	s = Reduce(s, ResetSuspectField{SuspectID: "s1", Field: domain.FieldSuspectType, Value: domain.Text(domain.SuspectCompany)})

	sp := s.FormData.Suspects[0]
	assert.Equal(t, "", sp.Fields.Text(domain.FieldSuspectFirstName))
	assert.Equal(t, "", sp.Fields.Text(domain.FieldSuspectGender))
	assert.Equal(t, "ASN-1", sp.Fields.Text(domain.FieldSuspectASN))
	assert.Equal(t, []string{"Arrest summons number (ASN)"}, sp.Fields.Values(domain.FieldSuspectAdditionalDetails))
	assert.Empty(t, sp.Aliases)
}

func TestReduce_APIDataSlotsLastWriteWins(t *testing.T) {
	s := InitialState()
	s = Reduce(s, SetCourtLocations{Items: []domain.ReferenceItem{{ID: 1, Description: "Old"}}})
	s = Reduce(s, SetCourtLocations{Items: []domain.ReferenceItem{{ID: 2, Description: "New"}}})
	s = Reduce(s, SetOffences{Offences: []domain.Offence{{ID: 9, Code: "TH68001"}}})

	assert.Equal(t, []domain.ReferenceItem{{ID: 2, Description: "New"}}, s.APIData.CourtLocations)
	assert.Len(t, s.APIData.Offences, 1)
	assert.Nil(t, s.APIData.CaseProsecutors)
}

func TestReduce_ResetFormDataPreservesAPIData(t *testing.T) {
	s := stateWithSuspect(t, "s1")
	s = Reduce(s, SetField{Field: domain.FieldOperationName, Value: domain.Text("Falcon")})
	s = Reduce(s, SetNavigationData{Navigation: domain.NavigationData{FromCaseSummary: true}})
	s = Reduce(s, SetCaseComplexities{Items: []domain.ReferenceItem{{ID: 1, Description: "Standard"}}})

	next := Reduce(s, ResetFormData{})

	assert.Equal(t, domain.InitialFormData(), next.FormData)
	assert.Equal(t, s.APIData, next.APIData)
}

func TestReduce_SetNavigationData(t *testing.T) {
	s := Reduce(InitialState(), SetNavigationData{Navigation: domain.NavigationData{FromSuspectSummary: true}})
	assert.True(t, s.FormData.Navigation.FromSuspectSummary)
	assert.False(t, s.FormData.Navigation.FromCaseSummary)
}
