package domain

import "fmt"

// Flat case-level fields.
const (
	FieldCaseArea            Field = "caseArea"
	FieldCaseRegisteringUnit Field = "caseRegisteringUnit"
	FieldCaseWitnessCareUnit Field = "caseWitnessCareUnit"

	FieldURNPoliceForce     Field = "urnPoliceForce"
	FieldURNPoliceUnit      Field = "urnPoliceUnit"
	FieldURNUniqueReference Field = "urnUniqueReference"
	FieldURNYear            Field = "urnYear"
	FieldOperationNameRadio Field = "operationNameRadio"
	FieldOperationName      Field = "operationName"
	FieldCaseComplexity     Field = "caseComplexity"

	FieldFirstHearingRadio         Field = "firstHearingRadio"
	FieldFirstHearingCourtLocation Field = "firstHearingCourtLocation"
	FieldFirstHearingDate          Field = "firstHearingDate"

	FieldCaseProsecutorRadio Field = "caseProsecutorRadio"
	FieldCaseProsecutorText  Field = "caseProsecutorText"
	FieldCaseCaseworkerText  Field = "caseCaseworkerText"

	FieldCaseInvestigatorRadio          Field = "caseInvestigatorRadio"
	FieldCaseInvestigatorTitle          Field = "caseInvestigatorTitle"
	FieldCaseInvestigatorFirstName      Field = "caseInvestigatorFirstName"
	FieldCaseInvestigatorLastName       Field = "caseInvestigatorLastName"
	FieldCaseInvestigatorShoulderName   Field = "caseInvestigatorShoulderName"
	FieldCaseInvestigatorShoulderNumber Field = "caseInvestigatorShoulderNumber"
	FieldCaseInvestigatorPoliceUnit     Field = "caseInvestigatorPoliceUnit"

	FieldCaseMonitoringCodes Field = "caseMonitoringCodes"
)

// NavigationData carries cross-page flags, e.g. that the user arrived at a
// page from the case summary and should be returned there afterwards.
type NavigationData struct {
	FromCaseSummary    bool
	FromSuspectSummary bool
}

// FormData is everything the user has entered so far.
type FormData struct {
	Fields     Fields
	Suspects   []Suspect
	Victims    []Victim
	Navigation NavigationData
}

// InitialFormData returns the value a new wizard session starts with.
func InitialFormData() FormData {
	return FormData{
		Fields: Fields{
			FieldCaseArea:            EmptySelection(),
			FieldCaseRegisteringUnit: EmptySelection(),
			FieldCaseWitnessCareUnit: EmptySelection(),

			FieldURNPoliceForce:     Text(""),
			FieldURNPoliceUnit:      Text(""),
			FieldURNUniqueReference: Text(""),
			FieldURNYear:            Text(""),
			FieldOperationNameRadio: Text(""),
			FieldOperationName:      Text(""),
			FieldCaseComplexity:     EmptySelection(),

			FieldFirstHearingRadio:         Text(""),
			FieldFirstHearingCourtLocation: EmptySelection(),
			FieldFirstHearingDate:          Text(""),

			FieldCaseProsecutorRadio: Text(""),
			FieldCaseProsecutorText:  EmptySelection(),
			FieldCaseCaseworkerText:  EmptySelection(),

			FieldCaseInvestigatorRadio:          Text(""),
			FieldCaseInvestigatorTitle:          EmptySelection(),
			FieldCaseInvestigatorFirstName:      Text(""),
			FieldCaseInvestigatorLastName:       Text(""),
			FieldCaseInvestigatorShoulderName:   Text(""),
			FieldCaseInvestigatorShoulderNumber: Text(""),
			FieldCaseInvestigatorPoliceUnit:     Text(""),

			FieldCaseMonitoringCodes: Values{},
		},
		Suspects: []Suspect{},
		Victims:  []Victim{},
	}
}

// URN assembles the unique reference number from its four parts, e.g.
// "42AB1234567/25". Returns "" until the unique reference is entered.
func (f FormData) URN() string {
	ref := f.Fields.Text(FieldURNUniqueReference)
	if ref == "" {
		return ""
	}
	return fmt.Sprintf("%s%s%s/%s",
		f.Fields.Text(FieldURNPoliceForce),
		f.Fields.Text(FieldURNPoliceUnit),
		ref,
		f.Fields.Text(FieldURNYear))
}

// SuspectIndex returns the position of the suspect with the given id, or -1.
func (f FormData) SuspectIndex(id string) int {
	for i, s := range f.Suspects {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// VictimByID returns the victim with the given id.
func (f FormData) VictimByID(id string) (Victim, bool) {
	for _, v := range f.Victims {
		if v.ID == id {
			return v, true
		}
	}
	return Victim{}, false
}
