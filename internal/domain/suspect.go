package domain

import "strings"

// Suspect-scoped fields.
const (
	FieldSuspectType              Field = "suspectType"
	FieldSuspectFirstName         Field = "suspectFirstName"
	FieldSuspectLastName          Field = "suspectLastName"
	FieldSuspectCompanyName       Field = "suspectCompanyName"
	FieldSuspectAdditionalDetails Field = "suspectAdditionalDetails"
	FieldSuspectDOBDay            Field = "suspectDobDay"
	FieldSuspectDOBMonth          Field = "suspectDobMonth"
	FieldSuspectDOBYear           Field = "suspectDobYear"
	FieldSuspectGender            Field = "suspectGender"
	FieldSuspectDisability        Field = "suspectDisability"
	FieldSuspectReligion          Field = "suspectReligion"
	FieldSuspectEthnicity         Field = "suspectEthnicity"
	FieldSuspectSDO               Field = "suspectSdo"
	FieldSuspectASN               Field = "suspectAsn"
	FieldSuspectOffenderType      Field = "suspectOffenderType"
)

// PersonOnlyFields are cleared when a suspect becomes a company.
var PersonOnlyFields = []Field{
	FieldSuspectFirstName,
	FieldSuspectLastName,
	FieldSuspectDOBDay,
	FieldSuspectDOBMonth,
	FieldSuspectDOBYear,
	FieldSuspectGender,
	FieldSuspectDisability,
	FieldSuspectReligion,
	FieldSuspectEthnicity,
	FieldSuspectSDO,
	FieldSuspectOffenderType,
}

type Alias struct {
	ID        string
	FirstName string
	LastName  string
}

func (a Alias) DisplayName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Suspect is one person or company being registered against the case.
// ID is stable for the life of the wizard session; the suspect's position in
// FormData.Suspects is not.
type Suspect struct {
	ID      string
	Fields  Fields
	Aliases []Alias
	Charges []Charge
}

// NewSuspect returns a suspect with every field at its empty default.
func NewSuspect(id string) Suspect {
	return Suspect{
		ID: id,
		Fields: Fields{
			FieldSuspectType:              Text(""),
			FieldSuspectFirstName:         Text(""),
			FieldSuspectLastName:          Text(""),
			FieldSuspectCompanyName:       Text(""),
			FieldSuspectAdditionalDetails: Values{},
			FieldSuspectDOBDay:            Text(""),
			FieldSuspectDOBMonth:          Text(""),
			FieldSuspectDOBYear:           Text(""),
			FieldSuspectGender:            Text(""),
			FieldSuspectDisability:        Text(""),
			FieldSuspectReligion:          Text(""),
			FieldSuspectEthnicity:         Text(""),
			FieldSuspectSDO:               Text(""),
			FieldSuspectASN:               Text(""),
			FieldSuspectOffenderType:      Text(""),
		},
		Aliases: []Alias{},
		Charges: []Charge{},
	}
}

func (s Suspect) Type() SuspectType {
	return SuspectType(s.Fields.Text(FieldSuspectType))
}

// Categories returns the selected detail categories in checkbox order.
func (s Suspect) Categories() []Category {
	return ParseCategories(s.Fields.Values(FieldSuspectAdditionalDetails))
}

func (s Suspect) HasAliases() bool {
	return len(s.Aliases) > 0
}

// DisplayName returns the company name for companies and "First Last" for
// people, falling back to a placeholder when nothing has been entered.
func (s Suspect) DisplayName() string {
	if s.Type() == SuspectCompany {
		return FirstNonEmpty(s.Fields.Text(FieldSuspectCompanyName), "Unnamed company")
	}
	name := strings.TrimSpace(s.Fields.Text(FieldSuspectFirstName) + " " + s.Fields.Text(FieldSuspectLastName))
	return FirstNonEmpty(name, "Unnamed suspect")
}

// ChargeIndex returns the position of the charge with the given id, or -1.
func (s Suspect) ChargeIndex(id string) int {
	for i, c := range s.Charges {
		if c.ID == id {
			return i
		}
	}
	return -1
}
