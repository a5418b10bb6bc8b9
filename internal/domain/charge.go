package domain

import "strings"

// Charge-scoped fields.
const (
	FieldChargeOffence  Field = "chargeOffence"
	FieldChargeFromDate Field = "chargeFromDate"
	FieldChargeToDate   Field = "chargeToDate"
)

// Charge is an offence alleged against a suspect. VictimID optionally
// references an entry in FormData.Victims.
type Charge struct {
	ID       string
	Fields   Fields
	VictimID string
}

func NewCharge(id string) Charge {
	return Charge{
		ID: id,
		Fields: Fields{
			FieldChargeOffence:  EmptySelection(),
			FieldChargeFromDate: Text(""),
			FieldChargeToDate:   Text(""),
		},
	}
}

type Victim struct {
	ID        string
	FirstName string
	LastName  string
}

func (v Victim) DisplayName() string {
	return FirstNonEmpty(strings.TrimSpace(v.FirstName+" "+v.LastName), "Unnamed victim")
}
