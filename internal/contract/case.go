package contract

// CaseRegistrationRequest is the body of POST /api/cases. The validate tags
// are the gateway's acceptance rules; the stub enforces them.
type CaseRegistrationRequest struct {
	URN               string        `json:"urn" validate:"required"`
	OperationName     string        `json:"operationName,omitempty"`
	AreaID            *int          `json:"areaId" validate:"required"`
	RegisteringUnitID *int          `json:"registeringUnitId" validate:"required"`
	WitnessCareUnitID *int          `json:"witnessCareUnitId,omitempty"`
	ComplexityID      *int          `json:"complexityId,omitempty"`
	FirstHearing      *FirstHearing `json:"firstHearing,omitempty"`
	ProsecutorID      *int          `json:"prosecutorId,omitempty"`
	CaseworkerID      *int          `json:"caseworkerId,omitempty"`
	Investigator      *Investigator `json:"investigator,omitempty"`
	MonitoringCodes   []string      `json:"monitoringCodes"`
	Defendants        []Defendant   `json:"defendants" validate:"min=1,dive"`
}

type FirstHearing struct {
	CourtLocationID *int   `json:"courtLocationId"`
	Date            string `json:"date"`
}

type Investigator struct {
	TitleID        *int   `json:"titleId,omitempty"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	ShoulderName   string `json:"shoulderName,omitempty"`
	ShoulderNumber string `json:"shoulderNumber,omitempty"`
	PoliceUnit     string `json:"policeUnit,omitempty"`
}

type PersonName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Defendant is one suspect as the gateway expects it. Detail answers are
// only present for the categories the user chose to provide.
type Defendant struct {
	Type                     string       `json:"type"`
	FirstName                string       `json:"firstName,omitempty"`
	LastName                 string       `json:"lastName,omitempty"`
	CompanyName              string       `json:"companyName,omitempty"`
	DateOfBirth              string       `json:"dateOfBirth,omitempty"`
	Gender                   string       `json:"gender,omitempty"`
	Disability               *bool        `json:"disability,omitempty"`
	Religion                 string       `json:"religion,omitempty"`
	Ethnicity                string       `json:"ethnicity,omitempty"`
	Aliases                  []PersonName `json:"aliases,omitempty"`
	SeriousDangerousOffender *bool        `json:"seriousDangerousOffender,omitempty"`
	ArrestSummonsNumber      string       `json:"arrestSummonsNumber,omitempty"`
	OffenderType             string       `json:"offenderType,omitempty"`
	Charges                  []Charge     `json:"charges" validate:"min=1,dive"`
}

type Charge struct {
	OffenceID   *int        `json:"offenceId" validate:"required"`
	OffenceCode string      `json:"offenceCode,omitempty"`
	FromDate    string      `json:"fromDate,omitempty"`
	ToDate      string      `json:"toDate,omitempty"`
	Victim      *PersonName `json:"victim,omitempty"`
}

// CaseRegistrationResponse is the gateway's answer to a successful submission.
type CaseRegistrationResponse struct {
	CaseID string `json:"caseId"`
	URN    string `json:"urn"`
}
