package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/journey"
	"github.com/alexanderramin/casereg/internal/wizard"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
)

// stepPage is one form-backed wizard page. apply turns the bound answers
// into reducer actions; next and back are evaluated against the state after
// (for next) or before (for back) the actions are dispatched.
type stepPage struct {
	title string
	form  *huh.Form
	apply func(*wizard.State) []wizard.Action
	next  func(*wizard.State) journey.Route
	back  func(*wizard.State) journey.Route
}

func caseNext(step journey.Step) func(*wizard.State) journey.Route {
	return func(*wizard.State) journey.Route { return journey.NextCaseRoute(step) }
}

func caseBack(step journey.Step) func(*wizard.State) journey.Route {
	return func(*wizard.State) journey.Route { return journey.PreviousCaseRoute(step) }
}

// withReset appends the gating-radio reset patch when it is not empty.
func withReset(actions []wizard.Action, radio domain.Field, value string) []wizard.Action {
	if patch := wizard.GetResetFieldValues(radio, value); len(patch) > 0 {
		actions = append(actions, wizard.SetFields{Patch: patch})
	}
	return actions
}

// ── case area ────────────────────────────────────────────────────────────────

type caseAreaFields struct {
	area            int
	registeringUnit int
	witnessCareUnit int
}

func newCaseAreaFields(s *wizard.State) *caseAreaFields {
	f := s.FormData.Fields
	areas := wizard.Areas(s.APIData)
	area := firstID(f.Selection(domain.FieldCaseArea), areas)
	return &caseAreaFields{
		area:            area,
		registeringUnit: firstID(f.Selection(domain.FieldCaseRegisteringUnit), wizard.RegisteringUnits(s.APIData, area)),
		witnessCareUnit: firstID(f.Selection(domain.FieldCaseWitnessCareUnit), wizard.WitnessCareUnits(s.APIData, area)),
	}
}

func caseAreaPage(s *wizard.State) *stepPage {
	fields := newCaseAreaFields(s)
	api := s.APIData

	unitSelect := func(title string, units func(domain.APIData, int) []domain.ReferenceItem, value *int) huh.Field {
		return huh.NewSelect[int]().
			Title(title).
			OptionsFunc(func() []huh.Option[int] {
				opts := referenceOptions(units(api, fields.area))
				if len(opts) == 0 {
					return []huh.Option[int]{huh.NewOption("None for this area", 0)}
				}
				return opts
			}, &fields.area).
			Value(value)
	}

	return &stepPage{
		title: "Case area",
		form: newForm(
			huh.NewGroup(
				referenceSelect("Area", wizard.Areas(api), &fields.area),
				unitSelect("Registering unit", wizard.RegisteringUnits, &fields.registeringUnit),
				unitSelect("Witness care unit", wizard.WitnessCareUnits, &fields.witnessCareUnit),
			),
		),
		apply: func(s *wizard.State) []wizard.Action { return applyCaseArea(s, fields) },
		next:  caseNext(journey.StepCaseArea),
		back:  caseBack(journey.StepCaseArea),
	}
}

// applyCaseArea stores the area and its units. A unit that does not belong
// to the chosen area is cleared.
func applyCaseArea(s *wizard.State, f *caseAreaFields) []wizard.Action {
	return []wizard.Action{wizard.SetFields{Patch: domain.Fields{
		domain.FieldCaseArea:            selectionFor(wizard.Areas(s.APIData), f.area),
		domain.FieldCaseRegisteringUnit: selectionFor(wizard.RegisteringUnits(s.APIData, f.area), f.registeringUnit),
		domain.FieldCaseWitnessCareUnit: selectionFor(wizard.WitnessCareUnits(s.APIData, f.area), f.witnessCareUnit),
	}}}
}

// ── case details ─────────────────────────────────────────────────────────────

type caseDetailsFields struct {
	policeForce     string
	policeUnit      string
	uniqueReference string
	year            string
	operationRadio  string
	operationName   string
	complexity      int
}

func newCaseDetailsFields(s *wizard.State) *caseDetailsFields {
	f := s.FormData.Fields
	return &caseDetailsFields{
		policeForce:     f.Text(domain.FieldURNPoliceForce),
		policeUnit:      f.Text(domain.FieldURNPoliceUnit),
		uniqueReference: f.Text(domain.FieldURNUniqueReference),
		year:            f.Text(domain.FieldURNYear),
		operationRadio:  f.Text(domain.FieldOperationNameRadio),
		operationName:   f.Text(domain.FieldOperationName),
		complexity:      firstID(f.Selection(domain.FieldCaseComplexity), s.APIData.CaseComplexities),
	}
}

func caseDetailsPage(s *wizard.State) *stepPage {
	fields := newCaseDetailsFields(s)
	return &stepPage{
		title: "Case details",
		form: newForm(
			huh.NewGroup(
				numericInput("URN police force", "42", "police force", true, &fields.policeForce),
				textInput("URN police unit", "AB", "police unit", &fields.policeUnit),
				numericInput("URN unique reference", "1234567", "unique reference", true, &fields.uniqueReference),
				numericInput("URN year", "25", "year", true, &fields.year),
			).Title("Unique reference number"),
			huh.NewGroup(
				yesNoSelect("Does the case have an operation name?", &fields.operationRadio),
				referenceSelect("Case complexity", s.APIData.CaseComplexities, &fields.complexity),
			),
			huh.NewGroup(
				textInput("Operation name", "", "operation name", &fields.operationName),
			).WithHideFunc(func() bool { return fields.operationRadio != domain.RadioYes }),
		),
		apply: func(s *wizard.State) []wizard.Action { return applyCaseDetails(s, fields) },
		next:  caseNext(journey.StepCaseDetails),
		back:  caseBack(journey.StepCaseDetails),
	}
}

func applyCaseDetails(s *wizard.State, f *caseDetailsFields) []wizard.Action {
	operationName := strings.TrimSpace(f.operationName)
	if f.operationRadio == domain.RadioNo {
		operationName = ""
	}
	return []wizard.Action{wizard.SetFields{Patch: domain.Fields{
		domain.FieldURNPoliceForce:     domain.Text(strings.TrimSpace(f.policeForce)),
		domain.FieldURNPoliceUnit:      domain.Text(strings.ToUpper(strings.TrimSpace(f.policeUnit))),
		domain.FieldURNUniqueReference: domain.Text(strings.TrimSpace(f.uniqueReference)),
		domain.FieldURNYear:            domain.Text(strings.TrimSpace(f.year)),
		domain.FieldOperationNameRadio: domain.Text(f.operationRadio),
		domain.FieldOperationName:      domain.Text(operationName),
		domain.FieldCaseComplexity:     selectionFor(s.APIData.CaseComplexities, f.complexity),
	}}}
}

// ── first hearing ────────────────────────────────────────────────────────────

type firstHearingFields struct {
	radio string
	court int
	date  string
}

func firstHearingPage(s *wizard.State) *stepPage {
	f := s.FormData.Fields
	fields := &firstHearingFields{
		radio: f.Text(domain.FieldFirstHearingRadio),
		court: firstID(f.Selection(domain.FieldFirstHearingCourtLocation), s.APIData.CourtLocations),
		date:  f.Text(domain.FieldFirstHearingDate),
	}
	return &stepPage{
		title: "First hearing",
		form: newForm(
			huh.NewGroup(
				yesNoSelect("Has a first hearing been scheduled?", &fields.radio),
			),
			huh.NewGroup(
				referenceSelect("Court location", s.APIData.CourtLocations, &fields.court),
				dateInput("Hearing date", true, &fields.date),
			).WithHideFunc(func() bool { return fields.radio != domain.RadioYes }),
		),
		apply: func(s *wizard.State) []wizard.Action { return applyFirstHearing(s, fields) },
		next:  caseNext(journey.StepFirstHearing),
		back:  caseBack(journey.StepFirstHearing),
	}
}

func applyFirstHearing(s *wizard.State, f *firstHearingFields) []wizard.Action {
	actions := []wizard.Action{wizard.SetFields{Patch: domain.Fields{
		domain.FieldFirstHearingRadio:         domain.Text(f.radio),
		domain.FieldFirstHearingCourtLocation: selectionFor(s.APIData.CourtLocations, f.court),
		domain.FieldFirstHearingDate:          domain.Text(f.date),
	}}}
	return withReset(actions, domain.FieldFirstHearingRadio, f.radio)
}

// ── add suspect ──────────────────────────────────────────────────────────────

type addSuspectFields struct {
	// suspectID is the existing suspect's id, or the id a new one will get.
	suspectID string
	existing  bool
	kind      string
	firstName string
	lastName  string
	company   string
	details   []string
}

func newAddSuspectFields(s *wizard.State, index int) *addSuspectFields {
	sp, ok := resolveSuspect(s.FormData, index)
	if !ok {
		return &addSuspectFields{suspectID: uuid.New().String(), kind: string(domain.SuspectPerson)}
	}
	return &addSuspectFields{
		suspectID: sp.ID,
		existing:  true,
		kind:      domain.FirstNonEmpty(string(sp.Type()), string(domain.SuspectPerson)),
		firstName: sp.Fields.Text(domain.FieldSuspectFirstName),
		lastName:  sp.Fields.Text(domain.FieldSuspectLastName),
		company:   sp.Fields.Text(domain.FieldSuspectCompanyName),
		details:   domain.CategoryLabels(sp.Categories()),
	}
}

func addSuspectPage(s *wizard.State, index int) *stepPage {
	index = min(index, len(s.FormData.Suspects))
	fields := newAddSuspectFields(s, index)

	title := "Add suspect"
	if fields.existing {
		title = "Edit suspect " + fmt.Sprint(index+1)
	}

	return &stepPage{
		title: title,
		form: newForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Is the suspect a person or a company?").
					Options(
						huh.NewOption("Person", string(domain.SuspectPerson)),
						huh.NewOption("Company", string(domain.SuspectCompany)),
					).
					Value(&fields.kind),
			),
			huh.NewGroup(
				textInput("First name", "", "first name", &fields.firstName),
				textInput("Last name", "", "last name", &fields.lastName),
			).WithHideFunc(func() bool { return fields.kind != string(domain.SuspectPerson) }),
			huh.NewGroup(
				textInput("Company name", "", "company name", &fields.company),
			).WithHideFunc(func() bool { return fields.kind != string(domain.SuspectCompany) }),
			huh.NewGroup(
				huh.NewMultiSelect[string]().
					Title("Which additional details can you provide?").
					OptionsFunc(func() []huh.Option[string] {
						return stringOptions(applicableCategories(domain.SuspectType(fields.kind)))
					}, &fields.kind).
					Value(&fields.details),
			),
		),
		apply: func(s *wizard.State) []wizard.Action { return applyAddSuspect(s, fields) },
		next: func(s *wizard.State) journey.Route {
			sp, ok := resolveSuspect(s.FormData, index)
			if !ok {
				return journey.CaseRoute(journey.StepSuspectSummary)
			}
			return journey.FirstRoute(sp.Categories(), index, sp.HasAliases())
		},
		back: func(s *wizard.State) journey.Route { return addSuspectBack(s, fields.suspectID) },
	}
}

func applicableCategories(t domain.SuspectType) []string {
	var out []string
	for _, c := range domain.DetailCategories {
		if c.AppliesTo(t) {
			out = append(out, string(c))
		}
	}
	return out
}

// applyAddSuspect appends a new suspect, or for an existing one applies the
// type and detail resets before storing the new answers.
func applyAddSuspect(s *wizard.State, f *addSuspectFields) []wizard.Action {
	kind := domain.SuspectType(f.kind)
	details := domain.Values(domain.CategoryLabels(onlyApplicable(domain.ParseCategories(f.details), kind)))

	patch := domain.Fields{
		domain.FieldSuspectType:              domain.Text(kind),
		domain.FieldSuspectAdditionalDetails: details,
	}
	if kind == domain.SuspectCompany {
		patch[domain.FieldSuspectCompanyName] = domain.Text(strings.TrimSpace(f.company))
	} else {
		patch[domain.FieldSuspectFirstName] = domain.Text(strings.TrimSpace(f.firstName))
		patch[domain.FieldSuspectLastName] = domain.Text(strings.TrimSpace(f.lastName))
	}

	i := s.FormData.SuspectIndex(f.suspectID)
	if i < 0 {
		sp := domain.NewSuspect(f.suspectID)
		sp.Fields = sp.Fields.With(patch)
		return []wizard.Action{wizard.AddSuspect{Suspect: sp}}
	}

	var actions []wizard.Action
	if s.FormData.Suspects[i].Type() != kind {
		actions = append(actions, wizard.ResetSuspectField{SuspectID: f.suspectID, Field: domain.FieldSuspectType, Value: domain.Text(kind)})
	}
	return append(actions,
		wizard.ResetSuspectField{SuspectID: f.suspectID, Field: domain.FieldSuspectAdditionalDetails, Value: details},
		wizard.SetSuspectFields{SuspectID: f.suspectID, Patch: patch},
	)
}

func onlyApplicable(cats []domain.Category, t domain.SuspectType) []domain.Category {
	return slices.DeleteFunc(cats, func(c domain.Category) bool { return !c.AppliesTo(t) })
}

// addSuspectBack leaves the add-suspect page: to the suspect list when
// there is anything to show there, otherwise to the previous case page.
func addSuspectBack(s *wizard.State, editing string) journey.Route {
	others := slices.ContainsFunc(s.FormData.Suspects, func(sp domain.Suspect) bool { return sp.ID != editing })
	if others || s.FormData.Navigation.FromSuspectSummary {
		return journey.CaseRoute(journey.StepSuspectSummary)
	}
	return journey.PreviousCaseRoute(journey.StepAddSuspect)
}

// ── suspect details ──────────────────────────────────────────────────────────

// suspectDetailPage builds the page for one detail category of the suspect
// at index. The suspect must exist.
func suspectDetailPage(s *wizard.State, step journey.Step, index int) *stepPage {
	sp := s.FormData.Suspects[index]
	values := map[domain.Field]*string{}
	bind := func(field domain.Field) *string {
		v := sp.Fields.Text(field)
		values[field] = &v
		return &v
	}

	var group *huh.Group
	var title string
	switch step {
	case journey.StepDateOfBirth:
		title = "Date of birth"
		group = huh.NewGroup(
			numericInput("Day", "DD", "day", true, bind(domain.FieldSuspectDOBDay)),
			numericInput("Month", "MM", "month", true, bind(domain.FieldSuspectDOBMonth)),
			numericInput("Year", "YYYY", "year", true, bind(domain.FieldSuspectDOBYear)),
		)
	case journey.StepGender:
		title = "Gender"
		group = huh.NewGroup(answerSelect("Gender", domain.GenderOptions, bind(domain.FieldSuspectGender)))
	case journey.StepDisability:
		title = "Disability"
		group = huh.NewGroup(yesNoSelect("Does the suspect have a disability?", bind(domain.FieldSuspectDisability)))
	case journey.StepReligion:
		title = "Religion"
		group = huh.NewGroup(answerSelect("Religion", domain.ReligionOptions, bind(domain.FieldSuspectReligion)))
	case journey.StepEthnicity:
		title = "Ethnicity"
		group = huh.NewGroup(answerSelect("Ethnicity", domain.EthnicityOptions, bind(domain.FieldSuspectEthnicity)))
	case journey.StepSDO:
		title = "Serious dangerous offender"
		group = huh.NewGroup(yesNoSelect("Is the suspect a serious dangerous offender?", bind(domain.FieldSuspectSDO)))
	case journey.StepASN:
		title = "Arrest summons number"
		group = huh.NewGroup(textInput("Arrest summons number", "", "arrest summons number", bind(domain.FieldSuspectASN)))
	case journey.StepOffenderType:
		title = "Type of offender"
		group = huh.NewGroup(answerSelect("Type of offender", domain.OffenderTypeOptions, bind(domain.FieldSuspectOffenderType)))
	}

	return &stepPage{
		title: title + " · " + wizard.SuspectDisplayName(sp),
		form:  newForm(group),
		apply: func(*wizard.State) []wizard.Action {
			patch := domain.Fields{}
			for field, v := range values {
				patch[field] = domain.Text(strings.TrimSpace(*v))
			}
			return []wizard.Action{wizard.SetSuspectFields{SuspectID: sp.ID, Patch: patch}}
		},
		next: func(s *wizard.State) journey.Route { return suspectNext(s, step, index) },
		back: func(s *wizard.State) journey.Route { return suspectBack(s, step, index) },
	}
}

func answerSelect(title string, options []string, value *string) *huh.Select[string] {
	if *value == "" && len(options) > 0 {
		*value = options[0]
	}
	return huh.NewSelect[string]().Title(title).Options(stringOptions(options)...).Value(value)
}

func suspectNext(s *wizard.State, step journey.Step, index int) journey.Route {
	sp, ok := resolveSuspect(s.FormData, index)
	if !ok {
		return journey.CaseRoute(journey.StepSuspectSummary)
	}
	return journey.NextRoute(step, sp.Categories(), index, sp.HasAliases())
}

func suspectBack(s *wizard.State, step journey.Step, index int) journey.Route {
	sp, ok := resolveSuspect(s.FormData, index)
	if !ok {
		return journey.CaseRoute(journey.StepSuspectSummary)
	}
	return journey.PreviousRoute(step, sp.Categories(), index)
}

// ── aliases ──────────────────────────────────────────────────────────────────

type aliasFields struct {
	aliasID   string
	firstName string
	lastName  string
}

func aliasPage(s *wizard.State, index int) *stepPage {
	sp := s.FormData.Suspects[index]
	fields := &aliasFields{aliasID: uuid.New().String()}
	return &stepPage{
		title: "Alias · " + wizard.SuspectDisplayName(sp),
		form: newForm(
			huh.NewGroup(
				textInput("Alias first name", "", "", &fields.firstName),
				textInput("Alias last name", "", "alias last name", &fields.lastName),
			).Title("Add an alias"),
		),
		apply: func(*wizard.State) []wizard.Action { return applyAlias(sp.ID, fields) },
		next: func(*wizard.State) journey.Route {
			return journey.SuspectRoute(journey.StepAliasSummary, index)
		},
		back: func(s *wizard.State) journey.Route {
			if cur, ok := resolveSuspect(s.FormData, index); ok && cur.HasAliases() {
				return journey.SuspectRoute(journey.StepAliasSummary, index)
			}
			return suspectBack(s, journey.StepAliases, index)
		},
	}
}

func applyAlias(suspectID string, f *aliasFields) []wizard.Action {
	return []wizard.Action{wizard.AddSuspectAlias{SuspectID: suspectID, Alias: domain.Alias{
		ID:        f.aliasID,
		FirstName: strings.TrimSpace(f.firstName),
		LastName:  strings.TrimSpace(f.lastName),
	}}}
}

// ── charges ──────────────────────────────────────────────────────────────────

const (
	victimNone = ""
	victimNew  = "new"
)

type chargeFields struct {
	chargeID    string
	newVictimID string
	suspectID   string
	offence     int
	fromDate    string
	toDate      string
	victim      string
	victimFirst string
	victimLast  string
}

func addChargePage(s *wizard.State) *stepPage {
	form := s.FormData
	fields := &chargeFields{
		chargeID:    uuid.New().String(),
		newVictimID: uuid.New().String(),
	}
	if len(form.Suspects) > 0 {
		fields.suspectID = form.Suspects[0].ID
	}
	if len(s.APIData.Offences) > 0 {
		fields.offence = s.APIData.Offences[0].ID
	}

	var suspectField huh.Field
	if len(form.Suspects) == 1 {
		suspectField = huh.NewNote().Title("Suspect").Description(wizard.SuspectDisplayName(form.Suspects[0]))
	} else {
		opts := make([]huh.Option[string], 0, len(form.Suspects))
		for _, sp := range form.Suspects {
			opts = append(opts, huh.NewOption(wizard.SuspectDisplayName(sp), sp.ID))
		}
		suspectField = huh.NewSelect[string]().Title("Suspect").Options(opts...).Value(&fields.suspectID)
	}

	offences := make([]huh.Option[int], 0, len(s.APIData.Offences))
	for _, o := range s.APIData.Offences {
		offences = append(offences, huh.NewOption(o.Code+"  "+o.Description, o.ID))
	}
	var offenceField huh.Field = huh.NewNote().Title("Offence").Description("No offences available.")
	if len(offences) > 0 {
		offenceField = huh.NewSelect[int]().Title("Offence").Options(offences...).Value(&fields.offence)
	}

	victims := []huh.Option[string]{huh.NewOption("No victim", victimNone)}
	for _, v := range form.Victims {
		victims = append(victims, huh.NewOption(v.DisplayName(), v.ID))
	}
	victims = append(victims, huh.NewOption("Add a new victim", victimNew))

	return &stepPage{
		title: "Add charge",
		form: newForm(
			huh.NewGroup(
				suspectField,
				offenceField,
				dateInput("Offence date (from)", true, &fields.fromDate),
				dateInput("Offence date (to, optional)", false, &fields.toDate),
			),
			huh.NewGroup(
				huh.NewSelect[string]().Title("Victim").Options(victims...).Value(&fields.victim),
			),
			huh.NewGroup(
				textInput("Victim first name", "", "", &fields.victimFirst),
				textInput("Victim last name", "", "victim last name", &fields.victimLast),
			).WithHideFunc(func() bool { return fields.victim != victimNew }),
		),
		apply: func(s *wizard.State) []wizard.Action { return applyCharge(s, fields) },
		next: func(*wizard.State) journey.Route {
			return journey.NextCaseRoute(journey.StepAddCharge)
		},
		back: func(s *wizard.State) journey.Route {
			if hasAnyCharge(s.FormData) {
				return journey.CaseRoute(journey.StepChargesSummary)
			}
			return journey.PreviousCaseRoute(journey.StepAddCharge)
		},
	}
}

func hasAnyCharge(form domain.FormData) bool {
	return slices.ContainsFunc(form.Suspects, func(sp domain.Suspect) bool { return len(sp.Charges) > 0 })
}

// applyCharge adds the charge to its suspect and links the victim, creating
// the victim first when a new one was entered.
func applyCharge(s *wizard.State, f *chargeFields) []wizard.Action {
	if s.FormData.SuspectIndex(f.suspectID) < 0 {
		return nil
	}
	charge := domain.NewCharge(f.chargeID)
	offence := domain.EmptySelection()
	if o, ok := wizard.OffenceByID(s.APIData, f.offence); ok {
		offence = domain.NewSelection(o.ID, o.Description)
	}
	charge.Fields = charge.Fields.With(domain.Fields{
		domain.FieldChargeOffence:  offence,
		domain.FieldChargeFromDate: domain.Text(f.fromDate),
		domain.FieldChargeToDate:   domain.Text(f.toDate),
	})

	actions := []wizard.Action{wizard.AddSuspectCharge{SuspectID: f.suspectID, Charge: charge}}
	switch f.victim {
	case victimNone:
	case victimNew:
		actions = append(actions,
			wizard.AddVictim{Victim: domain.Victim{
				ID:        f.newVictimID,
				FirstName: strings.TrimSpace(f.victimFirst),
				LastName:  strings.TrimSpace(f.victimLast),
			}},
			wizard.SetChargeVictim{SuspectID: f.suspectID, ChargeID: f.chargeID, VictimID: f.newVictimID},
		)
	default:
		actions = append(actions, wizard.SetChargeVictim{SuspectID: f.suspectID, ChargeID: f.chargeID, VictimID: f.victim})
	}
	return actions
}

// ── assignees and investigator ───────────────────────────────────────────────

type assigneeFields struct {
	radio      string
	prosecutor int
	caseworker int
}

func caseAssigneePage(s *wizard.State) *stepPage {
	f := s.FormData.Fields
	fields := &assigneeFields{
		radio:      f.Text(domain.FieldCaseProsecutorRadio),
		prosecutor: firstID(f.Selection(domain.FieldCaseProsecutorText), s.APIData.CaseProsecutors),
		caseworker: firstID(f.Selection(domain.FieldCaseCaseworkerText), s.APIData.CaseCaseworkers),
	}
	return &stepPage{
		title: "Case assignee",
		form: newForm(
			huh.NewGroup(yesNoSelect("Do you want to assign a prosecutor?", &fields.radio)),
			huh.NewGroup(
				referenceSelect("Prosecutor", s.APIData.CaseProsecutors, &fields.prosecutor),
				referenceSelect("Caseworker", s.APIData.CaseCaseworkers, &fields.caseworker),
			).WithHideFunc(func() bool { return fields.radio != domain.RadioYes }),
		),
		apply: func(s *wizard.State) []wizard.Action { return applyAssignee(s, fields) },
		next:  caseNext(journey.StepCaseAssignee),
		back:  caseBack(journey.StepCaseAssignee),
	}
}

func applyAssignee(s *wizard.State, f *assigneeFields) []wizard.Action {
	actions := []wizard.Action{wizard.SetFields{Patch: domain.Fields{
		domain.FieldCaseProsecutorRadio: domain.Text(f.radio),
		domain.FieldCaseProsecutorText:  selectionFor(s.APIData.CaseProsecutors, f.prosecutor),
		domain.FieldCaseCaseworkerText:  selectionFor(s.APIData.CaseCaseworkers, f.caseworker),
	}}}
	return withReset(actions, domain.FieldCaseProsecutorRadio, f.radio)
}

type investigatorFields struct {
	radio          string
	title          int
	firstName      string
	lastName       string
	shoulderName   string
	shoulderNumber string
	policeUnit     string
}

func investigatorPage(s *wizard.State) *stepPage {
	f := s.FormData.Fields
	fields := &investigatorFields{
		radio:          f.Text(domain.FieldCaseInvestigatorRadio),
		title:          firstID(f.Selection(domain.FieldCaseInvestigatorTitle), s.APIData.CaseInvestigatorTitles),
		firstName:      f.Text(domain.FieldCaseInvestigatorFirstName),
		lastName:       f.Text(domain.FieldCaseInvestigatorLastName),
		shoulderName:   f.Text(domain.FieldCaseInvestigatorShoulderName),
		shoulderNumber: f.Text(domain.FieldCaseInvestigatorShoulderNumber),
		policeUnit:     f.Text(domain.FieldCaseInvestigatorPoliceUnit),
	}
	return &stepPage{
		title: "Investigator",
		form: newForm(
			huh.NewGroup(yesNoSelect("Do you want to add the investigating officer?", &fields.radio)),
			huh.NewGroup(
				referenceSelect("Title", s.APIData.CaseInvestigatorTitles, &fields.title),
				textInput("First name", "", "first name", &fields.firstName),
				textInput("Last name", "", "last name", &fields.lastName),
				textInput("Shoulder name", "PC", "", &fields.shoulderName),
				numericInput("Shoulder number", "1234", "shoulder number", false, &fields.shoulderNumber),
				textInput("Police unit", "", "", &fields.policeUnit),
			).WithHideFunc(func() bool { return fields.radio != domain.RadioYes }),
		),
		apply: func(s *wizard.State) []wizard.Action { return applyInvestigator(s, fields) },
		next:  caseNext(journey.StepInvestigator),
		back:  caseBack(journey.StepInvestigator),
	}
}

func applyInvestigator(s *wizard.State, f *investigatorFields) []wizard.Action {
	actions := []wizard.Action{wizard.SetFields{Patch: domain.Fields{
		domain.FieldCaseInvestigatorRadio:          domain.Text(f.radio),
		domain.FieldCaseInvestigatorTitle:          selectionFor(s.APIData.CaseInvestigatorTitles, f.title),
		domain.FieldCaseInvestigatorFirstName:      domain.Text(strings.TrimSpace(f.firstName)),
		domain.FieldCaseInvestigatorLastName:       domain.Text(strings.TrimSpace(f.lastName)),
		domain.FieldCaseInvestigatorShoulderName:   domain.Text(strings.TrimSpace(f.shoulderName)),
		domain.FieldCaseInvestigatorShoulderNumber: domain.Text(strings.TrimSpace(f.shoulderNumber)),
		domain.FieldCaseInvestigatorPoliceUnit:     domain.Text(strings.TrimSpace(f.policeUnit)),
	}}}
	return withReset(actions, domain.FieldCaseInvestigatorRadio, f.radio)
}

// ── monitoring codes ─────────────────────────────────────────────────────────

func monitoringCodesPage(s *wizard.State) *stepPage {
	codes := slices.Clone(s.FormData.Fields.Values(domain.FieldCaseMonitoringCodes))

	var field huh.Field = huh.NewNote().Title("Monitoring codes").Description("No monitoring codes available.")
	if len(s.APIData.CaseMonitoringCodes) > 0 {
		opts := make([]huh.Option[string], 0, len(s.APIData.CaseMonitoringCodes))
		for _, mc := range s.APIData.CaseMonitoringCodes {
			opts = append(opts, huh.NewOption(mc.Code+"  "+mc.Description, mc.Code))
		}
		field = huh.NewMultiSelect[string]().
			Title("Which monitoring codes apply?").
			Options(opts...).
			Value(&codes)
	}

	return &stepPage{
		title: "Monitoring codes",
		form:  newForm(huh.NewGroup(field)),
		apply: func(*wizard.State) []wizard.Action {
			return []wizard.Action{wizard.SetField{Field: domain.FieldCaseMonitoringCodes, Value: domain.Values(nonNilStrings(codes))}}
		},
		next: caseNext(journey.StepMonitoringCodes),
		back: caseBack(journey.StepMonitoringCodes),
	}
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
