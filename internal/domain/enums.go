package domain

import "strings"

// Radio answers shared by every yes/no question.
const (
	RadioYes = "yes"
	RadioNo  = "no"
)

type SuspectType string

const (
	SuspectPerson  SuspectType = "person"
	SuspectCompany SuspectType = "company"
)

// Category is an optional detail group a user may choose to provide for a
// suspect. CategoryAddSuspect is the sentinel for the add-suspect page and is
// never a selectable detail.
type Category string

const (
	CategoryAddSuspect   Category = "Add suspect"
	CategoryDateOfBirth  Category = "Date of Birth"
	CategoryGender       Category = "Gender"
	CategoryDisability   Category = "Disability"
	CategoryReligion     Category = "Religion"
	CategoryEthnicity    Category = "Ethnicity"
	CategoryAliases      Category = "Alias details"
	CategorySDO          Category = "Serious dangerous offender (SDO)"
	CategoryASN          Category = "Arrest summons number (ASN)"
	CategoryOffenderType Category = "Type of offender"
)

// DetailCategories lists the selectable categories in checkbox order.
var DetailCategories = []Category{
	CategoryDateOfBirth,
	CategoryGender,
	CategoryDisability,
	CategoryReligion,
	CategoryEthnicity,
	CategoryAliases,
	CategorySDO,
	CategoryASN,
	CategoryOffenderType,
}

// companyCategories are the only details that make sense for a company suspect.
var companyCategories = map[Category]bool{
	CategoryASN: true,
}

// ParseCategory matches a checkbox label against the known categories,
// ignoring case and surrounding whitespace.
func ParseCategory(label string) (Category, bool) {
	label = strings.TrimSpace(label)
	if strings.EqualFold(label, string(CategoryAddSuspect)) {
		return CategoryAddSuspect, true
	}
	for _, c := range DetailCategories {
		if strings.EqualFold(label, string(c)) {
			return c, true
		}
	}
	return "", false
}

// ParseCategories converts checkbox labels to categories, keeping input
// order and dropping labels that match nothing.
func ParseCategories(labels []string) []Category {
	out := make([]Category, 0, len(labels))
	for _, l := range labels {
		if c, ok := ParseCategory(l); ok {
			out = append(out, c)
		}
	}
	return out
}

// CategoryLabels is the inverse of ParseCategories.
func CategoryLabels(cats []Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

// AppliesTo reports whether the category can be answered for a suspect of type t.
func (c Category) AppliesTo(t SuspectType) bool {
	if c == CategoryAddSuspect {
		return false
	}
	if t == SuspectCompany {
		return companyCategories[c]
	}
	return true
}

// Fields returns the suspect fields that hold the answers for c.
// Alias details are held in Suspect.Aliases rather than fields.
func (c Category) Fields() []Field {
	switch c {
	case CategoryDateOfBirth:
		return []Field{FieldSuspectDOBDay, FieldSuspectDOBMonth, FieldSuspectDOBYear}
	case CategoryGender:
		return []Field{FieldSuspectGender}
	case CategoryDisability:
		return []Field{FieldSuspectDisability}
	case CategoryReligion:
		return []Field{FieldSuspectReligion}
	case CategoryEthnicity:
		return []Field{FieldSuspectEthnicity}
	case CategorySDO:
		return []Field{FieldSuspectSDO}
	case CategoryASN:
		return []Field{FieldSuspectASN}
	case CategoryOffenderType:
		return []Field{FieldSuspectOffenderType}
	}
	return nil
}

// Fixed answer sets for suspect detail questions.
var (
	GenderOptions       = []string{"Male", "Female", "Unknown"}
	ReligionOptions     = []string{"Buddhist", "Christian", "Hindu", "Jewish", "Muslim", "Sikh", "Other", "None", "Not provided"}
	EthnicityOptions    = []string{"Asian", "Black", "Mixed", "White", "Other", "Not provided"}
	OffenderTypeOptions = []string{"Adult", "Youth", "Persistent young offender", "Prolific priority offender"}
)

type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionFailed    SubmissionStatus = "failed"
)
