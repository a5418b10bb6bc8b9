package domain

import "maps"

// Field names a form field. The string value is the key used in gateway
// payloads and dispatch logs.
type Field string

// Value is the value held by a form field. It is implemented by Text,
// Selection and Values only.
type Value interface {
	isValue()
}

// Text is a free-text or radio answer.
type Text string

// Selection is a select-box answer referencing a reference-data entry.
// A nil ID means nothing has been chosen.
type Selection struct {
	ID          *int   `json:"id"`
	Description string `json:"description"`
}

// Values is an ordered checkbox answer.
type Values []string

func (Text) isValue()      {}
func (Selection) isValue() {}
func (Values) isValue()    {}

// NewSelection returns a Selection pointing at the given reference entry.
func NewSelection(id int, description string) Selection {
	return Selection{ID: &id, Description: description}
}

// EmptySelection is the cleared select value: null id, empty description.
func EmptySelection() Selection {
	return Selection{}
}

// IsEmpty reports whether no entry is selected.
func (s Selection) IsEmpty() bool {
	return s.ID == nil
}

// IDOr returns the selected id, or fallback when nothing is selected.
func (s Selection) IDOr(fallback int) int {
	if s.ID == nil {
		return fallback
	}
	return *s.ID
}

// Fields is a bag of field values. Fields values are treated as immutable:
// writers go through With, which returns a new map.
type Fields map[Field]Value

// Text returns the text value of f, or "" when f is unset or not text.
func (fs Fields) Text(f Field) string {
	if v, ok := fs[f].(Text); ok {
		return string(v)
	}
	return ""
}

// Selection returns the selection value of f, or an empty selection.
func (fs Fields) Selection(f Field) Selection {
	if v, ok := fs[f].(Selection); ok {
		return v
	}
	return EmptySelection()
}

// Values returns the checkbox values of f, or nil.
func (fs Fields) Values(f Field) []string {
	if v, ok := fs[f].(Values); ok {
		return v
	}
	return nil
}

// With returns a copy of fs with patch merged over it. An empty patch
// returns fs itself.
func (fs Fields) With(patch Fields) Fields {
	if len(patch) == 0 {
		return fs
	}
	out := make(Fields, len(fs)+len(patch))
	maps.Copy(out, fs)
	maps.Copy(out, patch)
	return out
}

// FirstNonEmpty returns the first non-empty string, e.g. a selection's
// description or its placeholder.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
