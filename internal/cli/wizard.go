package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/casereg/internal/cli/formatter"
	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// caseregHuhTheme returns a custom huh theme using the Gruvbox palette.
func caseregHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed).SetString(" *")

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// newForm applies the shared theme and settings to a page form.
func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).
		WithTheme(caseregHuhTheme()).
		WithShowHelp(false).
		WithShowErrors(true)
}

// yesNoSelect asks a gating question. The bound value is "yes" or "no".
func yesNoSelect(title string, value *string) *huh.Select[string] {
	if *value == "" {
		*value = domain.RadioNo
	}
	return huh.NewSelect[string]().
		Title(title).
		Options(
			huh.NewOption("Yes", domain.RadioYes),
			huh.NewOption("No", domain.RadioNo),
		).
		Value(value)
}

// referenceSelect offers a loaded reference list. An empty list becomes a
// note so the page can still be completed.
func referenceSelect(title string, items []domain.ReferenceItem, value *int) huh.Field {
	if len(items) == 0 {
		return huh.NewNote().
			Title(title).
			Description(fmt.Sprintf("No %s available.", strings.ToLower(title)))
	}
	return huh.NewSelect[int]().
		Title(title).
		Options(referenceOptions(items)...).
		Value(value)
}

func referenceOptions(items []domain.ReferenceItem) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(items))
	for _, it := range items {
		opts = append(opts, huh.NewOption(it.Description, it.ID))
	}
	return opts
}

func stringOptions(values []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

// textInput creates a huh.Input, required when label is non-empty.
func textInput(title, placeholder, requiredLabel string, value *string) *huh.Input {
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value)
	if requiredLabel != "" {
		input = input.Validate(validateRequired(requiredLabel))
	}
	return input
}

// numericInput creates a huh.Input that only accepts digits.
func numericInput(title, placeholder, label string, required bool, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateNumeric(label, required))
}

// dateInput returns a huh.Input for a YYYY-MM-DD date.
func dateInput(title string, required bool, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30").
		Value(value).
		Validate(validateDate(required))
}

func validateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func validateNumeric(label string, required bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			if required {
				return fmt.Errorf("%s is required", label)
			}
			return nil
		}
		if _, err := strconv.ParseUint(s, 10, 64); err != nil {
			return fmt.Errorf("%s must be a number", label)
		}
		return nil
	}
}

func validateDate(required bool) func(string) error {
	return func(s string) error {
		if s == "" {
			if required {
				return fmt.Errorf("date is required")
			}
			return nil
		}
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return fmt.Errorf("use YYYY-MM-DD format")
		}
		return nil
	}
}

// selectionFor builds the stored value for an id picked from items. An id
// that is not in items clears the selection.
func selectionFor(items []domain.ReferenceItem, id int) domain.Selection {
	for _, it := range items {
		if it.ID == id {
			return domain.NewSelection(it.ID, it.Description)
		}
	}
	return domain.EmptySelection()
}

// firstID defaults a select to its first option when nothing is stored yet.
func firstID(current domain.Selection, items []domain.ReferenceItem) int {
	if !current.IsEmpty() {
		return *current.ID
	}
	if len(items) > 0 {
		return items[0].ID
	}
	return 0
}
