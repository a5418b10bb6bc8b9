package cli

import (
	"strings"

	"github.com/alexanderramin/casereg/internal/cli/formatter"
	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/journey"
	"github.com/alexanderramin/casereg/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmationView posts the case when shown and reports the outcome.
type confirmationView struct {
	state      *SharedState
	spinner    spinner.Model
	submitting bool
	submission *domain.Submission
	err        error
}

func newConfirmationView(state *SharedState) *confirmationView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleHeader
	return &confirmationView{state: state, spinner: sp}
}

func (v *confirmationView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.submit())
}

func (v *confirmationView) submit() tea.Cmd {
	v.submitting = true
	v.submission = nil
	v.err = nil
	app := v.state.App
	snapshot := v.state.Store.State()
	return func() tea.Msg {
		ctx, cancel := app.requestContext()
		defer cancel()
		sub, err := app.Submissions.Submit(ctx, snapshot)
		return submitDoneMsg{submission: sub, err: err}
	}
}

func (v *confirmationView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		v.submitting = false
		v.submission = msg.submission
		v.err = msg.err
		return v, nil

	case spinner.TickMsg:
		if !v.submitting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.submitting {
			return v, nil
		}
		from := journey.StepConfirmation
		if v.err == nil {
			switch msg.String() {
			case "n":
				v.state.Store.Dispatch(wizard.ResetFormData{})
				return v, navigateFrom(from, journey.StartRoute())
			case "q":
				return v, tea.Quit
			}
			return v, nil
		}
		switch msg.String() {
		case "r":
			return v, tea.Batch(v.spinner.Tick, v.submit())
		case "esc":
			return v, navigateFrom(from, journey.PreviousCaseRoute(journey.StepConfirmation))
		}
	}
	return v, nil
}

func (v *confirmationView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	switch {
	case v.submitting:
		b.WriteString("  " + v.spinner.View() + " Submitting case...\n")
	case v.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("✖ Submission failed") + "\n\n")
		b.WriteString("  " + formatter.Dim(v.err.Error()) + "\n\n")
		b.WriteString("  " + formatter.Dim("Press r to retry or esc to review the case.") + "\n")
	case v.submission != nil:
		b.WriteString(formatter.FormatConfirmation(v.submission))
		b.WriteString("\n  " + formatter.Dim("Press n to register another case or q to quit.") + "\n")
	}
	return b.String()
}

func (v *confirmationView) ID() ViewID    { return ViewConfirmation }
func (v *confirmationView) Title() string { return "Confirmation" }
func (v *confirmationView) ShortHelp() []key.Binding {
	if v.err != nil {
		return []key.Binding{binding("r", "retry"), binding("esc", "back")}
	}
	return []key.Binding{binding("n", "new case"), binding("q", "quit")}
}
