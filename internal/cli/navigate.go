package cli

import (
	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/journey"
	"github.com/alexanderramin/casereg/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// navigateMsg moves the wizard to another page. The appModel replaces the
// page view at the bottom of the stack.
type navigateMsg struct {
	route journey.Route
	from  journey.Step
}

// pushViewMsg pushes an overlay view, e.g. a confirmation dialog.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current overlay, returning to the page beneath.
type popViewMsg struct{}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the current view.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when an overlay form completes or is cancelled.
// The appModel handles it atomically: pop the overlay, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// referenceLoadedMsg reports one reference list load.
type referenceLoadedMsg struct {
	kind   domain.ReferenceKind
	result *service.ReferenceResult
	err    error
}

// submitDoneMsg reports the outcome of posting the case.
type submitDoneMsg struct {
	submission *domain.Submission
	err        error
}

type quitMsg struct{}

func navigate(r journey.Route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{route: r} }
}

// navigateFrom is navigate for moves out of a wizard page, so the appModel
// can send edits made from the case summary back to it.
func navigateFrom(from journey.Step, r journey.Route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{route: r, from: from} }
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func output(s string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// wizardCompleteOutput closes the overlay and shows s.
func wizardCompleteOutput(s string) tea.Msg {
	return wizardCompleteMsg{nextCmd: output(s)}
}
