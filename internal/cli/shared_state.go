package cli

import (
	"github.com/alexanderramin/casereg/internal/journey"
	"github.com/alexanderramin/casereg/internal/wizard"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App   *App
	Store *wizard.Store

	// Route is the wizard page currently shown.
	Route journey.Route

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	return &SharedState{
		App:   app,
		Store: app.newStore(),
		Route: journey.StartRoute(),
	}
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	return max(s.Height-5, 1)
}
