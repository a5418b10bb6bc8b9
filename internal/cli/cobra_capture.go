package cli

import (
	"bytes"
	"io"

	"github.com/alexanderramin/casereg/internal/cli/formatter"
)

// captureCobraOutput runs a subcommand through a fresh cobra tree and returns
// what it printed. Commands write through cmd.OutOrStdout, so nothing reaches
// the alternate screen directly.
func captureCobraOutput(app *App, args []string) string {
	var buf bytes.Buffer

	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(commandError(err))
	}
	return buf.String()
}

// commandError renders an error for display in the TUI.
func commandError(err error) string {
	return formatter.StyleRed.Render("Error: ") + err.Error()
}
