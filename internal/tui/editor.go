package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/editor"
)

// EditorFinishedMsg is sent when the external editor process exits.
type EditorFinishedMsg struct {
	Err error
}

// openInEditor suspends the TUI and launches the user's editor on the
// given file. The document is reloaded when the editor returns.
func openInEditor(path string) tea.Cmd {
	cmd, err := editor.Command("quire", path)
	if err != nil {
		return func() tea.Msg {
			return ShowToastMsg{Text: "No editor available (set $EDITOR)"}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return EditorFinishedMsg{Err: err}
	})
}
