// Package tui provides the Bubble Tea front ends of trackgen: the
// interactive level preview, the history table and the SSH server that
// serves the preview to remote terminals.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status message stays on screen.
const statusTimeout = 3 * time.Second

// clearStatusMsg removes the status line set at the given generation.
type clearStatusMsg struct {
	id int
}

// clearStatusCmd returns a command that expires status message id.
func clearStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
