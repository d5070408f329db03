package tui

import tea "github.com/charmbracelet/bubbletea"

// confirmModel asks a yes/no question and runs onYes when the user agrees.
type confirmModel struct {
	message string
	onYes   func() tea.Cmd
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
