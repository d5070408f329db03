package tui

import (
	"errors"

	"github.com/MKhiriev/go-lingo/internal/utils"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var errNothingToCopy = errors.New("nothing to copy yet")

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func cmdCopy(text, note string) tea.Cmd {
	return func() tea.Msg {
		cleaned := utils.CleanForClipboard(text)
		if cleaned == "" {
			return copiedMsg{err: errNothingToCopy}
		}
		return copiedMsg{note: note, err: writeClipboard(cleaned)}
	}
}
