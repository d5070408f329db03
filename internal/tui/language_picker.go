package tui

import (
	"strings"

	"github.com/MKhiriev/go-lingo/internal/service"
	"github.com/MKhiriev/go-lingo/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const pickerVisibleRows = 10

// languagePickerModel lists the supported native languages and narrows them
// down as the user types.
type languagePickerModel struct {
	languages service.ClientLanguageService
	filter    textinput.Model
	items     []models.Language
	idx       int
}

func newLanguagePickerModel(languages service.ClientLanguageService) *languagePickerModel {
	in := textinput.New()
	in.Placeholder = "search"
	in.Width = 30
	in.Focus()

	m := &languagePickerModel{
		languages: languages,
		filter:    in,
		items:     languages.Languages(),
	}

	current := languages.Current()
	for i, l := range m.items {
		if l.Value == current {
			m.idx = i
			break
		}
	}

	return m
}

// update returns the chosen language once the user presses enter.
func (m *languagePickerModel) update(msg tea.Msg) (chosen string, cmd tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "up":
			if m.idx > 0 {
				m.idx--
			}
			return "", nil
		case "down":
			if m.idx < len(m.items)-1 {
				m.idx++
			}
			return "", nil
		case "enter":
			if len(m.items) == 0 {
				return "", nil
			}
			return m.items[m.idx].Value, nil
		}
	}

	before := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.items = m.languages.Filter(m.filter.Value())
		m.idx = 0
	}
	return "", cmd
}

func (m *languagePickerModel) View() string {
	var b strings.Builder

	b.WriteString("Select your native language\n\n")
	b.WriteString("Search │ [")
	b.WriteString(m.filter.View())
	b.WriteString("]\n\n")

	if len(m.items) == 0 {
		b.WriteString(helpStyle.Render("No languages found"))
		b.WriteString("\n")
	}

	start := 0
	if m.idx >= pickerVisibleRows {
		start = m.idx - pickerVisibleRows + 1
	}
	end := min(start+pickerVisibleRows, len(m.items))

	current := m.languages.Current()
	for i := start; i < end; i++ {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(fitText(m.items[i].Label, 28))
		if m.items[i].Value == current {
			b.WriteString(" ✓")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: move │ enter: select │ esc: close"))

	return overlayBoxStyle.Render(b.String())
}
