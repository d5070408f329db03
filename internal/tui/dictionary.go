package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-lingo/internal/service"
	"github.com/MKhiriev/go-lingo/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var sectionTitles = map[models.WordSection]string{
	models.WordSectionDefinition: "Definition",
	models.WordSectionSynonyms:   "Synonyms",
	models.WordSectionHistory:    "History",
}

type dictionaryModel struct {
	input   textinput.Model
	lookup  models.WordLookup
	section int
	loading bool
}

func newDictionaryModel() *dictionaryModel {
	in := textinput.New()
	in.Placeholder = "Type a single word"
	in.Width = 40
	return &dictionaryModel{input: in}
}

func (m *dictionaryModel) update(ctx context.Context, learning service.ClientLearningService, msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m.submit(ctx, learning)
		case "up":
			m.section = (m.section - 1 + len(models.WordSections)) % len(models.WordSections)
			return nil
		case "down":
			m.section = (m.section + 1) % len(models.WordSections)
			return nil
		case "esc":
			m.input.SetValue("")
			m.lookup = models.WordLookup{}
			m.section = 0
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *dictionaryModel) submit(ctx context.Context, learning service.ClientLearningService) tea.Cmd {
	if m.loading {
		return nil
	}
	m.loading = true

	word := strings.TrimSpace(m.input.Value())
	return func() tea.Msg {
		lookup, err := learning.LookupWord(ctx, word)
		return wordDoneMsg{lookup: lookup, err: err}
	}
}

func (m *dictionaryModel) done(msg wordDoneMsg) {
	m.loading = false
	if msg.err == nil {
		m.lookup = msg.lookup
		m.section = 0
	}
}

func (m *dictionaryModel) currentSection() models.WordSection {
	return models.WordSections[m.section]
}

func (m *dictionaryModel) view(spin string, width int) string {
	var b strings.Builder

	b.WriteString("Word │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")

	if m.loading {
		b.WriteString(spin)
		b.WriteString(" Looking up...")
		return b.String()
	}
	if m.lookup.IsEmpty() {
		b.WriteString(helpStyle.Render("Definition, synonyms and history will appear here."))
		return b.String()
	}

	titles := make([]string, 0, len(models.WordSections))
	for i, s := range models.WordSections {
		if i == m.section {
			titles = append(titles, activeTabStyle.Render(sectionTitles[s]))
		} else {
			titles = append(titles, tabStyle.Render(sectionTitles[s]))
		}
	}
	b.WriteString(strings.Join(titles, "  "))
	b.WriteString("\n\n")
	b.WriteString(wrap(valueOrDash(m.lookup.Section(m.currentSection())), width))

	return b.String()
}

func (m *dictionaryModel) copyText() string {
	return m.lookup.Section(m.currentSection())
}
