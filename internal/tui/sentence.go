package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-lingo/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type sentenceKind int

const (
	sentenceExplain sentenceKind = iota
	sentenceCorrect
)

// sentenceModel backs both the Analyse and the Correction tabs; they differ
// only in the endpoint they call.
type sentenceModel struct {
	kind    sentenceKind
	input   textinput.Model
	result  string
	loading bool
}

func newSentenceModel(kind sentenceKind) *sentenceModel {
	in := textinput.New()
	in.Placeholder = "Type an English sentence"
	in.Width = 60
	if kind == sentenceCorrect {
		in.Placeholder = "Type a sentence to correct"
	}
	return &sentenceModel{kind: kind, input: in}
}

func (m *sentenceModel) update(ctx context.Context, learning service.ClientLearningService, msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m.submit(ctx, learning)
		case "esc":
			m.input.SetValue("")
			m.result = ""
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *sentenceModel) submit(ctx context.Context, learning service.ClientLearningService) tea.Cmd {
	if m.loading {
		return nil
	}
	m.loading = true

	kind := m.kind
	sentence := strings.TrimSpace(m.input.Value())

	return func() tea.Msg {
		var (
			result string
			err    error
		)
		if kind == sentenceExplain {
			result, err = learning.ExplainSentence(ctx, sentence)
		} else {
			result, err = learning.CorrectSentence(ctx, sentence)
		}
		return sentenceDoneMsg{kind: kind, result: result, err: err}
	}
}

func (m *sentenceModel) done(msg sentenceDoneMsg) {
	m.loading = false
	if msg.err == nil {
		m.result = msg.result
	}
}

func (m *sentenceModel) view(spin string, width int) string {
	var b strings.Builder

	if m.kind == sentenceExplain {
		b.WriteString("Get a word-by-word explanation of a sentence in your native language.\n\n")
	} else {
		b.WriteString("Check grammar and get a corrected version of your sentence.\n\n")
	}

	b.WriteString("Sentence │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")

	switch {
	case m.loading:
		b.WriteString(spin)
		b.WriteString(" Thinking...")
	case m.result != "":
		b.WriteString(wrap(m.result, width))
	default:
		b.WriteString(helpStyle.Render("The result will appear here."))
	}

	return b.String()
}

func (m *sentenceModel) copyText() string {
	return m.result
}
