package tui

import (
	"github.com/MKhiriev/go-lingo/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult is produced when a login or registration request finishes.
type AuthResult struct {
	Err   error
	Email string
}

type sentenceDoneMsg struct {
	kind   sentenceKind
	result string
	err    error
}

type wordDoneMsg struct {
	lookup models.WordLookup
	err    error
}

type languageSetMsg struct {
	language string
	err      error
}

type emailUpdatedMsg struct {
	err error
}

type statusCheckedMsg struct {
	err error
}

type checkoutDoneMsg struct {
	url string
	err error
}

type trialStartedMsg struct {
	err error
}

type subscriptionCanceledMsg struct {
	err error
}

type sessionEndedMsg struct {
	err error
}

type copiedMsg struct {
	note string
	err  error
}
