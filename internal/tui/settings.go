package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-lingo/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type settingsAction int

const (
	actionChangeEmail settingsAction = iota
	actionRefreshStatus
	actionSubscribe
	actionStartTrial
	actionCancelSubscription
	actionLanguage
	actionLogout
	actionDeleteAccount
)

var settingsActions = []struct {
	action settingsAction
	label  string
}{
	{actionChangeEmail, "Change email"},
	{actionRefreshStatus, "Refresh subscription status"},
	{actionSubscribe, "Subscribe"},
	{actionStartTrial, "Start free trial"},
	{actionCancelSubscription, "Cancel subscription"},
	{actionLanguage, "Native language"},
	{actionLogout, "Log out"},
	{actionDeleteAccount, "Delete account"},
}

type settingsModel struct {
	idx         int
	editing     bool
	emailInput  textinput.Model
	checkoutURL string
	loading     bool
}

func newSettingsModel() *settingsModel {
	in := textinput.New()
	in.Placeholder = "new email"
	in.CharLimit = 254
	in.Width = 40
	return &settingsModel{emailInput: in}
}

func (m *settingsModel) selected() settingsAction {
	return settingsActions[m.idx].action
}

func (m *settingsModel) move(step int) {
	m.idx = (m.idx + step + len(settingsActions)) % len(settingsActions)
}

func (m *settingsModel) startEditing(current string) {
	m.editing = true
	m.emailInput.SetValue(current)
	m.emailInput.CursorEnd()
	m.emailInput.Focus()
}

func (m *settingsModel) stopEditing() {
	m.editing = false
	m.emailInput.Blur()
}

func (m *settingsModel) view(user models.UserProfile, language, spin string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Email            │ %s\n", valueOrDash(user.Email)))
	b.WriteString(fmt.Sprintf("Subscription     │ %s\n", valueOrDash(user.Status)))
	if user.Status == models.SubscriptionStatusTrialing {
		b.WriteString(fmt.Sprintf("Trial ends       │ %s\n", formatDate(user.TrialEnd)))
	}
	if !user.NextBillingDate.IsZero() {
		b.WriteString(fmt.Sprintf("Next billing     │ %s\n", formatDate(user.NextBillingDate)))
	}
	b.WriteString(fmt.Sprintf("Native language  │ %s\n", language))

	if m.checkoutURL != "" {
		b.WriteString("\nCheckout link: ")
		b.WriteString(m.checkoutURL)
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if m.editing {
		b.WriteString("New email │ [")
		b.WriteString(m.emailInput.View())
		b.WriteString("]\n")
		b.WriteString(helpStyle.Render("enter: save │ esc: cancel"))
		return b.String()
	}

	for i, a := range settingsActions {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(a.label)
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString("\n")
		b.WriteString(spin)
		b.WriteString(" Please wait...")
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("Jan 2, 2006")
}
