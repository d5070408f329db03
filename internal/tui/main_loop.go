package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-lingo/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type tab int

const (
	tabAnalyse tab = iota
	tabCorrection
	tabDictionary
	tabSettings
)

var tabTitles = []string{"Analyse", "Correction", "Dictionary", "Settings"}

const defaultWidth = 76

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	active     tab
	analyse    *sentenceModel
	correction *sentenceModel
	dictionary *dictionaryModel
	settings   *settingsModel
	picker     *languagePickerModel

	spinner   spinner.Model
	width     int
	status    string
	showError bool
	overlay   errorOverlayModel
	confirm   *confirmModel

	logout     bool
	quitByUser bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := mainLoopModel{
		ctx:        ctx,
		services:   services,
		analyse:    newSentenceModel(sentenceExplain),
		correction: newSentenceModel(sentenceCorrect),
		dictionary: newDictionaryModel(),
		settings:   newSettingsModel(),
		spinner:    s,
		width:      defaultWidth,
	}
	m.focusActive()
	return m
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.width = msg.Width - 8
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case sentenceDoneMsg:
		target := m.analyse
		if msg.kind == sentenceCorrect {
			target = m.correction
		}
		target.done(msg)
		if msg.err != nil {
			m.showErrorf(msg.err)
		}
		return m, nil
	case wordDoneMsg:
		m.dictionary.done(msg)
		if msg.err != nil {
			m.showErrorf(msg.err)
		}
		return m, nil
	case languageSetMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.picker = nil
		m.focusActive()
		m.status = "Native language set to " + msg.language
		return m, nil
	case emailUpdatedMsg:
		m.settings.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.settings.stopEditing()
		m.status = "Email updated"
		return m, nil
	case statusCheckedMsg:
		return m.settingsDone(msg.err, "Subscription status updated")
	case checkoutDoneMsg:
		m.settings.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.settings.checkoutURL = msg.url
		m.status = "Open the checkout link in your browser to subscribe"
		return m, cmdCopy(msg.url, "Checkout link copied to clipboard, open it in your browser to subscribe")
	case trialStartedMsg:
		return m.settingsDone(msg.err, "Your free trial has started")
	case subscriptionCanceledMsg:
		return m.settingsDone(msg.err, "Subscription canceled")
	case sessionEndedMsg:
		m.settings.loading = false
		if msg.err != nil && m.services.SessionService.State().LoggedIn() {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.status = msg.note
		return m, nil
	}

	if m.picker != nil {
		_, cmd := m.picker.update(msg)
		return m, cmd
	}
	return m.forwardToActive(msg)
}

func (m mainLoopModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.overlay.message = ""
		}
		return m, nil
	}

	if m.confirm != nil {
		if key.Matches(msg, keys.yes) {
			onYes := m.confirm.onYes
			m.confirm = nil
			return m, onYes()
		}
		if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
			m.confirm = nil
		}
		return m, nil
	}

	if m.picker != nil {
		if key.Matches(msg, keys.esc) {
			m.picker = nil
			m.focusActive()
			return m, nil
		}
		chosen, cmd := m.picker.update(msg)
		if chosen != "" {
			return m, m.cmdSetLanguage(chosen)
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.tab):
		m.switchTab(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.switchTab(-1)
		return m, nil
	case key.Matches(msg, keys.language):
		m.openPicker()
		return m, nil
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(m.copyText(), "Copied to clipboard")
	}

	m.status = ""
	if m.active == tabSettings {
		return m.updateSettings(msg)
	}
	return m.forwardToActive(msg)
}

func (m mainLoopModel) forwardToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	learning := m.services.LearningService

	switch m.active {
	case tabAnalyse:
		return m, m.analyse.update(m.ctx, learning, msg)
	case tabCorrection:
		return m, m.correction.update(m.ctx, learning, msg)
	case tabDictionary:
		return m, m.dictionary.update(m.ctx, learning, msg)
	case tabSettings:
		if m.settings.editing {
			var cmd tea.Cmd
			m.settings.emailInput, cmd = m.settings.emailInput.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m mainLoopModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.settings

	if s.editing {
		switch {
		case key.Matches(msg, keys.esc):
			s.stopEditing()
			return m, nil
		case key.Matches(msg, keys.enter):
			if s.loading {
				return m, nil
			}
			s.loading = true
			return m, m.cmdUpdateEmail(strings.TrimSpace(s.emailInput.Value()))
		}
		return m.forwardToActive(msg)
	}

	switch {
	case key.Matches(msg, keys.up):
		s.move(-1)
	case key.Matches(msg, keys.down):
		s.move(1)
	case key.Matches(msg, keys.enter):
		if s.loading {
			return m, nil
		}
		return m.runSettingsAction(s.selected())
	}
	return m, nil
}

func (m mainLoopModel) runSettingsAction(action settingsAction) (tea.Model, tea.Cmd) {
	session := m.services.SessionService
	subscription := m.services.SubscriptionService
	ctx := m.ctx

	switch action {
	case actionChangeEmail:
		user, _ := session.User()
		m.settings.startEditing(user.Email)
		return m, textinput.Blink
	case actionRefreshStatus:
		m.settings.loading = true
		return m, func() tea.Msg {
			_, err := session.CheckSubscriptionStatus(ctx)
			return statusCheckedMsg{err: err}
		}
	case actionSubscribe:
		m.settings.loading = true
		return m, func() tea.Msg {
			url, err := subscription.Checkout(ctx)
			return checkoutDoneMsg{url: url, err: err}
		}
	case actionStartTrial:
		m.settings.loading = true
		return m, func() tea.Msg {
			return trialStartedMsg{err: subscription.StartTrial(ctx)}
		}
	case actionCancelSubscription:
		m.confirm = &confirmModel{
			message: "Cancel your subscription?",
			onYes: func() tea.Cmd {
				m.settings.loading = true
				return func() tea.Msg {
					return subscriptionCanceledMsg{err: subscription.Cancel(ctx)}
				}
			},
		}
	case actionLanguage:
		m.openPicker()
	case actionLogout:
		m.settings.loading = true
		return m, func() tea.Msg {
			return sessionEndedMsg{err: session.Logout(ctx)}
		}
	case actionDeleteAccount:
		m.confirm = &confirmModel{
			message: "Delete your account? This cannot be undone.",
			onYes: func() tea.Cmd {
				m.settings.loading = true
				return func() tea.Msg {
					return sessionEndedMsg{err: session.DeleteAccount(ctx)}
				}
			},
		}
	}
	return m, nil
}

func (m mainLoopModel) settingsDone(err error, okText string) (tea.Model, tea.Cmd) {
	m.settings.loading = false
	if err != nil {
		m.showErrorf(err)
		return m, nil
	}
	m.status = okText
	return m, nil
}

func (m mainLoopModel) cmdUpdateEmail(email string) tea.Cmd {
	ctx := m.ctx
	session := m.services.SessionService
	return func() tea.Msg {
		return emailUpdatedMsg{err: session.UpdateEmail(ctx, email)}
	}
}

func (m mainLoopModel) cmdSetLanguage(language string) tea.Cmd {
	ctx := m.ctx
	languages := m.services.LanguageService
	return func() tea.Msg {
		return languageSetMsg{language: language, err: languages.Set(ctx, language)}
	}
}

func (m *mainLoopModel) openPicker() {
	m.blurAll()
	m.picker = newLanguagePickerModel(m.services.LanguageService)
}

func (m *mainLoopModel) switchTab(step int) {
	m.active = tab((int(m.active) + step + len(tabTitles)) % len(tabTitles))
	m.status = ""
	m.focusActive()
}

func (m *mainLoopModel) blurAll() {
	m.analyse.input.Blur()
	m.correction.input.Blur()
	m.dictionary.input.Blur()
	m.settings.emailInput.Blur()
}

func (m *mainLoopModel) focusActive() {
	m.blurAll()
	switch m.active {
	case tabAnalyse:
		m.analyse.input.Focus()
	case tabCorrection:
		m.correction.input.Focus()
	case tabDictionary:
		m.dictionary.input.Focus()
	case tabSettings:
		if m.settings.editing {
			m.settings.emailInput.Focus()
		}
	}
}

func (m *mainLoopModel) showErrorf(err error) {
	m.showError = true
	m.overlay.message = humanizeServerUnavailableError(err)
}

func (m mainLoopModel) copyText() string {
	switch m.active {
	case tabAnalyse:
		return m.analyse.copyText()
	case tabCorrection:
		return m.correction.copyText()
	case tabDictionary:
		return m.dictionary.copyText()
	default:
		return m.settings.checkoutURL
	}
}

func (m mainLoopModel) View() string {
	if m.showError {
		return m.overlay.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}
	if m.picker != nil {
		return m.picker.View()
	}

	var b strings.Builder

	titles := make([]string, 0, len(tabTitles))
	for i, t := range tabTitles {
		if tab(i) == m.active {
			titles = append(titles, activeTabStyle.Render(t))
		} else {
			titles = append(titles, tabStyle.Render(t))
		}
	}
	b.WriteString(strings.Join(titles, " │ "))
	b.WriteString("\n\n")

	spin := m.spinner.View()
	switch m.active {
	case tabAnalyse:
		b.WriteString(m.analyse.view(spin, m.width))
	case tabCorrection:
		b.WriteString(m.correction.view(spin, m.width))
	case tabDictionary:
		b.WriteString(m.dictionary.view(spin, m.width))
	case tabSettings:
		user, _ := m.services.SessionService.User()
		b.WriteString(m.settings.view(user, m.services.LanguageService.Current(), spin))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(okStyle.Render(m.status))
	}

	return renderPage("GO-LINGO", b.String(), m.hotKeys())
}

func (m mainLoopModel) hotKeys() string {
	common := "tab: next tab │ ctrl+l: language"
	switch m.active {
	case tabDictionary:
		return common + " │ enter: look up │ ↑/↓: section │ ctrl+y: copy"
	case tabSettings:
		return common + " │ ↑/↓: move │ enter: select │ ctrl+y: copy link"
	default:
		return common + " │ enter: send │ esc: clear │ ctrl+y: copy"
	}
}
