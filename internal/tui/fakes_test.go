package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-lingo/internal/config"
	"github.com/MKhiriev/go-lingo/internal/logger"
	"github.com/MKhiriev/go-lingo/internal/mock"
	"github.com/MKhiriev/go-lingo/internal/service"
	"github.com/MKhiriev/go-lingo/models"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeSession struct {
	user *models.UserProfile

	authErr   error
	endErr    error
	emailErr  error
	statusErr error

	logins    []string
	registers []string
	emails    []string
	logouts   int
	deletes   int
}

func (f *fakeSession) Init(context.Context) {}
func (f *fakeSession) Dispose() {}

func (f *fakeSession) State() service.SessionState {
	return service.SessionState{User: f.user}
}

func (f *fakeSession) User() (models.UserProfile, bool) {
	if f.user == nil {
		return models.UserProfile{}, false
	}
	return *f.user, true
}

func (f *fakeSession) Register(_ context.Context, email, _ string) error {
	f.registers = append(f.registers, email)
	if f.authErr == nil {
		f.user = &models.UserProfile{Email: email}
	}
	return f.authErr
}

func (f *fakeSession) Login(_ context.Context, email, _ string) error {
	f.logins = append(f.logins, email)
	if f.authErr == nil {
		f.user = &models.UserProfile{Email: email}
	}
	return f.authErr
}

func (f *fakeSession) Logout(context.Context) error {
	f.logouts++
	f.user = nil
	return f.endErr
}

func (f *fakeSession) UpdateEmail(_ context.Context, email string) error {
	f.emails = append(f.emails, email)
	if f.emailErr == nil && f.user != nil {
		f.user.Email = email
	}
	return f.emailErr
}

func (f *fakeSession) DeleteAccount(context.Context) error {
	f.deletes++
	if f.endErr == nil {
		f.user = nil
	}
	return f.endErr
}

func (f *fakeSession) CheckSubscriptionStatus(context.Context) (models.StatusResponse, error) {
	return models.StatusResponse{}, f.statusErr
}

func (f *fakeSession) MergeUser(context.Context, models.UserProfile) error { return nil }

type fakeLearning struct {
	result string
	lookup models.WordLookup
	err    error

	sentences []string
	words     []string
}

func (f *fakeLearning) ExplainSentence(_ context.Context, sentence string) (string, error) {
	f.sentences = append(f.sentences, sentence)
	return f.result, f.err
}

func (f *fakeLearning) CorrectSentence(_ context.Context, sentence string) (string, error) {
	f.sentences = append(f.sentences, sentence)
	return f.result, f.err
}

func (f *fakeLearning) LookupWord(_ context.Context, word string) (models.WordLookup, error) {
	f.words = append(f.words, word)
	return f.lookup, f.err
}

type fakeSubscription struct {
	url      string
	err      error
	canceled int
}

func (f *fakeSubscription) Checkout(context.Context) (string, error) { return f.url, f.err }
func (f *fakeSubscription) StartTrial(context.Context) error { return f.err }

func (f *fakeSubscription) Cancel(context.Context) error {
	f.canceled++
	return f.err
}

type testServices struct {
	services     *service.ClientServices
	session      *fakeSession
	learning     *fakeLearning
	subscription *fakeSubscription
	prefs        *mock.MockPreferenceStore
}

func newTestServices(t *testing.T) testServices {
	t.Helper()

	ctrl := gomock.NewController(t)
	prefs := mock.NewMockPreferenceStore(ctrl)

	appInfo, err := service.NewAppInfoService(config.ClientApp{}, models.NewAppBuildInfo("1.2.3", "2026-10-19", "abc123"))
	require.NoError(t, err)

	ts := testServices{
		session:      &fakeSession{},
		learning:     &fakeLearning{},
		subscription: &fakeSubscription{},
		prefs:        prefs,
	}
	ts.services = &service.ClientServices{
		SessionService:      ts.session,
		LanguageService:     service.NewClientLanguageService(prefs, "", logger.Nop()),
		LearningService:     ts.learning,
		SubscriptionService: ts.subscription,
		AppInfoService:      appInfo,
	}
	return ts
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd synchronously, as the Bubble Tea runtime would.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}
