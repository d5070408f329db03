package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestRoot(t *testing.T) (RootModel, testServices) {
	t.Helper()
	ts := newTestServices(t)
	ctx := context.Background()

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, ts.session),
		pageRegister: NewRegisterModel(ctx, ts.session),
	}
	info := ts.services.AppInfoService
	return NewRootModel(pages, pageMenu, info.GetAppVersion(ctx), info.BuildInfo()), ts
}

func rootUpdate(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestRootModel_LoginFlow(t *testing.T) {
	r, ts := newTestRoot(t)

	r, cmd := rootUpdate(t, r, keyPress(tea.KeyEnter))
	r, _ = rootUpdate(t, r, run(t, cmd))
	require.IsType(t, &LoginModel{}, r.current)

	r, _ = rootUpdate(t, r, typeText("a@b.co"))
	r, _ = rootUpdate(t, r, keyPress(tea.KeyTab))
	r, _ = rootUpdate(t, r, typeText("secret"))
	r, cmd = rootUpdate(t, r, keyPress(tea.KeyEnter))
	assert.Contains(t, r.View(), "Logging in...")

	r, cmd = rootUpdate(t, r, run(t, cmd))

	assert.Equal(t, []string{"a@b.co"}, ts.session.logins)
	assert.True(t, r.loggedIn)
	assert.IsType(t, tea.QuitMsg{}, run(t, cmd))
}

func TestRootModel_LoginFailureShowsServerText(t *testing.T) {
	r, ts := newTestRoot(t)
	ts.session.authErr = errors.New("invalid credentials")

	r, _ = rootUpdate(t, r, NavigateTo{Page: pageLogin})
	r, cmd := rootUpdate(t, r, keyPress(tea.KeyEnter))
	r, _ = rootUpdate(t, r, run(t, cmd))

	assert.False(t, r.loggedIn)
	assert.Contains(t, r.View(), "Error: invalid credentials")
}

func TestRootModel_RegisterFlow(t *testing.T) {
	r, ts := newTestRoot(t)

	r, _ = rootUpdate(t, r, keyPress(tea.KeyDown))
	r, cmd := rootUpdate(t, r, keyPress(tea.KeyEnter))
	r, _ = rootUpdate(t, r, run(t, cmd))
	require.IsType(t, &RegisterModel{}, r.current)

	r, _ = rootUpdate(t, r, typeText("new@b.co"))
	r, _ = rootUpdate(t, r, keyPress(tea.KeyTab))
	r, _ = rootUpdate(t, r, typeText("secret"))
	r, _ = rootUpdate(t, r, keyPress(tea.KeyTab))
	r, _ = rootUpdate(t, r, typeText("secret"))
	r, cmd = rootUpdate(t, r, keyPress(tea.KeyEnter))
	r, _ = rootUpdate(t, r, run(t, cmd))

	assert.Equal(t, []string{"new@b.co"}, ts.session.registers)
	assert.True(t, r.loggedIn)
}

func TestRootModel_RegisterPasswordMismatch(t *testing.T) {
	r, ts := newTestRoot(t)

	r, _ = rootUpdate(t, r, NavigateTo{Page: pageRegister})
	r, _ = rootUpdate(t, r, typeText("new@b.co"))
	r, _ = rootUpdate(t, r, keyPress(tea.KeyTab))
	r, _ = rootUpdate(t, r, typeText("secret"))
	r, _ = rootUpdate(t, r, keyPress(tea.KeyTab))
	r, _ = rootUpdate(t, r, typeText("other"))
	r, cmd := rootUpdate(t, r, keyPress(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Empty(t, ts.session.registers)
	assert.Contains(t, r.View(), "Passwords do not match")
}

func TestRootModel_EscGoesBackToMenu(t *testing.T) {
	r, _ := newTestRoot(t)

	r, _ = rootUpdate(t, r, NavigateTo{Page: pageLogin})
	r, cmd := rootUpdate(t, r, keyPress(tea.KeyEsc))
	r, _ = rootUpdate(t, r, run(t, cmd))

	assert.True(t, r.isMenuPage())
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	r, _ := newTestRoot(t)

	r, _ = rootUpdate(t, r, typeText("v"))
	require.True(t, r.showBuildInfo)
	view := r.View()
	assert.Contains(t, view, "go-lingo")
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")

	r, _ = rootUpdate(t, r, keyPress(tea.KeyEsc))
	assert.False(t, r.showBuildInfo)
}

func TestRootModel_BuildInfoOnlyOnMenu(t *testing.T) {
	r, _ := newTestRoot(t)

	r, _ = rootUpdate(t, r, NavigateTo{Page: pageLogin})
	r, _ = rootUpdate(t, r, typeText("v"))

	assert.False(t, r.showBuildInfo)
	login, ok := r.current.(*LoginModel)
	require.True(t, ok)
	assert.Equal(t, "v", login.inputs[0].Value())
}

func TestRootModel_CtrlC(t *testing.T) {
	r, _ := newTestRoot(t)

	r, cmd := rootUpdate(t, r, keyPress(tea.KeyCtrlC))

	assert.True(t, r.quitByUser)
	assert.IsType(t, tea.QuitMsg{}, run(t, cmd))
}

func TestMenuModel_StatusNotice(t *testing.T) {
	m := NewMenuModel()

	m.Update(StatusNotice{Text: "You have been logged out"})

	assert.Contains(t, m.View(), "OK: You have been logged out")
}
