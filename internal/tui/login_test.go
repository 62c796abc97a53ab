package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/hashgait/internal/nav"
)

// submitLogin presses enter and feeds back the delayed completion.
func submitLogin(t *testing.T, s *loginScreen) nav.Event {
	t.Helper()
	cmd, ev := s.update(press("enter"))
	require.Nil(t, ev)
	require.True(t, s.loading)

	done, ok := findMsg[loginDoneMsg](drain(cmd))
	require.True(t, ok, "sign in never completed")
	_, ev = s.update(done)
	return ev
}

func TestLoginEmptyUsernameFallsBack(t *testing.T) {
	e, _ := testEnv(t)
	s := newLoginScreen(e, testScope(t))
	s.init()

	ev := submitLogin(t, s)
	in, ok := ev.(nav.LoggedIn)
	require.True(t, ok, "got %T", ev)
	assert.Equal(t, "demo_user", in.Session.Username)
	assert.Equal(t, fixedNow, in.Session.StartedAt)
	assert.NotEmpty(t, in.Session.ID)
	assert.False(t, s.loading)
}

func TestLoginUsesTypedUsername(t *testing.T) {
	e, _ := testEnv(t)
	s := newLoginScreen(e, testScope(t))
	s.init()

	for _, k := range typeText("alice") {
		s.update(k)
	}
	s.update(press("tab"))
	for _, k := range typeText("hunter2") {
		s.update(k)
	}
	assert.Equal(t, fieldPassword, s.focus)
	assert.Equal(t, "hunter2", s.inputs[fieldPassword].Value())

	in, ok := submitLogin(t, s).(nav.LoggedIn)
	require.True(t, ok)
	assert.Equal(t, "alice", in.Session.Username)
}

func TestLoginTypingQDoesNotQuit(t *testing.T) {
	e, _ := testEnv(t)
	s := newLoginScreen(e, testScope(t))
	s.init()

	assert.Empty(t, e.lookupKey(press("q"), s))
	s.update(press("q"))
	assert.Equal(t, "q", s.inputs[fieldUsername].Value())
}

func TestLoginRevealTogglesEcho(t *testing.T) {
	e, _ := testEnv(t)
	s := newLoginScreen(e, testScope(t))

	assert.Equal(t, textinput.EchoPassword, s.inputs[fieldPassword].EchoMode)
	s.update(press("ctrl+r"))
	assert.Equal(t, textinput.EchoNormal, s.inputs[fieldPassword].EchoMode)
	assert.Contains(t, s.view(56), "(visible)")
	s.update(press("ctrl+r"))
	assert.Equal(t, textinput.EchoPassword, s.inputs[fieldPassword].EchoMode)
}

func TestLoginIgnoresKeysWhileLoading(t *testing.T) {
	e, _ := testEnv(t)
	s := newLoginScreen(e, testScope(t))
	s.update(press("enter"))
	require.True(t, s.loading)

	cmd, ev := s.update(press("enter"))
	assert.Nil(t, cmd)
	assert.Nil(t, ev)
	assert.Contains(t, s.view(56), "Authenticating")
}

func TestLoginSubmitIsSilentAfterScopeCloses(t *testing.T) {
	e, _ := testEnv(t)
	sc := testScope(t)
	s := newLoginScreen(e, sc)
	cmd, _ := s.update(press("ctrl+s"))
	sc.close()

	_, ok := findMsg[loginDoneMsg](drain(cmd))
	assert.False(t, ok)
}

func TestLoginView(t *testing.T) {
	e, _ := testEnv(t)
	s := newLoginScreen(e, testScope(t))
	out := s.view(56)
	for _, want := range []string{"HashGait", "Username", "Password", "Sign In"} {
		assert.Contains(t, out, want)
	}
}
