// Package nav holds the screen navigator: which screen is showing and
// who is logged in. Everything here is a pure function of its inputs so
// the TUI can replay any sequence of events without touching a terminal.
package nav

import (
	"time"

	"github.com/google/uuid"
)

// Screen selects the active view.
type Screen int

const (
	Login Screen = iota
	Capture
	Result
	Banking
)

var screenNames = [...]string{
	Login:   "login",
	Capture: "capture",
	Result:  "result",
	Banking: "banking",
}

func (s Screen) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return screenNames[s]
}

// Valid reports whether s is one of the four screens.
func (s Screen) Valid() bool {
	return s >= Login && s <= Banking
}

// Session is the mock login record. It is copied on every navigation, never shared.
type Session struct {
	ID        string
	Username  string
	StartedAt time.Time
}

// NewSession stamps a session for username.
func NewSession(username string, now time.Time) Session {
	return Session{ID: uuid.NewString(), Username: username, StartedAt: now}
}

// State is the navigator state. A nil Session means nobody is logged in.
type State struct {
	Screen  Screen
	Session *Session
}

// Initial is the state at startup.
func Initial() State {
	return State{Screen: Login}
}

// Username returns the session username, or "" with ok=false when logged out.
func (s State) Username() (string, bool) {
	if s.Session == nil {
		return "", false
	}
	return s.Session.Username, true
}

// Navigate moves to screen, replacing the session with a copy of user when
// user is non-nil. Screens outside the enumeration land on Login.
func Navigate(s State, screen Screen, user *Session) State {
	if !screen.Valid() {
		screen = Login
	}
	s.Screen = screen
	if user != nil {
		u := *user
		s.Session = &u
	}
	return s
}

// Logout returns to Login and drops the session.
func Logout(s State) State {
	s = Navigate(s, Login, nil)
	s.Session = nil
	return s
}
