package nav

// Event is a navigation request raised by a screen.
type Event interface {
	// from lists the screens the event may be raised on.
	from() []Screen
}

// LoggedIn is raised by the login form once the mock delay resolves.
type LoggedIn struct{ Session Session }

// CaptureCompleted is raised when the countdown has settled.
type CaptureCompleted struct{}

// CaptureCancelled is raised by the abort key during capture.
type CaptureCancelled struct{}

// Continued leaves the result screen for the account.
type Continued struct{}

// Retried starts a fresh capture from the result screen.
type Retried struct{}

// ReauthRequested starts a fresh capture from the account.
type ReauthRequested struct{}

// LoggedOut ends the session from any post-login screen.
type LoggedOut struct{}

func (LoggedIn) from() []Screen         { return []Screen{Login} }
func (CaptureCompleted) from() []Screen { return []Screen{Capture} }
func (CaptureCancelled) from() []Screen { return []Screen{Capture} }
func (Continued) from() []Screen        { return []Screen{Result} }
func (Retried) from() []Screen          { return []Screen{Result} }
func (ReauthRequested) from() []Screen  { return []Screen{Banking} }
func (LoggedOut) from() []Screen        { return []Screen{Capture, Result, Banking} }

// Reduce applies ev to s. Events raised on a screen that does not own them
// leave s unchanged.
func Reduce(s State, ev Event) State {
	if ev == nil || !allowed(s.Screen, ev) {
		return s
	}
	switch e := ev.(type) {
	case LoggedIn:
		return Navigate(s, Capture, &e.Session)
	case CaptureCompleted:
		return Navigate(s, Result, nil)
	case CaptureCancelled:
		return Navigate(s, Login, nil)
	case Continued:
		return Navigate(s, Banking, nil)
	case Retried, ReauthRequested:
		return Navigate(s, Capture, nil)
	case LoggedOut:
		return Logout(s)
	}
	return s
}

func allowed(current Screen, ev Event) bool {
	for _, s := range ev.from() {
		if s == current {
			return true
		}
	}
	return false
}
