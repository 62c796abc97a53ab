package nav

import (
	"math/rand/v2"
	"testing"
	"time"
)

func testSession(name string) Session {
	return NewSession(name, time.Date(2026, 2, 3, 14, 34, 0, 0, time.UTC))
}

func TestInitialState(t *testing.T) {
	s := Initial()
	if s.Screen != Login {
		t.Fatalf("initial screen = %v, want login", s.Screen)
	}
	if s.Session != nil {
		t.Fatalf("initial session = %+v, want nil", s.Session)
	}
	if _, ok := s.Username(); ok {
		t.Fatal("Username reported a user before login")
	}
}

func TestNavigateReplacesSessionOnlyWhenSupplied(t *testing.T) {
	sess := testSession("alice")
	s := Navigate(Initial(), Capture, &sess)
	if s.Session == nil || s.Session.Username != "alice" {
		t.Fatalf("session after login = %+v, want alice", s.Session)
	}

	s = Navigate(s, Result, nil)
	if s.Screen != Result {
		t.Fatalf("screen = %v, want result", s.Screen)
	}
	if s.Session == nil || s.Session.Username != "alice" {
		t.Fatalf("session dropped on navigate without user data: %+v", s.Session)
	}
}

func TestNavigateCopiesSession(t *testing.T) {
	sess := testSession("alice")
	s := Navigate(Initial(), Capture, &sess)
	sess.Username = "mallory"
	if got := s.Session.Username; got != "alice" {
		t.Fatalf("state shares the caller's session: username = %q", got)
	}
}

func TestNavigateTargets(t *testing.T) {
	tests := []struct {
		to   Screen
		want Screen
	}{
		{Login, Login},
		{Capture, Capture},
		{Result, Result},
		{Banking, Banking},
		{Screen(42), Login},
		{Screen(-1), Login},
	}
	for _, tt := range tests {
		got := Navigate(State{Screen: Banking}, tt.to, nil)
		if got.Screen != tt.want {
			t.Errorf("Navigate(%d) = %v, want %v", int(tt.to), got.Screen, tt.want)
		}
	}
}

func TestScreenString(t *testing.T) {
	tests := map[Screen]string{
		Login:      "login",
		Capture:    "capture",
		Result:     "result",
		Banking:    "banking",
		Screen(-1): "unknown",
		Screen(9):  "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Screen(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}

func TestReduceHappyPath(t *testing.T) {
	s := Initial()
	steps := []struct {
		ev   Event
		want Screen
	}{
		{LoggedIn{Session: testSession("demo_user")}, Capture},
		{CaptureCompleted{}, Result},
		{Continued{}, Banking},
	}
	for _, step := range steps {
		s = Reduce(s, step.ev)
		if s.Screen != step.want {
			t.Fatalf("after %T screen = %v, want %v", step.ev, s.Screen, step.want)
		}
	}
	if name, ok := s.Username(); !ok || name != "demo_user" {
		t.Fatalf("username = %q, %v; want demo_user", name, ok)
	}
}

func TestReduceBackEdges(t *testing.T) {
	sess := testSession("bob")
	tests := []struct {
		name string
		from Screen
		ev   Event
		want Screen
	}{
		{"cancel capture", Capture, CaptureCancelled{}, Login},
		{"retry from result", Result, Retried{}, Capture},
		{"reauth from banking", Banking, ReauthRequested{}, Capture},
		{"logout from banking", Banking, LoggedOut{}, Login},
		{"logout from result", Result, LoggedOut{}, Login},
		{"logout from capture", Capture, LoggedOut{}, Login},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(State{Screen: tt.from, Session: &sess}, tt.ev)
			if got.Screen != tt.want {
				t.Fatalf("screen = %v, want %v", got.Screen, tt.want)
			}
		})
	}
}

func TestReduceIgnoresEventsFromOtherScreens(t *testing.T) {
	s := State{Screen: Login}
	for _, ev := range []Event{CaptureCompleted{}, Continued{}, nil} {
		if got := Reduce(s, ev); got != s {
			t.Errorf("Reduce(login, %T) = %+v, want unchanged", ev, got)
		}
	}

	b := State{Screen: Banking}
	if got := Reduce(b, LoggedIn{Session: testSession("x")}).Screen; got != Banking {
		t.Errorf("login event moved banking to %v", got)
	}
}

func TestLogoutClearsSessionFromEveryPostLoginScreen(t *testing.T) {
	for _, screen := range []Screen{Capture, Result, Banking} {
		sess := testSession("carol")
		s := Reduce(State{Screen: screen, Session: &sess}, LoggedOut{})
		if s.Screen != Login {
			t.Errorf("logout from %v went to %v", screen, s.Screen)
		}
		if s.Session != nil {
			t.Errorf("logout from %v kept session %+v", screen, s.Session)
		}
	}
}

func TestCancelKeepsSession(t *testing.T) {
	sess := testSession("dave")
	s := Reduce(State{Screen: Capture, Session: &sess}, CaptureCancelled{})
	if s.Session == nil || s.Session.Username != "dave" {
		t.Fatalf("session after cancel = %+v, want dave", s.Session)
	}
}

func TestRandomEventSequencesStayInsideEnumeration(t *testing.T) {
	events := []Event{
		LoggedIn{Session: testSession("fuzz")},
		CaptureCompleted{}, CaptureCancelled{}, Continued{},
		Retried{}, ReauthRequested{}, LoggedOut{},
	}
	rng := rand.New(rand.NewPCG(7, 11))
	s := Initial()
	for i := 0; i < 5000; i++ {
		s = Reduce(s, events[rng.IntN(len(events))])
		if !s.Screen.Valid() {
			t.Fatalf("step %d produced %v", i, s.Screen)
		}
		if s.Screen != Login && s.Session == nil {
			t.Fatalf("step %d left %v without a session", i, s.Screen)
		}
	}
}
