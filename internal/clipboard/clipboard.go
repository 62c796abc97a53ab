// Package clipboard is the app's only write to the outside world: copying
// a string to the system clipboard through the terminal.
package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Writer puts text on the clipboard.
type Writer interface {
	WriteText(text string) error
}

// OSC52 copies through the OSC 52 terminal escape sequence. The sequence is
// invisible, so it is safe to write beside the TUI renderer.
type OSC52 struct {
	// Open returns the terminal to write to. Defaults to /dev/tty.
	Open func() (io.WriteCloser, error)
	// Getenv is used for tmux/screen detection. Defaults to os.Getenv.
	Getenv func(string) string
}

// NewOSC52 returns a clipboard writing to the controlling terminal.
func NewOSC52() *OSC52 {
	return &OSC52{}
}

func (c *OSC52) WriteText(text string) error {
	open := c.Open
	if open == nil {
		open = openTTY
	}
	getenv := c.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	tty, err := open()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer tty.Close()

	seq := osc52.New(text)
	term := getenv("TERM")
	switch {
	case getenv("TMUX") != "" || strings.HasPrefix(term, "tmux"):
		// passthrough for allow-passthrough, then the direct form below
		// for set-clipboard; a double set is harmless
		if _, err := seq.Tmux().WriteTo(tty); err != nil {
			return fmt.Errorf("write osc52 (tmux): %w", err)
		}
	case strings.HasPrefix(term, "screen"):
		if _, err := seq.Screen().WriteTo(tty); err != nil {
			return fmt.Errorf("write osc52 (screen): %w", err)
		}
	}
	if _, err := seq.WriteTo(tty); err != nil {
		return fmt.Errorf("write osc52: %w", err)
	}
	return nil
}

func openTTY() (io.WriteCloser, error) {
	return os.OpenFile("/dev/tty", os.O_WRONLY, 0)
}

// Recorder keeps copied strings in memory. Used in tests and when no
// terminal is attached.
type Recorder struct {
	mu     sync.Mutex
	writes []string
	Err    error
}

func (r *Recorder) WriteText(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.writes = append(r.writes, text)
	return nil
}

// Last returns the most recent successful write.
func (r *Recorder) Last() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return "", false
	}
	return r.writes[len(r.writes)-1], true
}

// Count returns how many writes succeeded.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.writes)
}
