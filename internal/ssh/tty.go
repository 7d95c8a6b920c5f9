// Package ssh adapts an SSH session to the terminal interface tcell draws
// on, so a remote player gets the same screen as a local one.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty over a gliderlabs/ssh session.
type SessionTty struct {
	session gossh.Session

	mu      sync.Mutex
	window  gossh.Window
	onSize  func()
	resized chan struct{}
}

// NewSessionTty wraps s. pty holds the initial window size and winCh
// delivers later ones; the channel is drained for the life of the session.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	t := &SessionTty{
		session: s,
		window:  pty.Window,
		resized: make(chan struct{}, 1),
	}
	go t.watch(winCh)
	return t
}

func (t *SessionTty) watch(winCh <-chan gossh.Window) {
	for win := range winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onSize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
		select {
		case t.resized <- struct{}{}:
		default:
		}
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and
// closed by the server.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the latest terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers the callback tcell wants run on every resize.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onSize = cb
	t.mu.Unlock()
}

// Resized signals after each window change has been applied.
func (t *SessionTty) Resized() <-chan struct{} { return t.resized }
