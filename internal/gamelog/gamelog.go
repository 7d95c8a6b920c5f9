// Package gamelog keeps the player-facing message history.
package gamelog

import (
	"github.com/leonelquinteros/gotext"
)

// MaxEntries is how many messages are kept.
const MaxEntries = 50

// Log is a bounded list of messages, oldest first.
type Log struct {
	entries []string
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Add translates format through the loaded catalogue, formats it with
// args and appends the result.
func (l *Log) Add(format string, args ...any) {
	l.entries = append(l.entries, gotext.Get(format, args...))
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[len(l.entries)-MaxEntries:]
	}
}

// Entries returns the messages, oldest first.
func (l *Log) Entries() []string {
	return l.entries
}

// Last returns up to n of the newest messages, oldest first.
func (l *Log) Last(n int) []string {
	if n >= len(l.entries) {
		return l.entries
	}
	return l.entries[len(l.entries)-n:]
}

// Clear drops every message.
func (l *Log) Clear() {
	l.entries = nil
}

// LoadLocale points message translation at the gettext catalogue for lang
// under dir (dir/lang/LC_MESSAGES/default.po). Messages without a
// translation are shown as written.
func LoadLocale(dir, lang string) {
	gotext.Configure(dir, lang, "default")
}
