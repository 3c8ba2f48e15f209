// Package logger is the bounded, tagged log used by the command line
// tools. Library packages never log.
//
// Consecutive identical entries are folded into one with a repeat count.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// MaxEntries bounds the central log.
const MaxEntries = 256

// Entry is a single log line.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	Repeated  int
}

func (e Entry) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%s: %s", e.Tag, e.Detail)
	if e.Repeated > 0 {
		fmt.Fprintf(&s, " (repeat x%d)", e.Repeated+1)
	}
	s.WriteString("\n")
	return s.String()
}

// Logger keeps the most recent entries in memory and optionally echoes
// new ones to a writer. It is safe for concurrent use.
type Logger struct {
	mu         sync.Mutex
	maxEntries int
	entries    []Entry
	echo       io.Writer
	now        func() time.Time
}

// New returns a logger that keeps at most maxEntries entries.
func New(maxEntries int) *Logger {
	return &Logger{
		maxEntries: max(maxEntries, 1),
		now:        time.Now,
	}
}

// Log adds an entry. Newlines are stripped from tag and detail.
func (l *Logger) Log(tag, detail string) {
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	l.mu.Lock()
	defer l.mu.Unlock()

	if n := len(l.entries); n > 0 && l.entries[n-1].Tag == tag && l.entries[n-1].Detail == detail {
		l.entries[n-1].Repeated++
		l.entries[n-1].Timestamp = l.now()
	} else {
		l.entries = append(l.entries, Entry{Timestamp: l.now(), Tag: tag, Detail: detail})
	}

	if len(l.entries) > l.maxEntries {
		l.entries = append(l.entries[:0], l.entries[len(l.entries)-l.maxEntries:]...)
	}

	if l.echo != nil {
		io.WriteString(l.echo, l.entries[len(l.entries)-1].String())
	}
}

// Logf adds a formatted entry.
func (l *Logger) Logf(tag, format string, args ...any) {
	l.Log(tag, fmt.Sprintf(format, args...))
}

// SetEcho writes every subsequent entry to w. A nil w stops echoing.
func (l *Logger) SetEcho(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.echo = w
}

// Clear removes all entries.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

// Write writes every entry to w and reports whether there were any.
func (l *Logger) Write(w io.Writer) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		io.WriteString(w, e.String())
	}
	return len(l.entries) > 0
}

// Tail writes the last n entries to w.
func (l *Logger) Tail(w io.Writer, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	n = max(0, min(n, len(l.entries)))
	for _, e := range l.entries[len(l.entries)-n:] {
		io.WriteString(w, e.String())
	}
}

// Entries returns a copy of the log.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

var central = New(MaxEntries)

// Log adds an entry to the central log.
func Log(tag, detail string) { central.Log(tag, detail) }

// Logf adds a formatted entry to the central log.
func Logf(tag, format string, args ...any) { central.Logf(tag, format, args...) }

// SetEcho echoes central log entries to w.
func SetEcho(w io.Writer) { central.SetEcho(w) }

// Write writes the central log to w.
func Write(w io.Writer) bool { return central.Write(w) }

// Tail writes the last n central log entries to w.
func Tail(w io.Writer, n int) { central.Tail(w, n) }

// Clear empties the central log.
func Clear() { central.Clear() }

// Central returns the process-wide logger the package functions write to.
func Central() *Logger { return central }
