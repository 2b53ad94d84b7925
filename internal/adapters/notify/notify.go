// Package notify provides Notifier adapters: a toast queue for the
// interactive gallery, a slog sink for headless commands, and helpers to
// combine them.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/ports"
)

// Func adapts an ordinary function to the Notifier interface
type Func func(kind domain.NoticeKind, message string)

func (f Func) Notify(kind domain.NoticeKind, message string) {
	f(kind, message)
}

// Multi fans a notification out to every sink
type Multi []ports.Notifier

func (m Multi) Notify(kind domain.NoticeKind, message string) {
	for _, n := range m {
		if n != nil {
			n.Notify(kind, message)
		}
	}
}

// Logger writes notifications to a slog.Logger
type Logger struct {
	log *slog.Logger
}

// NewLogger creates a slog-backed notifier. A nil logger uses slog.Default().
func NewLogger(log *slog.Logger) *Logger {
	if log == nil {
		log = slog.Default()
	}
	return &Logger{log: log}
}

func (l *Logger) Notify(kind domain.NoticeKind, message string) {
	level := slog.LevelInfo
	switch kind {
	case domain.NoticeWarning:
		level = slog.LevelWarn
	case domain.NoticeError:
		level = slog.LevelError
	}
	l.log.Log(context.Background(), level, message, "kind", kind.String())
}

// Toast is a queued user-facing message
type Toast struct {
	Kind    domain.NoticeKind
	Message string
	At      time.Time
}

// Queue buffers toasts until the UI drains them
type Queue struct {
	mu     sync.Mutex
	toasts []Toast
	now    func() time.Time
}

// NewQueue creates an empty toast queue
func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

func (q *Queue) Notify(kind domain.NoticeKind, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.toasts = append(q.toasts, Toast{Kind: kind, Message: message, At: q.now()})
}

// Drain returns and clears all pending toasts
func (q *Queue) Drain() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	toasts := q.toasts
	q.toasts = nil
	return toasts
}

// Len returns the number of pending toasts
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}
