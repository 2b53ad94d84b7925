package notify

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/ports/mocks"
)

func TestQueue_Drain(t *testing.T) {
	q := NewQueue()
	q.Notify(domain.NoticeError, "Failed to load artworks")
	q.Notify(domain.NoticeInfo, "Refreshing")

	if q.Len() != 2 {
		t.Fatalf("expected 2 pending toasts, got %d", q.Len())
	}

	toasts := q.Drain()
	if len(toasts) != 2 || toasts[0].Message != "Failed to load artworks" || toasts[0].Kind != domain.NoticeError {
		t.Errorf("unexpected toasts: %+v", toasts)
	}
	if q.Len() != 0 || len(q.Drain()) != 0 {
		t.Error("expected queue to be empty after drain")
	}
}

func TestLogger_WritesLevelAndMessage(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	n.Notify(domain.NoticeError, "Failed to load artworks")

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected ERROR level, got %q", out)
	}
	if !strings.Contains(out, "Failed to load artworks") || !strings.Contains(out, "kind=error") {
		t.Errorf("expected message and kind, got %q", out)
	}
}

func TestMulti_FansOut(t *testing.T) {
	a := mocks.NewMockNotifier()
	b := mocks.NewMockNotifier()
	var called int

	Multi{a, nil, b, Func(func(domain.NoticeKind, string) { called++ })}.Notify(domain.NoticeWarning, "careful")

	if len(a.GetNotices()) != 1 || len(b.GetNotices()) != 1 || called != 1 {
		t.Errorf("expected every sink to receive exactly one notice")
	}
}
