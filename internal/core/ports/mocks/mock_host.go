package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/kamal-hamza/folio/internal/core/domain"
)

// --- MockNotifier ---

// Notice is a recorded notification
type Notice struct {
	Kind    domain.NoticeKind
	Message string
}

type MockNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Notify(kind domain.NoticeKind, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = append(m.notices, Notice{Kind: kind, Message: message})
}

func (m *MockNotifier) GetNotices() []Notice {
	m.mu.Lock()
	defer m.mu.Unlock()
	notices := make([]Notice, len(m.notices))
	copy(notices, m.notices)
	return notices
}

// --- MockImageStore ---

type MockImageStore struct {
	mu         sync.Mutex
	calls      []string
	shouldFail bool
	failError  error
}

func NewMockImageStore() *MockImageStore {
	return &MockImageStore{}
}

func (m *MockImageStore) Put(ctx context.Context, id string, draft domain.Draft) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, id)
	if m.shouldFail {
		if m.failError != nil {
			return "", m.failError
		}
		return "", fmt.Errorf("upload failed for %s", id)
	}
	return "mock://images/" + id, nil
}

func (m *MockImageStore) SetShouldFail(fail bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
	m.failError = err
}

func (m *MockImageStore) GetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// --- MockOpener ---

type MockOpener struct {
	mu     sync.Mutex
	opened []string
	err    error
}

func NewMockOpener() *MockOpener {
	return &MockOpener{}
}

func (m *MockOpener) Open(ctx context.Context, target string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opened = append(m.opened, target)
	return m.err
}

func (m *MockOpener) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockOpener) GetOpened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	opened := make([]string, len(m.opened))
	copy(opened, m.opened)
	return opened
}

// --- MockClipboard ---

type MockClipboard struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func NewMockClipboard() *MockClipboard {
	return &MockClipboard{}
}

func (m *MockClipboard) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.writes = append(m.writes, text)
	return nil
}

func (m *MockClipboard) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockClipboard) GetWrites() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	writes := make([]string, len(m.writes))
	copy(writes, m.writes)
	return writes
}
