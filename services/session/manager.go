package session

import (
	"sync"
	"time"
)

// Manager owns all live sessions
type Manager struct {
	mu       sync.RWMutex
	now      func() time.Time
	sessions map[string]*Session
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// NewManagerWithClock creates a manager whose sessions use the given clock
func NewManagerWithClock(now func() time.Time) *Manager {
	m := NewManager()
	m.now = now
	return m
}

// Open creates a session, replacing any session with the same ID
func (m *Manager) Open(id, userID, upstreamToken string) *Session {
	s := newSession(id, userID, upstreamToken, m.now)

	m.mu.Lock()
	old := m.sessions[id]
	m.sessions[id] = s
	m.mu.Unlock()

	if old != nil {
		old.clear()
	}
	return s
}

// Get returns a live session
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// GetOrOpen returns the live session or opens a fresh one, e.g. after a restart
func (m *Manager) GetOrOpen(id, userID, upstreamToken string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	old, ok := m.sessions[id]
	if ok && old.UserID == userID {
		return old
	}
	if ok {
		old.clear()
	}
	s := newSession(id, userID, upstreamToken, m.now)
	m.sessions[id] = s
	return s
}

// Close removes a session and clears its state
func (m *Manager) Close(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.clear()
	}
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
