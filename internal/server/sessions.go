package server

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"sensor-compare.klederson.com/internal/compare"
	"sensor-compare.klederson.com/internal/sensor"
)

var ErrSessionNotFound = errors.New("session not found")

type entry struct {
	mu      sync.Mutex
	session *compare.Session
}

// SessionStore keeps one comparison session per client. Each session is
// guarded by its own lock so it only ever has one writer.
type SessionStore struct {
	mu           sync.Mutex
	sessions     map[string]*entry
	catalog      *sensor.Catalog
	screenInches float64
}

func NewSessionStore(c *sensor.Catalog, screenInches float64) *SessionStore {
	return &SessionStore{
		sessions:     make(map[string]*entry),
		catalog:      c,
		screenInches: screenInches,
	}
}

// Create starts a new session and returns its id.
func (m *SessionStore) Create() string {
	id := uuid.NewString()
	e := &entry{session: compare.NewSession(m.catalog, m.screenInches)}

	m.mu.Lock()
	m.sessions[id] = e
	m.mu.Unlock()
	return id
}

// With runs fn on the session while holding its lock.
func (m *SessionStore) With(id string, fn func(*compare.Session) error) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Delete discards a session. It reports whether the session existed.
func (m *SessionStore) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	return ok
}

// Len returns the number of live sessions.
func (m *SessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
