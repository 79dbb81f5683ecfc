package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"ai_blog_assistant/generator"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps per-browser form state. Get returns a private copy;
// concurrent writers to the same session are last-write-wins.
type SessionStore interface {
	Get(ctx context.Context, id string) (*generator.Session, error)
	Save(ctx context.Context, sess *generator.Session) error
	Delete(ctx context.Context, id string) error
	Close() error
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// MemoryStore is a mutex-guarded in-process store. Sessions are held as
// JSON snapshots so callers never share a *Session.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*generator.Session, error) {
	m.mu.Lock()
	entry, ok := m.sessions[id]
	if ok && m.now().After(entry.expires) {
		delete(m.sessions, id)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	var sess generator.Session
	if err := json.Unmarshal(entry.data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (m *MemoryStore) Save(_ context.Context, sess *generator.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()
	m.sessions[sess.ID] = memoryEntry{data: data, expires: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) Close() error { return nil }

// Len counts live sessions.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()
	return len(m.sessions)
}

func (m *MemoryStore) sweepLocked() {
	now := m.now()
	for id, e := range m.sessions {
		if now.After(e.expires) {
			delete(m.sessions, id)
		}
	}
}
