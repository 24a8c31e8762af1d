package session

import (
	"context"
	"sync"
	"time"
)

// InMemoryStore is a simple in-process session store for local/dev use.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*Session)}
}

func (s *InMemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if stored, ok := s.sessions[id]; ok {
		return stored.Clone(), nil
	}
	return New(id), nil
}

func (s *InMemoryStore) Save(_ context.Context, sess *Session) error {
	c := sess.Clone()
	c.UpdatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[c.ID] = c
	return nil
}

func (s *InMemoryStore) Close() error { return nil }
