// Package session holds the process-wide auth session and gates protected
// commands on it.
package session

import (
	"sync"

	"article_studio/internal/domain"
)

// Listener is notified after every session change.
type Listener func(event domain.AuthEvent, session *domain.Session)

// Store is the single owner of the current session. Reads are synchronous;
// writes go through the Gate.
type Store struct {
	mu        sync.RWMutex
	session   *domain.Session
	version   uint64
	listeners map[int]Listener
	nextID    int
}

func NewStore() *Store {
	return &Store{listeners: make(map[int]Listener)}
}

func (s *Store) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Subscribe registers fn and returns a func that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) set(event domain.AuthEvent, session *domain.Session) {
	s.mu.Lock()
	s.session = session
	s.version++
	listeners := s.snapshot()
	s.mu.Unlock()

	notify(listeners, event, session)
}

// setInitial records the startup session unless a live event already
// replaced it.
func (s *Store) setInitial(session *domain.Session) {
	s.mu.Lock()
	if s.version > 0 {
		current := s.session
		listeners := s.snapshot()
		s.mu.Unlock()
		notify(listeners, domain.EventInitialSession, current)
		return
	}
	s.session = session
	s.version++
	listeners := s.snapshot()
	s.mu.Unlock()

	notify(listeners, domain.EventInitialSession, session)
}

func (s *Store) snapshot() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}

func notify(listeners []Listener, event domain.AuthEvent, session *domain.Session) {
	for _, fn := range listeners {
		fn(event, session)
	}
}
