// Package store keeps each browser session's uploaded trip table in memory.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/trips"
)

// Session is one visitor's dataset and last filter selection. Sessions
// never share a Table.
type Session struct {
	ID         string          `json:"id"`
	Table      trips.Table     `json:"-"`
	Options    trips.Options   `json:"options"`
	Selection  trips.Selection `json:"selection"`
	UploadedAt time.Time       `json:"uploaded_at"`

	lastSeen time.Time
}

// Observer is told the session count whenever it changes.
type Observer interface {
	SetActiveSessions(n int)
}

// Store holds sessions keyed by id. Idle sessions are swept on access.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*Session
	observer Observer
	now      func() time.Time
}

// New creates a Store whose sessions expire after ttl without access.
// observer may be nil.
func New(ttl time.Duration, observer Observer) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*Session),
		observer: observer,
		now:      time.Now,
	}
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like an id from NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Get returns a copy of the session and refreshes its idle timer.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	sess.lastSeen = s.now()
	return *sess, true
}

// Put replaces the session's table with a freshly uploaded one and resets
// the selection to the defaults for that table.
func (s *Store) Put(id string, table trips.Table) Session {
	opts := trips.OptionsFor(table)
	now := s.now()
	sess := &Session{
		ID:         id,
		Table:      table,
		Options:    opts,
		Selection:  opts.Default(),
		UploadedAt: now,
		lastSeen:   now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	s.sessions[id] = sess
	s.notifyLocked()
	return *sess
}

// Select remembers the last selection applied in the session. It reports
// false when the session does not exist.
func (s *Store) Select(id string, sel trips.Selection) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.Selection = sel
	sess.lastSeen = s.now()
	return true
}

// Delete discards the session. It reports whether one existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
		s.notifyLocked()
	}
	return ok
}

// Len returns the number of live sessions, expired ones included until the
// next sweep.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	removed := false
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed = true
		}
	}
	if removed {
		s.notifyLocked()
	}
}

func (s *Store) notifyLocked() {
	if s.observer != nil {
		s.observer.SetActiveSessions(len(s.sessions))
	}
}
