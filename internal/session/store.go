package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/VISHALVISHAL29/Dashboard/internal/dataset"
	"github.com/VISHALVISHAL29/Dashboard/internal/model"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session holds the dataset currently uploaded by one user. A nil Dataset
// means nothing has been uploaded since creation or the last reset.
type Session struct {
	ID         string
	CreatedAt  time.Time
	UploadedAt time.Time
	Dataset    *model.Dataset
	Outcomes   []dataset.Outcome
}

// Store keeps sessions in memory.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create starts a new session with no dataset.
func (s *Store) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: s.now(),
	}
	s.sessions[sess.ID] = sess
	return *sess
}

// Get returns a snapshot of the session.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// Upload replaces the session's dataset wholesale.
func (s *Store) Upload(id string, ds *model.Dataset, outcomes []dataset.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	sess.Dataset = ds
	sess.Outcomes = outcomes
	sess.UploadedAt = s.now()
	return nil
}

// Reset discards the session's dataset.
func (s *Store) Reset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	sess.Dataset = nil
	sess.Outcomes = nil
	sess.UploadedAt = time.Time{}
	return nil
}

// Dataset returns the session's dataset, which is nil before any upload.
func (s *Store) Dataset(id string) (*model.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess.Dataset, nil
}

// Delete ends a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}
