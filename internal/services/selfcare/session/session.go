// Package session holds the browser-session state of the selfcare dashboard:
// the signed-in username and the selected subscriber.
//
// State lives in a Store keyed by an opaque session id. The id travels in a
// cookie without an expiry, so the session ends when the browser does.
// The memory and sqlite stores never expire entries: state is removed only by
// Clear on logout, so sessions abandoned without logging out stay in memory
// for the life of the process, or in the sqlite file until it is removed. The
// redis store expires entries only when configured with a TTL.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound reports that a session id has no stored state.
var ErrNotFound = errors.New("session not found")

// State is everything remembered for one browser session.
type State struct {
	LoggedInUser         string `json:"loggedInUser,omitempty"`
	SelectedSubscriberID string `json:"selectedSubscriberId,omitempty"`
}

// Empty reports whether nothing is stored.
func (s State) Empty() bool {
	return s.LoggedInUser == "" && s.SelectedSubscriberID == ""
}

// Store persists session state by id.
type Store interface {
	Get(ctx context.Context, id string) (State, error)
	Put(ctx context.Context, id string, state State) error
	Delete(ctx context.Context, id string) error
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id has the shape NewID produces.
func ValidID(id string) bool {
	_, err := uuid.Parse(strings.TrimSpace(id))
	return err == nil
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]State
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: map[string]State{}}
}

// Get returns the state for id or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, id string) (State, error) {
	if s == nil {
		return State{}, fmt.Errorf("session store is not configured")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[id]
	if !ok {
		return State{}, ErrNotFound
	}
	return state, nil
}

// Put replaces the state for id.
func (s *MemoryStore) Put(_ context.Context, id string, state State) error {
	if s == nil {
		return fmt.Errorf("session store is not configured")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("session id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = state
	return nil
}

// Delete drops the state for id. Missing ids are not an error.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	if s == nil {
		return fmt.Errorf("session store is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (s *MemoryStore) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
