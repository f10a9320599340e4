package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/haqatak/telcoco/internal/services/selfcare/platform/requestmeta"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/sessioncookie"
)

// Manager binds session state to requests through the session cookie.
type Manager struct {
	store  Store
	codec  sessioncookie.Codec
	policy requestmeta.SchemePolicy
}

// NewManager builds a manager over store.
func NewManager(store Store, codec sessioncookie.Codec, policy requestmeta.SchemePolicy) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	return &Manager{store: store, codec: codec, policy: policy}, nil
}

// HasCookie reports whether the request carries a session cookie at all.
func (m *Manager) HasCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}

// Load returns the state bound to the request. A missing, forged or expired
// cookie yields an empty state.
func (m *Manager) Load(r *http.Request) (State, error) {
	id, ok := m.sessionID(r)
	if !ok {
		return State{}, nil
	}
	state, err := m.store.Get(requestContext(r), id)
	if errors.Is(err, ErrNotFound) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("load session: %w", err)
	}
	return state, nil
}

// LoggedInUser returns the stored username, if any.
func (m *Manager) LoggedInUser(r *http.Request) (string, bool, error) {
	state, err := m.Load(r)
	if err != nil {
		return "", false, err
	}
	return state.LoggedInUser, state.LoggedInUser != "", nil
}

// SelectedSubscriberID returns the stored subscriber selection, if any.
func (m *Manager) SelectedSubscriberID(r *http.Request) (string, bool, error) {
	state, err := m.Load(r)
	if err != nil {
		return "", false, err
	}
	return state.SelectedSubscriberID, state.SelectedSubscriberID != "", nil
}

// SetLoggedInUser stores username for the browser session.
func (m *Manager) SetLoggedInUser(w http.ResponseWriter, r *http.Request, username string) error {
	return m.update(w, r, func(state *State) {
		state.LoggedInUser = username
	})
}

// SetSelectedSubscriberID stores the subscriber selection.
func (m *Manager) SetSelectedSubscriberID(w http.ResponseWriter, r *http.Request, id string) error {
	return m.update(w, r, func(state *State) {
		state.SelectedSubscriberID = id
	})
}

// Clear drops every session key and expires the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	defer sessioncookie.Clear(w, r, m.policy)
	id, ok := m.sessionID(r)
	if !ok {
		return nil
	}
	if err := m.store.Delete(requestContext(r), id); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (m *Manager) update(w http.ResponseWriter, r *http.Request, apply func(*State)) error {
	ctx := requestContext(r)
	id, ok := m.sessionID(r)
	state := State{}
	if ok {
		stored, err := m.store.Get(ctx, id)
		switch {
		case err == nil:
			state = stored
		case errors.Is(err, ErrNotFound):
		default:
			return fmt.Errorf("load session: %w", err)
		}
	} else {
		id = NewID()
		value, err := m.codec.Sign(id)
		if err != nil {
			return err
		}
		sessioncookie.Write(w, r, value, m.policy)
	}
	apply(&state)
	if err := m.store.Put(ctx, id, state); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (m *Manager) sessionID(r *http.Request) (string, bool) {
	value, ok := sessioncookie.Read(r)
	if !ok {
		return "", false
	}
	id, err := m.codec.Verify(value)
	if err != nil || !ValidID(id) {
		return "", false
	}
	return strings.TrimSpace(id), true
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}
