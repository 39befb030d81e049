package demo

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

type entry struct {
	mu      sync.Mutex
	session *Session
}

// Registry keeps track of the running sessions
type Registry struct {
	sessions map[string]*entry
	lock     sync.RWMutex
	logger   logrus.FieldLogger
}

// NewRegistry returns an empty registry
func NewRegistry(logger logrus.FieldLogger) *Registry {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Registry{
		sessions: make(map[string]*entry),
		logger:   logger,
	}
}

// Create starts a new session and registers it
func (r *Registry) Create(opts Options) (*Session, error) {
	s, err := NewSession(r.logger, opts)
	if err != nil {
		return nil, err
	}

	r.lock.Lock()
	r.sessions[s.ID] = &entry{session: s}
	r.lock.Unlock()

	r.logger.WithField("session", s.ID).Info("created session")
	return s, nil
}

func (r *Registry) entry(id string) (*entry, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	e, ok := r.sessions[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	return e, nil
}

// Get returns the session with the ID
// The session is not locked; use Do to read or modify it.
func (r *Registry) Get(id string) (*Session, error) {
	e, err := r.entry(id)
	if err != nil {
		return nil, err
	}

	return e.session, nil
}

// Do runs fn while holding the session's lock
func (r *Registry) Do(id string, fn func(s *Session) error) error {
	e, err := r.entry(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return fn(e.session)
}

// Delete removes a session
// Returns false if the session was not registered.
func (r *Registry) Delete(id string) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	id = strings.ToLower(id)
	if _, ok := r.sessions[id]; !ok {
		return false
	}

	delete(r.sessions, id)
	r.logger.WithField("session", id).Info("deleted session")
	return true
}

// Len returns the number of sessions
func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return len(r.sessions)
}
