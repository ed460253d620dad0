package quiz

import (
	"sync"

	"examquiz/internal/question"
)

// Registry holds at most one live session per category. Leaving a category
// restarts its session, so a later re-entry always starts fresh; in-progress
// answers are never recoverable after leaving.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: map[string]*Session{}}
}

// Open returns the live session for a category, creating one on first use.
func (r *Registry) Open(category question.Category) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[category.ID]; ok {
		return session
	}
	session := NewSession(category)
	r.sessions[category.ID] = session
	return session
}

// Leave discards the attempt for a category by restarting its session.
func (r *Registry) Leave(categoryID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[categoryID]; ok {
		session.Restart()
	}
}

// Get returns the live session for a category id, if any.
func (r *Registry) Get(categoryID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[categoryID]
	return session, ok
}
