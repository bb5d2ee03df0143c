package games

import "sync"

type sessionKey struct {
	room string
	kind Kind
}

// Registry is the single shared index of active sessions across all rooms.
// It enforces the one-session-per-kind-per-room invariant; the sessions it
// holds guard their own state with their own locks.
type Registry struct {
	mu       sync.Mutex
	sessions map[sessionKey]any
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[sessionKey]any)}
}

// Open atomically inserts sess if no session of that kind is active in the
// room, otherwise returns ErrSessionConflict.
func (r *Registry) Open(room string, kind Kind, sess any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := sessionKey{room: room, kind: kind}
	if _, ok := r.sessions[key]; ok {
		return ErrSessionConflict
	}
	r.sessions[key] = sess
	return nil
}

func (r *Registry) Lookup(room string, kind Kind) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[sessionKey{room: room, kind: kind}]
	return sess, ok
}

// Close removes the session. Closing an absent session is a no-op so a late
// timer fire after a manual close cannot double-settle.
func (r *Registry) Close(room string, kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionKey{room: room, kind: kind})
}

// Len reports the number of active sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
