package persistence

import "context"

// SessionStore maps an opaque session identifier to a user identifier.
// Implementations decide whether sessions survive a process restart.
type SessionStore interface {
	// Get returns the user bound to the session; ok is false when the
	// session is unknown or expired
	Get(ctx context.Context, sessionID string) (userID uint64, ok bool, err error)

	// Set binds the session to the user, replacing any previous binding
	Set(ctx context.Context, sessionID string, userID uint64) error

	// Destroy forgets the session. Destroying an unknown session is not an error.
	Destroy(ctx context.Context, sessionID string) error
}
