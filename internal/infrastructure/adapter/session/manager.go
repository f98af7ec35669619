package session

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// CookieName is the name of the session cookie
const CookieName = "rp_session"

// Manager issues, resolves and ends browser sessions. The cookie holds a
// signed token; the user binding lives in the store.
type Manager struct {
	store  persistence.SessionStore
	signer *TokenSigner
	ttl    time.Duration
	logger coreport.Logger
}

// NewManager creates a session manager
func NewManager(store persistence.SessionStore, signer *TokenSigner, ttl time.Duration, logger coreport.Logger) *Manager {
	return &Manager{
		store:  store,
		signer: signer,
		ttl:    ttl,
		logger: logger,
	}
}

// TTL returns how long a session lives
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Start creates a session for userID and returns the cookie value
func (m *Manager) Start(ctx context.Context, userID uint64) (string, error) {
	sessionID := uuid.NewString()

	if err := m.store.Set(ctx, sessionID, userID); err != nil {
		m.logger.Error("Failed to store session", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return "", err
	}

	token, err := m.signer.Sign(sessionID)
	if err != nil {
		_ = m.store.Destroy(ctx, sessionID)
		return "", err
	}

	return token, nil
}

// Resolve returns the user bound to the cookie value. Forged, expired or
// unknown tokens report ok=false without an error.
func (m *Manager) Resolve(ctx context.Context, token string) (uint64, bool, error) {
	if token == "" {
		return 0, false, nil
	}

	sessionID, err := m.signer.Parse(token)
	if err != nil {
		m.logger.Debug("Rejected session token", map[string]any{"error": err.Error()})
		return 0, false, nil
	}

	userID, ok, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to resolve session: %w", err)
	}
	return userID, ok, nil
}

// End destroys the session behind the cookie value
func (m *Manager) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	sessionID, err := m.signer.Parse(token)
	if err != nil {
		return nil
	}

	return m.store.Destroy(ctx, sessionID)
}
