package session

import (
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for cookies that fail signature or expiry checks
var ErrInvalidToken = errors.New("invalid session token")

// TokenSigner wraps session identifiers in HS256-signed JWTs so a cookie
// cannot be forged or tampered with client-side.
type TokenSigner struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewTokenSigner creates a signer with the given secret
func NewTokenSigner(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) *TokenSigner {
	return &TokenSigner{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Sign returns a signed token carrying sessionID
func (s *TokenSigner) Sign(sessionID string) (string, error) {
	now := s.timeProvider.Now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies token and returns the session identifier it carries
func (s *TokenSigner) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil || !parsed.Valid || claims.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.ID, nil
}
