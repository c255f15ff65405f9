package auth

import (
	"context"
	"time"

	"github.com/pasko-evg/superlists/internal/cache"
)

const revokedSessionKeyPrefix = "revoked_session:"

// SessionStoreInterface defines the interface for session revocation.
type SessionStoreInterface interface {
	RevokeSession(ctx context.Context, sessionID string, ttl time.Duration) error
	IsSessionRevoked(ctx context.Context, sessionID string) (bool, error)
}

// SessionStore records logged-out session ids in Redis until their tokens
// would have expired anyway.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// RevokeSession marks a session id as logged out for the given TTL.
func (s *SessionStore) RevokeSession(ctx context.Context, sessionID string, ttl time.Duration) error {
	key := revokedSessionKeyPrefix + sessionID
	return s.cache.Set(ctx, key, []byte("1"), ttl)
}

// IsSessionRevoked checks whether a session id has been logged out.
func (s *SessionStore) IsSessionRevoked(ctx context.Context, sessionID string) (bool, error) {
	key := revokedSessionKeyPrefix + sessionID
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false, nil // fail open: treat as not revoked
	}
	return data != nil, nil
}
