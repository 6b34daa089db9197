package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Session is one voter login tracked in Redis. A session disappearing from
// the store revokes the matching JWT even before it expires.
type Session struct {
	UserID    int       `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TokenHash string    `json:"token_hash"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	LastSeen  time.Time `json:"last_seen"`
}

// SessionStore keeps active login sessions in Redis keyed by token hash,
// with a per-user set for logout-everywhere
type SessionStore struct {
	redis  *redis.Client
	logger *logger.Logger
	ctx    context.Context
}

// NewSessionStore creates a new session store
func NewSessionStore(redis *redis.Client, logger *logger.Logger) *SessionStore {
	return &SessionStore{
		redis:  redis,
		logger: logger,
		ctx:    context.Background(),
	}
}

// Store records a session under its token hash
func (s *SessionStore) Store(tokenHash string, session *Session, expiration time.Duration) error {
	key := fmt.Sprintf("session:%s", tokenHash)

	data, err := json.Marshal(session)
	if err != nil {
		s.logger.Errorw("Failed to marshal session", "email", session.Email, "error", err)
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	err = s.redis.Set(s.ctx, key, data, expiration).Err()
	if err != nil {
		s.logger.Errorw("Failed to store session in Redis", "email", session.Email, "error", err)
		return fmt.Errorf("failed to store session in Redis: %w", err)
	}

	// Track the hash in the user's session set for logout-everywhere
	userKey := fmt.Sprintf("user_sessions:%d", session.UserID)
	err = s.redis.SAdd(s.ctx, userKey, tokenHash).Err()
	if err != nil {
		s.logger.Warnw("Failed to add session to user's set", "user_id", session.UserID, "email", session.Email, "error", err)
	}

	// The set outlives the session slightly so revocation can still find it
	s.redis.Expire(s.ctx, userKey, expiration+time.Hour)

	s.logger.Infow("Session stored", "user_id", session.UserID, "email", session.Email, "token_hash", tokenHash[:8]+"...")
	return nil
}

// Validate checks that a session still exists for the token hash
func (s *SessionStore) Validate(tokenHash string) (*Session, error) {
	key := fmt.Sprintf("session:%s", tokenHash)

	data, err := s.redis.Get(s.ctx, key).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("session not found or expired")
	}
	if err != nil {
		s.logger.Errorw("Failed to get session from Redis", "error", err)
		return nil, fmt.Errorf("failed to get session from Redis: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		s.logger.Errorw("Failed to unmarshal session", "error", err)
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	session.LastSeen = time.Now()
	s.touch(tokenHash, &session)

	return &session, nil
}

// touch refreshes the last-seen timestamp without resetting the TTL (async)
func (s *SessionStore) touch(tokenHash string, session *Session) {
	go func() {
		key := fmt.Sprintf("session:%s", tokenHash)
		data, err := json.Marshal(session)
		if err != nil {
			s.logger.Warnw("Failed to marshal session for last-seen update", "email", session.Email, "error", err)
			return
		}

		ttl := s.redis.TTL(s.ctx, key).Val()
		if ttl > 0 {
			s.redis.Set(s.ctx, key, data, ttl)
		}
	}()
}

// Revoke removes a single session (logout)
func (s *SessionStore) Revoke(tokenHash string) error {
	key := fmt.Sprintf("session:%s", tokenHash)

	// Look the session up first so it can be dropped from the user's set
	session, err := s.Validate(tokenHash)
	if err == nil {
		userKey := fmt.Sprintf("user_sessions:%d", session.UserID)
		s.redis.SRem(s.ctx, userKey, tokenHash)
	}

	err = s.redis.Del(s.ctx, key).Err()
	if err != nil {
		s.logger.Errorw("Failed to revoke session", "error", err)
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	if session != nil {
		s.logger.Infow("Session revoked", "user_id", session.UserID, "email", session.Email, "token_hash", tokenHash[:8]+"...")
	} else {
		s.logger.Infow("Session revoked", "token_hash", tokenHash[:8]+"...")
	}
	return nil
}

// RevokeAllForUser removes every session for a user (logout from all devices)
func (s *SessionStore) RevokeAllForUser(userID int) error {
	userKey := fmt.Sprintf("user_sessions:%d", userID)

	tokenHashes, err := s.redis.SMembers(s.ctx, userKey).Result()
	if err != nil {
		s.logger.Errorw("Failed to get user sessions", "user_id", userID, "error", err)
		return fmt.Errorf("failed to get user sessions: %w", err)
	}

	pipe := s.redis.Pipeline()
	for _, tokenHash := range tokenHashes {
		pipe.Del(s.ctx, fmt.Sprintf("session:%s", tokenHash))
	}
	pipe.Del(s.ctx, userKey)

	_, err = pipe.Exec(s.ctx)
	if err != nil {
		s.logger.Errorw("Failed to revoke all user sessions", "user_id", userID, "error", err)
		return fmt.Errorf("failed to revoke all user sessions: %w", err)
	}

	s.logger.Infow("All user sessions revoked", "user_id", userID, "session_count", len(tokenHashes))
	return nil
}

// ActiveForUser returns the live sessions for a user
func (s *SessionStore) ActiveForUser(userID int) ([]Session, error) {
	userKey := fmt.Sprintf("user_sessions:%d", userID)

	tokenHashes, err := s.redis.SMembers(s.ctx, userKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user sessions: %w", err)
	}

	var sessions []Session
	for _, tokenHash := range tokenHashes {
		session, err := s.Validate(tokenHash)
		if err == nil {
			sessions = append(sessions, *session)
		}
	}

	return sessions, nil
}
