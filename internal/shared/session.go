package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionManager orchestrates bearer-token sessions backed by Redis. The
// token travels in the Authorization header; nothing about the session is
// ambient — handlers receive it explicitly through the request context.
type SessionManager struct {
	client *redis.Client
	ttl    time.Duration
}

// Session holds per-request session data resolved from a bearer token.
type Session struct {
	Token     string
	UserID    int64
	Email     string
	Roles     []string
	ExpiresAt time.Time
}

type sessionPayload struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSessionManager constructs a SessionManager.
func NewSessionManager(client *redis.Client, ttl time.Duration) *SessionManager {
	return &SessionManager{client: client, ttl: ttl}
}

// Issue creates a new session for the user and returns the bearer token.
func (sm *SessionManager) Issue(ctx context.Context, userID int64, email string, roles []string) (*Session, error) {
	sess := &Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Email:     email,
		Roles:     roles,
		ExpiresAt: time.Now().Add(sm.ttl),
	}
	payload, err := json.Marshal(sessionPayload{
		UserID:    sess.UserID,
		Email:     sess.Email,
		Roles:     sess.Roles,
		ExpiresAt: sess.ExpiresAt,
	})
	if err != nil {
		return nil, err
	}
	if err := sm.client.Set(ctx, sessionKeyPrefix+sess.Token, payload, sm.ttl).Err(); err != nil {
		return nil, err
	}
	return sess, nil
}

// Load resolves the bearer token on the request into a session. A missing
// header yields (nil, nil): anonymous requests are not an error, route guards
// decide whether they are allowed.
func (sm *SessionManager) Load(ctx context.Context, r *http.Request) (*Session, error) {
	token := bearerToken(r)
	if token == "" {
		return nil, nil
	}
	payload, err := sm.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}
	var stored sessionPayload
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, err
	}
	return &Session{
		Token:     token,
		UserID:    stored.UserID,
		Email:     stored.Email,
		Roles:     stored.Roles,
		ExpiresAt: stored.ExpiresAt,
	}, nil
}

// Revoke deletes the session for the given token.
func (sm *SessionManager) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := sm.client.Del(ctx, sessionKeyPrefix+token).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

// Touch extends the session TTL on activity.
func (sm *SessionManager) Touch(ctx context.Context, sess *Session) error {
	if sess == nil {
		return nil
	}
	return sm.client.Expire(ctx, sessionKeyPrefix+sess.Token, sm.ttl).Err()
}

// HasRole reports whether the session carries the named role.
func (s *Session) HasRole(role string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
