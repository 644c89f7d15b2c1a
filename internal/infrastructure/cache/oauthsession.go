package cache

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// OAuthSessionPrefix is the redis key prefix for handshake sessions.
	OAuthSessionPrefix = "oauth:session:"
	// DefaultSessionTTL matches the session cookie lifetime the frontend
	// contract assumes, although entries normally live only seconds.
	DefaultSessionTTL = 24 * time.Hour
)

// OAuthSessionStore is the session carrier bridging the two legs of an
// OAuth redirect. It maps an opaque session id to an account identifier and
// nothing else; the account itself is always re-read from the record store.
type OAuthSessionStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewOAuthSessionStore(client *redis.Client, ttl time.Duration) *OAuthSessionStore {
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}
	return &OAuthSessionStore{
		client: client,
		prefix: OAuthSessionPrefix,
		ttl:    ttl,
	}
}

// Serialize stores the account identifier under a fresh opaque session id.
func (s *OAuthSessionStore) Serialize(ctx context.Context, userID uint) (string, error) {
	if userID == 0 {
		return "", errors.New("user ID cannot be zero")
	}

	sessionID, err := generateSessionID()
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}

	key := s.prefix + sessionID
	if err := s.client.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session in redis: %w", err)
	}
	return sessionID, nil
}

// Deserialize returns the account identifier for the session id, or zero
// when the session is unknown or expired. An unknown session is not an
// error; the caller falls back to unauthenticated.
func (s *OAuthSessionStore) Deserialize(ctx context.Context, sessionID string) (uint, error) {
	if sessionID == "" {
		return 0, nil
	}

	val, err := s.client.Get(ctx, s.prefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get session from redis: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value: %w", err)
	}
	return uint(userID), nil
}

// Discard tears the session down. Called right after the bearer token is
// issued; the handshake session is single-use.
func (s *OAuthSessionStore) Discard(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.prefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
