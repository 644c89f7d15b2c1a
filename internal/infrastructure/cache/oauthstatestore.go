package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// OAuthStatePrefix is the redis key prefix for OAuth state entries.
	OAuthStatePrefix = "oauth:state:"
	// OAuthStateTTL bounds how long an authorization redirect may take.
	OAuthStateTTL = 10 * time.Minute
)

// StateInfo holds what must survive the redirect round trip: the PKCE
// verifier and the provider the flow was started for.
type StateInfo struct {
	Provider     string    `json:"provider"`
	CodeVerifier string    `json:"code_verifier"`
	CreatedAt    time.Time `json:"created_at"`
}

// RedisStateStore stores one-time OAuth state entries in redis.
type RedisStateStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStateStore(client *redis.Client) *RedisStateStore {
	return &RedisStateStore{
		client: client,
		prefix: OAuthStatePrefix,
		ttl:    OAuthStateTTL,
	}
}

// Set stores the state entry with TTL.
func (s *RedisStateStore) Set(ctx context.Context, state, provider, codeVerifier string) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}
	if codeVerifier == "" {
		return errors.New("code_verifier cannot be empty")
	}

	data, err := json.Marshal(StateInfo{
		Provider:     provider,
		CodeVerifier: codeVerifier,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal state info: %w", err)
	}

	if err := s.client.Set(ctx, s.prefix+state, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store state in redis: %w", err)
	}
	return nil
}

// VerifyAndGet atomically consumes the state entry (GETDEL), so each state
// is single-use and replays fail.
func (s *RedisStateStore) VerifyAndGet(ctx context.Context, state string) (*StateInfo, error) {
	if state == "" {
		return nil, errors.New("state cannot be empty")
	}

	data, err := s.client.GetDel(ctx, s.prefix+state).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("state not found or expired")
		}
		return nil, fmt.Errorf("failed to get state from redis: %w", err)
	}

	var info StateInfo
	if err := json.Unmarshal([]byte(data), &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state info: %w", err)
	}
	return &info, nil
}
