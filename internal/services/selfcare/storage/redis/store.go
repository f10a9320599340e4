// Package redis provides the selfcare session store backed by Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/haqatak/telcoco/internal/platform/timeouts"
	"github.com/haqatak/telcoco/internal/services/selfcare/session"
)

// KeyPrefix namespaces session keys.
const KeyPrefix = "selfcare:session:"

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	// TTL expires idle sessions. Zero keeps them until logout.
	TTL time.Duration
}

// Store persists session state as JSON values.
type Store struct {
	client *goredis.Client
	ttl    time.Duration
}

// Open connects to Redis and checks the connection.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if strings.TrimSpace(opts.Addr) == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: timeouts.StoreDial,
	})
	pingCtx, cancel := context.WithTimeout(ctx, timeouts.StoreDial)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Store{client: client, ttl: opts.TTL}, nil
}

// Close releases the client.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Get loads session state by id.
func (s *Store) Get(ctx context.Context, id string) (session.State, error) {
	if s == nil || s.client == nil {
		return session.State{}, fmt.Errorf("storage is not configured")
	}
	raw, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return session.State{}, session.ErrNotFound
	}
	if err != nil {
		return session.State{}, fmt.Errorf("get session: %w", err)
	}
	var state session.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return session.State{}, fmt.Errorf("decode session: %w", err)
	}
	return state, nil
}

// Put stores session state by id.
func (s *Store) Put(ctx context.Context, id string, state session.State) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("session id is required")
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, key(id), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// Delete removes session state by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func key(id string) string {
	return KeyPrefix + strings.TrimSpace(id)
}

var _ session.Store = (*Store)(nil)
