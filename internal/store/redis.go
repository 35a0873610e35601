// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/samber/oops"

	"github.com/holomush/holologin/internal/auth"
)

// DefaultRedisKey is the hash holding username -> password fields.
const DefaultRedisKey = "holologin:users"

// RedisStore implements auth.CredentialStore as fields of one Redis hash.
type RedisStore struct {
	client *redis.Client
	key    string
}

// OpenRedis connects to the Redis server at addr.
func OpenRedis(ctx context.Context, addr, key string) (*RedisStore, error) {
	if addr == "" {
		return nil, oops.Code("STORE_OPEN_FAILED").Errorf("redis address is required")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close() //nolint:errcheck // ping error takes precedence
		return nil, oops.Code("STORE_OPEN_FAILED").
			With("operation", "ping").
			With("addr", addr).
			Wrap(err)
	}
	return NewRedisStore(client, key), nil
}

// NewRedisStore creates a RedisStore over an existing client.
// An empty key selects DefaultRedisKey.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// EnsureSchema checks that the server answers and that the key is either
// unset or a hash. Redis creates the hash on first insert.
func (s *RedisStore) EnsureSchema(ctx context.Context) error {
	kind, err := s.client.Type(ctx, s.key).Result()
	if err != nil {
		return unavailable(err, "operation", "inspect key", "key", s.key)
	}
	if kind != "none" && kind != "hash" {
		return unavailable(
			oops.Errorf("key %q holds a %s, not a hash", s.key, kind),
			"operation", "inspect key", "key", s.key,
		)
	}
	return nil
}

// Lookup returns the password field for username.
func (s *RedisStore) Lookup(ctx context.Context, username string) (string, bool, error) {
	password, err := s.client.HGet(ctx, s.key, username).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, oops.Code("STORE_LOOKUP_FAILED").
			With("operation", "hget").
			With("username", username).
			Wrap(err)
	}
	return password, true, nil
}

// InsertIfAbsent sets the field with HSETNX, which Redis applies atomically.
func (s *RedisStore) InsertIfAbsent(ctx context.Context, username, password string) error {
	created, err := s.client.HSetNX(ctx, s.key, username, password).Result()
	if err != nil {
		return oops.Code("STORE_INSERT_FAILED").
			With("operation", "hsetnx").
			With("username", username).
			Wrap(err)
	}
	if !created {
		return alreadyExists(username)
	}
	return nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	if err := s.client.Close(); err != nil {
		return oops.Code("STORE_CLOSE_FAILED").Wrap(err)
	}
	return nil
}

// Compile-time interface check.
var _ auth.CredentialStore = (*RedisStore)(nil)
