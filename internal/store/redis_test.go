// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/holologin/internal/auth"
	"github.com/holomush/holologin/internal/store"
	"github.com/holomush/holologin/pkg/errutil"
)

func newTestRedis(t *testing.T) (*store.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return store.NewRedisStore(client, ""), mr
}

func TestRedisStore_InsertAndLookup(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedis(t)

	require.NoError(t, s.EnsureSchema(ctx))
	require.NoError(t, s.InsertIfAbsent(ctx, "alice", "secret"))

	assert.Equal(t, "secret", mr.HGet(store.DefaultRedisKey, "alice"))

	password, found, err := s.Lookup(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "secret", password)

	_, found, err = s.Lookup(ctx, "Alice")
	require.NoError(t, err)
	assert.False(t, found, "lookup is case-sensitive")
}

func TestRedisStore_InsertCollision(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedis(t)

	require.NoError(t, s.InsertIfAbsent(ctx, "alice", "secret"))

	err := s.InsertIfAbsent(ctx, "alice", "other")
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrAlreadyExists))
	errutil.AssertErrorCode(t, err, "ACCOUNT_EXISTS")
	assert.Equal(t, "secret", mr.HGet(store.DefaultRedisKey, "alice"))
}

func TestRedisStore_CustomKey(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := store.NewRedisStore(client, "accounts")
	require.NoError(t, s.InsertIfAbsent(ctx, "alice", "secret"))

	assert.Equal(t, "secret", mr.HGet("accounts", "alice"))
	assert.False(t, mr.Exists(store.DefaultRedisKey))
}

func TestRedisStore_EnsureSchemaRejectsWrongType(t *testing.T) {
	s, mr := newTestRedis(t)
	require.NoError(t, mr.Set(store.DefaultRedisKey, "not a hash"))

	err := s.EnsureSchema(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrStoreUnavailable))
	errutil.AssertErrorCode(t, err, "STORE_UNAVAILABLE")
	errutil.AssertErrorContext(t, err, "key", store.DefaultRedisKey)
}

func TestRedisStore_ServerErrors(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedis(t)
	mr.SetError("LOADING server is loading")

	_, _, err := s.Lookup(ctx, "alice")
	errutil.AssertErrorCode(t, err, "STORE_LOOKUP_FAILED")

	err = s.InsertIfAbsent(ctx, "alice", "secret")
	errutil.AssertErrorCode(t, err, "STORE_INSERT_FAILED")

	err = s.EnsureSchema(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrStoreUnavailable))
}

func TestOpenRedis(t *testing.T) {
	t.Run("requires address", func(t *testing.T) {
		_, err := store.OpenRedis(context.Background(), "", "")
		errutil.AssertErrorCode(t, err, "STORE_OPEN_FAILED")
	})

	t.Run("server down", func(t *testing.T) {
		mr := miniredis.NewMiniRedis()
		require.NoError(t, mr.Start())
		addr := mr.Addr()
		mr.Close()

		_, err := store.OpenRedis(context.Background(), addr, "")
		errutil.AssertErrorCode(t, err, "STORE_OPEN_FAILED")
		errutil.AssertErrorContext(t, err, "addr", addr)
	})

	t.Run("connects", func(t *testing.T) {
		mr := miniredis.RunT(t)
		s, err := store.OpenRedis(context.Background(), mr.Addr(), "")
		require.NoError(t, err)
		assert.NoError(t, s.Close())
	})
}
