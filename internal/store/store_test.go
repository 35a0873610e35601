// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/holologin/internal/auth"
	"github.com/holomush/holologin/internal/config"
	"github.com/holomush/holologin/pkg/errutil"
)

func fastBackoff(t *testing.T) {
	t.Helper()
	prev := connectBackoffBase
	connectBackoffBase = time.Millisecond
	t.Cleanup(func() { connectBackoffBase = prev })
}

func countingOpen(t *testing.T, failures int) *int {
	t.Helper()
	attempts := 0
	prev := openStore
	openStore = func(ctx context.Context, cfg config.StoreConfig) (Store, error) {
		attempts++
		if attempts <= failures {
			return nil, errors.New("connection refused")
		}
		return openDriver(ctx, cfg)
	}
	t.Cleanup(func() { openStore = prev })
	return &attempts
}

func sqliteConfig(t *testing.T) config.StoreConfig {
	return config.StoreConfig{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "users.db")}
}

func TestOpen_SQLite(t *testing.T) {
	s, err := Open(context.Background(), sqliteConfig(t))
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*SQLiteStore)
	assert.True(t, ok)
	require.NoError(t, s.EnsureSchema(context.Background()))
}

func TestOpen_EmptyDriverMeansSQLite(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Driver = ""

	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*SQLiteStore)
	assert.True(t, ok)
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := Open(context.Background(), config.StoreConfig{Driver: DriverRedis, RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.InsertIfAbsent(context.Background(), "alice", "secret"))
	assert.Equal(t, "secret", mr.HGet(DefaultRedisKey, "alice"))
}

func TestOpen_UnknownDriverIsNotRetried(t *testing.T) {
	fastBackoff(t)
	attempts := countingOpen(t, 0)

	_, err := Open(context.Background(), config.StoreConfig{Driver: "mysql", ConnectRetries: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrStoreUnavailable))
	assert.True(t, errors.Is(err, errUnknownDriver))
	errutil.AssertErrorCode(t, err, "STORE_UNAVAILABLE")
	errutil.AssertErrorContext(t, err, "driver", "mysql")
	assert.Equal(t, 1, *attempts)
}

func TestOpen_NoRetriesByDefault(t *testing.T) {
	fastBackoff(t)
	attempts := countingOpen(t, 1)

	_, err := Open(context.Background(), sqliteConfig(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrStoreUnavailable))
	assert.Equal(t, 1, *attempts)
}

func TestOpen_RetriesUntilConnected(t *testing.T) {
	fastBackoff(t)
	attempts := countingOpen(t, 2)

	cfg := sqliteConfig(t)
	cfg.ConnectRetries = 3

	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, 3, *attempts)
}

func TestOpen_GivesUpAfterRetries(t *testing.T) {
	fastBackoff(t)
	attempts := countingOpen(t, 10)

	cfg := sqliteConfig(t)
	cfg.ConnectRetries = 2

	_, err := Open(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrStoreUnavailable))
	assert.Equal(t, 3, *attempts)
}

func TestOpen_MissingDirectory(t *testing.T) {
	cfg := config.StoreConfig{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "nope", "users.db")}

	_, err := Open(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrStoreUnavailable))
}
