// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package store provides credential store implementations.
package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"

	"github.com/holomush/holologin/internal/auth"
	"github.com/holomush/holologin/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// connectBackoffBase is the first delay between connection attempts.
var connectBackoffBase = 250 * time.Millisecond

var errUnknownDriver = errors.New("unknown store driver")

// openStore is replaced in tests to observe connection attempts.
var openStore = openDriver

// Store is a CredentialStore that holds a connection to release on exit.
type Store interface {
	auth.CredentialStore
	Close() error
}

// Open connects to the store selected by cfg.Driver. Connection failures are
// retried cfg.ConnectRetries times; the default of zero means one attempt.
// The returned error wraps auth.ErrStoreUnavailable.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	var opened Store

	backoff := retry.WithMaxRetries(cfg.ConnectRetries, retry.NewExponential(connectBackoffBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		s, err := openStore(ctx, cfg)
		if err != nil {
			if errors.Is(err, errUnknownDriver) {
				return err
			}
			return retry.RetryableError(err)
		}
		opened = s
		return nil
	})
	if err != nil {
		return nil, unavailable(err, "driver", cfg.Driver)
	}
	return opened, nil
}

func openDriver(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		return OpenSQLite(ctx, cfg.Path)
	case DriverPostgres:
		return OpenPostgres(ctx, cfg.DSN)
	case DriverRedis:
		return OpenRedis(ctx, cfg.RedisAddr, cfg.RedisKey)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownDriver, cfg.Driver)
	}
}

// unavailable wraps err so that errors.Is(err, auth.ErrStoreUnavailable) holds.
func unavailable(err error, kv ...any) error {
	return oops.Code("STORE_UNAVAILABLE").
		With(kv...).
		Wrap(fmt.Errorf("%w: %w", auth.ErrStoreUnavailable, err))
}

// alreadyExists wraps auth.ErrAlreadyExists for username.
func alreadyExists(username string) error {
	return oops.Code("ACCOUNT_EXISTS").
		With("username", username).
		Wrap(auth.ErrAlreadyExists)
}
