// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package store

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"

	"github.com/holomush/holologin/internal/auth"
)

// pgPool is the subset of pgxpool.Pool used by PostgresStore.
// pgxmock.PgxPoolIface satisfies it in tests.
type pgPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements auth.CredentialStore using PostgreSQL.
type PostgresStore struct {
	pool pgPool
}

// OpenPostgres connects to the database at dsn.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	if dsn == "" {
		return nil, oops.Code("STORE_OPEN_FAILED").Errorf("postgres dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, oops.Code("STORE_OPEN_FAILED").With("operation", "create pool").Wrap(err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, oops.Code("STORE_OPEN_FAILED").With("operation", "ping").Wrap(err)
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresStore creates a PostgresStore over an existing pool.
func NewPostgresStore(pool pgPool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the users table if absent.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return unavailable(err, "operation", "create users table")
	}
	return nil
}

// Lookup returns the stored password for an exact username match.
func (s *PostgresStore) Lookup(ctx context.Context, username string) (string, bool, error) {
	var password string
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(password, '') FROM users WHERE username = $1`,
		username,
	).Scan(&password)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, oops.Code("STORE_LOOKUP_FAILED").
			With("operation", "select password").
			With("username", username).
			Wrap(err)
	}
	return password, true, nil
}

// InsertIfAbsent inserts the account. A primary key violation reports
// auth.ErrAlreadyExists.
func (s *PostgresStore) InsertIfAbsent(ctx context.Context, username, password string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2)`,
		username, password,
	)
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return alreadyExists(username)
	}
	return oops.Code("STORE_INSERT_FAILED").
		With("operation", "insert user").
		With("username", username).
		Wrap(err)
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Compile-time interface check.
var _ auth.CredentialStore = (*PostgresStore)(nil)
