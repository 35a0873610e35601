// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/samber/oops"
	// Register the pure-Go "sqlite" database/sql driver.
	_ "modernc.org/sqlite"

	"github.com/holomush/holologin/internal/auth"
)

// DefaultSQLitePath is the store file used when no path is configured.
const DefaultSQLitePath = "users.db"

// SQLiteStore implements auth.CredentialStore on a single SQLite file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the SQLite file at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		path = DefaultSQLitePath
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, oops.Code("STORE_OPEN_FAILED").
			With("operation", "open sqlite").
			With("path", path).
			Wrap(err)
	}
	// Store access is sequential; one connection also keeps :memory: databases intact.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close() //nolint:errcheck // ping error takes precedence
		return nil, oops.Code("STORE_OPEN_FAILED").
			With("operation", "ping sqlite").
			With("path", path).
			Wrap(err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// NewSQLiteStore wraps an already open database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// EnsureSchema creates the users table if absent.
func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return unavailable(err, "operation", "create users table", "path", s.path)
	}
	return nil
}

// Lookup returns the stored password for username. SQLite's default BINARY
// collation makes the comparison exact and case-sensitive.
func (s *SQLiteStore) Lookup(ctx context.Context, username string) (string, bool, error) {
	var password string
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(password, '') FROM users WHERE username = ?`,
		username,
	).Scan(&password)
	if errors.Is(err, sql.ErrNoRows) {
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

// InsertIfAbsent inserts the account unless the primary key is taken.
// The conflict is resolved by SQLite itself, so no row is ever duplicated.
func (s *SQLiteStore) InsertIfAbsent(ctx context.Context, username, password string) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES (?, ?) ON CONFLICT(username) DO NOTHING`,
		username, password,
	)
	if err != nil {
		return oops.Code("STORE_INSERT_FAILED").
			With("operation", "insert user").
			With("username", username).
			Wrap(err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return oops.Code("STORE_INSERT_FAILED").
			With("operation", "rows affected").
			With("username", username).
			Wrap(err)
	}
	if n == 0 {
		return alreadyExists(username)
	}
	return nil
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return oops.Code("STORE_CLOSE_FAILED").With("path", s.path).Wrap(err)
	}
	return nil
}

// Compile-time interface check.
var _ auth.CredentialStore = (*SQLiteStore)(nil)
