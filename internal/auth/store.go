// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import "context"

// CredentialStore persists accounts as a username -> password relation.
type CredentialStore interface {
	// EnsureSchema creates the account relation if absent. It is idempotent.
	// Failures wrap ErrStoreUnavailable.
	EnsureSchema(ctx context.Context) error

	// Lookup returns the stored password for an exact, case-sensitive
	// username match. found is false when no such account exists.
	Lookup(ctx context.Context, username string) (password string, found bool, err error)

	// InsertIfAbsent atomically stores the account iff the username is free.
	// Returns an error wrapping ErrAlreadyExists on collision.
	InsertIfAbsent(ctx context.Context, username, password string) error
}
