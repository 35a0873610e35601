// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package authtest provides test helpers for the auth package.
package authtest

import (
	"context"
	"sync"

	"github.com/samber/oops"

	"github.com/holomush/holologin/internal/auth"
)

// MemoryStore is a CredentialStore backed by a map. It counts calls so tests
// can assert whether the store was consulted.
type MemoryStore struct {
	mu       sync.Mutex
	accounts map[string]string

	Lookups int
	Inserts int

	// Err, when set, is returned by every operation.
	Err error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]string)}
}

// EnsureSchema is a no-op unless Err is set.
func (s *MemoryStore) EnsureSchema(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return oops.Code("STORE_UNAVAILABLE").Wrap(s.Err)
	}
	return nil
}

// Lookup returns the password stored for username.
func (s *MemoryStore) Lookup(_ context.Context, username string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Lookups++
	if s.Err != nil {
		return "", false, oops.Code("STORE_LOOKUP_FAILED").Wrap(s.Err)
	}
	password, ok := s.accounts[username]
	return password, ok, nil
}

// InsertIfAbsent stores the account unless username is taken.
func (s *MemoryStore) InsertIfAbsent(_ context.Context, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Inserts++
	if s.Err != nil {
		return oops.Code("STORE_INSERT_FAILED").Wrap(s.Err)
	}
	if _, ok := s.accounts[username]; ok {
		return oops.Code("ACCOUNT_EXISTS").With("username", username).Wrap(auth.ErrAlreadyExists)
	}
	s.accounts[username] = password
	return nil
}

// Password returns the stored value for username, for assertions.
func (s *MemoryStore) Password(username string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	password, ok := s.accounts[username]
	return password, ok
}

// Len returns the number of stored accounts.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

var _ auth.CredentialStore = (*MemoryStore)(nil)
