// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import "errors"

// ErrAlreadyExists is returned by CredentialStore.InsertIfAbsent when the
// username is already taken. It is the expected collision path, not a fault.
var ErrAlreadyExists = errors.New("account already exists")

// ErrStoreUnavailable is returned when the credential store cannot be opened
// or its schema cannot be created. A session cannot start without a store.
var ErrStoreUnavailable = errors.New("credential store unavailable")
