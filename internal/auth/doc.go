// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package auth provides credential enrollment and verification for holologin.
//
// # Domain Types
//
// Accounts should be created with NewAccount, which enforces the username and
// password rules. Outcome values report the result of a submit attempt and are
// built with Pending, Success and Failure.
//
// # Store Contract
//
// CredentialStore is the narrow persistence contract the engine consumes:
// create the schema if absent, look up a password by exact username, and
// insert an account only when the username is free. Implementations live in
// internal/store.
//
// # Engine
//
// Engine.SignIn and Engine.SignUp never return errors. Every failure,
// including store failures, becomes a Failure outcome with a user-facing
// message; the underlying error is logged.
package auth
