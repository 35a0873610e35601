// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"unicode"
	"unicode/utf8"

	"github.com/samber/oops"
)

// DefaultMaxInputLength is the input buffer size L. Fields hold at most L-1
// characters.
const DefaultMaxInputLength = 50

// Account is a stored (username, password) pair. Accounts are never mutated
// once created.
type Account struct {
	Username string
	Password string
}

// NewAccount validates username and password against the field rules for
// buffers of size maxInputLength and returns the account.
//
// Both values must be non-empty valid UTF-8, at most maxInputLength-1
// characters, and free of control characters.
func NewAccount(username, password string, maxInputLength int) (Account, error) {
	if err := validateField("username", username, maxInputLength); err != nil {
		return Account{}, err
	}
	if err := validateField("password", password, maxInputLength); err != nil {
		return Account{}, err
	}
	return Account{Username: username, Password: password}, nil
}

func validateField(field, value string, maxInputLength int) error {
	if value == "" {
		return oops.Code("AUTH_INVALID_ACCOUNT").
			With("field", field).
			Errorf("%s cannot be empty", field)
	}
	if !utf8.ValidString(value) {
		return oops.Code("AUTH_INVALID_ACCOUNT").
			With("field", field).
			Errorf("%s must be valid UTF-8", field)
	}
	if n := utf8.RuneCountInString(value); n > maxInputLength-1 {
		return oops.Code("AUTH_INVALID_ACCOUNT").
			With("field", field).
			With("max", maxInputLength-1).
			Errorf("%s must be at most %d characters", field, maxInputLength-1)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return oops.Code("AUTH_INVALID_ACCOUNT").
				With("field", field).
				Errorf("%s contains control characters", field)
		}
	}
	return nil
}
