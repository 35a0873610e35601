// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/samber/oops"
	"golang.org/x/crypto/argon2"
)

// Password storage schemes.
const (
	SchemePlain    = "plain"
	SchemeArgon2id = "argon2id"
)

// OWASP-recommended argon2id parameters.
const (
	argon2Time    = 1         // iterations
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4         // parallelism
	argon2SaltLen = 16        // salt length in bytes
	argon2KeyLen  = 32        // output length in bytes
)

// decoyArgon2Hash is verified against when a username does not exist so that
// unknown and known usernames cost the same.
//
//nolint:gosec // G101: fake hash that never matches, not a credential
const decoyArgon2Hash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// PasswordCodec turns a typed password into its stored form and checks a
// typed password against a stored one.
type PasswordCodec interface {
	// Encode returns the value to persist for password.
	Encode(password string) (string, error)

	// Verify reports whether password matches stored.
	// Returns (false, nil) on mismatch and an error only for a malformed stored value.
	Verify(password, stored string) (bool, error)

	// Decoy returns a stored value to verify against when no account exists.
	Decoy() string
}

// NewCodec returns the codec for scheme.
func NewCodec(scheme string) (PasswordCodec, error) {
	switch scheme {
	case SchemePlain, "":
		return PlainCodec{}, nil
	case SchemeArgon2id:
		return Argon2idCodec{}, nil
	default:
		return nil, oops.Code("AUTH_UNKNOWN_SCHEME").
			With("scheme", scheme).
			Errorf("unknown password scheme %q", scheme)
	}
}

// PlainCodec stores passwords as typed and compares them byte for byte.
type PlainCodec struct{}

// Encode returns password unchanged.
func (PlainCodec) Encode(password string) (string, error) {
	return password, nil
}

// Verify compares the exact bytes of password and stored.
func (PlainCodec) Verify(password, stored string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1, nil
}

// Decoy returns the empty string, which no non-empty password matches.
func (PlainCodec) Decoy() string { return "" }

// Argon2idCodec stores PHC-encoded argon2id hashes.
type Argon2idCodec struct{}

// Encode produces an argon2id hash of the password.
func (Argon2idCodec) Encode(password string) (string, error) {
	if password == "" {
		return "", oops.Code("AUTH_EMPTY_PASSWORD").Errorf("password cannot be empty")
	}

	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", oops.Code("AUTH_SALT_FAILED").Wrap(err)
	}

	hash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory,
		argon2Time,
		argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// Verify checks password against a PHC-encoded argon2id hash.
func (Argon2idCodec) Verify(password, stored string) (bool, error) {
	parts := strings.Split(stored, "$")
	if len(parts) != 6 {
		return false, oops.Code("AUTH_INVALID_HASH").Errorf("invalid hash format")
	}
	if parts[1] != "argon2id" {
		return false, oops.Code("AUTH_INVALID_HASH").Errorf("unsupported hash algorithm: %s", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, oops.Code("AUTH_INVALID_HASH").Wrap(err)
	}

	var memory, iterations, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, oops.Code("AUTH_INVALID_HASH").Wrap(err)
	}
	if threads == 0 || threads > 255 {
		return false, oops.Code("AUTH_INVALID_HASH").Errorf("threads value %d out of range", threads)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, oops.Code("AUTH_INVALID_HASH").Wrap(err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, oops.Code("AUTH_INVALID_HASH").Wrap(err)
	}

	keyLen := len(expected)
	if keyLen == 0 || keyLen > 1<<10 {
		return false, oops.Code("AUTH_INVALID_HASH").Errorf("invalid hash key length: %d", keyLen)
	}

	computed := argon2.IDKey([]byte(password), salt, iterations, memory, uint8(threads), uint32(keyLen))
	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}

// Decoy returns a well-formed hash that matches nothing.
func (Argon2idCodec) Decoy() string { return decoyArgon2Hash }
