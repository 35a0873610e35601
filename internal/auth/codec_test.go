// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/holologin/internal/auth"
	"github.com/holomush/holologin/pkg/errutil"
)

func TestNewCodec(t *testing.T) {
	plain, err := auth.NewCodec(auth.SchemePlain)
	require.NoError(t, err)
	assert.IsType(t, auth.PlainCodec{}, plain)

	empty, err := auth.NewCodec("")
	require.NoError(t, err)
	assert.IsType(t, auth.PlainCodec{}, empty)

	argon, err := auth.NewCodec(auth.SchemeArgon2id)
	require.NoError(t, err)
	assert.IsType(t, auth.Argon2idCodec{}, argon)

	_, err = auth.NewCodec("md5")
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "AUTH_UNKNOWN_SCHEME")
}

func TestPlainCodec(t *testing.T) {
	codec := auth.PlainCodec{}

	stored, err := codec.Encode("secret")
	require.NoError(t, err)
	assert.Equal(t, "secret", stored, "plain scheme stores the password as typed")

	tests := []struct {
		name     string
		password string
		stored   string
		want     bool
	}{
		{"exact match", "secret", "secret", true},
		{"case differs", "Secret", "secret", false},
		{"prefix", "secre", "secret", false},
		{"trailing space", "secret ", "secret", false},
		{"decoy never matches", "secret", codec.Decoy(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := codec.Verify(tt.password, tt.stored)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestArgon2idCodec_RoundTrip(t *testing.T) {
	codec := auth.Argon2idCodec{}

	hash, err := codec.Encode("secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))

	ok, err := codec.Verify("secret", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = codec.Verify("other", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2idCodec_SaltsDiffer(t *testing.T) {
	codec := auth.Argon2idCodec{}
	a, err := codec.Encode("secret")
	require.NoError(t, err)
	b, err := codec.Encode("secret")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestArgon2idCodec_EmptyPassword(t *testing.T) {
	_, err := auth.Argon2idCodec{}.Encode("")
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "AUTH_EMPTY_PASSWORD")
}

func TestArgon2idCodec_DecoyIsWellFormed(t *testing.T) {
	codec := auth.Argon2idCodec{}
	ok, err := codec.Verify("anything", codec.Decoy())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2idCodec_InvalidHash(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"cleartext", "secret"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$AAAA$AAAA"},
		{"bad version", "$argon2id$v=x$m=65536,t=1,p=4$AAAA$AAAA"},
		{"bad params", "$argon2id$v=19$m=x$AAAA$AAAA"},
		{"too many threads", "$argon2id$v=19$m=65536,t=1,p=300$AAAA$AAAA"},
		{"bad salt", "$argon2id$v=19$m=65536,t=1,p=4$!!!$AAAA"},
		{"empty key", "$argon2id$v=19$m=65536,t=1,p=4$AAAA$"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := auth.Argon2idCodec{}.Verify("secret", tt.stored)
			require.Error(t, err)
			assert.False(t, ok)
			errutil.AssertErrorCode(t, err, "AUTH_INVALID_HASH")
		})
	}
}
