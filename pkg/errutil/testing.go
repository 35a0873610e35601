// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package errutil

import (
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorCode asserts that err is an oops error carrying code want.
// oops reports the innermost code in the chain.
func AssertErrorCode(t testing.TB, err error, want string) {
	t.Helper()
	require.Error(t, err)
	_, ok := oops.AsOops(err)
	require.Truef(t, ok, "expected oops error, got %T: %v", err, err)
	assert.Equalf(t, want, Code(err), "error: %v", err)
}

// AssertErrorContext asserts that the merged oops context of err maps key to want.
func AssertErrorContext(t testing.TB, err error, key string, want any) {
	t.Helper()
	require.Error(t, err)
	oopsErr, ok := oops.AsOops(err)
	require.Truef(t, ok, "expected oops error, got %T: %v", err, err)
	ctx := oopsErr.Context()
	if assert.Containsf(t, ctx, key, "error: %v", err) {
		assert.Equal(t, want, ctx[key])
	}
}
