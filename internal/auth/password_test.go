package auth_test

import (
	"testing"

	"github.com/Prashgeek/attendance-tracking-system/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, auth.VerifyPassword(hash, "secret123"))
	assert.Error(t, auth.VerifyPassword(hash, "secret124"))
	assert.Error(t, auth.VerifyPassword(hash, ""))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	// bcrypt salts every hash, so equal inputs must not collide.
	first, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	second, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
