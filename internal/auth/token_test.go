package auth_test

import (
	"testing"
	"time"

	"github.com/Prashgeek/attendance-tracking-system/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	signed, err := tokens.Issue(auth.Identity{ID: "u-1", Email: "a@b.com", Role: "teacher"}, time.Now())
	require.NoError(t, err)

	identity, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.ID)
	assert.Equal(t, "a@b.com", identity.Email)
	assert.Equal(t, "teacher", identity.Role)
}

func TestTokenExpired(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	signed, err := tokens.Issue(auth.Identity{ID: "u-1"}, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = tokens.Parse(signed)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", time.Hour)
	verifier := auth.NewTokenManager("secret-b", time.Hour)

	signed, err := issuer.Issue(auth.Identity{ID: "u-1"}, time.Now())
	require.NoError(t, err)

	_, err = verifier.Parse(signed)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	_, err := tokens.Parse("not-a-token")
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestTokenMissingSubject(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	signed, err := tokens.Issue(auth.Identity{Email: "a@b.com"}, time.Now())
	require.NoError(t, err)

	_, err = tokens.Parse(signed)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}
