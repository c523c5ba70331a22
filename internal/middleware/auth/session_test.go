package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Prashgeek/attendance-tracking-system/internal/auth"
	"github.com/Prashgeek/attendance-tracking-system/internal/errors"
	authmw "github.com/Prashgeek/attendance-tracking-system/internal/middleware/auth"
)

const testCookieName = "att_token"

func sessionTestHandler(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := authmw.IdentityFromContext(c)
		require.NoError(t, err)
		return c.JSON(http.StatusOK, map[string]string{"id": identity.ID, "role": identity.Role})
	}
}

func runSession(t *testing.T, tokens *auth.TokenManager, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	mw := authmw.SessionMiddleware(authmw.SessionConfig{
		CookieName: testCookieName,
		Tokens:     tokens,
		Logger:     zap.NewNop(),
	})
	e.GET("/protected", sessionTestHandler(t), mw)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errors.ErrorBody {
	t.Helper()
	var body errors.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSessionMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	t.Run("missing cookie", func(t *testing.T) {
		rec := runSession(t, tokens, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.False(t, body.Success)
		assert.Equal(t, errors.CodeAuthenticationRequired, body.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		signed, err := tokens.Issue(auth.Identity{ID: "u-1"}, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		rec := runSession(t, tokens, &http.Cookie{Name: testCookieName, Value: signed})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, errors.CodeSessionExpired, decodeErrorBody(t, rec).Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		other := auth.NewTokenManager("other-secret", time.Hour)
		signed, err := other.Issue(auth.Identity{ID: "u-1"}, time.Now())
		require.NoError(t, err)

		rec := runSession(t, tokens, &http.Cookie{Name: testCookieName, Value: signed})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, errors.CodeInvalidSession, decodeErrorBody(t, rec).Code)
	})

	t.Run("valid token reaches the handler with its identity", func(t *testing.T) {
		signed, err := tokens.Issue(auth.Identity{ID: "u-1", Email: "a@b.com", Role: "admin"}, time.Now())
		require.NoError(t, err)

		rec := runSession(t, tokens, &http.Cookie{Name: testCookieName, Value: signed})

		assert.Equal(t, http.StatusOK, rec.Code)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "u-1", payload["id"])
		assert.Equal(t, "admin", payload["role"])
	})
}
