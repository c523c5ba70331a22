package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Prashgeek/attendance-tracking-system/internal/auth"
	"github.com/Prashgeek/attendance-tracking-system/internal/config"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase"
)

func newTestAuthHandler(production bool) *AuthHandler {
	logger := zap.NewNop()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	authUC := usecase.NewAuthUseCase(logger, nil, tokens, usecase.NewAuditUseCase(logger, nil, nil), config.AuthConfig{JWTSecret: "test-secret"})
	return NewAuthHandler(logger, authUC, config.AuthConfig{}, production)
}

func TestAuthHandler_LogoutClearsCookie(t *testing.T) {
	h := newTestAuthHandler(false)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "att_token", cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.False(t, cookie.Secure)
}

func TestAuthHandler_SessionCookieAttributes(t *testing.T) {
	h := newTestAuthHandler(true)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h.setSessionCookie(c, "signed-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "att_token", cookie.Name)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	// Production deployments run behind TLS.
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
}
