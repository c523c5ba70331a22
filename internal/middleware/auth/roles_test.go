package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Prashgeek/attendance-tracking-system/internal/auth"
	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
	"github.com/Prashgeek/attendance-tracking-system/internal/errors"
	authmw "github.com/Prashgeek/attendance-tracking-system/internal/middleware/auth"
)

func runRoleGate(t *testing.T, identity *auth.Identity, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	gate := authmw.RoleGateConfig{Logger: zap.NewNop()}
	e.GET("/gated", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, authmw.RequireRoles(gate, allowed...))

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	if identity != nil {
		ctx := authmw.WithIdentity(context.Background(), identity)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireRoles(t *testing.T) {
	t.Run("allowed role passes", func(t *testing.T) {
		rec := runRoleGate(t, &auth.Identity{ID: "u-1", Role: model.RoleAdmin}, model.RoleAdmin, model.RoleTeacher)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("disallowed role is forbidden", func(t *testing.T) {
		rec := runRoleGate(t, &auth.Identity{ID: "u-1", Role: model.RoleStudent}, model.RoleAdmin)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, errors.CodeForbidden, decodeErrorBody(t, rec).Code)
	})

	t.Run("missing identity is unauthenticated", func(t *testing.T) {
		rec := runRoleGate(t, nil, model.RoleAdmin)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, errors.CodeAuthenticationRequired, decodeErrorBody(t, rec).Code)
	})
}
