package auth

import (
	"fmt"

	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
	"github.com/Prashgeek/attendance-tracking-system/internal/errors"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RoleGateConfig holds the role gate's logging hooks.
type RoleGateConfig struct {
	Logger *zap.Logger
	// Audit receives forbidden-role events. May be nil.
	Audit *usecase.AuditUseCase
}

// RequireRoles rejects requests whose session identity's role is not in
// allowedRoles. It runs after SessionMiddleware and before the handler, so
// a role mismatch short-circuits all side effects. The attempted role goes
// to the server-side log, not the client response.
func RequireRoles(config RoleGateConfig, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := IdentityFromContext(c)
			if err != nil {
				return errors.WriteJSON(c, err)
			}

			if _, ok := allowed[identity.Role]; !ok {
				config.Logger.Warn("role not permitted for route",
					zap.String("user_id", identity.ID),
					zap.String("role", identity.Role),
					zap.String("path", c.Request().URL.Path))
				if config.Audit != nil {
					config.Audit.Record(c.Request().Context(), model.AuditForbiddenRole,
						identity.Email, &identity.ID, c.RealIP(), c.Request().UserAgent(),
						map[string]interface{}{
							"role": identity.Role,
							"path": c.Request().URL.Path,
						})
				}
				return errors.WriteJSON(c, errors.Forbidden(
					fmt.Sprintf("Access denied. %s role does not have permission.", identity.Role)))
			}

			return next(c)
		}
	}
}
