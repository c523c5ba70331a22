package auth

import (
	"context"

	"github.com/Prashgeek/attendance-tracking-system/internal/auth"
	"github.com/Prashgeek/attendance-tracking-system/internal/errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// contextKey is used for storing the session identity in the request context.
type contextKey string

const identityContextKey contextKey = "session_identity"

// SessionConfig holds the configuration for the session middleware.
type SessionConfig struct {
	// CookieName is the session cookie carrying the signed token.
	CookieName string
	Tokens     *auth.TokenManager
	Logger     *zap.Logger
}

// SessionMiddleware validates the session cookie and attaches the decoded
// identity to the request context. It never re-fetches the account, so the
// embedded role can go stale until the token expires. The middleware swaps
// in a request with a derived context rather than mutating shared state.
func SessionMiddleware(config SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(config.CookieName)
			if err != nil || cookie.Value == "" {
				return errors.WriteJSON(c, errors.Unauthenticated("Authentication required. Please login."))
			}

			identity, err := config.Tokens.Parse(cookie.Value)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					return errors.WriteJSON(c, errors.NewAppError(
						errors.CodeSessionExpired, "Session expired. Please login again.", nil))
				}
				config.Logger.Warn("invalid session token",
					zap.String("path", c.Request().URL.Path),
					zap.Error(err))
				return errors.WriteJSON(c, errors.NewAppError(
					errors.CodeInvalidSession, "Invalid authentication token.", nil))
			}

			ctx := context.WithValue(c.Request().Context(), identityContextKey, identity)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// IdentityFromContext extracts the session identity attached by
// SessionMiddleware.
func IdentityFromContext(c echo.Context) (*auth.Identity, error) {
	identity, ok := c.Request().Context().Value(identityContextKey).(*auth.Identity)
	if !ok || identity == nil {
		return nil, errors.Unauthenticated("Authentication required.")
	}
	return identity, nil
}

// WithIdentity returns a copy of ctx carrying the identity. Used by tests
// and by handlers that call usecases outside the echo request flow.
func WithIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}
