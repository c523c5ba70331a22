package http

import (
	"net/http"
	"time"

	"github.com/Prashgeek/attendance-tracking-system/internal/config"
	"github.com/Prashgeek/attendance-tracking-system/internal/errors"
	authmw "github.com/Prashgeek/attendance-tracking-system/internal/middleware/auth"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase/dto"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthHandler struct {
	logger     *zap.Logger
	authUC     *usecase.AuthUseCase
	cookieName string
	cookieTTL  time.Duration
	secure     bool
}

func NewAuthHandler(logger *zap.Logger, authUC *usecase.AuthUseCase, authCfg config.AuthConfig, production bool) *AuthHandler {
	authCfg = authCfg.WithDefaults()
	return &AuthHandler{
		logger:     logger,
		authUC:     authUC,
		cookieName: authCfg.CookieName,
		cookieTTL:  authCfg.TokenTTL,
		secure:     production,
	}
}

// setSessionCookie attaches the signed token as an HTTP-only cookie.
// Secure is only set in production so local development over plain HTTP works.
func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var params dto.LoginParams
	if err := c.Bind(&params); err != nil {
		return errors.WriteJSON(c, errors.Validation("Invalid request body"))
	}
	params.IP = c.RealIP()
	params.UserAgent = c.Request().UserAgent()

	token, user, err := h.authUC.Login(c.Request().Context(), params)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	h.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    user,
	})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var params dto.RegisterParams
	if err := c.Bind(&params); err != nil {
		return errors.WriteJSON(c, errors.Validation("Invalid request body"))
	}
	params.IP = c.RealIP()
	params.UserAgent = c.Request().UserAgent()

	token, user, err := h.authUC.Register(c.Request().Context(), params)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	h.setSessionCookie(c, token)
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"user":    user,
	})
}

// Logout handles POST /api/auth/logout. Stateless: the cookie is cleared
// but a previously issued token stays valid until its expiry.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := authmw.IdentityFromContext(c)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	user, err := h.authUC.Me(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    user,
	})
}

// ForgotPassword handles POST /api/auth/forgot-password. The response is
// success-shaped whether or not the email is registered.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var params dto.ForgotPasswordParams
	if err := c.Bind(&params); err != nil {
		return errors.WriteJSON(c, errors.Validation("Invalid request body"))
	}
	params.IP = c.RealIP()
	params.UserAgent = c.Request().UserAgent()

	token, err := h.authUC.RequestPasswordReset(c.Request().Context(), params)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	response := echo.Map{
		"success": true,
		"message": "If email exists, reset link will be sent",
	}
	// Delivery is out of band in a real deployment; returning the token
	// here keeps the flow usable without a mail provider.
	if token != "" {
		response["resetToken"] = token
	}
	return c.JSON(http.StatusOK, response)
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var params dto.ResetPasswordParams
	if err := c.Bind(&params); err != nil {
		return errors.WriteJSON(c, errors.Validation("Invalid request body"))
	}

	if err := h.authUC.CompletePasswordReset(c.Request().Context(), params); err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Password reset successful",
	})
}
