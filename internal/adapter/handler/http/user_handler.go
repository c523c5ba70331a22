package http

import (
	"net/http"
	"strconv"

	"github.com/Prashgeek/attendance-tracking-system/internal/domain/repository"
	"github.com/Prashgeek/attendance-tracking-system/internal/errors"
	authmw "github.com/Prashgeek/attendance-tracking-system/internal/middleware/auth"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase/dto"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserHandler struct {
	logger *zap.Logger
	userUC *usecase.UserUseCase
}

func NewUserHandler(logger *zap.Logger, userUC *usecase.UserUseCase) *UserHandler {
	return &UserHandler{logger: logger, userUC: userUC}
}

// List handles GET /api/users.
func (h *UserHandler) List(c echo.Context) error {
	filter := repository.UserFilter{
		Role:  c.QueryParam("role"),
		Email: c.QueryParam("email"),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return errors.WriteJSON(c, errors.Validation("Invalid limit"))
		}
		filter.Limit = limit
	}

	users, err := h.userUC.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(users),
		"users":   users,
	})
}

// Stats handles GET /api/users/stats.
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.userUC.Stats(c.Request().Context())
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"stats":   stats,
	})
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    user,
	})
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c echo.Context) error {
	var params dto.CreateUserParams
	if err := c.Bind(&params); err != nil {
		return errors.WriteJSON(c, errors.Validation("Invalid request body"))
	}
	if identity, err := authmw.IdentityFromContext(c); err == nil {
		params.CreatedBy = identity.ID
	}

	user, err := h.userUC.Create(c.Request().Context(), params)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"user":    user,
	})
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	var params dto.UpdateUserParams
	if err := c.Bind(&params); err != nil {
		return errors.WriteJSON(c, errors.Validation("Invalid request body"))
	}

	user, err := h.userUC.Update(c.Request().Context(), c.Param("id"), params)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    user,
	})
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "User deleted",
	})
}

// ResetPassword handles POST /api/users/reset-password. Unlike the
// self-service flow this takes effect immediately and clears any lockout.
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var params dto.AdminResetPasswordParams
	if err := c.Bind(&params); err != nil {
		return errors.WriteJSON(c, errors.Validation("Invalid request body"))
	}
	if identity, err := authmw.IdentityFromContext(c); err == nil {
		params.ActorID = identity.ID
	}

	if err := h.userUC.AdminResetPassword(c.Request().Context(), params); err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Password reset successful",
	})
}
