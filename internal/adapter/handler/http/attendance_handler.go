package http

import (
	"net/http"

	"github.com/Prashgeek/attendance-tracking-system/internal/errors"
	authmw "github.com/Prashgeek/attendance-tracking-system/internal/middleware/auth"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase/dto"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AttendanceHandler struct {
	logger       *zap.Logger
	attendanceUC *usecase.AttendanceUseCase
}

func NewAttendanceHandler(logger *zap.Logger, attendanceUC *usecase.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{logger: logger, attendanceUC: attendanceUC}
}

// CheckIn handles POST /api/attendance/checkin. The target account is
// always the session identity.
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	identity, err := authmw.IdentityFromContext(c)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	var params dto.CheckInParams
	if err := c.Bind(&params); err != nil {
		return errors.WriteJSON(c, errors.Validation("Invalid request body"))
	}
	params.UserID = identity.ID

	record, err := h.attendanceUC.CheckIn(c.Request().Context(), params)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":    true,
		"attendance": record,
	})
}

// Mark handles POST /api/attendance/mark.
func (h *AttendanceHandler) Mark(c echo.Context) error {
	identity, err := authmw.IdentityFromContext(c)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	var params dto.MarkAttendanceParams
	if err := c.Bind(&params); err != nil {
		return errors.WriteJSON(c, errors.Validation("Invalid request body"))
	}
	params.MarkedBy = identity.ID

	record, err := h.attendanceUC.Mark(c.Request().Context(), params)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"attendance": record,
	})
}

// MarkBulk handles POST /api/attendance/mark-bulk. Unknown user ids are
// skipped and reported back rather than failing the whole batch.
func (h *AttendanceHandler) MarkBulk(c echo.Context) error {
	identity, err := authmw.IdentityFromContext(c)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	var params dto.MarkBulkParams
	if err := c.Bind(&params); err != nil {
		return errors.WriteJSON(c, errors.Validation("Invalid request body"))
	}
	params.MarkedBy = identity.ID

	marked, skipped, err := h.attendanceUC.MarkBulk(c.Request().Context(), params)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"marked":  marked,
		"skipped": skipped,
	})
}

// List handles GET /api/attendance.
func (h *AttendanceHandler) List(c echo.Context) error {
	var query dto.AttendanceQuery
	if err := c.Bind(&query); err != nil {
		return errors.WriteJSON(c, errors.Validation("Invalid query parameters"))
	}

	records, err := h.attendanceUC.List(c.Request().Context(), query)
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"count":       len(records),
		"attendances": records,
	})
}

// Summary handles GET /api/attendance/summary.
func (h *AttendanceHandler) Summary(c echo.Context) error {
	summary, err := h.attendanceUC.Summary(c.Request().Context(), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"summary": summary,
	})
}

// UserRecords handles GET /api/attendance/user/:id.
func (h *AttendanceHandler) UserRecords(c echo.Context) error {
	records, err := h.attendanceUC.UserRecords(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"count":       len(records),
		"attendances": records,
	})
}

// UserStats handles GET /api/attendance/user/:id/stats.
func (h *AttendanceHandler) UserStats(c echo.Context) error {
	stats, err := h.attendanceUC.UserStats(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"stats":   stats,
	})
}

// Delete handles DELETE /api/attendance/:id.
func (h *AttendanceHandler) Delete(c echo.Context) error {
	if err := h.attendanceUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WriteJSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Attendance record deleted",
	})
}
