package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var codeToStatus = map[string]int{
	CodeAuthenticationRequired: http.StatusUnauthorized,
	CodeSessionExpired:         http.StatusUnauthorized,
	CodeInvalidSession:         http.StatusUnauthorized,
	CodeInvalidCredentials:     http.StatusUnauthorized,
	CodeAccountLocked:          http.StatusForbidden,
	CodeForbidden:              http.StatusForbidden,
	CodeConflict:               http.StatusConflict,
	CodeNotFound:               http.StatusNotFound,
	CodeValidation:             http.StatusBadRequest,
	CodeInternal:               http.StatusInternalServerError,
}

// ToHTTPStatus maps an error code to an HTTP status code.
func ToHTTPStatus(code string) int {
	if status, ok := codeToStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteJSON renders err as a structured JSON response. Non-AppError values
// are collapsed to a generic server error so internals never reach clients.
func WriteJSON(c echo.Context, err error) error {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = Internal(err)
	}

	return c.JSON(ToHTTPStatus(appErr.Code()), ErrorBody{
		Success: false,
		Code:    appErr.Code(),
		Message: appErr.Message(),
	})
}
