package errors

// Error codes returned to clients. The auth codes deliberately keep
// "unknown email" and "wrong password" indistinguishable.
const (
	CodeAuthenticationRequired = "AUTHENTICATION_REQUIRED"
	CodeSessionExpired         = "SESSION_EXPIRED"
	CodeInvalidSession         = "INVALID_SESSION"
	CodeInvalidCredentials     = "INVALID_CREDENTIALS"
	CodeAccountLocked          = "ACCOUNT_LOCKED"
	CodeForbidden              = "FORBIDDEN"
	CodeConflict               = "CONFLICT"
	CodeNotFound               = "NOT_FOUND"
	CodeValidation             = "VALIDATION"
	CodeInternal               = "INTERNAL"
)

// Convenience constructors for the common cases.

func Unauthenticated(message string) *AppError {
	return NewAppError(CodeAuthenticationRequired, message, nil)
}

func InvalidCredentials() *AppError {
	return NewAppError(CodeInvalidCredentials, "Invalid credentials", nil)
}

func AccountLocked() *AppError {
	return NewAppError(CodeAccountLocked, "Account temporarily locked. Try again later.", nil)
}

func Forbidden(message string) *AppError {
	return NewAppError(CodeForbidden, message, nil)
}

func Conflict(message string) *AppError {
	return NewAppError(CodeConflict, message, nil)
}

func NotFound(message string) *AppError {
	return NewAppError(CodeNotFound, message, nil)
}

func Validation(message string) *AppError {
	return NewAppError(CodeValidation, message, nil)
}

func Internal(err error) *AppError {
	return NewAppError(CodeInternal, "Server error", err)
}
