package repository

import (
	"context"
	"time"

	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
)

// UserFilter narrows List results.
type UserFilter struct {
	Role string
	// Email matches as a case-insensitive substring.
	Email string
	Limit int
}

// UserStats aggregates account counts for the admin dashboard.
type UserStats struct {
	Total    int64            `json:"total"`
	ByRole   map[string]int64 `json:"byRole"`
	Active   int64            `json:"active"`
	Locked   int64            `json:"locked"`
	Verified int64            `json:"verified"`
}

// LoginFailure is the outcome of an atomic failed-attempt update.
type LoginFailure struct {
	Attempts    int
	LockedUntil *time.Time
}

// UserRepository is the credential store. Find methods return (nil, nil)
// when no row matches.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByIDOrEmail(ctx context.Context, idOrEmail string) (*model.User, error)
	// FindByResetToken matches the stored token hash and requires the
	// expiry to still be in the future at now.
	FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (*model.User, error)

	List(ctx context.Context, filter UserFilter) ([]model.User, error)
	Stats(ctx context.Context) (*UserStats, error)
	EmailTaken(ctx context.Context, email string, excludeID string) (bool, error)

	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error

	// RegisterLoginFailure increments the failed-attempt counter in a single
	// atomic statement, setting the lock timestamp when the threshold is
	// crossed, and reports the resulting state.
	RegisterLoginFailure(ctx context.Context, id string, threshold int, lockUntil time.Time) (*LoginFailure, error)
	// RegisterLoginSuccess clears the counter and lock and stamps lastLogin.
	RegisterLoginSuccess(ctx context.Context, id string, now time.Time) error

	SetResetToken(ctx context.Context, id string, tokenHash string, expires time.Time) error
	// CompletePasswordReset stores the new hash and clears both reset fields
	// and the lockout state.
	CompletePasswordReset(ctx context.Context, id string, passwordHash string) error
	// SetPassword stores a new hash; clearLockout additionally resets the
	// failed-attempt counter and lock (admin unblock path).
	SetPassword(ctx context.Context, id string, passwordHash string, clearLockout bool) error
}
