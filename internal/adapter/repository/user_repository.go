package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
	"github.com/Prashgeek/attendance-tracking-system/internal/domain/repository"
	"github.com/Prashgeek/attendance-tracking-system/internal/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type userRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUserRepository creates the gorm-backed credential store.
func NewUserRepository(db *gorm.DB, logger *zap.Logger) repository.UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("failed to find user by id", zap.String("user_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("failed to find user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindByIDOrEmail(ctx context.Context, idOrEmail string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ? OR email = ?", idOrEmail, strings.ToLower(strings.TrimSpace(idOrEmail))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("failed to find user", zap.Error(err))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("reset_password_token = ? AND reset_password_expires > ?", tokenHash, now).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("failed to find user by reset token", zap.Error(err))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]model.User, error) {
	query := r.db.WithContext(ctx).Model(&model.User{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Email != "" {
		query = query.Where("email LIKE ?", "%"+strings.ToLower(filter.Email)+"%")
	}

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var users []model.User
	if err := query.Order("created_at DESC").Limit(limit).Find(&users).Error; err != nil {
		r.logger.Error("failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Stats(ctx context.Context) (*repository.UserStats, error) {
	stats := &repository.UserStats{
		ByRole: make(map[string]int64),
	}

	type roleCount struct {
		Role  string
		Count int64
	}
	var counts []roleCount
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&counts).Error
	if err != nil {
		r.logger.Error("failed to count users by role", zap.Error(err))
		return nil, fmt.Errorf("failed to compute user stats: %w", err)
	}
	for _, rc := range counts {
		stats.ByRole[rc.Role] = rc.Count
		stats.Total += rc.Count
	}

	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("is_active").Count(&stats.Active).Error; err != nil {
		return nil, fmt.Errorf("failed to compute user stats: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("is_verified").Count(&stats.Verified).Error; err != nil {
		return nil, fmt.Errorf("failed to compute user stats: %w", err)
	}
	err = r.db.WithContext(ctx).Model(&model.User{}).
		Where("account_locked_until IS NOT NULL AND account_locked_until > ?", time.Now()).
		Count(&stats.Locked).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute user stats: %w", err)
	}

	return stats, nil
}

func (r *userRepository) EmailTaken(ctx context.Context, email string, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		r.logger.Error("failed to check email uniqueness", zap.Error(err))
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		r.logger.Error("failed to create user", zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		r.logger.Error("failed to update user", zap.String("user_id", user.ID), zap.Error(err))
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if result.Error != nil {
		r.logger.Error("failed to delete user", zap.String("user_id", id), zap.Error(result.Error))
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RegisterLoginFailure bumps the counter and sets the lock in one statement
// so concurrent failures cannot lose increments.
func (r *userRepository) RegisterLoginFailure(ctx context.Context, id string, threshold int, lockUntil time.Time) (*repository.LoginFailure, error) {
	var row struct {
		FailedLoginAttempts int
		AccountLockedUntil  *time.Time
	}

	err := r.db.WithContext(ctx).Raw(`
		UPDATE users
		SET failed_login_attempts = failed_login_attempts + 1,
		    account_locked_until = CASE
		        WHEN failed_login_attempts + 1 >= ? THEN ?
		        ELSE account_locked_until
		    END,
		    updated_at = ?
		WHERE id = ?
		RETURNING failed_login_attempts, account_locked_until`,
		threshold, lockUntil, time.Now(), id,
	).Scan(&row).Error
	if err != nil {
		r.logger.Error("failed to register login failure", zap.String("user_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to register login failure: %w", err)
	}

	return &repository.LoginFailure{
		Attempts:    row.FailedLoginAttempts,
		LockedUntil: row.AccountLockedUntil,
	}, nil
}

func (r *userRepository) RegisterLoginSuccess(ctx context.Context, id string, now time.Time) error {
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"failed_login_attempts": 0,
			"account_locked_until":  nil,
			"last_login":            now,
		}).Error
	if err != nil {
		r.logger.Error("failed to register login success", zap.String("user_id", id), zap.Error(err))
		return fmt.Errorf("failed to register login success: %w", err)
	}
	return nil
}

func (r *userRepository) SetResetToken(ctx context.Context, id string, tokenHash string, expires time.Time) error {
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reset_password_token":   tokenHash,
			"reset_password_expires": expires,
		}).Error
	if err != nil {
		r.logger.Error("failed to set reset token", zap.String("user_id", id), zap.Error(err))
		return fmt.Errorf("failed to set reset token: %w", err)
	}
	return nil
}

func (r *userRepository) CompletePasswordReset(ctx context.Context, id string, passwordHash string) error {
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password":               passwordHash,
			"reset_password_token":   nil,
			"reset_password_expires": nil,
			"failed_login_attempts":  0,
			"account_locked_until":   nil,
		}).Error
	if err != nil {
		r.logger.Error("failed to complete password reset", zap.String("user_id", id), zap.Error(err))
		return fmt.Errorf("failed to complete password reset: %w", err)
	}
	return nil
}

func (r *userRepository) SetPassword(ctx context.Context, id string, passwordHash string, clearLockout bool) error {
	updates := map[string]interface{}{
		"password": passwordHash,
	}
	if clearLockout {
		updates["failed_login_attempts"] = 0
		updates["account_locked_until"] = nil
	}

	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		r.logger.Error("failed to set password", zap.String("user_id", id), zap.Error(err))
		return fmt.Errorf("failed to set password: %w", err)
	}
	return nil
}
