package usecase

import (
	"context"

	"github.com/Prashgeek/attendance-tracking-system/internal/auth"
	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
	"github.com/Prashgeek/attendance-tracking-system/internal/domain/repository"
	"github.com/Prashgeek/attendance-tracking-system/internal/errors"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserUseCase implements the admin-only account CRUD.
type UserUseCase struct {
	logger   *zap.Logger
	userRepo repository.UserRepository
	audit    *AuditUseCase
}

// NewUserUseCase creates the user admin usecase.
func NewUserUseCase(logger *zap.Logger, userRepo repository.UserRepository, audit *AuditUseCase) *UserUseCase {
	return &UserUseCase{
		logger:   logger,
		userRepo: userRepo,
		audit:    audit,
	}
}

func (uc *UserUseCase) List(ctx context.Context, filter repository.UserFilter) ([]*dto.UserView, error) {
	users, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return dto.NewUserViews(users), nil
}

func (uc *UserUseCase) Get(ctx context.Context, id string) (*dto.UserView, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if user == nil {
		return nil, errors.NotFound("User not found")
	}
	return dto.NewUserView(user), nil
}

func (uc *UserUseCase) Stats(ctx context.Context) (*repository.UserStats, error) {
	stats, err := uc.userRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return stats, nil
}

// Create adds an account. The email pre-check gives a friendly Conflict;
// the unique index underneath is the real guarantee.
func (uc *UserUseCase) Create(ctx context.Context, params dto.CreateUserParams) (*dto.UserView, error) {
	email := NormalizeEmail(params.Email)
	if email == "" || params.Password == "" || params.Role == "" {
		return nil, errors.Validation("email, password and role required")
	}
	if !emailPattern.MatchString(email) {
		return nil, errors.Validation("Invalid email")
	}
	if !model.ValidRole(params.Role) {
		return nil, errors.Validation("Invalid role")
	}
	if len(params.Password) < auth.MinPasswordLength {
		return nil, errors.Validation("Password too short")
	}

	taken, err := uc.userRepo.EmailTaken(ctx, email, "")
	if err != nil {
		return nil, errors.Internal(err)
	}
	if taken {
		return nil, errors.Conflict("Email already in use")
	}

	passwordHash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, errors.Internal(err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		FullName:     params.FullName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         params.Role,
		UID:          params.UID,
		Dept:         params.Dept,
		Phone:        params.Phone,
		Address:      params.Address,
		IsActive:     true,
	}
	if params.CreatedBy != "" {
		createdBy := params.CreatedBy
		user.CreatedBy = &createdBy
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal(err)
	}

	uc.audit.Record(ctx, model.AuditUserCreated, email, &user.ID, "", "",
		map[string]interface{}{"created_by": params.CreatedBy})

	return dto.NewUserView(user), nil
}

func (uc *UserUseCase) Update(ctx context.Context, id string, params dto.UpdateUserParams) (*dto.UserView, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if user == nil {
		return nil, errors.NotFound("User not found")
	}

	if params.Email != nil {
		email := NormalizeEmail(*params.Email)
		if !emailPattern.MatchString(email) {
			return nil, errors.Validation("Invalid email")
		}
		taken, err := uc.userRepo.EmailTaken(ctx, email, id)
		if err != nil {
			return nil, errors.Internal(err)
		}
		if taken {
			return nil, errors.Conflict("Email already used")
		}
		user.Email = email
	}
	if params.Role != nil {
		if !model.ValidRole(*params.Role) {
			return nil, errors.Validation("Invalid role")
		}
		user.Role = *params.Role
	}
	if params.FullName != nil {
		user.FullName = *params.FullName
	}
	if params.UID != nil {
		user.UID = *params.UID
	}
	if params.Dept != nil {
		user.Dept = *params.Dept
	}
	if params.Photo != nil {
		user.Photo = *params.Photo
	}
	if params.Phone != nil {
		user.Phone = *params.Phone
	}
	if params.Address != nil {
		user.Address = *params.Address
	}
	if params.IsActive != nil {
		user.IsActive = *params.IsActive
	}
	if params.IsVerified != nil {
		user.IsVerified = *params.IsVerified
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal(err)
	}

	uc.audit.Record(ctx, model.AuditUserUpdated, user.Email, &user.ID, "", "", nil)

	return dto.NewUserView(user), nil
}

func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	err := uc.userRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NotFound("User not found")
		}
		return errors.Internal(err)
	}

	uc.audit.Record(ctx, model.AuditUserDeleted, "", &id, "", "", nil)

	return nil
}

// AdminResetPassword sets a new password without the old one and clears
// the lockout state so admins can unblock locked-out accounts.
func (uc *UserUseCase) AdminResetPassword(ctx context.Context, params dto.AdminResetPasswordParams) error {
	if params.UserID == "" || len(params.NewPassword) < auth.MinPasswordLength {
		return errors.Validation("userId and newPassword (min 6 chars) required")
	}

	user, err := uc.userRepo.FindByIDOrEmail(ctx, params.UserID)
	if err != nil {
		return errors.Internal(err)
	}
	if user == nil {
		return errors.NotFound("User not found")
	}

	passwordHash, err := auth.HashPassword(params.NewPassword)
	if err != nil {
		return errors.Internal(err)
	}

	if err := uc.userRepo.SetPassword(ctx, user.ID, passwordHash, true); err != nil {
		return errors.Internal(err)
	}

	uc.audit.Record(ctx, model.AuditAdminPasswordReset, user.Email, &user.ID, "", "",
		map[string]interface{}{"actor": params.ActorID})

	return nil
}
