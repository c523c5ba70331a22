package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Prashgeek/attendance-tracking-system/internal/auth"
	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
	apperrors "github.com/Prashgeek/attendance-tracking-system/internal/errors"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase/dto"
)

func newTestUserUseCase(userRepo *MockUserRepository, auditRepo *MockAuditLogRepository) *usecase.UserUseCase {
	logger := zap.NewNop()
	audit := usecase.NewAuditUseCase(logger, auditRepo, nil)
	return usecase.NewUserUseCase(logger, userRepo, audit)
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active account with a hashed password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockAudit := new(MockAuditLogRepository)
		uc := newTestUserUseCase(mockRepo, mockAudit)
		mockAudit.On("Create", ctx, mock.AnythingOfType("*model.AuditLog")).Return(nil)

		mockRepo.On("EmailTaken", ctx, "new@example.com", "").Return(false, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(nil)

		view, err := uc.Create(ctx, dto.CreateUserParams{
			FullName:  "New User",
			Email:     "New@Example.com ",
			Password:  "secret123",
			Role:      model.RoleTeacher,
			CreatedBy: "admin-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", view.Email)
		assert.True(t, view.IsActive)

		created := mockRepo.Calls[1].Arguments.Get(1).(*model.User)
		assert.NoError(t, auth.VerifyPassword(created.PasswordHash, "secret123"))
		require.NotNil(t, created.CreatedBy)
		assert.Equal(t, "admin-1", *created.CreatedBy)
	})

	t.Run("taken email conflicts", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockAudit := new(MockAuditLogRepository)
		uc := newTestUserUseCase(mockRepo, mockAudit)

		mockRepo.On("EmailTaken", ctx, "taken@example.com", "").Return(true, nil)

		_, err := uc.Create(ctx, dto.CreateUserParams{
			Email:    "taken@example.com",
			Password: "secret123",
			Role:     model.RoleStudent,
		})

		assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
	})
}

func TestUserUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only the provided fields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockAudit := new(MockAuditLogRepository)
		uc := newTestUserUseCase(mockRepo, mockAudit)
		mockAudit.On("Create", ctx, mock.AnythingOfType("*model.AuditLog")).Return(nil)

		existing := &model.User{ID: "user-1", FullName: "Old Name", Email: "old@example.com", Role: model.RoleStudent, IsActive: true}
		mockRepo.On("FindByID", ctx, "user-1").Return(existing, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*model.User")).Return(nil)

		newName := "New Name"
		view, err := uc.Update(ctx, "user-1", dto.UpdateUserParams{FullName: &newName})

		require.NoError(t, err)
		assert.Equal(t, "New Name", view.FullName)
		assert.Equal(t, "old@example.com", view.Email)
		assert.Equal(t, model.RoleStudent, view.Role)
	})

	t.Run("email change checks uniqueness excluding self", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockAudit := new(MockAuditLogRepository)
		uc := newTestUserUseCase(mockRepo, mockAudit)

		existing := &model.User{ID: "user-1", Email: "old@example.com", Role: model.RoleStudent}
		mockRepo.On("FindByID", ctx, "user-1").Return(existing, nil)
		mockRepo.On("EmailTaken", ctx, "other@example.com", "user-1").Return(true, nil)

		other := "other@example.com"
		_, err := uc.Update(ctx, "user-1", dto.UpdateUserParams{Email: &other})

		assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockAudit := new(MockAuditLogRepository)
		uc := newTestUserUseCase(mockRepo, mockAudit)

		mockRepo.On("FindByID", ctx, "ghost").Return(nil, nil)

		_, err := uc.Update(ctx, "ghost", dto.UpdateUserParams{})

		assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockUserRepository)
	mockAudit := new(MockAuditLogRepository)
	uc := newTestUserUseCase(mockRepo, mockAudit)

	mockRepo.On("Delete", ctx, "ghost").Return(gorm.ErrRecordNotFound)

	err := uc.Delete(ctx, "ghost")

	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestUserUseCase_AdminResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("sets the new hash and clears the lockout", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockAudit := new(MockAuditLogRepository)
		uc := newTestUserUseCase(mockRepo, mockAudit)
		mockAudit.On("Create", ctx, mock.AnythingOfType("*model.AuditLog")).Return(nil)

		user := &model.User{ID: "user-1", Email: "test@example.com"}
		mockRepo.On("FindByIDOrEmail", ctx, "test@example.com").Return(user, nil)
		mockRepo.On("SetPassword", ctx, "user-1", mock.AnythingOfType("string"), true).Return(nil)

		err := uc.AdminResetPassword(ctx, dto.AdminResetPasswordParams{
			UserID:      "test@example.com",
			NewPassword: "newsecret",
			ActorID:     "admin-1",
		})

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockAudit := new(MockAuditLogRepository)
		uc := newTestUserUseCase(mockRepo, mockAudit)

		err := uc.AdminResetPassword(ctx, dto.AdminResetPasswordParams{UserID: "user-1", NewPassword: "pw"})

		assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
		mockRepo.AssertNotCalled(t, "SetPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
