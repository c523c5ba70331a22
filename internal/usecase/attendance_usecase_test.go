package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
	"github.com/Prashgeek/attendance-tracking-system/internal/domain/repository"
	apperrors "github.com/Prashgeek/attendance-tracking-system/internal/errors"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase/dto"
)

// MockAttendanceRepository is a mock implementation of AttendanceRepository
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Create(ctx context.Context, record *model.Attendance) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttendanceRepository) Upsert(ctx context.Context, record *model.Attendance) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttendanceRepository) ExistsForDay(ctx context.Context, userID, date string) (bool, error) {
	args := m.Called(ctx, userID, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockAttendanceRepository) List(ctx context.Context, filter repository.AttendanceFilter) ([]model.Attendance, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.Attendance, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) Summary(ctx context.Context, fromDate, toDate string) (*repository.AttendanceSummary, error) {
	args := m.Called(ctx, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AttendanceSummary), args.Error(1)
}

func (m *MockAttendanceRepository) UserStats(ctx context.Context, userID string) (*repository.AttendanceUserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AttendanceUserStats), args.Error(1)
}

func (m *MockAttendanceRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAttendanceUseCase_CheckIn(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("first check-in of the day succeeds", func(t *testing.T) {
		mockAtt := new(MockAttendanceRepository)
		mockUsers := new(MockUserRepository)
		uc := usecase.NewAttendanceUseCase(logger, mockAtt, mockUsers)

		mockAtt.On("ExistsForDay", ctx, "user-1", mock.AnythingOfType("string")).Return(false, nil)
		mockAtt.On("Create", ctx, mock.AnythingOfType("*model.Attendance")).Return(nil)

		record, err := uc.CheckIn(ctx, dto.CheckInParams{UserID: "user-1"})

		require.NoError(t, err)
		assert.Equal(t, model.AttendancePresent, record.Status)
		assert.Equal(t, model.AttendanceMethodSelf, record.Method)
		assert.NotNil(t, record.CheckInTime)
		assert.Nil(t, record.Meta)
	})

	t.Run("second check-in conflicts", func(t *testing.T) {
		mockAtt := new(MockAttendanceRepository)
		mockUsers := new(MockUserRepository)
		uc := usecase.NewAttendanceUseCase(logger, mockAtt, mockUsers)

		mockAtt.On("ExistsForDay", ctx, "user-1", mock.AnythingOfType("string")).Return(true, nil)

		_, err := uc.CheckIn(ctx, dto.CheckInParams{UserID: "user-1"})

		assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
		mockAtt.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAttendanceUseCase_Mark(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("marks an existing user", func(t *testing.T) {
		mockAtt := new(MockAttendanceRepository)
		mockUsers := new(MockUserRepository)
		uc := usecase.NewAttendanceUseCase(logger, mockAtt, mockUsers)

		mockUsers.On("FindByID", ctx, "user-1").Return(&model.User{ID: "user-1"}, nil)
		mockAtt.On("Upsert", ctx, mock.AnythingOfType("*model.Attendance")).Return(nil)

		record, err := uc.Mark(ctx, dto.MarkAttendanceParams{
			UserID:   "user-1",
			Date:     "2026-03-01",
			Status:   model.AttendanceLate,
			MarkedBy: "admin-1",
		})

		require.NoError(t, err)
		assert.Equal(t, model.AttendanceLate, record.Status)
		assert.Equal(t, model.AttendanceMethodManual, record.Method)
		assert.Equal(t, "admin-1", *record.MarkedBy)
	})

	t.Run("rejects unknown status and malformed date", func(t *testing.T) {
		mockAtt := new(MockAttendanceRepository)
		mockUsers := new(MockUserRepository)
		uc := usecase.NewAttendanceUseCase(logger, mockAtt, mockUsers)

		_, err := uc.Mark(ctx, dto.MarkAttendanceParams{UserID: "user-1", Status: "asleep"})
		assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

		_, err = uc.Mark(ctx, dto.MarkAttendanceParams{UserID: "user-1", Date: "01-03-2026"})
		assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		mockAtt := new(MockAttendanceRepository)
		mockUsers := new(MockUserRepository)
		uc := usecase.NewAttendanceUseCase(logger, mockAtt, mockUsers)

		mockUsers.On("FindByID", ctx, "ghost").Return(nil, nil)

		_, err := uc.Mark(ctx, dto.MarkAttendanceParams{UserID: "ghost"})

		assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	})
}

func TestAttendanceUseCase_MarkBulk(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("skips unknown users instead of failing", func(t *testing.T) {
		mockAtt := new(MockAttendanceRepository)
		mockUsers := new(MockUserRepository)
		uc := usecase.NewAttendanceUseCase(logger, mockAtt, mockUsers)

		mockUsers.On("FindByID", ctx, "user-1").Return(&model.User{ID: "user-1"}, nil)
		mockUsers.On("FindByID", ctx, "ghost").Return(nil, nil)
		mockUsers.On("FindByID", ctx, "user-2").Return(&model.User{ID: "user-2"}, nil)
		mockAtt.On("Upsert", ctx, mock.AnythingOfType("*model.Attendance")).Return(nil)

		marked, skipped, err := uc.MarkBulk(ctx, dto.MarkBulkParams{
			UserIDs:  []string{"user-1", "ghost", "user-2"},
			Date:     "2026-03-01",
			Status:   model.AttendanceAbsent,
			MarkedBy: "admin-1",
		})

		require.NoError(t, err)
		assert.Equal(t, 2, marked)
		assert.Equal(t, []string{"ghost"}, skipped)
	})

	t.Run("empty batch fails validation", func(t *testing.T) {
		mockAtt := new(MockAttendanceRepository)
		mockUsers := new(MockUserRepository)
		uc := usecase.NewAttendanceUseCase(logger, mockAtt, mockUsers)

		_, _, err := uc.MarkBulk(ctx, dto.MarkBulkParams{})

		assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
	})
}

func TestAttendanceUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	mockAtt := new(MockAttendanceRepository)
	mockUsers := new(MockUserRepository)
	uc := usecase.NewAttendanceUseCase(logger, mockAtt, mockUsers)

	mockAtt.On("Delete", ctx, "missing").Return(gorm.ErrRecordNotFound)

	err := uc.Delete(ctx, "missing")

	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}
