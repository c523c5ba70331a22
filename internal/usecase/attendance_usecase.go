package usecase

import (
	"context"
	"time"

	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
	"github.com/Prashgeek/attendance-tracking-system/internal/domain/repository"
	"github.com/Prashgeek/attendance-tracking-system/internal/errors"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AttendanceUseCase implements check-in, marking and reporting.
type AttendanceUseCase struct {
	logger         *zap.Logger
	attendanceRepo repository.AttendanceRepository
	userRepo       repository.UserRepository
	now            func() time.Time
}

// NewAttendanceUseCase creates the attendance usecase.
func NewAttendanceUseCase(logger *zap.Logger, attendanceRepo repository.AttendanceRepository, userRepo repository.UserRepository) *AttendanceUseCase {
	return &AttendanceUseCase{
		logger:         logger,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
}

// CheckIn records a self check-in for today. One per user per day.
func (uc *AttendanceUseCase) CheckIn(ctx context.Context, params dto.CheckInParams) (*model.Attendance, error) {
	now := uc.now()
	date := model.AttendanceDate(now)

	exists, err := uc.attendanceRepo.ExistsForDay(ctx, params.UserID, date)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if exists {
		return nil, errors.Conflict("Already checked in today")
	}

	record := &model.Attendance{
		ID:          uuid.New().String(),
		UserID:      params.UserID,
		Date:        date,
		Status:      model.AttendancePresent,
		CheckInTime: &now,
		Method:      model.AttendanceMethodSelf,
		Meta:        datatypes.JSON(params.Meta),
	}
	if len(params.Meta) == 0 {
		record.Meta = nil
	}

	if err := uc.attendanceRepo.Create(ctx, record); err != nil {
		return nil, errors.Internal(err)
	}
	return record, nil
}

// Mark writes an attendance status for one user and day, overwriting any
// existing record for that day.
func (uc *AttendanceUseCase) Mark(ctx context.Context, params dto.MarkAttendanceParams) (*model.Attendance, error) {
	if params.UserID == "" {
		return nil, errors.Validation("userId required")
	}
	status := params.Status
	if status == "" {
		status = model.AttendancePresent
	}
	if !model.ValidAttendanceStatus(status) {
		return nil, errors.Validation("Invalid attendance status")
	}
	date := params.Date
	if date == "" {
		date = model.AttendanceDate(uc.now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, errors.Validation("Invalid date, expected YYYY-MM-DD")
	}

	user, err := uc.userRepo.FindByID(ctx, params.UserID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if user == nil {
		return nil, errors.NotFound("User not found")
	}

	markedBy := params.MarkedBy
	record := &model.Attendance{
		ID:       uuid.New().String(),
		UserID:   params.UserID,
		Date:     date,
		Status:   status,
		Method:   model.AttendanceMethodManual,
		MarkedBy: &markedBy,
	}

	if err := uc.attendanceRepo.Upsert(ctx, record); err != nil {
		return nil, errors.Internal(err)
	}
	return record, nil
}

// MarkBulk marks one status for many users on one day. Unknown users are
// skipped and reported back rather than failing the batch.
func (uc *AttendanceUseCase) MarkBulk(ctx context.Context, params dto.MarkBulkParams) (marked int, skipped []string, err error) {
	if len(params.UserIDs) == 0 {
		return 0, nil, errors.Validation("userIds required")
	}
	status := params.Status
	if status == "" {
		status = model.AttendancePresent
	}
	if !model.ValidAttendanceStatus(status) {
		return 0, nil, errors.Validation("Invalid attendance status")
	}
	date := params.Date
	if date == "" {
		date = model.AttendanceDate(uc.now())
	} else if _, perr := time.Parse("2006-01-02", date); perr != nil {
		return 0, nil, errors.Validation("Invalid date, expected YYYY-MM-DD")
	}

	for _, userID := range params.UserIDs {
		user, ferr := uc.userRepo.FindByID(ctx, userID)
		if ferr != nil {
			return marked, skipped, errors.Internal(ferr)
		}
		if user == nil {
			skipped = append(skipped, userID)
			continue
		}

		markedBy := params.MarkedBy
		record := &model.Attendance{
			ID:       uuid.New().String(),
			UserID:   userID,
			Date:     date,
			Status:   status,
			Method:   model.AttendanceMethodBulk,
			MarkedBy: &markedBy,
		}
		if uerr := uc.attendanceRepo.Upsert(ctx, record); uerr != nil {
			return marked, skipped, errors.Internal(uerr)
		}
		marked++
	}

	return marked, skipped, nil
}

func (uc *AttendanceUseCase) List(ctx context.Context, query dto.AttendanceQuery) ([]model.Attendance, error) {
	records, err := uc.attendanceRepo.List(ctx, repository.AttendanceFilter{
		UserID:   query.UserID,
		FromDate: query.FromDate,
		ToDate:   query.ToDate,
		Status:   query.Status,
		Limit:    query.Limit,
	})
	if err != nil {
		return nil, errors.Internal(err)
	}
	return records, nil
}

func (uc *AttendanceUseCase) Summary(ctx context.Context, fromDate, toDate string) (*repository.AttendanceSummary, error) {
	summary, err := uc.attendanceRepo.Summary(ctx, fromDate, toDate)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return summary, nil
}

func (uc *AttendanceUseCase) UserRecords(ctx context.Context, userID string) ([]model.Attendance, error) {
	records, err := uc.attendanceRepo.ListByUser(ctx, userID, 500)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return records, nil
}

func (uc *AttendanceUseCase) UserStats(ctx context.Context, userID string) (*repository.AttendanceUserStats, error) {
	stats, err := uc.attendanceRepo.UserStats(ctx, userID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return stats, nil
}

func (uc *AttendanceUseCase) Delete(ctx context.Context, id string) error {
	err := uc.attendanceRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NotFound("Attendance record not found")
		}
		return errors.Internal(err)
	}
	return nil
}
