package repository

import (
	"context"
	"fmt"

	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
	"github.com/Prashgeek/attendance-tracking-system/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type attendanceRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAttendanceRepository creates the gorm-backed attendance store.
func NewAttendanceRepository(db *gorm.DB, logger *zap.Logger) repository.AttendanceRepository {
	return &attendanceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *attendanceRepository) Create(ctx context.Context, record *model.Attendance) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		r.logger.Error("failed to create attendance record",
			zap.String("user_id", record.UserID),
			zap.Error(err))
		return fmt.Errorf("failed to create attendance record: %w", err)
	}
	return nil
}

func (r *attendanceRepository) Upsert(ctx context.Context, record *model.Attendance) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "method", "marked_by", "check_in_time", "meta", "updated_at",
		}),
	}).Create(record).Error
	if err != nil {
		r.logger.Error("failed to upsert attendance record",
			zap.String("user_id", record.UserID),
			zap.String("date", record.Date),
			zap.Error(err))
		return fmt.Errorf("failed to upsert attendance record: %w", err)
	}
	return nil
}

func (r *attendanceRepository) ExistsForDay(ctx context.Context, userID string, date string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&count).Error
	if err != nil {
		r.logger.Error("failed to check attendance", zap.String("user_id", userID), zap.Error(err))
		return false, fmt.Errorf("failed to check attendance: %w", err)
	}
	return count > 0, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter repository.AttendanceFilter) ([]model.Attendance, error) {
	query := r.db.WithContext(ctx).Model(&model.Attendance{})

	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.FromDate != "" {
		query = query.Where("date >= ?", filter.FromDate)
	}
	if filter.ToDate != "" {
		query = query.Where("date <= ?", filter.ToDate)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 1000 {
		limit = 500
	}

	var records []model.Attendance
	if err := query.Order("date DESC, created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		r.logger.Error("failed to list attendance", zap.Error(err))
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

func (r *attendanceRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.Attendance, error) {
	return r.List(ctx, repository.AttendanceFilter{UserID: userID, Limit: limit})
}

func (r *attendanceRepository) Summary(ctx context.Context, fromDate, toDate string) (*repository.AttendanceSummary, error) {
	query := r.db.WithContext(ctx).Model(&model.Attendance{})
	if fromDate != "" {
		query = query.Where("date >= ?", fromDate)
	}
	if toDate != "" {
		query = query.Where("date <= ?", toDate)
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := query.Select("status, COUNT(*) AS count").Group("status").Scan(&counts).Error; err != nil {
		r.logger.Error("failed to summarize attendance", zap.Error(err))
		return nil, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	summary := &repository.AttendanceSummary{
		ByStatus: make(map[string]int64),
	}
	for _, sc := range counts {
		summary.ByStatus[sc.Status] = sc.Count
		summary.Total += sc.Count
	}
	return summary, nil
}

func (r *attendanceRepository) UserStats(ctx context.Context, userID string) (*repository.AttendanceUserStats, error) {
	stats := &repository.AttendanceUserStats{}

	err := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("user_id = ?", userID).
		Count(&stats.Total).Error
	if err != nil {
		r.logger.Error("failed to compute attendance stats", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to compute attendance stats: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("user_id = ? AND status = ?", userID, model.AttendancePresent).
		Count(&stats.Present).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute attendance stats: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("user_id = ? AND status = ?", userID, model.AttendanceLate).
		Count(&stats.Late).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute attendance stats: %w", err)
	}

	if stats.Total > 0 {
		stats.Percentage = float64(stats.Present+stats.Late) / float64(stats.Total) * 100
	}
	return stats, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Attendance{})
	if result.Error != nil {
		r.logger.Error("failed to delete attendance record", zap.String("id", id), zap.Error(result.Error))
		return fmt.Errorf("failed to delete attendance record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
