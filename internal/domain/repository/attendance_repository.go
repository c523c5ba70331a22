package repository

import (
	"context"

	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
)

// AttendanceFilter narrows List results.
type AttendanceFilter struct {
	UserID string
	// FromDate/ToDate bound the attendance day (YYYY-MM-DD), inclusive.
	FromDate string
	ToDate   string
	Status   string
	Limit    int
}

// AttendanceSummary holds per-status counts for a date range.
type AttendanceSummary struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

// AttendanceUserStats holds a single user's presence figures.
type AttendanceUserStats struct {
	Total      int64   `json:"total"`
	Present    int64   `json:"present"`
	Late       int64   `json:"late"`
	Percentage float64 `json:"percentage"`
}

type AttendanceRepository interface {
	Create(ctx context.Context, record *model.Attendance) error
	// Upsert writes the record, updating status/method/markedBy on the
	// (user, date) unique key when a row already exists.
	Upsert(ctx context.Context, record *model.Attendance) error
	ExistsForDay(ctx context.Context, userID string, date string) (bool, error)

	List(ctx context.Context, filter AttendanceFilter) ([]model.Attendance, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]model.Attendance, error)
	Summary(ctx context.Context, fromDate, toDate string) (*AttendanceSummary, error)
	UserStats(ctx context.Context, userID string) (*AttendanceUserStats, error)

	Delete(ctx context.Context, id string) error
}
