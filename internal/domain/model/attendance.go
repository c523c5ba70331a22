package model

import (
	"time"

	"gorm.io/datatypes"
)

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

// How a record was produced.
const (
	AttendanceMethodSelf   = "self"
	AttendanceMethodManual = "manual"
	AttendanceMethodBulk   = "bulk"
)

// ValidAttendanceStatus reports whether status is one of the known statuses.
func ValidAttendanceStatus(status string) bool {
	switch status {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// Attendance is a single attendance record. One record per user per day,
// enforced by the composite unique index.
type Attendance struct {
	ID     string `gorm:"type:char(36);primaryKey" json:"id"`
	UserID string `gorm:"type:char(36);not null;uniqueIndex:idx_attendances_user_date;index" json:"userId"`
	// Date is the attendance day in YYYY-MM-DD form.
	Date        string         `gorm:"size:10;not null;uniqueIndex:idx_attendances_user_date;index" json:"date"`
	Status      string         `gorm:"size:20;not null;default:'present'" json:"status"`
	CheckInTime *time.Time     `json:"checkInTime,omitempty"`
	Method      string         `gorm:"size:20;not null;default:'self'" json:"method"`
	MarkedBy    *string        `gorm:"type:char(36)" json:"markedBy,omitempty"`
	Meta        datatypes.JSON `json:"meta,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// AttendanceDate formats t as an attendance day key.
func AttendanceDate(t time.Time) string {
	return t.Format("2006-01-02")
}
