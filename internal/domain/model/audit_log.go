package model

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLogType labels a recorded security-relevant event.
type AuditLogType string

const (
	AuditLoginSuccess           AuditLogType = "login_success"
	AuditLoginFailed            AuditLogType = "login_failed"
	AuditAccountLocked          AuditLogType = "account_locked"
	AuditPasswordResetRequested AuditLogType = "password_reset_requested"
	AuditPasswordResetCompleted AuditLogType = "password_reset_completed"
	AuditAdminPasswordReset     AuditLogType = "admin_password_reset"
	AuditForbiddenRole          AuditLogType = "forbidden_role"
	AuditUserCreated            AuditLogType = "user_created"
	AuditUserUpdated            AuditLogType = "user_updated"
	AuditUserDeleted            AuditLogType = "user_deleted"
)

// AuditLog records authentication and administration events for the
// server-side trail. Client responses never include this data.
type AuditLog struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      AuditLogType   `gorm:"size:50;not null;index" json:"type"`
	Email     string         `gorm:"size:255;index" json:"email,omitempty"`
	UserID    *string        `gorm:"type:char(36);index" json:"userId,omitempty"`
	IP        string         `gorm:"size:50" json:"ip,omitempty"`
	UserAgent string         `gorm:"size:255" json:"userAgent,omitempty"`
	Detail    datatypes.JSON `json:"detail,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
