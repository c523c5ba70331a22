package database

import (
	"github.com/Prashgeek/attendance-tracking-system/internal/adapter/repository"
	domainRepo "github.com/Prashgeek/attendance-tracking-system/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	User       domainRepo.UserRepository
	Attendance domainRepo.AttendanceRepository
	AuditLog   domainRepo.AuditLogRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		User:       repository.NewUserRepository(db, logger),
		Attendance: repository.NewAttendanceRepository(db, logger),
		AuditLog:   repository.NewAuditLogRepository(db, logger),
	}
}
