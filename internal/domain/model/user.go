package model

import (
	"time"
)

// Roles a user can hold. The set is closed; everything else is rejected
// at write time.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User is the stored identity and credential record.
type User struct {
	ID       string `gorm:"type:char(36);primaryKey" json:"id"`
	FullName string `gorm:"size:100" json:"fullName"`
	Email    string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	// PasswordHash holds the bcrypt hash. Never serialized.
	PasswordHash string `gorm:"column:password;size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null;index" json:"role"`

	// Campus/profile fields.
	UID     string `gorm:"size:100;uniqueIndex:idx_users_uid,where:uid <> ''" json:"uid,omitempty"`
	Dept    string `gorm:"size:255" json:"dept,omitempty"`
	Photo   string `gorm:"size:1024" json:"photo,omitempty"`
	Phone   string `gorm:"size:50" json:"phone,omitempty"`
	Address string `gorm:"type:text" json:"address,omitempty"`

	IsActive   bool `gorm:"not null;default:true" json:"isActive"`
	IsVerified bool `gorm:"not null;default:false" json:"isVerified"`

	// Lockout state. FailedLoginAttempts counts consecutive failures and is
	// reset on success or admin reset; AccountLockedUntil in the future
	// refuses login regardless of credential correctness.
	FailedLoginAttempts int        `gorm:"not null;default:0" json:"-"`
	AccountLockedUntil  *time.Time `json:"-"`

	// Password reset state. Only the sha256 hash of the issued token is stored.
	ResetPasswordTokenHash *string    `gorm:"column:reset_password_token;size:255;index" json:"-"`
	ResetPasswordExpires   *time.Time `json:"-"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedBy *string    `gorm:"type:char(36)" json:"createdBy,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// Locked reports whether the account is locked at the given time.
func (u *User) Locked(now time.Time) bool {
	return u.AccountLockedUntil != nil && now.Before(*u.AccountLockedUntil)
}
