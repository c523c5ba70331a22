package dto

import (
	"time"

	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
)

// LoginParams carries a login attempt plus the request metadata recorded
// in the audit trail.
type LoginParams struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// RegisterParams carries a self-registration request.
type RegisterParams struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	UID       string `json:"uid"`
	Dept      string `json:"dept"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// ForgotPasswordParams carries a reset request.
type ForgotPasswordParams struct {
	Email     string `json:"email"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// ResetPasswordParams carries a reset completion.
type ResetPasswordParams struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// UserView is the client-facing shape of an account. No credential or
// lockout fields ever appear here.
type UserView struct {
	ID         string     `json:"id"`
	FullName   string     `json:"fullName,omitempty"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	UID        string     `json:"uid,omitempty"`
	Dept       string     `json:"dept,omitempty"`
	Photo      string     `json:"photo,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Address    string     `json:"address,omitempty"`
	IsActive   bool       `json:"isActive"`
	IsVerified bool       `json:"isVerified"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// NewUserView strips a stored user down to its public view.
func NewUserView(user *model.User) *UserView {
	return &UserView{
		ID:         user.ID,
		FullName:   user.FullName,
		Email:      user.Email,
		Role:       user.Role,
		UID:        user.UID,
		Dept:       user.Dept,
		Photo:      user.Photo,
		Phone:      user.Phone,
		Address:    user.Address,
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
		LastLogin:  user.LastLogin,
		CreatedAt:  user.CreatedAt,
	}
}

// NewUserViews maps a slice of stored users to views.
func NewUserViews(users []model.User) []*UserView {
	views := make([]*UserView, 0, len(users))
	for i := range users {
		views = append(views, NewUserView(&users[i]))
	}
	return views
}
