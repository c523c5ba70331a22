package dto

// CreateUserParams carries an admin user-creation request.
type CreateUserParams struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	UID      string `json:"uid"`
	Dept     string `json:"dept"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	// CreatedBy is the acting admin's account id.
	CreatedBy string `json:"-"`
}

// UpdateUserParams carries a partial update; nil fields are left untouched.
// Password is deliberately absent: password changes go through the explicit
// reset paths only.
type UpdateUserParams struct {
	FullName   *string `json:"fullName"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	UID        *string `json:"uid"`
	Dept       *string `json:"dept"`
	Photo      *string `json:"photo"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	IsActive   *bool   `json:"isActive"`
	IsVerified *bool   `json:"isVerified"`
}

// AdminResetPasswordParams carries an admin-initiated password reset.
// UserID also accepts the target's email for older clients.
type AdminResetPasswordParams struct {
	UserID      string `json:"userId"`
	NewPassword string `json:"newPassword"`
	// ActorID is the acting admin's account id, for the audit trail.
	ActorID string `json:"-"`
}
