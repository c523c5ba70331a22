package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/Prashgeek/attendance-tracking-system/internal/auth"
	"github.com/Prashgeek/attendance-tracking-system/internal/config"
	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
	"github.com/Prashgeek/attendance-tracking-system/internal/domain/repository"
	"github.com/Prashgeek/attendance-tracking-system/internal/errors"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthUseCase implements credential verification, session issuance and the
// password-reset flows.
type AuthUseCase struct {
	logger   *zap.Logger
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	audit    *AuditUseCase
	cfg      config.AuthConfig
	now      func() time.Time
}

// NewAuthUseCase creates the auth usecase.
func NewAuthUseCase(
	logger *zap.Logger,
	userRepo repository.UserRepository,
	tokens *auth.TokenManager,
	audit *AuditUseCase,
	cfg config.AuthConfig,
) *AuthUseCase {
	return &AuthUseCase{
		logger:   logger,
		userRepo: userRepo,
		tokens:   tokens,
		audit:    audit,
		cfg:      cfg.WithDefaults(),
		now:      time.Now,
	}
}

// NormalizeEmail lower-cases and trims an email before any lookup or write.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login verifies credentials and returns a signed session token with the
// sanitized account view. Unknown email and wrong password produce the same
// error; an active lock wins over credential correctness.
func (uc *AuthUseCase) Login(ctx context.Context, params dto.LoginParams) (string, *dto.UserView, error) {
	email := NormalizeEmail(params.Email)
	if email == "" || params.Password == "" {
		return "", nil, errors.Validation("Email and password required")
	}

	now := uc.now()

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.Internal(err)
	}
	if user == nil || !user.IsActive {
		uc.audit.Record(ctx, model.AuditLoginFailed, email, nil, params.IP, params.UserAgent, nil)
		return "", nil, errors.InvalidCredentials()
	}

	if user.Locked(now) {
		uc.audit.Record(ctx, model.AuditLoginFailed, email, &user.ID, params.IP, params.UserAgent,
			map[string]interface{}{"reason": "locked"})
		return "", nil, errors.AccountLocked()
	}

	if err := auth.VerifyPassword(user.PasswordHash, params.Password); err != nil {
		failure, failErr := uc.userRepo.RegisterLoginFailure(ctx, user.ID, uc.cfg.LockoutThreshold, now.Add(uc.cfg.LockoutDuration))
		if failErr != nil {
			return "", nil, errors.Internal(failErr)
		}

		uc.audit.Record(ctx, model.AuditLoginFailed, email, &user.ID, params.IP, params.UserAgent,
			map[string]interface{}{"attempts": failure.Attempts})
		if failure.Attempts >= uc.cfg.LockoutThreshold {
			uc.logger.Warn("account locked after repeated failures",
				zap.String("user_id", user.ID),
				zap.Int("attempts", failure.Attempts))
			uc.audit.Record(ctx, model.AuditAccountLocked, email, &user.ID, params.IP, params.UserAgent,
				map[string]interface{}{"locked_until": failure.LockedUntil})
		}

		return "", nil, errors.InvalidCredentials()
	}

	if err := uc.userRepo.RegisterLoginSuccess(ctx, user.ID, now); err != nil {
		return "", nil, errors.Internal(err)
	}
	user.FailedLoginAttempts = 0
	user.AccountLockedUntil = nil
	user.LastLogin = &now

	token, err := uc.tokens.Issue(auth.Identity{ID: user.ID, Email: user.Email, Role: user.Role}, now)
	if err != nil {
		return "", nil, errors.Internal(err)
	}

	uc.audit.Record(ctx, model.AuditLoginSuccess, email, &user.ID, params.IP, params.UserAgent, nil)

	return token, dto.NewUserView(user), nil
}

// Register creates an account and logs it in.
func (uc *AuthUseCase) Register(ctx context.Context, params dto.RegisterParams) (string, *dto.UserView, error) {
	email := NormalizeEmail(params.Email)
	if email == "" || params.Password == "" || params.Role == "" {
		return "", nil, errors.Validation("Email, password and role required")
	}
	if !emailPattern.MatchString(email) {
		return "", nil, errors.Validation("Invalid email")
	}
	if !model.ValidRole(params.Role) {
		return "", nil, errors.Validation("Invalid role")
	}
	if len(params.Password) < auth.MinPasswordLength {
		return "", nil, errors.Validation("Password too short")
	}

	taken, err := uc.userRepo.EmailTaken(ctx, email, "")
	if err != nil {
		return "", nil, errors.Internal(err)
	}
	if taken {
		return "", nil, errors.Conflict("Email already in use")
	}

	passwordHash, err := auth.HashPassword(params.Password)
	if err != nil {
		return "", nil, errors.Internal(err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		FullName:     params.FullName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         params.Role,
		UID:          params.UID,
		Dept:         params.Dept,
		IsActive:     true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return "", nil, errors.Internal(err)
	}

	now := uc.now()
	token, err := uc.tokens.Issue(auth.Identity{ID: user.ID, Email: user.Email, Role: user.Role}, now)
	if err != nil {
		return "", nil, errors.Internal(err)
	}

	uc.audit.Record(ctx, model.AuditUserCreated, email, &user.ID, params.IP, params.UserAgent,
		map[string]interface{}{"via": "register"})

	return token, dto.NewUserView(user), nil
}

// Me returns the current account view for a session identity.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserView, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	if user == nil {
		return nil, errors.NotFound("User not found")
	}
	return dto.NewUserView(user), nil
}

// RequestPasswordReset issues a reset token when the account exists. The
// response shape is identical either way so registered emails cannot be
// probed; the returned token is empty for unknown accounts.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, params dto.ForgotPasswordParams) (string, error) {
	email := NormalizeEmail(params.Email)
	if email == "" || !emailPattern.MatchString(email) {
		return "", errors.Validation("Valid email required")
	}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", errors.Internal(err)
	}
	if user == nil {
		return "", nil
	}

	token, tokenHash, err := auth.NewResetToken()
	if err != nil {
		return "", errors.Internal(err)
	}

	expires := uc.now().Add(uc.cfg.ResetTokenTTL)
	if err := uc.userRepo.SetResetToken(ctx, user.ID, tokenHash, expires); err != nil {
		return "", errors.Internal(err)
	}

	uc.audit.Record(ctx, model.AuditPasswordResetRequested, email, &user.ID, params.IP, params.UserAgent, nil)

	return token, nil
}

// CompletePasswordReset consumes a reset token. A consumed or expired token
// never authorizes another change: completion clears both reset fields.
func (uc *AuthUseCase) CompletePasswordReset(ctx context.Context, params dto.ResetPasswordParams) error {
	if params.Token == "" || params.NewPassword == "" {
		return errors.Validation("Token and newPassword required")
	}
	if len(params.NewPassword) < auth.MinPasswordLength {
		return errors.Validation("Password too short")
	}

	user, err := uc.userRepo.FindByResetToken(ctx, auth.HashResetToken(params.Token), uc.now())
	if err != nil {
		return errors.Internal(err)
	}
	if user == nil {
		return errors.Validation("Invalid or expired token")
	}

	passwordHash, err := auth.HashPassword(params.NewPassword)
	if err != nil {
		return errors.Internal(err)
	}

	if err := uc.userRepo.CompletePasswordReset(ctx, user.ID, passwordHash); err != nil {
		return errors.Internal(err)
	}

	uc.audit.Record(ctx, model.AuditPasswordResetCompleted, user.Email, &user.ID, "", "", nil)

	return nil
}
