package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/auth"
	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(userID int64, role string) (string, error)
}

// ResetMailer delivers password reset codes.
type ResetMailer interface {
	PasswordResetCode(ctx context.Context, to, name, code string) error
}

// AuthService logs admins in and runs the e-mailed password reset flow.
type AuthService struct {
	users  repo.UserRepo
	otps   repo.OtpRepo
	tokens TokenIssuer
	mailer ResetMailer
	log    *zap.Logger
	now    func() time.Time
}

// NewAuthService wires the login and password-reset flows.
func NewAuthService(users repo.UserRepo, otps repo.OtpRepo, tokens TokenIssuer, mailer ResetMailer, log *zap.Logger) *AuthService {
	return &AuthService{users: users, otps: otps, tokens: tokens, mailer: mailer, log: log, now: time.Now}
}

// Session is the result of a successful login.
type Session struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

var errBadCredentials = fmt.Errorf("%w: invalid e-mail or password", domain.ErrUnauthorized)

// Login checks the password of an active account and issues a token.
// Unknown accounts, inactive accounts and wrong passwords all fail with the
// same domain.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		auth.CheckNothing(password)
		return Session{}, errBadCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}
	if !auth.CheckSecret(u.PasswordHash, password) || u.Status != domain.StatusActive {
		return Session{}, errBadCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return Session{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}

	now := s.now().UTC()
	if _, err := s.users.Update(ctx, u.ID, domain.UserPatch{LastLoginAt: &now}); err != nil {
		s.log.Warn("record last login", zap.Int64("user_id", u.ID), zap.Error(err))
	} else {
		u.LastLoginAt = &now
	}
	return Session{Token: token, User: u}, nil
}

// Me returns the caller's account. A token for a deleted or deactivated
// account is treated as unauthenticated.
func (s *AuthService) Me(ctx context.Context, userID int64) (domain.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, fmt.Errorf("service.AuthService.Me: %w", domain.ErrUnauthorized)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Me: %w", err)
	}
	if u.Status != domain.StatusActive {
		return domain.User{}, fmt.Errorf("service.AuthService.Me: %w", domain.ErrUnauthorized)
	}
	return u, nil
}

// RequestPasswordReset e-mails a fresh one-time code to an active account
// and invalidates any earlier codes. It returns nil for unknown accounts so
// callers cannot probe which addresses exist.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("service.AuthService.RequestPasswordReset: %w", err)
	}
	if u.Status != domain.StatusActive {
		return nil
	}

	code, err := auth.NewOTP()
	if err != nil {
		return fmt.Errorf("service.AuthService.RequestPasswordReset: %w", err)
	}
	hash, err := auth.HashSecret(code)
	if err != nil {
		return fmt.Errorf("service.AuthService.RequestPasswordReset: %w", err)
	}

	now := s.now().UTC()
	if err := s.otps.InvalidateAll(ctx, email, domain.PurposePasswordReset, now); err != nil {
		return fmt.Errorf("service.AuthService.RequestPasswordReset: %w", err)
	}
	_, err = s.otps.Create(ctx, domain.Otp{
		Email:     email,
		CodeHash:  hash,
		Purpose:   domain.PurposePasswordReset,
		ExpiresAt: now.Add(domain.OTPTTL),
	})
	if err != nil {
		return fmt.Errorf("service.AuthService.RequestPasswordReset: %w", err)
	}

	if err := s.mailer.PasswordResetCode(ctx, email, u.Name, code); err != nil {
		s.log.Error("send password reset code", zap.Int64("user_id", u.ID), zap.Error(err))
	}
	return nil
}

// ResetPassword redeems the newest outstanding code for email and sets a
// new password. Each wrong guess uses up one of the code's attempts.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if n := len(newPassword); n < 8 || n > 72 {
		return fmt.Errorf("%w: password must be between 8 and 72 characters", domain.ErrValidation)
	}
	email = normalizeEmail(email)
	now := s.now().UTC()

	otp, err := s.otps.FindLatestActive(ctx, email, domain.PurposePasswordReset, now)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: invalid or expired code", domain.ErrUnauthorized)
	}
	if err != nil {
		return fmt.Errorf("service.AuthService.ResetPassword: %w", err)
	}
	if otp.Attempts >= domain.OTPMaxAttempts || !auth.CheckSecret(otp.CodeHash, code) {
		if _, err := s.otps.IncrementAttempts(ctx, otp.ID); err != nil {
			s.log.Warn("count reset code attempt", zap.Int64("otp_id", otp.ID), zap.Error(err))
		}
		return fmt.Errorf("%w: invalid or expired code", domain.ErrUnauthorized)
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("service.AuthService.ResetPassword: %w", err)
	}
	hash, err := auth.HashSecret(newPassword)
	if err != nil {
		return fmt.Errorf("service.AuthService.ResetPassword: %w", err)
	}
	if _, err := s.users.Update(ctx, u.ID, domain.UserPatch{PasswordHash: &hash}); err != nil {
		return fmt.Errorf("service.AuthService.ResetPassword: %w", err)
	}
	if _, err := s.otps.Update(ctx, otp.ID, domain.OtpPatch{UsedAt: &now}); err != nil {
		return fmt.Errorf("service.AuthService.ResetPassword: %w", err)
	}
	return nil
}
