package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/auth"
	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/service"
)

type stubIssuer struct{}

func (stubIssuer) Issue(userID int64, role string) (string, error) {
	return "token-for-" + role, nil
}

type mockResetMailer struct {
	to, code string
	err      error
}

func (m *mockResetMailer) PasswordResetCode(_ context.Context, to, _, code string) error {
	m.to, m.code = to, code
	return m.err
}

func mustHash(t *testing.T, secret string) string {
	t.Helper()
	h, err := auth.HashSecret(secret)
	require.NoError(t, err)
	return h
}

func adminUser(t *testing.T) domain.User {
	return domain.User{
		ID: 5, Name: "Asha", Email: "asha@example.com", Role: domain.RoleAdmin,
		Status: domain.StatusActive, PasswordHash: mustHash(t, "s3cret-pass"),
	}
}

func usersWith(u domain.User) *mockUserRepo {
	r := &mockUserRepo{}
	r.findByEmail = func(_ context.Context, email string) (domain.User, error) {
		if email == u.Email {
			return u, nil
		}
		return domain.User{}, domain.ErrNotFound
	}
	r.findByID = func(_ context.Context, id int64) (domain.User, error) {
		if id == u.ID {
			return u, nil
		}
		return domain.User{}, domain.ErrNotFound
	}
	r.update = func(context.Context, int64, domain.UserPatch) (domain.User, error) { return u, nil }
	return r
}

func TestAuthService_Login(t *testing.T) {
	svc := service.NewAuthService(usersWith(adminUser(t)), &mockOtpRepo{}, stubIssuer{}, &mockResetMailer{}, zap.NewNop())

	session, err := svc.Login(context.Background(), " ASHA@example.com", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, "token-for-admin", session.Token)
	assert.Equal(t, int64(5), session.User.ID)
	assert.NotNil(t, session.User.LastLoginAt)
}

func TestAuthService_Login_Failures(t *testing.T) {
	inactive := adminUser(t)
	inactive.Status = domain.StatusInactive

	tests := []struct {
		name     string
		user     domain.User
		email    string
		password string
	}{
		{"wrong password", adminUser(t), "asha@example.com", "nope-nope"},
		{"unknown e-mail", adminUser(t), "who@example.com", "s3cret-pass"},
		{"inactive account", inactive, "asha@example.com", "s3cret-pass"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewAuthService(usersWith(tc.user), &mockOtpRepo{}, stubIssuer{}, &mockResetMailer{}, zap.NewNop())

			_, err := svc.Login(context.Background(), tc.email, tc.password)

			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestAuthService_Me_DeletedUserIsUnauthorized(t *testing.T) {
	svc := service.NewAuthService(usersWith(adminUser(t)), &mockOtpRepo{}, stubIssuer{}, &mockResetMailer{}, zap.NewNop())

	_, err := svc.Me(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	u, err := svc.Me(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Asha", u.Name)
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	var created domain.Otp
	invalidated := false
	otps := &mockOtpRepo{}
	otps.invalidateAll = func(_ context.Context, email, purpose string, _ time.Time) error {
		invalidated = email == "asha@example.com" && purpose == domain.PurposePasswordReset
		return nil
	}
	otps.create = func(_ context.Context, o domain.Otp) (domain.Otp, error) {
		created = o
		return o, nil
	}
	mailer := &mockResetMailer{}
	svc := service.NewAuthService(usersWith(adminUser(t)), otps, stubIssuer{}, mailer, zap.NewNop())

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "Asha@Example.com"))

	assert.True(t, invalidated)
	assert.Equal(t, "asha@example.com", mailer.to)
	assert.Len(t, mailer.code, domain.OTPLength)
	assert.True(t, auth.CheckSecret(created.CodeHash, mailer.code), "only the hash is stored")
	assert.WithinDuration(t, time.Now().Add(domain.OTPTTL), created.ExpiresAt, time.Minute)
}

func TestAuthService_RequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	mailer := &mockResetMailer{}
	svc := service.NewAuthService(usersWith(adminUser(t)), &mockOtpRepo{}, stubIssuer{}, mailer, zap.NewNop())

	err := svc.RequestPasswordReset(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.Empty(t, mailer.to)
}

func TestAuthService_RequestPasswordReset_MailFailureIsSilent(t *testing.T) {
	otps := &mockOtpRepo{}
	otps.invalidateAll = func(context.Context, string, string, time.Time) error { return nil }
	otps.create = echoCreate[domain.Otp](nil)
	svc := service.NewAuthService(usersWith(adminUser(t)), otps, stubIssuer{}, &mockResetMailer{err: errors.New("bounced")}, zap.NewNop())

	assert.NoError(t, svc.RequestPasswordReset(context.Background(), "asha@example.com"))
}

func resetFixture(t *testing.T, otp domain.Otp) (*service.AuthService, *domain.UserPatch, *domain.OtpPatch, *int) {
	var userPatch domain.UserPatch
	var otpPatch domain.OtpPatch
	bumps := 0

	users := usersWith(adminUser(t))
	users.update = func(_ context.Context, _ int64, p domain.UserPatch) (domain.User, error) {
		userPatch = p
		return domain.User{}, nil
	}
	otps := &mockOtpRepo{}
	otps.findLatestActive = func(context.Context, string, string, time.Time) (domain.Otp, error) {
		if otp.ID == 0 {
			return domain.Otp{}, domain.ErrNotFound
		}
		return otp, nil
	}
	otps.incrementAttempts = func(context.Context, int64) (int, error) {
		bumps++
		return otp.Attempts + bumps, nil
	}
	otps.update = func(_ context.Context, _ int64, p domain.OtpPatch) (domain.Otp, error) {
		otpPatch = p
		return otp, nil
	}
	svc := service.NewAuthService(users, otps, stubIssuer{}, &mockResetMailer{}, zap.NewNop())
	return svc, &userPatch, &otpPatch, &bumps
}

func TestAuthService_ResetPassword(t *testing.T) {
	svc, userPatch, otpPatch, bumps := resetFixture(t, domain.Otp{ID: 11, CodeHash: mustHash(t, "123456")})

	err := svc.ResetPassword(context.Background(), "asha@example.com", "123456", "brand new pass")

	require.NoError(t, err)
	require.NotNil(t, userPatch.PasswordHash)
	assert.True(t, auth.CheckSecret(*userPatch.PasswordHash, "brand new pass"))
	assert.NotNil(t, otpPatch.UsedAt, "the code cannot be used twice")
	assert.Zero(t, *bumps)
}

func TestAuthService_ResetPassword_WrongCodeCountsAttempt(t *testing.T) {
	svc, userPatch, _, bumps := resetFixture(t, domain.Otp{ID: 11, CodeHash: mustHash(t, "123456")})

	err := svc.ResetPassword(context.Background(), "asha@example.com", "654321", "brand new pass")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 1, *bumps)
	assert.Nil(t, userPatch.PasswordHash)
}

func TestAuthService_ResetPassword_TooManyAttempts(t *testing.T) {
	svc, userPatch, _, _ := resetFixture(t, domain.Otp{ID: 11, CodeHash: mustHash(t, "123456"), Attempts: domain.OTPMaxAttempts})

	err := svc.ResetPassword(context.Background(), "asha@example.com", "123456", "brand new pass")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, userPatch.PasswordHash)
}

func TestAuthService_ResetPassword_NoActiveCode(t *testing.T) {
	svc, _, _, _ := resetFixture(t, domain.Otp{})

	err := svc.ResetPassword(context.Background(), "asha@example.com", "123456", "brand new pass")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_ResetPassword_WeakPassword(t *testing.T) {
	svc, _, _, _ := resetFixture(t, domain.Otp{ID: 11})

	err := svc.ResetPassword(context.Background(), "asha@example.com", "123456", "short")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
