package domain

import "time"

// OTP purposes.
const PurposePasswordReset = "password_reset"

// OTP limits.
const (
	OTPLength      = 6
	OTPTTL         = 10 * time.Minute
	OTPMaxAttempts = 5
)

// Otp is a one-time code sent by e-mail. Only the bcrypt hash of the code
// is stored.
type Otp struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	CodeHash  string     `json:"-"`
	Purpose   string     `json:"purpose"`
	Attempts  int        `json:"attempts"`
	ExpiresAt time.Time  `json:"expiresAt"`
	UsedAt    *time.Time `json:"usedAt"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (o Otp) RecordID() int64      { return o.ID }
func (o Otp) RecordStatus() string { return "" }

// Expired reports whether the code can no longer be redeemed at now.
func (o Otp) Expired(now time.Time) bool {
	return o.UsedAt != nil || !now.Before(o.ExpiresAt) || o.Attempts >= OTPMaxAttempts
}

type OtpPatch struct {
	Attempts *int       `json:"attempts"`
	UsedAt   *time.Time `json:"usedAt"`
}

func (p OtpPatch) PatchedStatus() *string { return nil }
