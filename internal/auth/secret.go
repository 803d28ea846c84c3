package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// HashSecret bcrypt-hashes a password or one-time code.
func HashSecret(secret string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth.HashSecret: %w", err)
	}
	return string(h), nil
}

// CheckSecret reports whether secret matches hash.
func CheckSecret(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// dummyHash is compared against when the account does not exist so that
// unknown e-mails take as long as wrong passwords.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// CheckNothing burns one bcrypt comparison and always returns false.
func CheckNothing(secret string) bool {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(secret))
	return false
}

// NewOTP returns a uniformly random numeric code of domain.OTPLength digits.
func NewOTP() (string, error) {
	limit := big.NewInt(1)
	for range domain.OTPLength {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("auth.NewOTP: %w", err)
	}
	return fmt.Sprintf("%0*d", domain.OTPLength, n), nil
}
