package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// OtpRepo stores one-time password reset codes.
type OtpRepo interface {
	Repository[domain.Otp, domain.OtpPatch]

	// FindLatestActive returns the newest code for email and purpose that is
	// unused and unexpired at now, or domain.ErrNotFound.
	FindLatestActive(ctx context.Context, email, purpose string, now time.Time) (domain.Otp, error)

	// IncrementAttempts atomically bumps the attempt counter and returns the
	// new value.
	IncrementAttempts(ctx context.Context, id int64) (int, error)

	// InvalidateAll marks every unused code for email and purpose as used.
	InvalidateAll(ctx context.Context, email, purpose string, now time.Time) error

	// DeleteExpired removes codes that expired before cutoff and returns how
	// many were removed.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type pgOtpRepo struct {
	*Table[domain.Otp, domain.OtpPatch]
}

// NewOtpRepo returns an OtpRepo backed by db.
func NewOtpRepo(db db) OtpRepo {
	return pgOtpRepo{newTable(db, otpEntity)}
}

var otpEntity = entity[domain.Otp, domain.OtpPatch]{
	name:    "OtpRepo",
	table:   "otps",
	columns: []string{"id", "email", "code_hash", "purpose", "attempts", "expires_at", "used_at", "created_at"},
	scan: func(s scanner) (domain.Otp, error) {
		var o domain.Otp
		err := s.Scan(&o.ID, &o.Email, &o.CodeHash, &o.Purpose, &o.Attempts, &o.ExpiresAt, &o.UsedAt, &o.CreatedAt)
		return o, err
	},
	insert: func(o domain.Otp) ([]field, error) {
		var s fieldSet
		s.add("email", o.Email)
		s.add("code_hash", o.CodeHash)
		s.add("purpose", o.Purpose)
		s.add("expires_at", o.ExpiresAt)
		return s.result()
	},
	patch: func(p domain.OtpPatch) ([]field, error) {
		var s fieldSet
		opt(&s, "attempts", p.Attempts)
		opt(&s, "used_at", p.UsedAt)
		return s.result()
	},
	filters: []Filter{
		{Key: "email", Column: "email", Op: OpEqual},
		{Key: "purpose", Column: "purpose", Op: OpEqual},
	},
	orderBy: "created_at DESC, id DESC",
}

func (r pgOtpRepo) FindLatestActive(ctx context.Context, email, purpose string, now time.Time) (_ domain.Otp, err error) {
	ctx, span := r.start(ctx, "FindLatestActive")
	defer func() { finish(span, err) }()

	q := fmt.Sprintf(`SELECT %s FROM otps
		WHERE email = $1 AND purpose = $2 AND used_at IS NULL AND expires_at > $3
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, r.e.selectList())

	o, err := r.e.scan(r.db.QueryRow(ctx, q, email, purpose, now))
	if err != nil {
		return domain.Otp{}, fmt.Errorf("repo.OtpRepo.FindLatestActive: %w", translate(err))
	}
	return o, nil
}

func (r pgOtpRepo) IncrementAttempts(ctx context.Context, id int64) (_ int, err error) {
	ctx, span := r.start(ctx, "IncrementAttempts")
	defer func() { finish(span, err) }()

	const q = `UPDATE otps SET attempts = attempts + 1 WHERE id = $1 RETURNING attempts`

	var attempts int
	if err := r.db.QueryRow(ctx, q, id).Scan(&attempts); err != nil {
		return 0, fmt.Errorf("repo.OtpRepo.IncrementAttempts: %w", translate(err))
	}
	return attempts, nil
}

func (r pgOtpRepo) InvalidateAll(ctx context.Context, email, purpose string, now time.Time) (err error) {
	ctx, span := r.start(ctx, "InvalidateAll")
	defer func() { finish(span, err) }()

	const q = `UPDATE otps SET used_at = $3 WHERE email = $1 AND purpose = $2 AND used_at IS NULL`

	if _, err := r.db.Exec(ctx, q, email, purpose, now); err != nil {
		return fmt.Errorf("repo.OtpRepo.InvalidateAll: %w", translate(err))
	}
	return nil
}

func (r pgOtpRepo) DeleteExpired(ctx context.Context, cutoff time.Time) (_ int64, err error) {
	ctx, span := r.start(ctx, "DeleteExpired")
	defer func() { finish(span, err) }()

	const q = `DELETE FROM otps WHERE expires_at < $1`

	tag, err := r.db.Exec(ctx, q, cutoff)
	if err != nil {
		return 0, fmt.Errorf("repo.OtpRepo.DeleteExpired: %w", translate(err))
	}
	return tag.RowsAffected(), nil
}
