package job

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// otpRetention is how long expired codes are kept before purging.
const otpRetention = 24 * time.Hour

// OTPStore is the slice of the OTP repository the purger needs.
type OTPStore interface {
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// PurgeMetrics counts purged codes.
type PurgeMetrics interface {
	OTPsPurged(n int64)
}

// OTPPurger deletes one-time codes that expired more than a day ago.
type OTPPurger struct {
	otps    OTPStore
	metrics PurgeMetrics
	log     *zap.Logger
	now     func() time.Time
}

// NewOTPPurger returns a purger that drops codes older than the retention window.
func NewOTPPurger(otps OTPStore, metrics PurgeMetrics, log *zap.Logger) *OTPPurger {
	return &OTPPurger{otps: otps, metrics: metrics, log: log, now: time.Now}
}

// Run deletes expired codes once.
func (p *OTPPurger) Run(ctx context.Context) error {
	n, err := p.otps.DeleteExpired(ctx, p.now().Add(-otpRetention))
	if err != nil {
		return fmt.Errorf("job.OTPPurger.Run: %w", err)
	}
	p.metrics.OTPsPurged(n)
	if n > 0 {
		p.log.Info("purged expired one-time codes", zap.Int64("count", n))
	}
	return nil
}
