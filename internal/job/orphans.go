package job

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/media"
)

// sweepBatch caps how many orphans one run retries.
const sweepBatch = 100

// OrphanStore is the subset of repo.OrphanRepo the sweeper needs.
type OrphanStore interface {
	ListDue(ctx context.Context, maxAttempts, limit int) ([]domain.MediaOrphan, error)
	Resolve(ctx context.Context, id int64) error
	Fail(ctx context.Context, id int64, lastErr string) error
	CountExhausted(ctx context.Context, maxAttempts int) (int, error)
}

// SweepMetrics records sweeper results.
type SweepMetrics interface {
	OrphanSwept(outcome string)
	OrphansExhausted(n int)
}

// OrphanSweeper retries media removals that failed during a request.
type OrphanSweeper struct {
	orphans OrphanStore
	remover media.Remover
	metrics SweepMetrics
	log     *zap.Logger
}

// NewOrphanSweeper returns a sweeper that retries removals through remover.
func NewOrphanSweeper(orphans OrphanStore, remover media.Remover, metrics SweepMetrics, log *zap.Logger) *OrphanSweeper {
	return &OrphanSweeper{orphans: orphans, remover: remover, metrics: metrics, log: log}
}

// Run retries every due orphan once. Removed orphans are deleted; failures
// bump the attempt count. Orphans past domain.MaxOrphanAttempts are left
// for manual cleanup and only counted.
func (s *OrphanSweeper) Run(ctx context.Context) error {
	due, err := s.orphans.ListDue(ctx, domain.MaxOrphanAttempts, sweepBatch)
	if err != nil {
		return fmt.Errorf("job.OrphanSweeper.Run: %w", err)
	}

	removed, failed := 0, 0
	for _, o := range due {
		if err := s.remover.Remove(ctx, o.MediaKey); err != nil {
			failed++
			s.metrics.OrphanSwept(media.OutcomeFailed)
			s.log.Warn("orphan removal failed",
				zap.Int64("orphan_id", o.ID),
				zap.String("key", o.MediaKey),
				zap.Int("attempts", o.Attempts+1),
				zap.Error(err),
			)
			if err := s.orphans.Fail(ctx, o.ID, err.Error()); err != nil {
				return fmt.Errorf("job.OrphanSweeper.Run: %w", err)
			}
			continue
		}
		removed++
		s.metrics.OrphanSwept(media.OutcomeRemoved)
		if err := s.orphans.Resolve(ctx, o.ID); err != nil {
			return fmt.Errorf("job.OrphanSweeper.Run: %w", err)
		}
	}

	exhausted, err := s.orphans.CountExhausted(ctx, domain.MaxOrphanAttempts)
	if err != nil {
		return fmt.Errorf("job.OrphanSweeper.Run: %w", err)
	}
	s.metrics.OrphansExhausted(exhausted)
	if exhausted > 0 {
		s.log.Warn("media orphans need manual cleanup", zap.Int("count", exhausted))
	}
	if len(due) > 0 {
		s.log.Info("orphan sweep finished", zap.Int("removed", removed), zap.Int("failed", failed))
	}
	return nil
}
