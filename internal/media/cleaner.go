package media

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// cleanupTimeout bounds one Cleanup call once it is detached from the
// request.
const cleanupTimeout = 30 * time.Second

// Removal outcomes reported to Outcomes.
const (
	OutcomeRemoved = "removed"
	OutcomeFailed  = "failed"
)

// OrphanStore remembers keys whose removal failed.
type OrphanStore interface {
	Record(ctx context.Context, key, lastErr string) error
}

// Outcomes counts removal attempts by outcome.
type Outcomes interface {
	MediaRemoval(outcome string)
}

// Cleaner removes media on a best-effort basis. Failures are logged, counted
// and recorded as orphans for the sweeper; they never reach the caller.
type Cleaner struct {
	remover Remover
	orphans OrphanStore
	metrics Outcomes
	log     *zap.Logger
}

// NewCleaner returns a Cleaner that records failed removals in orphans.
func NewCleaner(remover Remover, orphans OrphanStore, metrics Outcomes, log *zap.Logger) *Cleaner {
	return &Cleaner{remover: remover, orphans: orphans, metrics: metrics, log: log}
}

// Cleanup removes every key. Empty and duplicate keys are skipped.
// It runs after the owning row has changed, so it ignores cancellation of
// ctx: a disconnected client must not leave objects without an orphan row.
func (c *Cleaner) Cleanup(ctx context.Context, keys []string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		if err := c.remover.Remove(ctx, key); err != nil {
			c.metrics.MediaRemoval(OutcomeFailed)
			c.log.Warn("media removal failed, recording orphan", zap.String("key", key), zap.Error(err))
			if recErr := c.orphans.Record(ctx, key, err.Error()); recErr != nil {
				c.log.Error("record media orphan", zap.String("key", key), zap.Error(recErr))
			}
			continue
		}
		c.metrics.MediaRemoval(OutcomeRemoved)
	}
}

// Dropped returns the keys present in before but absent from after.
func Dropped(before, after []string) []string {
	keep := make(map[string]bool, len(after))
	for _, k := range after {
		keep[k] = true
	}
	var out []string
	for _, k := range before {
		if k != "" && !keep[k] {
			out = append(out, k)
		}
	}
	return out
}
