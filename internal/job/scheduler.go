// Package job runs the background maintenance tasks: retrying failed media
// removals and purging expired one-time codes.
package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// runTimeout bounds a single run of any job.
const runTimeout = 4 * time.Minute

// Scheduler runs jobs on cron schedules. A run still in progress when its
// next tick arrives causes that tick to be skipped.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

// NewScheduler returns a Scheduler that logs through log.
func NewScheduler(log *zap.Logger) *Scheduler {
	cl := cronLogger{log.Sugar()}
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		log:  log,
	}
}

// Add registers run under name on spec ("@every 15m", "@hourly", or a
// five-field cron expression).
func (s *Scheduler) Add(name, spec string, run func(ctx context.Context) error) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		start := time.Now()
		if err := run(ctx); err != nil {
			s.log.Error("job failed", zap.String("job", name), zap.Error(err))
			return
		}
		s.log.Debug("job finished", zap.String("job", name), zap.Duration("took", time.Since(start)))
	})
	if err != nil {
		return fmt.Errorf("job.Scheduler.Add %s: %w", name, err)
	}
	s.log.Info("job scheduled", zap.String("job", name), zap.String("schedule", spec))
	return nil
}

// Start runs registered jobs in the background.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
