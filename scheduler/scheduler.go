// Package scheduler drives periodic refresh cycles during the football
// season.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jwillison/gbupool/engine"
)

const defaultInterval = time.Hour

// Refresher is the slice of the updater the scheduler needs.
type Refresher interface {
	RefreshSeason(ctx context.Context) (engine.RefreshStats, error)
}

// Scheduler ticks on an interval and runs a refresh cycle when the clock is
// inside the football window. Cycles run sequentially; a slow cycle simply
// delays the next tick's work.
type Scheduler struct {
	updater  Refresher
	log      *zap.Logger
	interval time.Duration
	now      func() time.Time
}

// New creates a Scheduler. A non-positive interval falls back to hourly.
func New(updater Refresher, log *zap.Logger, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Scheduler{
		updater:  updater,
		log:      log,
		interval: interval,
		now:      time.Now,
	}
}

// Run blocks until ctx is cancelled, refreshing on each tick that lands in
// the season window.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("scheduler started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case <-ticker.C:
			if !inSeasonWindow(s.now()) {
				continue
			}
			if _, err := s.updater.RefreshSeason(ctx); err != nil {
				s.log.Error("scheduled refresh failed", zap.Error(err))
			}
		}
	}
}

// inSeasonWindow reports whether t falls in the football calendar:
// September through February, Thursday through Monday.
func inSeasonWindow(t time.Time) bool {
	month := t.Month()
	if month < time.September && month > time.February {
		return false
	}

	day := t.Weekday()
	return day >= time.Thursday || day <= time.Monday
}
