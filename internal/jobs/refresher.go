package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/store"
)

// Refresher refreshes dashboard stats once at start and then on a fixed
// interval until stopped.
type Refresher struct {
	stats    *store.DashboardStore
	interval time.Duration
	c        *cron.Cron
	logger   *zap.Logger
}

// NewRefresher schedules the periodic refresh; call Start to begin.
func NewRefresher(stats *store.DashboardStore, interval time.Duration, logger *zap.Logger) *Refresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := cron.New()
	r := &Refresher{stats: stats, interval: interval, c: c, logger: logger}
	_, _ = c.AddFunc(fmt.Sprintf("@every %s", interval), r.tick)
	return r
}

// Start runs an immediate refresh and starts the schedule.
func (r *Refresher) Start() {
	r.tick()
	r.c.Start()
	r.logger.Info("dashboard refresher started", zap.Duration("interval", r.interval))
}

// Stop cancels the schedule. In-flight refreshes are allowed to finish.
func (r *Refresher) Stop() {
	r.c.Stop()
	r.logger.Info("dashboard refresher stopped")
}

func (r *Refresher) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := r.stats.RefreshStats(ctx); err != nil {
		r.logger.Warn("scheduled stats refresh failed", zap.Error(err))
	}
}
