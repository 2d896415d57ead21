package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
	apperrors "github.com/spec-kit/ticket-dashboard/pkg/util"
)

// StatsFetcher loads aggregate stats from the (simulated) backend.
type StatsFetcher func(ctx context.Context) (domain.DashboardStats, error)

// DashboardStore owns the aggregate stats, the recent-activity feed and the
// refresh status.
type DashboardStore struct {
	mu          sync.RWMutex
	stats       domain.DashboardStats
	activity    []domain.Activity
	maxActivity int
	loading     bool
	lastErr     string

	fetch  StatsFetcher
	logger *zap.Logger
}

// NewDashboardStore constructs the store. maxActivity bounds the feed length.
func NewDashboardStore(fetch StatsFetcher, maxActivity int, logger *zap.Logger) *DashboardStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxActivity <= 0 {
		maxActivity = 50
	}
	return &DashboardStore{
		maxActivity: maxActivity,
		fetch:       fetch,
		logger:      logger,
	}
}

// RefreshStats replaces the stats wholesale with the fetcher's result. A
// fetch error is recorded as the store error string and keeps prior stats.
func (s *DashboardStore) RefreshStats(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	stats, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		s.logger.Warn("stats refresh failed", zap.Error(err))
		return apperrors.NewFetchFailure("stats refresh", err)
	}
	s.stats = stats
	s.logger.Debug("stats refreshed",
		zap.Int("active", stats.ActiveTickets),
		zap.Int("resolved", stats.ResolvedTickets))
	return nil
}

// Stats returns the current aggregate counters.
func (s *DashboardStore) Stats() domain.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// AddActivity prepends an entry to the recent-activity feed.
func (s *DashboardStore) AddActivity(message string) {
	entry := domain.Activity{
		ID:         uuid.NewString(),
		Message:    message,
		OccurredAt: time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity = append([]domain.Activity{entry}, s.activity...)
	if len(s.activity) > s.maxActivity {
		s.activity = s.activity[:s.maxActivity]
	}
}

// RecentActivity returns a copy of the feed, newest first.
func (s *DashboardStore) RecentActivity() []domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Activity, len(s.activity))
	copy(out, s.activity)
	return out
}

// Loading reports whether a refresh is in flight.
func (s *DashboardStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last recorded refresh error, empty when none.
func (s *DashboardStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
