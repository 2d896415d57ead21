package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

func TestRefreshStatsReplacesWholesale(t *testing.T) {
	s := NewDashboardStore(SimulatedStatsFetcher(0), 10, nil)

	require.NoError(t, s.RefreshStats(context.Background()))

	stats := s.Stats()
	assert.Equal(t, 15, stats.ActiveTickets)
	assert.Equal(t, 45, stats.ResolvedTickets)
	assert.Equal(t, 8, stats.PendingTasks)
	assert.Equal(t, 60, stats.TotalTickets())
	assert.False(t, s.Loading())
	assert.Empty(t, s.Err())
}

func TestRefreshStatsRecordsError(t *testing.T) {
	calls := 0
	fetch := func(context.Context) (domain.DashboardStats, error) {
		calls++
		if calls > 1 {
			return domain.DashboardStats{}, errors.New("stats endpoint down")
		}
		return domain.DashboardStats{ActiveTickets: 2, ResolvedTickets: 3, PendingTasks: 1}, nil
	}
	s := NewDashboardStore(fetch, 10, nil)

	require.NoError(t, s.RefreshStats(context.Background()))
	require.Error(t, s.RefreshStats(context.Background()))

	assert.Equal(t, "stats endpoint down", s.Err())
	// prior stats are kept on failure
	assert.Equal(t, 5, s.Stats().TotalTickets())
}

func TestTotalTicketsDerivation(t *testing.T) {
	assert.Equal(t, 0, domain.DashboardStats{}.TotalTickets())
	assert.Equal(t, 7, domain.DashboardStats{ActiveTickets: 3, ResolvedTickets: 4, PendingTasks: 99}.TotalTickets())
}

func TestAddActivityNewestFirstAndBounded(t *testing.T) {
	s := NewDashboardStore(SimulatedStatsFetcher(0), 2, nil)

	s.AddActivity("first")
	s.AddActivity("second")
	s.AddActivity("third")

	feed := s.RecentActivity()
	require.Len(t, feed, 2)
	assert.Equal(t, "third", feed[0].Message)
	assert.Equal(t, "second", feed[1].Message)
	assert.NotEqual(t, feed[0].ID, feed[1].ID)
}
