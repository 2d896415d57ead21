package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/store"
)

func TestRefresherRunsImmediatelyAndOnInterval(t *testing.T) {
	var calls atomic.Int64
	fetch := func(context.Context) (domain.DashboardStats, error) {
		calls.Add(1)
		return domain.DashboardStats{ActiveTickets: 1}, nil
	}
	stats := store.NewDashboardStore(fetch, 10, nil)

	r := NewRefresher(stats, time.Second, nil)
	r.Start()
	defer r.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(1), "initial refresh runs on start")
	require.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, 3*time.Second, 20*time.Millisecond, "interval tick fires")
}

func TestRefresherStopCancelsSchedule(t *testing.T) {
	var calls atomic.Int64
	fetch := func(context.Context) (domain.DashboardStats, error) {
		calls.Add(1)
		return domain.DashboardStats{}, nil
	}
	stats := store.NewDashboardStore(fetch, 10, nil)

	r := NewRefresher(stats, time.Second, nil)
	r.Start()
	r.Stop()

	settled := calls.Load()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, settled, calls.Load(), "no ticks after stop")
}
