package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/channel"
	"github.com/spec-kit/ticket-dashboard/internal/config"
	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/observability"
)

func newTestSetup(t *testing.T) (*channel.Channel, *Presenter) {
	t.Helper()
	ch := channel.New(config.ChannelConfig{
		EchoDelayMS:          10,
		ReconnectMaxAttempts: 5,
		ReconnectDelayMS:     5,
	}, zap.NewNop(), observability.NewMetrics())
	p := New(config.NotificationsConfig{
		DismissAfterMS: 60,
		ExitAfterMS:    30,
	}, ch, zap.NewNop())
	p.Attach()
	t.Cleanup(p.Close)
	ch.Connect()
	return ch, p
}

func TestRoundTripLifecycle(t *testing.T) {
	ch, p := newTestSetup(t)

	ch.Send(channel.NewNotificationMessage(domain.NotificationInfo, "T", "M"))

	// shown after the simulated round trip
	require.Eventually(t, func() bool {
		return len(p.Notifications()) == 1
	}, time.Second, 2*time.Millisecond)

	shown := p.Notifications()[0]
	assert.Equal(t, domain.NotificationInfo, shown.Type)
	assert.Equal(t, "T", shown.Title)
	assert.Equal(t, "M", shown.Message)
	assert.False(t, shown.IsExiting)

	// exiting after the dismiss delay
	require.Eventually(t, func() bool {
		list := p.Notifications()
		return len(list) == 1 && list[0].IsExiting
	}, time.Second, 2*time.Millisecond)

	// removed after the exit delay
	require.Eventually(t, func() bool {
		return len(p.Notifications()) == 0
	}, time.Second, 2*time.Millisecond)
}

func TestConnectionMessagesAreIgnored(t *testing.T) {
	ch, p := newTestSetup(t)

	ch.Connect()
	ch.Send(channel.Message{Type: "presence"})

	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, p.Notifications())
}

func TestManualDismissCancelsAutoTimer(t *testing.T) {
	ch, p := newTestSetup(t)

	ch.Send(channel.NewNotificationMessage(domain.NotificationWarning, "W", "watch out"))
	require.Eventually(t, func() bool {
		return len(p.Notifications()) == 1
	}, time.Second, 2*time.Millisecond)

	id := p.Notifications()[0].ID
	p.Dismiss(id)

	list := p.Notifications()
	require.Len(t, list, 1)
	assert.True(t, list[0].IsExiting, "dismissal transitions immediately")

	require.Eventually(t, func() bool {
		return len(p.Notifications()) == 0
	}, time.Second, 2*time.Millisecond)

	// the cancelled auto timer must not re-run the transition
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, p.Notifications())
}

func TestDismissUnknownIDIsNoOp(t *testing.T) {
	_, p := newTestSetup(t)
	p.Dismiss(12345)
	assert.Empty(t, p.Notifications())
}

func TestRapidNotificationsGetDistinctIDs(t *testing.T) {
	ch, p := newTestSetup(t)

	for i := 0; i < 5; i++ {
		ch.Send(channel.NewNotificationMessage(domain.NotificationSuccess, "T", "M"))
	}

	require.Eventually(t, func() bool {
		return len(p.Notifications()) == 5
	}, time.Second, 2*time.Millisecond)

	seen := make(map[int64]bool)
	for _, n := range p.Notifications() {
		assert.False(t, seen[n.ID], "notification id %d duplicated", n.ID)
		seen[n.ID] = true
	}
}

func TestCloseStopsPendingTimers(t *testing.T) {
	ch, p := newTestSetup(t)

	ch.Send(channel.NewNotificationMessage(domain.NotificationError, "E", "boom"))
	require.Eventually(t, func() bool {
		return len(p.Notifications()) == 1
	}, time.Second, 2*time.Millisecond)

	p.Close()

	// with the lifecycle stopped the entry never transitions or disappears
	time.Sleep(150 * time.Millisecond)
	list := p.Notifications()
	require.Len(t, list, 1)
	assert.False(t, list[0].IsExiting)

	// closed presenter ignores further deliveries
	ch.Send(channel.NewNotificationMessage(domain.NotificationError, "E2", "boom"))
	time.Sleep(40 * time.Millisecond)
	assert.Len(t, p.Notifications(), 1)
}
