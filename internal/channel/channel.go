package channel

import (
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/config"
	"github.com/spec-kit/ticket-dashboard/internal/observability"
)

// Subscriber receives messages delivered on the channel.
type Subscriber interface {
	OnMessage(Message)
}

type subscription struct {
	id  string
	sub Subscriber
}

// Channel is the realtime publish/subscribe hub. Without a Transport it runs
// in simulation mode: connect succeeds immediately and notification messages
// are echoed back to subscribers after a fixed delay, standing in for a
// server round trip.
//
// Instances are constructed explicitly and injected into consumers; there is
// no package-level singleton.
type Channel struct {
	mu        sync.Mutex
	subs      []subscription
	connected bool
	lost      bool
	pending   map[string]*time.Timer

	echoDelay time.Duration
	logger    *zap.Logger
	metrics   *observability.Metrics

	transport      Transport
	policy         ReconnectPolicy
	attempts       int
	reconnectTimer *time.Timer
}

// New creates a simulated channel.
func New(cfg config.ChannelConfig, logger *zap.Logger, metrics *observability.Metrics) *Channel {
	return &Channel{
		pending:   make(map[string]*time.Timer),
		echoDelay: cfg.EchoDelay(),
		logger:    logger,
		metrics:   metrics,
		policy: ReconnectPolicy{
			MaxAttempts: cfg.ReconnectMaxAttempts,
			Delay:       cfg.ReconnectDelay(),
		},
	}
}

// NewWithTransport creates a channel backed by a real transport. Connection
// loss triggers bounded reconnect attempts per the configured policy.
func NewWithTransport(cfg config.ChannelConfig, t Transport, logger *zap.Logger, metrics *observability.Metrics) *Channel {
	c := New(cfg, logger, metrics)
	c.transport = t
	return c
}

// Connect establishes the channel and emits a connected message to current
// subscribers. Repeated calls re-emit the message.
func (c *Channel) Connect() {
	if c.transport == nil {
		c.mu.Lock()
		c.connected = true
		c.lost = false
		c.mu.Unlock()
		c.logger.Info("channel simulation mode active")
		c.deliver(connectedMessage())
		return
	}

	if err := c.transport.Dial(c.deliver, c.onTransportClosed); err != nil {
		c.logger.Warn("channel dial failed", zap.Error(err))
		c.scheduleReconnect()
		return
	}
	c.mu.Lock()
	c.connected = true
	c.lost = false
	c.attempts = 0
	c.mu.Unlock()
	c.logger.Info("channel connected")
	c.deliver(connectedMessage())
}

// Disconnect tears down the channel. Pending simulated echoes are cancelled;
// the subscriber set is retained. No-op when already disconnected.
func (c *Channel) Disconnect() {
	c.mu.Lock()
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
		c.reconnectTimer = nil
	}
	if !c.connected {
		c.mu.Unlock()
		return
	}
	c.connected = false
	for id, timer := range c.pending {
		timer.Stop()
		delete(c.pending, id)
	}
	c.mu.Unlock()

	if c.transport != nil {
		if err := c.transport.Close(); err != nil {
			c.logger.Warn("transport close failed", zap.Error(err))
		}
	}
	c.logger.Info("channel disconnected")
}

// Subscribe registers a subscriber and returns its unsubscribe handle.
// Registering a subscriber that is already present has no additional effect;
// the handle for the existing registration is returned.
func (c *Channel) Subscribe(sub Subscriber) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.subs {
		if sameSubscriber(existing.sub, sub) {
			return c.unsubscribeFunc(existing.id)
		}
	}
	entry := subscription{id: uuid.NewString(), sub: sub}
	c.subs = append(c.subs, entry)
	return c.unsubscribeFunc(entry.id)
}

// sameSubscriber compares subscribers by identity, treating values of
// uncomparable dynamic types as always distinct.
func sameSubscriber(a, b Subscriber) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

func (c *Channel) unsubscribeFunc(id string) func() {
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, sub := range c.subs {
			if sub.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Send accepts a message for the channel. In simulation mode notification
// messages are echoed back to all subscribers after the configured delay;
// other types are accepted without an echo.
func (c *Channel) Send(msg Message) {
	if c.transport != nil {
		if err := c.transport.Send(msg); err != nil {
			c.logger.Warn("transport send failed", zap.String("type", msg.Type), zap.Error(err))
		}
		return
	}

	c.logger.Debug("simulated channel message", zap.String("type", msg.Type))
	if msg.Type != MessageTypeNotification || msg.Notification == nil {
		return
	}

	echo := Message{Type: MessageTypeNotification, Notification: msg.Notification}
	id := uuid.NewString()
	c.mu.Lock()
	c.pending[id] = time.AfterFunc(c.echoDelay, func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		c.deliver(echo)
	})
	c.mu.Unlock()
}

// Connected reports whether the channel is currently established.
func (c *Channel) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Lost reports whether the channel gave up reconnecting.
func (c *Channel) Lost() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lost
}

// deliver fans a message out to the subscribers registered at this moment,
// synchronously and in subscription order. Callbacks run outside the lock so
// they may subscribe or unsubscribe without deadlocking; a subscriber added
// during delivery is not included in it.
func (c *Channel) deliver(msg Message) {
	c.mu.Lock()
	snapshot := make([]subscription, len(c.subs))
	copy(snapshot, c.subs)
	c.mu.Unlock()

	c.metrics.RecordDelivery(msg.Type, len(snapshot))
	for _, entry := range snapshot {
		entry.sub.OnMessage(msg)
	}
}

func (c *Channel) onTransportClosed(err error) {
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()
	c.logger.Warn("channel connection lost", zap.Error(err))
	c.scheduleReconnect()
}

func (c *Channel) scheduleReconnect() {
	c.mu.Lock()
	c.attempts++
	attempt := c.attempts
	if attempt > c.policy.MaxAttempts {
		c.lost = true
		c.mu.Unlock()
		c.logger.Error("channel reconnect attempts exhausted",
			zap.Int("max_attempts", c.policy.MaxAttempts))
		return
	}
	delay := c.policy.Backoff(attempt)
	c.reconnectTimer = time.AfterFunc(delay, c.Connect)
	c.mu.Unlock()
	c.logger.Info("channel reconnect scheduled",
		zap.Int("attempt", attempt),
		zap.Int("max_attempts", c.policy.MaxAttempts),
		zap.Duration("delay", delay))
}
