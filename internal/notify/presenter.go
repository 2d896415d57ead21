package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/channel"
	"github.com/spec-kit/ticket-dashboard/internal/config"
	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

// Presenter maintains the transient list of visible notifications. It
// subscribes to the realtime channel and runs each entry through the timed
// lifecycle: created, exiting after the dismiss delay (or on manual
// dismissal), removed after the exit-animation delay.
type Presenter struct {
	mu            sync.Mutex
	notifications []domain.Notification
	dismissTimers map[int64]*time.Timer
	exitTimers    map[int64]*time.Timer
	nextID        int64
	closed        bool

	dismissAfter time.Duration
	exitAfter    time.Duration

	ch          *channel.Channel
	unsubscribe func()
	logger      *zap.Logger
}

// New constructs a presenter for the given channel.
func New(cfg config.NotificationsConfig, ch *channel.Channel, logger *zap.Logger) *Presenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Presenter{
		dismissTimers: make(map[int64]*time.Timer),
		exitTimers:    make(map[int64]*time.Timer),
		nextID:        1,
		dismissAfter:  cfg.DismissAfter(),
		exitAfter:     cfg.ExitAfter(),
		ch:            ch,
		logger:        logger,
	}
}

// Attach subscribes the presenter to the channel.
func (p *Presenter) Attach() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.unsubscribe == nil {
		p.unsubscribe = p.ch.Subscribe(p)
	}
}

// OnMessage implements channel.Subscriber. Only notification messages append
// an entry; everything else is ignored.
func (p *Presenter) OnMessage(msg channel.Message) {
	if msg.Type != channel.MessageTypeNotification || msg.Notification == nil {
		return
	}
	p.add(*msg.Notification)
}

func (p *Presenter) add(payload channel.NotificationPayload) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	// ids come from a dedicated counter so two notifications created within
	// the same instant can never collide
	id := p.nextID
	p.nextID++

	p.notifications = append(p.notifications, domain.Notification{
		ID:      id,
		Type:    payload.Type,
		Title:   payload.Title,
		Message: payload.Message,
	})
	p.dismissTimers[id] = time.AfterFunc(p.dismissAfter, func() {
		p.beginExit(id)
	})
	p.logger.Debug("notification shown", zap.Int64("id", id), zap.String("title", payload.Title))
}

// Dismiss starts the exit transition immediately and cancels the pending
// auto-dismiss timer. Unknown ids are a no-op.
func (p *Presenter) Dismiss(id int64) {
	p.beginExit(id)
}

// beginExit moves a notification into the exiting state exactly once and
// schedules its removal.
func (p *Presenter) beginExit(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if timer, ok := p.dismissTimers[id]; ok {
		timer.Stop()
		delete(p.dismissTimers, id)
	}
	for i := range p.notifications {
		if p.notifications[i].ID != id {
			continue
		}
		if p.notifications[i].IsExiting {
			return
		}
		p.notifications[i].IsExiting = true
		p.exitTimers[id] = time.AfterFunc(p.exitAfter, func() {
			p.remove(id)
		})
		return
	}
}

func (p *Presenter) remove(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.exitTimers, id)
	for i := range p.notifications {
		if p.notifications[i].ID == id {
			p.notifications = append(p.notifications[:i], p.notifications[i+1:]...)
			return
		}
	}
}

// Notifications returns the visible list in insertion order.
func (p *Presenter) Notifications() []domain.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Notification, len(p.notifications))
	copy(out, p.notifications)
	return out
}

// Close unsubscribes from the channel and stops every pending timer.
func (p *Presenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	for id, timer := range p.dismissTimers {
		timer.Stop()
		delete(p.dismissTimers, id)
	}
	for id, timer := range p.exitTimers {
		timer.Stop()
		delete(p.exitTimers, id)
	}
}
