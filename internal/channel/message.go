package channel

import "github.com/spec-kit/ticket-dashboard/internal/domain"

// Message types carried over the channel. These two shapes are the wire
// contract a real transport must preserve.
const (
	MessageTypeConnection   = "connection"
	MessageTypeNotification = "notification"
)

// ConnectionStatusConnected is emitted on every successful connect.
const ConnectionStatusConnected = "connected"

// NotificationPayload is the toast content carried by notification messages.
type NotificationPayload struct {
	Type    domain.NotificationType `json:"type"`
	Title   string                  `json:"title"`
	Message string                  `json:"message"`
}

// Message is the envelope delivered to subscribers.
type Message struct {
	Type         string               `json:"type"`
	Status       string               `json:"status,omitempty"`
	Notification *NotificationPayload `json:"notification,omitempty"`
}

// NewNotificationMessage builds a notification envelope.
func NewNotificationMessage(kind domain.NotificationType, title, message string) Message {
	return Message{
		Type: MessageTypeNotification,
		Notification: &NotificationPayload{
			Type:    kind,
			Title:   title,
			Message: message,
		},
	}
}

func connectedMessage() Message {
	return Message{Type: MessageTypeConnection, Status: ConnectionStatusConnected}
}
