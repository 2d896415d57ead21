package domain

// NotificationType enumerates toast severities.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

// Notification is a transient, auto-dismissing UI message.
//
// IsExiting marks the exit-animation phase between the dismiss trigger and
// final removal from the list.
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsExiting bool             `json:"isExiting"`
}
