package domain

import "time"

// Activity is a single entry in the dashboard recent-activity feed.
type Activity struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}
