package dto

import "github.com/spec-kit/ticket-dashboard/internal/domain"

// StatsResponse carries the aggregate counters plus the derived total.
type StatsResponse struct {
	ActiveTickets   int `json:"activeTickets"`
	ResolvedTickets int `json:"resolvedTickets"`
	PendingTasks    int `json:"pendingTasks"`
	TotalTickets    int `json:"totalTickets"`
}

// NewStatsResponse derives the response from domain stats.
func NewStatsResponse(stats domain.DashboardStats) StatsResponse {
	return StatsResponse{
		ActiveTickets:   stats.ActiveTickets,
		ResolvedTickets: stats.ResolvedTickets,
		PendingTasks:    stats.PendingTasks,
		TotalTickets:    stats.TotalTickets(),
	}
}

// UpdatePreferencesRequest carries a partial preferences update.
type UpdatePreferencesRequest struct {
	Notifications *bool   `json:"notifications"`
	AutoRefresh   *bool   `json:"autoRefresh"`
	Language      *string `json:"language" validate:"omitempty,min=2,max=8"`
}
