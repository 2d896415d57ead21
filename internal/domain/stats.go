package domain

// DashboardStats holds the aggregate counters shown on the dashboard.
// Replaced wholesale on each refresh.
type DashboardStats struct {
	ActiveTickets   int `json:"activeTickets"`
	ResolvedTickets int `json:"resolvedTickets"`
	PendingTasks    int `json:"pendingTasks"`
}

// TotalTickets derives the combined ticket count. Computed on read so it can
// never diverge from the source fields.
func (s DashboardStats) TotalTickets() int {
	return s.ActiveTickets + s.ResolvedTickets
}
