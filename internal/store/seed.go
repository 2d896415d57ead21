package store

import (
	"context"
	"time"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

// SeedTeamMembers returns the static assignee roster.
func SeedTeamMembers() []domain.TeamMember {
	return []domain.TeamMember{
		{ID: 1, Name: "John Doe", Role: "Senior Developer", Color: "#2196f3", Online: true},
		{ID: 2, Name: "Jane Smith", Role: "System Administrator", Color: "#9c27b0", Online: true},
		{ID: 3, Name: "Mike Johnson", Role: "Network Engineer", Color: "#4caf50", Online: false},
	}
}

// SeedTickets returns the initial ticket list, newest first.
func SeedTickets(now time.Time) []domain.Ticket {
	return []domain.Ticket{
		{
			ID:          1,
			Title:       "Server Maintenance",
			Description: "Regular server maintenance required",
			Priority:    domain.TicketPriorityHigh,
			Status:      domain.TicketStatusOpen,
			CreatedAt:   now,
		},
		{
			ID:          2,
			Title:       "Software Update",
			Description: "Update required for security patches",
			Priority:    domain.TicketPriorityMedium,
			Status:      domain.TicketStatusInProgress,
			CreatedAt:   now,
		},
		{
			ID:          3,
			Title:       "Network Configuration",
			Description: "Configure new network settings",
			Priority:    domain.TicketPriorityLow,
			Status:      domain.TicketStatusResolved,
			CreatedAt:   now,
		},
	}
}

// SimulatedTicketFetcher returns a fetcher that yields the seed tickets after
// the given latency, standing in for a backend call.
func SimulatedTicketFetcher(delay time.Duration) TicketFetcher {
	return func(ctx context.Context) ([]domain.Ticket, error) {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return SeedTickets(time.Now()), nil
	}
}

// SimulatedStatsFetcher returns a fetcher that yields fixed dashboard stats
// after the given latency.
func SimulatedStatsFetcher(delay time.Duration) StatsFetcher {
	return func(ctx context.Context) (domain.DashboardStats, error) {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return domain.DashboardStats{}, ctx.Err()
		}
		return domain.DashboardStats{
			ActiveTickets:   15,
			ResolvedTickets: 45,
			PendingTasks:    8,
		}, nil
	}
}
