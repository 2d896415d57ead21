package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/channel"
	"github.com/spec-kit/ticket-dashboard/internal/domain"
	apperrors "github.com/spec-kit/ticket-dashboard/pkg/util"
)

// FilterAll is the sentinel matching every value of a filter dimension.
const FilterAll = "all"

// TicketFetcher loads the ticket list from the (simulated) backend.
type TicketFetcher func(ctx context.Context) ([]domain.Ticket, error)

// Publisher sends messages onto the realtime channel.
type Publisher interface {
	Send(channel.Message)
}

// ActivityRecorder receives dashboard activity entries for side effects such
// as ticket assignment.
type ActivityRecorder interface {
	AddActivity(message string)
}

// Filters narrows the displayed ticket list without mutating stored data.
type Filters struct {
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	Search     string `json:"search"`
	AssignedTo string `json:"assignedTo"`
}

// DefaultFilters matches everything.
func DefaultFilters() Filters {
	return Filters{Status: FilterAll, Priority: FilterAll, Search: "", AssignedTo: FilterAll}
}

// FilterPatch carries partial filter updates; nil fields are left unchanged.
type FilterPatch struct {
	Status     *string
	Priority   *string
	Search     *string
	AssignedTo *string
}

// TicketCreateInput describes ticket creation payload. ID is normally zero
// and assigned by the store.
type TicketCreateInput struct {
	ID          int64
	Title       string
	Description string
	Priority    domain.TicketPriority
	Status      domain.TicketStatus
}

// TicketStore owns the ticket list, the team member roster, the active
// filters and the load status. It is the single writer for all of them.
type TicketStore struct {
	mu      sync.RWMutex
	tickets []domain.Ticket
	members []domain.TeamMember
	filters Filters
	loading bool
	lastErr string
	nextID  int64

	fetch     TicketFetcher
	publisher Publisher
	activity  ActivityRecorder
	logger    *zap.Logger
}

// TicketStoreDeps bundles collaborators for the ticket store.
type TicketStoreDeps struct {
	Fetcher   TicketFetcher
	Publisher Publisher
	Activity  ActivityRecorder
	Logger    *zap.Logger
}

// NewTicketStore constructs the store with the seed roster and empty list.
func NewTicketStore(deps TicketStoreDeps) *TicketStore {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketStore{
		members:   SeedTeamMembers(),
		filters:   DefaultFilters(),
		nextID:    1,
		fetch:     deps.Fetcher,
		publisher: deps.Publisher,
		activity:  deps.Activity,
		logger:    logger,
	}
}

// LoadTickets replaces the entire list with the fetcher's result. The loading
// flag is set for the duration of the fetch; a fetch error is recorded as the
// store error string and leaves the current list untouched.
func (s *TicketStore) LoadTickets(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	tickets, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		s.logger.Warn("ticket load failed", zap.Error(err))
		return apperrors.NewFetchFailure("ticket load", err)
	}
	s.tickets = tickets
	for _, t := range tickets {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	s.logger.Info("tickets loaded", zap.Int("count", len(tickets)))
	return nil
}

// CreateTicket validates id uniqueness, stamps the creation time and inserts
// the ticket at the head of the list. Field-level validation happens at the
// form boundary before this call.
func (s *TicketStore) CreateTicket(input TicketCreateInput) (domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := input.ID
	if id != 0 {
		for _, t := range s.tickets {
			if t.ID == id {
				return domain.Ticket{}, apperrors.NewValidationError("duplicate ticket id", map[string]any{"id": id})
			}
		}
		if id >= s.nextID {
			s.nextID = id + 1
		}
	} else {
		id = s.nextID
		s.nextID++
	}

	ticket := domain.Ticket{
		ID:          id,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Priority:    input.Priority,
		Status:      input.Status,
		CreatedAt:   time.Now(),
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}
	if ticket.Status == "" {
		ticket.Status = domain.TicketStatusOpen
	}

	s.tickets = append([]domain.Ticket{ticket}, s.tickets...)
	return ticket, nil
}

// UpdateTicket replaces the entry matching the ticket's id. A missing id is a
// silent no-op; the return value reports whether a replacement happened.
func (s *TicketStore) UpdateTicket(ticket domain.Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID == ticket.ID {
			s.tickets[i] = ticket
			return true
		}
	}
	return false
}

// DeleteTicket removes the entry with the given id; missing ids are a silent
// no-op.
func (s *TicketStore) DeleteTicket(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			s.tickets = append(s.tickets[:i], s.tickets[i+1:]...)
			return true
		}
	}
	return false
}

// AssignTicket sets the assignee on the matching ticket and publishes exactly
// one assignment notification on the channel. A missing ticket or member is a
// silent no-op with no publication.
func (s *TicketStore) AssignTicket(ticketID, memberID int64) bool {
	s.mu.Lock()
	member, ok := s.memberByID(memberID)
	if !ok {
		s.mu.Unlock()
		return false
	}
	assigned := false
	for i := range s.tickets {
		if s.tickets[i].ID == ticketID {
			assignee := member
			s.tickets[i].AssignedTo = &assignee
			assigned = true
			break
		}
	}
	s.mu.Unlock()
	if !assigned {
		return false
	}

	if s.publisher != nil {
		s.publisher.Send(channel.NewNotificationMessage(
			domain.NotificationInfo,
			"Ticket Assigned",
			fmt.Sprintf("Ticket assigned to %s", member.Name),
		))
	}
	if s.activity != nil {
		s.activity.AddActivity(fmt.Sprintf("Ticket #%d assigned to %s", ticketID, member.Name))
	}
	return true
}

// SetFilters merges the supplied fields into the active filters.
func (s *TicketStore) SetFilters(patch FilterPatch) Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.Status != nil {
		s.filters.Status = *patch.Status
	}
	if patch.Priority != nil {
		s.filters.Priority = *patch.Priority
	}
	if patch.Search != nil {
		s.filters.Search = *patch.Search
	}
	if patch.AssignedTo != nil {
		s.filters.AssignedTo = *patch.AssignedTo
	}
	return s.filters
}

// Filters returns the active filter set.
func (s *TicketStore) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// Tickets returns a copy of the full list, newest first.
func (s *TicketStore) Tickets() []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// FilteredTickets applies the active filters at read time; stored data is
// never mutated by filtering.
func (s *TicketStore) FilteredTickets() []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if matches(t, s.filters) {
			out = append(out, t)
		}
	}
	return out
}

// TeamMembers returns a copy of the roster.
func (s *TicketStore) TeamMembers() []domain.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.TeamMember, len(s.members))
	copy(out, s.members)
	return out
}

// UpdateMemberStatus flips a member's online flag; missing members are a
// silent no-op.
func (s *TicketStore) UpdateMemberStatus(memberID int64, online bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == memberID {
			s.members[i].Online = online
			return true
		}
	}
	return false
}

// Loading reports whether a load is in flight.
func (s *TicketStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last recorded load error, empty when none.
func (s *TicketStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *TicketStore) memberByID(id int64) (domain.TeamMember, bool) {
	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return domain.TeamMember{}, false
}

func matches(t domain.Ticket, f Filters) bool {
	if f.Status != FilterAll && string(t.Status) != f.Status {
		return false
	}
	if f.Priority != FilterAll && string(t.Priority) != f.Priority {
		return false
	}
	if f.AssignedTo != FilterAll {
		if t.AssignedTo == nil {
			return false
		}
		if strconv.FormatInt(t.AssignedTo.ID, 10) != f.AssignedTo {
			return false
		}
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	return true
}
