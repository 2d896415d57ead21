package dto

import "time"

// CreateTicketRequest payload. Field rules mirror the dashboard form:
// title required, description at least ten characters.
type CreateTicketRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required,min=10"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      string `json:"status" validate:"omitempty,oneof=open in-progress resolved"`
}

// UpdateTicketRequest carries the full replacement for a ticket.
type UpdateTicketRequest struct {
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description" validate:"required,min=10"`
	Priority     string     `json:"priority" validate:"required,oneof=low medium high"`
	Status       string     `json:"status" validate:"required,oneof=open in-progress resolved"`
	CreatedAt    *time.Time `json:"createdAt"`
	AssignedToID *int64     `json:"assignedToId"`
}

// AssignTicketRequest payload.
type AssignTicketRequest struct {
	MemberID int64 `json:"memberId" validate:"required"`
}

// UpdateFiltersRequest carries a partial filter update; absent fields keep
// their current values.
type UpdateFiltersRequest struct {
	Status     *string `json:"status" validate:"omitempty,oneof=all open in-progress resolved"`
	Priority   *string `json:"priority" validate:"omitempty,oneof=all low medium high"`
	Search     *string `json:"search"`
	AssignedTo *string `json:"assignedTo"`
}

// UpdateMemberStatusRequest payload.
type UpdateMemberStatusRequest struct {
	Online *bool `json:"online" validate:"required"`
}
