package domain

// TeamMember models a potential assignee for a ticket.
//
// Color is display-only metadata carried through to the presentation layer.
type TeamMember struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Color  string `json:"color"`
	Online bool   `json:"online"`
}
