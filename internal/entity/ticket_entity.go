// FILE: internal/entity/ticket_entity.go
package entity

import "time"

type TicketStatus string
type TicketPriority string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"

	TicketPriorityNormal TicketPriority = "normal"
	TicketPriorityHigh   TicketPriority = "high"
)

// CategoryBilling is the ticket category escalated to high priority.
const CategoryBilling = "Billing & Refunds"

type TicketMessage struct {
	Sender string
	Body   string
	SentAt time.Time
}

type SupportTicket struct {
	Id        string
	UserEmail string
	UserName  string
	Category  string
	Subject   string
	Status    TicketStatus
	Priority  TicketPriority
	Messages  []TicketMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}
