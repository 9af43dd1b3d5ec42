package specification

import (
	"strings"

	"radiant-system-be/internal/entity"
)

type TicketById struct {
	Id string
}

func (s TicketById) IsSatisfiedBy(t entity.SupportTicket) bool {
	return t.Id == s.Id
}

type TicketOwnedBy struct {
	Email string
}

func (s TicketOwnedBy) IsSatisfiedBy(t entity.SupportTicket) bool {
	return strings.EqualFold(t.UserEmail, s.Email)
}

type TicketByStatus struct {
	Status entity.TicketStatus
}

func (s TicketByStatus) IsSatisfiedBy(t entity.SupportTicket) bool {
	return t.Status == s.Status
}
