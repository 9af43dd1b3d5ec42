package contract

import (
	"context"

	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/repository/specification"
)

type TicketRepository interface {
	// Save inserts the ticket at the head of the global collection, or
	// replaces the stored ticket with the same id in place.
	Save(ctx context.Context, ticket *entity.SupportTicket) error
	FindOne(ctx context.Context, specs ...specification.Specification[entity.SupportTicket]) (*entity.SupportTicket, error)
	FindAll(ctx context.Context, specs ...specification.Specification[entity.SupportTicket]) ([]entity.SupportTicket, error)
	Count(ctx context.Context, specs ...specification.Specification[entity.SupportTicket]) (int, error)
}
