package implementation

import (
	"context"

	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/pkg/logger"
	"radiant-system-be/internal/repository/contract"
	"radiant-system-be/internal/repository/specification"
	"radiant-system-be/pkg/recordstore"
)

type TicketRepositoryImpl struct {
	col *recordstore.Collection[entity.SupportTicket]
	key string
}

func NewTicketRepository(store recordstore.Store, log logger.ILogger) contract.TicketRepository {
	return &TicketRepositoryImpl{
		col: recordstore.NewCollection[entity.SupportTicket](store, warnFunc(log)),
		key: recordstore.Key(recordstore.CollectionTickets),
	}
}

func (r *TicketRepositoryImpl) Save(ctx context.Context, ticket *entity.SupportTicket) error {
	tickets, err := r.col.Read(ctx, r.key)
	if err != nil {
		return err
	}
	tickets = upsertHead(tickets, *ticket, func(t entity.SupportTicket) bool {
		return t.Id == ticket.Id
	}, 0)
	return r.col.Write(ctx, r.key, tickets)
}

func (r *TicketRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification[entity.SupportTicket]) (*entity.SupportTicket, error) {
	tickets, err := r.col.Read(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if ticket, ok := specification.First(tickets, specs...); ok {
		return &ticket, nil
	}
	return nil, nil
}

func (r *TicketRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification[entity.SupportTicket]) ([]entity.SupportTicket, error) {
	tickets, err := r.col.Read(ctx, r.key)
	if err != nil {
		return nil, err
	}
	return specification.All(tickets, specs...), nil
}

func (r *TicketRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification[entity.SupportTicket]) (int, error) {
	tickets, err := r.col.Read(ctx, r.key)
	if err != nil {
		return 0, err
	}
	return specification.Count(tickets, specs...), nil
}
