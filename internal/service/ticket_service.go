// FILE: internal/service/ticket_service.go
package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/pkg/mailer"
	"radiant-system-be/internal/repository/contract"
	"radiant-system-be/internal/repository/specification"
	"radiant-system-be/pkg/events"
)

type ITicketService interface {
	Open(ctx context.Context, email, fullName string, req *dto.OpenTicketRequest) (*dto.TicketResponse, error)
	Reply(ctx context.Context, email string, moderator bool, ticketId string, req *dto.TicketReplyRequest) (*dto.TicketResponse, error)
	Resolve(ctx context.Context, ticketId string) (*dto.TicketResponse, error)
	Close(ctx context.Context, email string, moderator bool, ticketId string) error
	ListMine(ctx context.Context, email string) ([]dto.TicketResponse, error)
	ListAll(ctx context.Context) ([]dto.TicketResponse, error)
}

type ticketService struct {
	tickets        contract.TicketRepository
	users          contract.UserRepository
	emailService   mailer.IEmailService
	eventPublisher events.Publisher
}

func NewTicketService(
	tickets contract.TicketRepository,
	users contract.UserRepository,
	emailService mailer.IEmailService,
	eventPublisher events.Publisher,
) ITicketService {
	return &ticketService{
		tickets:        tickets,
		users:          users,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

// newTicketId mints TKT-<1000..9999>, retrying on the rare collision.
func (s *ticketService) newTicketId(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(9000))
		if err != nil {
			return "", err
		}
		id := fmt.Sprintf("TKT-%d", n.Int64()+1000)

		existing, err := s.tickets.FindOne(ctx, specification.TicketById{Id: id})
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique ticket id")
}

func (s *ticketService) Open(ctx context.Context, email, fullName string, req *dto.OpenTicketRequest) (*dto.TicketResponse, error) {
	id, err := s.newTicketId(ctx)
	if err != nil {
		return nil, err
	}

	// Billing complaints jump the queue
	priority := entity.TicketPriorityNormal
	if strings.EqualFold(req.Category, entity.CategoryBilling) {
		priority = entity.TicketPriorityHigh
	}

	now := time.Now()
	ticket := &entity.SupportTicket{
		Id:        id,
		UserEmail: email,
		UserName:  fullName,
		Category:  req.Category,
		Subject:   req.Subject,
		Status:    entity.TicketStatusOpen,
		Priority:  priority,
		Messages: []entity.TicketMessage{{
			Sender: email,
			Body:   req.Message,
			SentAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.tickets.Save(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(events.NewTicketOpened(email, ticket.Id, ticket.Category))

	resp := toTicketResponse(ticket)
	return &resp, nil
}

func (s *ticketService) Reply(ctx context.Context, email string, moderator bool, ticketId string, req *dto.TicketReplyRequest) (*dto.TicketResponse, error) {
	ticket, err := s.tickets.FindOne(ctx, specification.TicketById{Id: ticketId})
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}
	if !moderator && !strings.EqualFold(ticket.UserEmail, email) {
		return nil, ErrNotOwner
	}
	if ticket.Status == entity.TicketStatusClosed {
		return nil, ErrTicketClosed
	}

	sender := email
	if moderator {
		sender = "support"
	}
	ticket.Messages = append(ticket.Messages, entity.TicketMessage{
		Sender: sender,
		Body:   req.Message,
		SentAt: time.Now(),
	})

	// A support reply moves the ticket to in-progress so the owner sees
	// movement; an owner reply reopens the thread.
	if moderator {
		ticket.Status = entity.TicketStatusInProgress
	} else {
		ticket.Status = entity.TicketStatusOpen
	}
	ticket.UpdatedAt = time.Now()

	if err := s.tickets.Save(ctx, ticket); err != nil {
		return nil, err
	}

	if moderator {
		go func() {
			if emailErr := s.emailService.SendTicketReply(ticket.UserEmail, ticket.Id, ticket.Subject); emailErr != nil {
				fmt.Printf("Error sending ticket reply email: %v\n", emailErr)
			}
		}()
	}
	s.publish(events.NewTicketReplied(ticket.UserEmail, ticket.Id, sender))

	resp := toTicketResponse(ticket)
	return &resp, nil
}

// Resolve is the moderator path; resolved tickets stay visible and the
// owner can still reply to reopen them.
func (s *ticketService) Resolve(ctx context.Context, ticketId string) (*dto.TicketResponse, error) {
	ticket, err := s.tickets.FindOne(ctx, specification.TicketById{Id: ticketId})
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}
	if ticket.Status == entity.TicketStatusClosed {
		return nil, ErrTicketClosed
	}

	ticket.Status = entity.TicketStatusResolved
	ticket.UpdatedAt = time.Now()
	if err := s.tickets.Save(ctx, ticket); err != nil {
		return nil, err
	}

	go func() {
		if emailErr := s.emailService.SendTicketReply(ticket.UserEmail, ticket.Id, ticket.Subject); emailErr != nil {
			fmt.Printf("Error sending ticket resolved email: %v\n", emailErr)
		}
	}()
	s.publish(events.NewTicketReplied(ticket.UserEmail, ticket.Id, "support"))

	resp := toTicketResponse(ticket)
	return &resp, nil
}

func (s *ticketService) Close(ctx context.Context, email string, moderator bool, ticketId string) error {
	ticket, err := s.tickets.FindOne(ctx, specification.TicketById{Id: ticketId})
	if err != nil {
		return err
	}
	if ticket == nil {
		return ErrTicketNotFound
	}
	if !moderator && !strings.EqualFold(ticket.UserEmail, email) {
		return ErrNotOwner
	}

	ticket.Status = entity.TicketStatusClosed
	ticket.UpdatedAt = time.Now()
	return s.tickets.Save(ctx, ticket)
}

func (s *ticketService) ListMine(ctx context.Context, email string) ([]dto.TicketResponse, error) {
	tickets, err := s.tickets.FindAll(ctx, specification.TicketOwnedBy{Email: email})
	if err != nil {
		return nil, err
	}
	return toTicketResponses(tickets), nil
}

func (s *ticketService) ListAll(ctx context.Context) ([]dto.TicketResponse, error) {
	tickets, err := s.tickets.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toTicketResponses(tickets), nil
}

func (s *ticketService) publish(event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		fmt.Printf("Warn: failed to publish %s: %v\n", event.EventType(), err)
	}
}

func toTicketResponse(ticket *entity.SupportTicket) dto.TicketResponse {
	messages := make([]dto.TicketMessageDTO, 0, len(ticket.Messages))
	for _, m := range ticket.Messages {
		messages = append(messages, dto.TicketMessageDTO{
			Sender: m.Sender,
			Body:   m.Body,
			SentAt: m.SentAt,
		})
	}
	return dto.TicketResponse{
		Id:        ticket.Id,
		UserEmail: ticket.UserEmail,
		UserName:  ticket.UserName,
		Category:  ticket.Category,
		Subject:   ticket.Subject,
		Status:    string(ticket.Status),
		Priority:  string(ticket.Priority),
		Messages:  messages,
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}
}

func toTicketResponses(tickets []entity.SupportTicket) []dto.TicketResponse {
	out := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, toTicketResponse(&tickets[i]))
	}
	return out
}
