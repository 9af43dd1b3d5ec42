package service

import (
	"context"
	"regexp"
	"testing"

	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/entity"
	"radiant-system-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func openTicket(t *testing.T, svc ITicketService, email, category string) *dto.TicketResponse {
	t.Helper()
	resp, err := svc.Open(context.Background(), email, "Ticket User", &dto.OpenTicketRequest{
		Category: category,
		Subject:  "Something broke",
		Message:  "Please have a look at this.",
	})
	assert.NoError(t, err)
	return resp
}

func TestOpenTicket(t *testing.T) {
	f := newFixture()
	svc := NewTicketService(f.tickets, f.users, f.mailer, f.pub)

	resp := openTicket(t, svc, "a@x.com", "General")

	assert.Regexp(t, regexp.MustCompile(`^TKT-\d{4}$`), resp.Id)
	assert.Equal(t, string(entity.TicketStatusOpen), resp.Status)
	assert.Equal(t, string(entity.TicketPriorityNormal), resp.Priority)
	assert.Len(t, resp.Messages, 1)
	assert.Equal(t, "a@x.com", resp.Messages[0].Sender)
	assert.Contains(t, f.pub.types(), events.TypeTicketOpened)
}

func TestOpenBillingTicketEscalates(t *testing.T) {
	f := newFixture()
	svc := NewTicketService(f.tickets, f.users, f.mailer, f.pub)

	resp := openTicket(t, svc, "a@x.com", entity.CategoryBilling)
	assert.Equal(t, string(entity.TicketPriorityHigh), resp.Priority)

	// Case-insensitive category match
	resp = openTicket(t, svc, "a@x.com", "billing & refunds")
	assert.Equal(t, string(entity.TicketPriorityHigh), resp.Priority)
}

func TestReplyStatusTransitions(t *testing.T) {
	f := newFixture()
	svc := NewTicketService(f.tickets, f.users, f.mailer, f.pub)
	ctx := context.Background()

	ticket := openTicket(t, svc, "a@x.com", "General")

	// Support reply moves the ticket to in-progress and masks the sender
	resp, err := svc.Reply(ctx, "mod@x.com", true, ticket.Id, &dto.TicketReplyRequest{Message: "On it."})
	assert.NoError(t, err)
	assert.Equal(t, string(entity.TicketStatusInProgress), resp.Status)
	assert.Equal(t, "support", resp.Messages[1].Sender)

	// Owner reply reopens the thread
	resp, err = svc.Reply(ctx, "a@x.com", false, ticket.Id, &dto.TicketReplyRequest{Message: "Still broken."})
	assert.NoError(t, err)
	assert.Equal(t, string(entity.TicketStatusOpen), resp.Status)
	assert.Equal(t, "a@x.com", resp.Messages[2].Sender)
}

func TestResolveTicket(t *testing.T) {
	f := newFixture()
	svc := NewTicketService(f.tickets, f.users, f.mailer, f.pub)
	ctx := context.Background()

	ticket := openTicket(t, svc, "a@x.com", "General")

	resp, err := svc.Resolve(ctx, ticket.Id)
	assert.NoError(t, err)
	assert.Equal(t, string(entity.TicketStatusResolved), resp.Status)

	// Owner can still follow up, which reopens the thread
	resp, err = svc.Reply(ctx, "a@x.com", false, ticket.Id, &dto.TicketReplyRequest{Message: "It came back."})
	assert.NoError(t, err)
	assert.Equal(t, string(entity.TicketStatusOpen), resp.Status)

	assert.NoError(t, svc.Close(ctx, "a@x.com", false, ticket.Id))
	_, err = svc.Resolve(ctx, ticket.Id)
	assert.ErrorIs(t, err, ErrTicketClosed)

	_, err = svc.Resolve(ctx, "TKT-0000")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestReplyOwnershipAndClosedGuards(t *testing.T) {
	f := newFixture()
	svc := NewTicketService(f.tickets, f.users, f.mailer, f.pub)
	ctx := context.Background()

	ticket := openTicket(t, svc, "a@x.com", "General")

	_, err := svc.Reply(ctx, "stranger@x.com", false, ticket.Id, &dto.TicketReplyRequest{Message: "Mine now."})
	assert.ErrorIs(t, err, ErrNotOwner)

	assert.NoError(t, svc.Close(ctx, "a@x.com", false, ticket.Id))

	_, err = svc.Reply(ctx, "a@x.com", false, ticket.Id, &dto.TicketReplyRequest{Message: "One more thing."})
	assert.ErrorIs(t, err, ErrTicketClosed)

	_, err = svc.Reply(ctx, "a@x.com", false, "TKT-0000", &dto.TicketReplyRequest{Message: "Hello?"})
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestCloseGuards(t *testing.T) {
	f := newFixture()
	svc := NewTicketService(f.tickets, f.users, f.mailer, f.pub)
	ctx := context.Background()

	ticket := openTicket(t, svc, "a@x.com", "General")

	err := svc.Close(ctx, "stranger@x.com", false, ticket.Id)
	assert.ErrorIs(t, err, ErrNotOwner)

	// Moderators can close any ticket
	assert.NoError(t, svc.Close(ctx, "mod@x.com", true, ticket.Id))
}

func TestListMineFiltersByOwner(t *testing.T) {
	f := newFixture()
	svc := NewTicketService(f.tickets, f.users, f.mailer, f.pub)
	ctx := context.Background()

	openTicket(t, svc, "a@x.com", "General")
	openTicket(t, svc, "a@x.com", "General")
	openTicket(t, svc, "b@x.com", "General")

	mine, err := svc.ListMine(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := svc.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}
