// FILE: internal/service/notification_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/model"
	"radiant-system-be/internal/pkg/logger"
	"radiant-system-be/internal/repository/contract"
	"radiant-system-be/internal/repository/specification"
	"radiant-system-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(email string, notification model.Notification)
	SendModerators(notification model.Notification)
	SendBadgeCounts(counts model.BadgeCounts)
}

type NotificationService struct {
	pubSub   *gochannel.GoChannel
	topic    string
	tickets  contract.TicketRepository
	txns     contract.TransactionRepository
	delivery NotificationDelivery
	logger   logger.ILogger
}

func NewNotificationService(
	pubSub *gochannel.GoChannel,
	topic string,
	tickets contract.TicketRepository,
	txns contract.TransactionRepository,
	delivery NotificationDelivery,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		pubSub:   pubSub,
		topic:    topic,
		tickets:  tickets,
		txns:     txns,
		delivery: delivery,
		logger:   log,
	}
}

// Start begins draining the internal event topic.
func (s *NotificationService) Start(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	s.logger.Info("NotificationService", "Notification service started", map[string]interface{}{"topic": s.topic})
	return nil
}

func (s *NotificationService) processMessage(ctx context.Context, msg *message.Message) {
	event, err := events.Decode(msg.Payload)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to decode event", map[string]interface{}{"error": err.Error()})
		// Ack malformed messages to prevent infinite retry
		msg.Ack()
		return
	}

	s.handleEvent(ctx, event)
	msg.Ack()
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) {
	payload := event.Payload()
	email, _ := payload["email"].(string)

	switch event.EventType() {
	case events.TypePaymentSubmitted:
		plan, _ := payload["plan"].(string)
		s.delivery.SendModerators(model.Notification{
			Type:      "payment_submitted",
			Title:     "Payment pending review",
			Message:   fmt.Sprintf("%s requested an upgrade to %s", email, plan),
			Metadata:  payload,
			CreatedAt: time.Now(),
		})
		s.refreshBadges(ctx)

	case events.TypePaymentReviewed:
		verdict, _ := payload["verdict"].(string)
		plan, _ := payload["plan"].(string)
		s.delivery.Send(email, model.Notification{
			Type:      "payment_reviewed",
			Title:     "Payment " + verdict,
			Message:   fmt.Sprintf("Your %s upgrade was %s", plan, verdict),
			Metadata:  payload,
			CreatedAt: time.Now(),
		})
		s.refreshBadges(ctx)

	case events.TypeTicketOpened:
		category, _ := payload["category"].(string)
		s.delivery.SendModerators(model.Notification{
			Type:      "ticket_opened",
			Title:     "New support ticket",
			Message:   fmt.Sprintf("%s opened a %s ticket", email, category),
			Metadata:  payload,
			CreatedAt: time.Now(),
		})
		s.refreshBadges(ctx)

	case events.TypeTicketReplied:
		sender, _ := payload["sender"].(string)
		ticketId, _ := payload["ticket_id"].(string)
		if sender == "support" {
			s.delivery.Send(email, model.Notification{
				Type:      "ticket_replied",
				Title:     "Support replied",
				Message:   fmt.Sprintf("Ticket %s has a new reply", ticketId),
				Metadata:  payload,
				CreatedAt: time.Now(),
			})
		} else {
			s.delivery.SendModerators(model.Notification{
				Type:      "ticket_replied",
				Title:     "Ticket updated",
				Message:   fmt.Sprintf("%s replied on %s", email, ticketId),
				Metadata:  payload,
				CreatedAt: time.Now(),
			})
		}
		s.refreshBadges(ctx)
	}
}

func (s *NotificationService) refreshBadges(ctx context.Context) {
	openTickets, err := s.tickets.Count(ctx, specification.TicketByStatus{Status: entity.TicketStatusOpen})
	if err != nil {
		s.logger.Warn("NotificationService", "Ticket badge count failed", map[string]interface{}{"error": err.Error()})
		return
	}
	pending, err := s.txns.Count(ctx, specification.TxnByStatus{Status: entity.TxnStatusPending})
	if err != nil {
		s.logger.Warn("NotificationService", "Txn badge count failed", map[string]interface{}{"error": err.Error()})
		return
	}

	s.delivery.SendBadgeCounts(model.BadgeCounts{
		OpenTickets:         openTickets,
		PendingTransactions: pending,
	})
}
