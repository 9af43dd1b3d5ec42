package events

import "time"

const (
	TypeUserSignedUp     = "USER_SIGNED_UP"
	TypeGenerationDone   = "GENERATION_COMPLETED"
	TypePaymentSubmitted = "PAYMENT_SUBMITTED"
	TypePaymentReviewed  = "PAYMENT_REVIEWED"
	TypeTicketOpened     = "TICKET_OPENED"
	TypeTicketReplied    = "TICKET_REPLIED"
)

func NewUserSignedUp(email, plan string) Event {
	return BaseEvent{
		Type:       TypeUserSignedUp,
		Data:       map[string]interface{}{"email": email, "plan": plan},
		OccurredAt: time.Now(),
	}
}

func NewGenerationDone(email, tool, artifactId string) Event {
	return BaseEvent{
		Type:       TypeGenerationDone,
		Data:       map[string]interface{}{"email": email, "tool": tool, "artifact_id": artifactId},
		OccurredAt: time.Now(),
	}
}

func NewPaymentSubmitted(email, plan, txnId string) Event {
	return BaseEvent{
		Type:       TypePaymentSubmitted,
		Data:       map[string]interface{}{"email": email, "plan": plan, "txn_id": txnId},
		OccurredAt: time.Now(),
	}
}

func NewPaymentReviewed(email, plan, txnId, verdict string) Event {
	return BaseEvent{
		Type:       TypePaymentReviewed,
		Data:       map[string]interface{}{"email": email, "plan": plan, "txn_id": txnId, "verdict": verdict},
		OccurredAt: time.Now(),
	}
}

func NewTicketOpened(email, ticketId, category string) Event {
	return BaseEvent{
		Type:       TypeTicketOpened,
		Data:       map[string]interface{}{"email": email, "ticket_id": ticketId, "category": category},
		OccurredAt: time.Now(),
	}
}

func NewTicketReplied(email, ticketId, sender string) Event {
	return BaseEvent{
		Type:       TypeTicketReplied,
		Data:       map[string]interface{}{"email": email, "ticket_id": ticketId, "sender": sender},
		OccurredAt: time.Now(),
	}
}
