// FILE: internal/dto/ticket_dto.go
package dto

import "time"

// --- Ticket DTOs ---

type OpenTicketRequest struct {
	Category string `json:"category" validate:"required"`
	Subject  string `json:"subject" validate:"required,min=3"`
	Message  string `json:"message" validate:"required,min=5"`
}

type TicketReplyRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

type TicketMessageDTO struct {
	Sender string    `json:"sender"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sent_at"`
}

type TicketResponse struct {
	Id        string             `json:"id"`
	UserEmail string             `json:"user_email"`
	UserName  string             `json:"user_name"`
	Category  string             `json:"category"`
	Subject   string             `json:"subject"`
	Status    string             `json:"status"`
	Priority  string             `json:"priority"`
	Messages  []TicketMessageDTO `json:"messages"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
