// FILE: internal/model/notification_model.go
package model

import "time"

// Notification is the real-time payload pushed over the websocket hub.
type Notification struct {
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// BadgeCounts drives the moderator dashboard badges.
type BadgeCounts struct {
	OpenTickets         int `json:"open_tickets"`
	PendingTransactions int `json:"pending_transactions"`
}
