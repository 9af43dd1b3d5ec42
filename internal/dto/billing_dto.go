// FILE: internal/dto/billing_dto.go
package dto

import "time"

// --- Billing DTOs ---

type SubmitPaymentRequest struct {
	Plan       string `json:"plan" validate:"required,oneof=pro legend"`
	TxnRef     string `json:"txn_ref" validate:"required,min=4"`
	Screenshot string `json:"screenshot"`
}

type CheckoutRequest struct {
	Plan string `json:"plan" validate:"required,oneof=pro legend"`
}

type CheckoutResponse struct {
	TxnId       string `json:"txn_id"`
	OrderId     string `json:"order_id"`
	RedirectURL string `json:"redirect_url"`
}

type TransactionResponse struct {
	Id            string    `json:"id"`
	UserEmail     string    `json:"user_email"`
	UserName      string    `json:"user_name"`
	PlanRequested string    `json:"plan_requested"`
	Amount        int64     `json:"amount"`
	TxnRef        string    `json:"txn_ref"`
	Screenshot    string    `json:"screenshot,omitempty"`
	Status        string    `json:"status"`
	ReviewedBy    string    `json:"reviewed_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReviewTransactionRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

type PlanCatalogEntry struct {
	Plan    string `json:"plan"`
	Price   int64  `json:"price"`
	PerUse  int    `json:"per_tool_limit"`
	Premium bool   `json:"premium_tools"`
}

type MidtransWebhookRequest struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// --- Moderator DTOs ---

type SetPlanRequest struct {
	Email string `json:"email" validate:"required,email"`
	Plan  string `json:"plan" validate:"required,oneof=budget pro legend"`
}

type ResetUsageRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ModeratorStatsResponse struct {
	Users               int `json:"users"`
	OpenTickets         int `json:"open_tickets"`
	PendingTransactions int `json:"pending_transactions"`
}
