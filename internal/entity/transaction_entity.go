// FILE: internal/entity/transaction_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	TxnStatusPending  TransactionStatus = "pending"
	TxnStatusApproved TransactionStatus = "approved"
	TxnStatusRejected TransactionStatus = "rejected"
)

// PlanPrice returns the listed price in INR for a plan.
func PlanPrice(plan UserPlan) int64 {
	switch plan {
	case PlanLegend:
		return 299
	case PlanPro:
		return 199
	default:
		return 0
	}
}

type PaymentTransaction struct {
	Id            uuid.UUID
	UserEmail     string
	UserName      string
	PlanRequested UserPlan
	Amount        int64
	TxnRef        string
	Screenshot    string
	GatewayOrder  string
	Status        TransactionStatus
	ReviewedBy    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
