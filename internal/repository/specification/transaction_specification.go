package specification

import (
	"strings"

	"radiant-system-be/internal/entity"

	"github.com/google/uuid"
)

type TxnById struct {
	Id uuid.UUID
}

func (s TxnById) IsSatisfiedBy(t entity.PaymentTransaction) bool {
	return t.Id == s.Id
}

type TxnOwnedBy struct {
	Email string
}

func (s TxnOwnedBy) IsSatisfiedBy(t entity.PaymentTransaction) bool {
	return strings.EqualFold(t.UserEmail, s.Email)
}

type TxnByStatus struct {
	Status entity.TransactionStatus
}

func (s TxnByStatus) IsSatisfiedBy(t entity.PaymentTransaction) bool {
	return t.Status == s.Status
}

// TxnByRef filters by the user-supplied payment reference.
type TxnByRef struct {
	Ref string
}

func (s TxnByRef) IsSatisfiedBy(t entity.PaymentTransaction) bool {
	return t.TxnRef == s.Ref
}

// TxnByGatewayOrder filters by the gateway order id attached at checkout.
type TxnByGatewayOrder struct {
	OrderId string
}

func (s TxnByGatewayOrder) IsSatisfiedBy(t entity.PaymentTransaction) bool {
	return t.GatewayOrder != "" && t.GatewayOrder == s.OrderId
}
