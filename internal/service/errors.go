// FILE: internal/service/errors.go
package service

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRecoveryKey = errors.New("invalid recovery key")
	ErrSessionExpired     = errors.New("session expired")
	ErrUserNotFound       = errors.New("user not found")
	ErrQuotaExceeded      = errors.New("generation quota exceeded for current plan")
	ErrPremiumRequired    = errors.New("tool requires a paid plan")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrTicketClosed       = errors.New("ticket is closed")
	ErrTxnNotFound        = errors.New("transaction not found")
	ErrTxnAlreadyDone     = errors.New("transaction already reviewed")
	ErrGatewayDisabled    = errors.New("payment gateway is not configured")
	ErrInvalidPlan        = errors.New("unknown plan")
	ErrNotOwner           = errors.New("resource belongs to another user")
)
