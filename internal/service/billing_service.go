// FILE: internal/service/billing_service.go
package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"os"
	"time"

	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/pkg/logger"
	"radiant-system-be/internal/pkg/mailer"
	"radiant-system-be/internal/repository/contract"
	"radiant-system-be/internal/repository/memory"
	"radiant-system-be/internal/repository/specification"
	"radiant-system-be/pkg/events"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IBillingService interface {
	Catalog() []dto.PlanCatalogEntry
	SubmitPayment(ctx context.Context, email, fullName string, req *dto.SubmitPaymentRequest) (*dto.TransactionResponse, error)
	Checkout(ctx context.Context, email, fullName string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	HandleGatewayNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
	Review(ctx context.Context, moderatorEmail string, txnId uuid.UUID, action string) (*dto.TransactionResponse, error)
	ListPending(ctx context.Context) ([]dto.TransactionResponse, error)
	ListMine(ctx context.Context, email string) ([]dto.TransactionResponse, error)
}

type billingService struct {
	txns           contract.TransactionRepository
	users          contract.UserRepository
	sessions       *memory.SessionRepository
	emailService   mailer.IEmailService
	eventPublisher events.Publisher
	logger         logger.ILogger
}

func NewBillingService(
	txns contract.TransactionRepository,
	users contract.UserRepository,
	sessions *memory.SessionRepository,
	emailService mailer.IEmailService,
	eventPublisher events.Publisher,
	log logger.ILogger,
) IBillingService {
	return &billingService{
		txns:           txns,
		users:          users,
		sessions:       sessions,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *billingService) Catalog() []dto.PlanCatalogEntry {
	plans := []entity.UserPlan{entity.PlanBudget, entity.PlanPro, entity.PlanLegend}
	out := make([]dto.PlanCatalogEntry, 0, len(plans))
	for _, plan := range plans {
		out = append(out, dto.PlanCatalogEntry{
			Plan:    string(plan),
			Price:   entity.PlanPrice(plan),
			PerUse:  entity.PlanLimit(plan),
			Premium: plan != entity.PlanBudget,
		})
	}
	return out
}

func parsePaidPlan(raw string) (entity.UserPlan, error) {
	plan := entity.UserPlan(raw)
	if plan != entity.PlanPro && plan != entity.PlanLegend {
		return "", ErrInvalidPlan
	}
	return plan, nil
}

func (s *billingService) SubmitPayment(ctx context.Context, email, fullName string, req *dto.SubmitPaymentRequest) (*dto.TransactionResponse, error) {
	plan, err := parsePaidPlan(req.Plan)
	if err != nil {
		return nil, err
	}

	txn := &entity.PaymentTransaction{
		Id:            uuid.New(),
		UserEmail:     email,
		UserName:      fullName,
		PlanRequested: plan,
		Amount:        entity.PlanPrice(plan),
		TxnRef:        req.TxnRef,
		Screenshot:    req.Screenshot,
		Status:        entity.TxnStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.txns.Save(ctx, txn); err != nil {
		return nil, err
	}

	s.publish(events.NewPaymentSubmitted(email, string(plan), txn.Id.String()))

	resp := toTransactionResponse(txn)
	return &resp, nil
}

// Checkout opens a hosted payment page through Midtrans Snap. The
// transaction stays pending until the gateway webhook settles it.
func (s *billingService) Checkout(ctx context.Context, email, fullName string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		return nil, ErrGatewayDisabled
	}

	plan, err := parsePaidPlan(req.Plan)
	if err != nil {
		return nil, err
	}

	txn := &entity.PaymentTransaction{
		Id:            uuid.New(),
		UserEmail:     email,
		UserName:      fullName,
		PlanRequested: plan,
		Amount:        entity.PlanPrice(plan),
		Status:        entity.TxnStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	txn.GatewayOrder = txn.Id.String()
	txn.TxnRef = "gateway:" + txn.GatewayOrder

	if err := s.txns.Save(ctx, txn); err != nil {
		return nil, err
	}

	var sClient snap.Client
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	frontendURL := os.Getenv("FRONTEND_URL")
	finishRedirectURL := fmt.Sprintf("%s/app?payment=success", frontendURL)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  txn.GatewayOrder,
			GrossAmt: txn.Amount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: finishRedirectURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: fullName,
			Email: email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    string(plan),
				Price: txn.Amount,
				Qty:   1,
				Name:  fmt.Sprintf("Radiant %s plan", plan),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	s.publish(events.NewPaymentSubmitted(email, string(plan), txn.Id.String()))

	return &dto.CheckoutResponse{
		TxnId:       txn.Id.String(),
		OrderId:     txn.GatewayOrder,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

func (s *billingService) HandleGatewayNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		return ErrGatewayDisabled
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		s.logger.Warn("BillingService", "Webhook signature mismatch", map[string]interface{}{
			"order_id": req.OrderId,
		})
		return fmt.Errorf("invalid signature")
	}

	txn, err := s.txns.FindOne(ctx, specification.TxnByGatewayOrder{OrderId: req.OrderId})
	if err != nil {
		return err
	}
	if txn == nil {
		return ErrTxnNotFound
	}
	if txn.Status != entity.TxnStatusPending {
		// Midtrans retries notifications, repeat deliveries are fine
		return nil
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		if req.FraudStatus == "challenge" || req.FraudStatus == "deny" {
			return nil
		}
		return s.settle(ctx, txn, entity.TxnStatusApproved, "gateway")
	case "deny", "cancel", "expire":
		return s.settle(ctx, txn, entity.TxnStatusRejected, "gateway")
	default:
		// pending and other intermediate states need no action
		return nil
	}
}

func (s *billingService) Review(ctx context.Context, moderatorEmail string, txnId uuid.UUID, action string) (*dto.TransactionResponse, error) {
	txn, err := s.txns.FindOne(ctx, specification.TxnById{Id: txnId})
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, ErrTxnNotFound
	}
	if txn.Status != entity.TxnStatusPending {
		return nil, ErrTxnAlreadyDone
	}

	status := entity.TxnStatusRejected
	if action == "approve" {
		status = entity.TxnStatusApproved
	}
	if err := s.settle(ctx, txn, status, moderatorEmail); err != nil {
		return nil, err
	}

	resp := toTransactionResponse(txn)
	return &resp, nil
}

// settle finalizes a pending transaction. Approval ranks the account
// up to the requested plan and propagates it to every live session.
func (s *billingService) settle(ctx context.Context, txn *entity.PaymentTransaction, status entity.TransactionStatus, reviewedBy string) error {
	txn.Status = status
	txn.ReviewedBy = reviewedBy
	txn.UpdatedAt = time.Now()
	if err := s.txns.Save(ctx, txn); err != nil {
		return err
	}

	verdict := "rejected"
	if status == entity.TxnStatusApproved {
		verdict = "approved"

		user, err := s.users.FindOne(ctx, specification.UserByEmail{Email: txn.UserEmail})
		if err != nil {
			return err
		}
		if user != nil {
			user.Plan = txn.PlanRequested
			user.UpdatedAt = time.Now()
			if err := s.users.Save(ctx, user); err != nil {
				return err
			}
			plan := user.Plan
			s.sessions.UpdateByEmail(user.Email, func(snap *entity.SessionSnapshot) {
				snap.Plan = plan
			})
		}

		go func() {
			if emailErr := s.emailService.SendPlanApproved(txn.UserEmail, txn.UserName, string(txn.PlanRequested)); emailErr != nil {
				fmt.Printf("Error sending plan approval email: %v\n", emailErr)
			}
		}()
	}

	s.publish(events.NewPaymentReviewed(txn.UserEmail, string(txn.PlanRequested), txn.Id.String(), verdict))
	return nil
}

func (s *billingService) ListPending(ctx context.Context) ([]dto.TransactionResponse, error) {
	txns, err := s.txns.FindAll(ctx, specification.TxnByStatus{Status: entity.TxnStatusPending})
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(txns), nil
}

func (s *billingService) ListMine(ctx context.Context, email string) ([]dto.TransactionResponse, error) {
	txns, err := s.txns.FindAll(ctx, specification.TxnOwnedBy{Email: email})
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(txns), nil
}

func (s *billingService) publish(event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("BillingService", "Event publish failed", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}

func toTransactionResponse(txn *entity.PaymentTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		Id:            txn.Id.String(),
		UserEmail:     txn.UserEmail,
		UserName:      txn.UserName,
		PlanRequested: string(txn.PlanRequested),
		Amount:        txn.Amount,
		TxnRef:        txn.TxnRef,
		Screenshot:    txn.Screenshot,
		Status:        string(txn.Status),
		ReviewedBy:    txn.ReviewedBy,
		CreatedAt:     txn.CreatedAt,
	}
}

func toTransactionResponses(txns []entity.PaymentTransaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, toTransactionResponse(&txns[i]))
	}
	return out
}
