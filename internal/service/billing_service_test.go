package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"testing"
	"time"

	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/repository/specification"
	"radiant-system-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newBillingService(f *fixture) IBillingService {
	return NewBillingService(f.txns, f.users, f.sessions, f.mailer, f.pub, nopLogger{})
}

func TestCatalog(t *testing.T) {
	svc := newBillingService(newFixture())

	catalog := svc.Catalog()
	assert.Len(t, catalog, 3)

	byPlan := map[string]dto.PlanCatalogEntry{}
	for _, entry := range catalog {
		byPlan[entry.Plan] = entry
	}

	assert.Equal(t, int64(0), byPlan["budget"].Price)
	assert.Equal(t, 5, byPlan["budget"].PerUse)
	assert.False(t, byPlan["budget"].Premium)

	assert.Equal(t, int64(199), byPlan["pro"].Price)
	assert.Equal(t, 20, byPlan["pro"].PerUse)
	assert.True(t, byPlan["pro"].Premium)

	assert.Equal(t, int64(299), byPlan["legend"].Price)
	assert.Equal(t, entity.UnlimitedUses, byPlan["legend"].PerUse)
}

func TestSubmitPayment(t *testing.T) {
	f := newFixture()
	svc := newBillingService(f)
	ctx := context.Background()

	resp, err := svc.SubmitPayment(ctx, "a@x.com", "Alice", &dto.SubmitPaymentRequest{
		Plan:       "pro",
		TxnRef:     "upi-12345",
		Screenshot: "data:image/png;base64,cHJvb2Y=",
	})
	assert.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(199), resp.Amount)
	assert.Equal(t, "pro", resp.PlanRequested)
	assert.Contains(t, f.pub.types(), events.TypePaymentSubmitted)

	// The payment proof rides along for the reviewing moderator
	mine, err := svc.ListMine(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "data:image/png;base64,cHJvb2Y=", mine[0].Screenshot)

	_, err = svc.SubmitPayment(ctx, "a@x.com", "Alice", &dto.SubmitPaymentRequest{
		Plan:   "budget",
		TxnRef: "upi-12345",
	})
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestReviewApproveSyncsPlan(t *testing.T) {
	f := newFixture()
	svc := newBillingService(f)
	ctx := context.Background()

	seedUser(t, f, "a@x.com", entity.PlanBudget)
	f.sessions.Save(&entity.SessionSnapshot{
		TokenId:   "tok-1",
		Email:     "a@x.com",
		Plan:      entity.PlanBudget,
		ExpiresAt: time.Now().Add(time.Hour),
	})

	submitted, err := svc.SubmitPayment(ctx, "a@x.com", "Alice", &dto.SubmitPaymentRequest{
		Plan:   "legend",
		TxnRef: "upi-99999",
	})
	assert.NoError(t, err)

	txnId := uuid.MustParse(submitted.Id)
	reviewed, err := svc.Review(ctx, "mod@x.com", txnId, "approve")
	assert.NoError(t, err)
	assert.Equal(t, "approved", reviewed.Status)
	assert.Equal(t, "mod@x.com", reviewed.ReviewedBy)

	// The directory record and any live session both rank up
	user, err := f.users.FindOne(ctx, specification.UserByEmail{Email: "a@x.com"})
	assert.NoError(t, err)
	assert.Equal(t, entity.PlanLegend, user.Plan)

	snap, found := f.sessions.Get("tok-1")
	assert.True(t, found)
	assert.Equal(t, entity.PlanLegend, snap.Plan)

	assert.Contains(t, f.pub.types(), events.TypePaymentReviewed)

	// A settled transaction cannot be reviewed twice
	_, err = svc.Review(ctx, "mod@x.com", txnId, "reject")
	assert.ErrorIs(t, err, ErrTxnAlreadyDone)
}

func TestReviewRejectLeavesPlanAlone(t *testing.T) {
	f := newFixture()
	svc := newBillingService(f)
	ctx := context.Background()

	seedUser(t, f, "a@x.com", entity.PlanBudget)
	submitted, err := svc.SubmitPayment(ctx, "a@x.com", "Alice", &dto.SubmitPaymentRequest{
		Plan:   "pro",
		TxnRef: "upi-00001",
	})
	assert.NoError(t, err)

	reviewed, err := svc.Review(ctx, "mod@x.com", uuid.MustParse(submitted.Id), "reject")
	assert.NoError(t, err)
	assert.Equal(t, "rejected", reviewed.Status)

	user, err := f.users.FindOne(ctx, specification.UserByEmail{Email: "a@x.com"})
	assert.NoError(t, err)
	assert.Equal(t, entity.PlanBudget, user.Plan)
}

func TestReviewUnknownTransaction(t *testing.T) {
	svc := newBillingService(newFixture())

	_, err := svc.Review(context.Background(), "mod@x.com", uuid.New(), "approve")
	assert.ErrorIs(t, err, ErrTxnNotFound)
}

func midtransSignature(orderId, statusCode, grossAmount, serverKey string) string {
	return fmt.Sprintf("%x", sha512.Sum512([]byte(orderId+statusCode+grossAmount+serverKey)))
}

func seedGatewayTxn(t *testing.T, f *fixture, email string, plan entity.UserPlan) *entity.PaymentTransaction {
	t.Helper()
	txn := &entity.PaymentTransaction{
		Id:            uuid.New(),
		UserEmail:     email,
		UserName:      "Alice",
		PlanRequested: plan,
		Amount:        entity.PlanPrice(plan),
		Status:        entity.TxnStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	txn.GatewayOrder = txn.Id.String()
	txn.TxnRef = "gateway:" + txn.GatewayOrder
	assert.NoError(t, f.txns.Save(context.Background(), txn))
	return txn
}

func TestGatewayNotificationSettlement(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "sk-test")

	f := newFixture()
	svc := newBillingService(f)
	ctx := context.Background()

	seedUser(t, f, "a@x.com", entity.PlanBudget)
	txn := seedGatewayTxn(t, f, "a@x.com", entity.PlanPro)

	req := &dto.MidtransWebhookRequest{
		OrderId:           txn.GatewayOrder,
		StatusCode:        "200",
		GrossAmount:       "199.00",
		TransactionStatus: "settlement",
	}
	req.SignatureKey = midtransSignature(req.OrderId, req.StatusCode, req.GrossAmount, "sk-test")

	assert.NoError(t, svc.HandleGatewayNotification(ctx, req))

	stored, err := f.txns.FindOne(ctx, specification.TxnById{Id: txn.Id})
	assert.NoError(t, err)
	assert.Equal(t, entity.TxnStatusApproved, stored.Status)
	assert.Equal(t, "gateway", stored.ReviewedBy)

	user, err := f.users.FindOne(ctx, specification.UserByEmail{Email: "a@x.com"})
	assert.NoError(t, err)
	assert.Equal(t, entity.PlanPro, user.Plan)

	// Midtrans retries notifications; repeats are acknowledged quietly
	assert.NoError(t, svc.HandleGatewayNotification(ctx, req))
}

func TestGatewayNotificationBadSignature(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "sk-test")

	f := newFixture()
	svc := newBillingService(f)

	txn := seedGatewayTxn(t, f, "a@x.com", entity.PlanPro)

	err := svc.HandleGatewayNotification(context.Background(), &dto.MidtransWebhookRequest{
		OrderId:           txn.GatewayOrder,
		StatusCode:        "200",
		GrossAmount:       "199.00",
		TransactionStatus: "settlement",
		SignatureKey:      "forged",
	})
	assert.Error(t, err)

	stored, err := f.txns.FindOne(context.Background(), specification.TxnById{Id: txn.Id})
	assert.NoError(t, err)
	assert.Equal(t, entity.TxnStatusPending, stored.Status)
}

func TestGatewayNotificationFraudChallengeHolds(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "sk-test")

	f := newFixture()
	svc := newBillingService(f)

	txn := seedGatewayTxn(t, f, "a@x.com", entity.PlanPro)

	req := &dto.MidtransWebhookRequest{
		OrderId:           txn.GatewayOrder,
		StatusCode:        "200",
		GrossAmount:       "199.00",
		TransactionStatus: "capture",
		FraudStatus:       "challenge",
	}
	req.SignatureKey = midtransSignature(req.OrderId, req.StatusCode, req.GrossAmount, "sk-test")

	assert.NoError(t, svc.HandleGatewayNotification(context.Background(), req))

	stored, err := f.txns.FindOne(context.Background(), specification.TxnById{Id: txn.Id})
	assert.NoError(t, err)
	assert.Equal(t, entity.TxnStatusPending, stored.Status)
}

func TestGatewayNotificationExpiry(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "sk-test")

	f := newFixture()
	svc := newBillingService(f)

	txn := seedGatewayTxn(t, f, "a@x.com", entity.PlanPro)

	req := &dto.MidtransWebhookRequest{
		OrderId:           txn.GatewayOrder,
		StatusCode:        "407",
		GrossAmount:       "199.00",
		TransactionStatus: "expire",
	}
	req.SignatureKey = midtransSignature(req.OrderId, req.StatusCode, req.GrossAmount, "sk-test")

	assert.NoError(t, svc.HandleGatewayNotification(context.Background(), req))

	stored, err := f.txns.FindOne(context.Background(), specification.TxnById{Id: txn.Id})
	assert.NoError(t, err)
	assert.Equal(t, entity.TxnStatusRejected, stored.Status)
}

func TestCheckoutDisabledWithoutGateway(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "")

	svc := newBillingService(newFixture())
	_, err := svc.Checkout(context.Background(), "a@x.com", "Alice", &dto.CheckoutRequest{Plan: "pro"})
	assert.ErrorIs(t, err, ErrGatewayDisabled)
}

func TestListPendingAndMine(t *testing.T) {
	f := newFixture()
	svc := newBillingService(f)
	ctx := context.Background()

	seedUser(t, f, "a@x.com", entity.PlanBudget)

	first, err := svc.SubmitPayment(ctx, "a@x.com", "Alice", &dto.SubmitPaymentRequest{Plan: "pro", TxnRef: "upi-1111"})
	assert.NoError(t, err)
	_, err = svc.SubmitPayment(ctx, "b@x.com", "Bob", &dto.SubmitPaymentRequest{Plan: "legend", TxnRef: "upi-2222"})
	assert.NoError(t, err)

	pending, err := svc.ListPending(ctx)
	assert.NoError(t, err)
	assert.Len(t, pending, 2)

	_, err = svc.Review(ctx, "mod@x.com", uuid.MustParse(first.Id), "approve")
	assert.NoError(t, err)

	pending, err = svc.ListPending(ctx)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)

	mine, err := svc.ListMine(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "approved", mine[0].Status)
}
