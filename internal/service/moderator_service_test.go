package service

import (
	"context"
	"testing"
	"time"

	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestModeratorStats(t *testing.T) {
	f := newFixture()
	svc := NewModeratorService(f.users, f.tickets, f.txns, f.sessions, nopLogger{})
	ctx := context.Background()

	seedUser(t, f, "a@x.com", entity.PlanBudget)
	seedUser(t, f, "b@x.com", entity.PlanPro)

	ticketSvc := NewTicketService(f.tickets, f.users, f.mailer, f.pub)
	openTicket(t, ticketSvc, "a@x.com", "General")

	billingSvc := newBillingService(f)
	_, err := billingSvc.SubmitPayment(ctx, "a@x.com", "Alice", &dto.SubmitPaymentRequest{Plan: "pro", TxnRef: "upi-0001"})
	assert.NoError(t, err)

	stats, err := svc.Stats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.Users)
	assert.Equal(t, 1, stats.OpenTickets)
	assert.Equal(t, 1, stats.PendingTransactions)
}

func TestSetPlanOverride(t *testing.T) {
	f := newFixture()
	svc := NewModeratorService(f.users, f.tickets, f.txns, f.sessions, nopLogger{})
	ctx := context.Background()

	seedUser(t, f, "a@x.com", entity.PlanBudget)
	f.sessions.Save(&entity.SessionSnapshot{
		TokenId:   "tok-1",
		Email:     "a@x.com",
		Plan:      entity.PlanBudget,
		ExpiresAt: time.Now().Add(time.Hour),
	})

	profile, err := svc.SetPlan(ctx, &dto.SetPlanRequest{Email: "a@x.com", Plan: "legend"})
	assert.NoError(t, err)
	assert.Equal(t, "legend", profile.Plan)
	assert.True(t, profile.IsPremium)

	snap, found := f.sessions.Get("tok-1")
	assert.True(t, found)
	assert.Equal(t, entity.PlanLegend, snap.Plan)

	// Downgrades work through the same path
	profile, err = svc.SetPlan(ctx, &dto.SetPlanRequest{Email: "a@x.com", Plan: "budget"})
	assert.NoError(t, err)
	assert.False(t, profile.IsPremium)
}

func TestResetUsageClearsCounters(t *testing.T) {
	f := newFixture()
	svc := NewModeratorService(f.users, f.tickets, f.txns, f.sessions, nopLogger{})
	quota := NewQuotaService(f.users, f.sessions)
	ctx := context.Background()

	seedUser(t, f, "a@x.com", entity.PlanBudget)
	f.sessions.Save(&entity.SessionSnapshot{
		TokenId:   "tok-1",
		Email:     "a@x.com",
		Plan:      entity.PlanBudget,
		ExpiresAt: time.Now().Add(time.Hour),
	})

	for i := 0; i < 5; i++ {
		_, err := quota.ConsumeUse(ctx, "a@x.com", entity.ToolPluginGen)
		assert.NoError(t, err)
	}
	_, err := quota.ConsumeUse(ctx, "a@x.com", entity.ToolPluginGen)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	profile, err := svc.ResetUsage(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Empty(t, profile.UsageStats)

	snap, found := f.sessions.Get("tok-1")
	assert.True(t, found)
	assert.Empty(t, snap.UsageStats)

	// Counter starts over after the reset
	remaining, err := quota.ConsumeUse(ctx, "a@x.com", entity.ToolPluginGen)
	assert.NoError(t, err)
	assert.Equal(t, 4, remaining)

	_, err = svc.ResetUsage(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetPlanValidation(t *testing.T) {
	f := newFixture()
	svc := NewModeratorService(f.users, f.tickets, f.txns, f.sessions, nopLogger{})
	ctx := context.Background()

	_, err := svc.SetPlan(ctx, &dto.SetPlanRequest{Email: "a@x.com", Plan: "platinum"})
	assert.ErrorIs(t, err, ErrInvalidPlan)

	_, err = svc.SetPlan(ctx, &dto.SetPlanRequest{Email: "ghost@x.com", Plan: "pro"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestVaultServiceRejectsUnknownType(t *testing.T) {
	f := newFixture()
	svc := NewVaultService(f.vault)
	ctx := context.Background()

	_, err := svc.ListProjects(ctx, "a@x.com", "world_edit")
	assert.Error(t, err)

	err = svc.DeleteProject(ctx, "a@x.com", "world_edit", "id")
	assert.Error(t, err)

	// Known types pass through to the repository
	projects, err := svc.ListProjects(ctx, "a@x.com", "plugin")
	assert.NoError(t, err)
	assert.Empty(t, projects)
}
