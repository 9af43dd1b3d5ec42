// FILE: internal/service/quota_service.go
package service

import (
	"context"
	"time"

	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/repository/contract"
	"radiant-system-be/internal/repository/memory"
	"radiant-system-be/internal/repository/specification"
)

type IQuotaService interface {
	// ConsumeUse checks the per-tool cap for the user's plan and, if a
	// use remains, increments the counter in the directory record and
	// every live session. Returns the remaining uses after the
	// increment, or entity.UnlimitedUses for uncapped plans.
	ConsumeUse(ctx context.Context, email string, tool entity.ToolType) (int, error)

	// Usage reports the current counters without consuming anything.
	Usage(ctx context.Context, email string) (*entity.User, int, error)
}

type quotaService struct {
	users    contract.UserRepository
	sessions *memory.SessionRepository
}

func NewQuotaService(users contract.UserRepository, sessions *memory.SessionRepository) IQuotaService {
	return &quotaService{
		users:    users,
		sessions: sessions,
	}
}

func (s *quotaService) ConsumeUse(ctx context.Context, email string, tool entity.ToolType) (int, error) {
	user, err := s.users.FindOne(ctx, specification.UserByEmail{Email: email})
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	if entity.IsPremiumTool(tool) && !user.IsPremium() {
		return 0, ErrPremiumRequired
	}

	limit := entity.PlanLimit(user.Plan)
	used := user.UsesOf(tool)

	if limit != entity.UnlimitedUses && used >= limit {
		return 0, ErrQuotaExceeded
	}

	if user.UsageStats == nil {
		user.UsageStats = entity.UsageStats{}
	}
	user.UsageStats[string(tool)] = used + 1
	user.UpdatedAt = time.Now()

	if err := s.users.Save(ctx, user); err != nil {
		return 0, err
	}

	// Keep live sessions in step with the directory record
	stats := user.UsageStats
	s.sessions.UpdateByEmail(user.Email, func(snap *entity.SessionSnapshot) {
		snap.UsageStats = stats
	})

	if limit == entity.UnlimitedUses {
		return entity.UnlimitedUses, nil
	}
	return limit - (used + 1), nil
}

func (s *quotaService) Usage(ctx context.Context, email string) (*entity.User, int, error) {
	user, err := s.users.FindOne(ctx, specification.UserByEmail{Email: email})
	if err != nil {
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, ErrUserNotFound
	}
	return user, entity.PlanLimit(user.Plan), nil
}
