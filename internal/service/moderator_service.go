// FILE: internal/service/moderator_service.go
package service

import (
	"context"
	"time"

	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/pkg/logger"
	"radiant-system-be/internal/repository/contract"
	"radiant-system-be/internal/repository/memory"
	"radiant-system-be/internal/repository/specification"
)

type IModeratorService interface {
	Stats(ctx context.Context) (*dto.ModeratorStatsResponse, error)
	ListUsers(ctx context.Context) ([]dto.ProfileDTO, error)
	SetPlan(ctx context.Context, req *dto.SetPlanRequest) (*dto.ProfileDTO, error)
	ResetUsage(ctx context.Context, email string) (*dto.ProfileDTO, error)
	Logs(level string, limit, offset int) ([]logger.LogEntry, error)
}

type moderatorService struct {
	users    contract.UserRepository
	tickets  contract.TicketRepository
	txns     contract.TransactionRepository
	sessions *memory.SessionRepository
	logger   logger.ILogger
}

func NewModeratorService(
	users contract.UserRepository,
	tickets contract.TicketRepository,
	txns contract.TransactionRepository,
	sessions *memory.SessionRepository,
	log logger.ILogger,
) IModeratorService {
	return &moderatorService{
		users:    users,
		tickets:  tickets,
		txns:     txns,
		sessions: sessions,
		logger:   log,
	}
}

func (s *moderatorService) Stats(ctx context.Context) (*dto.ModeratorStatsResponse, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	openTickets, err := s.tickets.Count(ctx, specification.TicketByStatus{Status: entity.TicketStatusOpen})
	if err != nil {
		return nil, err
	}
	inProgress, err := s.tickets.Count(ctx, specification.TicketByStatus{Status: entity.TicketStatusInProgress})
	if err != nil {
		return nil, err
	}
	openTickets += inProgress
	pending, err := s.txns.Count(ctx, specification.TxnByStatus{Status: entity.TxnStatusPending})
	if err != nil {
		return nil, err
	}

	return &dto.ModeratorStatsResponse{
		Users:               users,
		OpenTickets:         openTickets,
		PendingTransactions: pending,
	}, nil
}

func (s *moderatorService) ListUsers(ctx context.Context) ([]dto.ProfileDTO, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProfileDTO, 0, len(users))
	for i := range users {
		out = append(out, ToProfileDTO(&users[i]))
	}
	return out, nil
}

// SetPlan is the manual override path, no payment involved.
func (s *moderatorService) SetPlan(ctx context.Context, req *dto.SetPlanRequest) (*dto.ProfileDTO, error) {
	plan := entity.UserPlan(req.Plan)
	switch plan {
	case entity.PlanBudget, entity.PlanPro, entity.PlanLegend:
	default:
		return nil, ErrInvalidPlan
	}

	user, err := s.users.FindOne(ctx, specification.UserByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Plan = plan
	user.UpdatedAt = time.Now()
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.sessions.UpdateByEmail(user.Email, func(snap *entity.SessionSnapshot) {
		snap.Plan = plan
	})

	profile := ToProfileDTO(user)
	return &profile, nil
}

// ResetUsage zeroes every per-tool counter for the account. There is no
// scheduled rollover, so this is the manual recovery path for capped users.
func (s *moderatorService) ResetUsage(ctx context.Context, email string) (*dto.ProfileDTO, error) {
	user, err := s.users.FindOne(ctx, specification.UserByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.UsageStats = map[string]int{}
	user.UpdatedAt = time.Now()
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.sessions.UpdateByEmail(user.Email, func(snap *entity.SessionSnapshot) {
		snap.UsageStats = map[string]int{}
	})

	profile := ToProfileDTO(user)
	return &profile, nil
}

func (s *moderatorService) Logs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return s.logger.GetLogs(level, limit, offset)
}
