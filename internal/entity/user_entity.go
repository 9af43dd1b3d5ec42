// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserPlan string

const (
	PlanBudget UserPlan = "budget"
	PlanPro    UserPlan = "pro"
	PlanLegend UserPlan = "legend"
)

// UnlimitedUses marks a plan without a generation cap.
const UnlimitedUses = -1

// UsageStats counts consumed generations per tool key.
type UsageStats map[string]int

type User struct {
	Id           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	RecoveryCode string
	Plan         UserPlan
	IsModerator  bool
	UsageStats   UsageStats
	JoinedAt     time.Time
	UpdatedAt    time.Time
}

// PlanLimit returns the per-tool generation cap for a plan,
// or UnlimitedUses when the plan has none.
func PlanLimit(plan UserPlan) int {
	switch plan {
	case PlanLegend:
		return UnlimitedUses
	case PlanPro:
		return 20
	default:
		return 5
	}
}

// IsPremium reports whether the plan unlocks premium-gated tools.
func (u *User) IsPremium() bool {
	return u.Plan == PlanPro || u.Plan == PlanLegend
}

// UsesOf returns the consumed count for a tool key.
func (u *User) UsesOf(tool ToolType) int {
	if u.UsageStats == nil {
		return 0
	}
	return u.UsageStats[string(tool)]
}
