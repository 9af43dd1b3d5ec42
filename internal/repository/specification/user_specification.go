package specification

import (
	"strings"

	"radiant-system-be/internal/entity"
)

// UserByEmail filters by email, case-insensitive.
type UserByEmail struct {
	Email string
}

func (s UserByEmail) IsSatisfiedBy(u entity.User) bool {
	return strings.EqualFold(u.Email, s.Email)
}

// UserByPlan filters by plan tier.
type UserByPlan struct {
	Plan entity.UserPlan
}

func (s UserByPlan) IsSatisfiedBy(u entity.User) bool {
	return u.Plan == s.Plan
}

// Moderators filters moderator accounts.
type Moderators struct{}

func (s Moderators) IsSatisfiedBy(u entity.User) bool {
	return u.IsModerator
}
