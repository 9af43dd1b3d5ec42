// FILE: internal/entity/session_entity.go
package entity

import "time"

// SessionSnapshot is the cached profile handed back on every
// authenticated request. It mirrors the directory record at login and
// is refreshed whenever the record changes.
type SessionSnapshot struct {
	TokenId     string
	Email       string
	FullName    string
	AvatarURL   string
	Plan        UserPlan
	IsModerator bool
	UsageStats  UsageStats
	JoinedAt    time.Time
	ExpiresAt   time.Time
}

// IsPremium reports whether the session's plan unlocks premium tools.
func (s *SessionSnapshot) IsPremium() bool {
	return s.Plan == PlanPro || s.Plan == PlanLegend
}
