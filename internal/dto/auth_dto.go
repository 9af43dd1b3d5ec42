// FILE: internal/dto/auth_dto.go
package dto

import "time"

// --- Auth DTOs ---

type SignupRequest struct {
	FullName string `json:"full_name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SignupResponse struct {
	Token       string     `json:"token"`
	RecoveryKey string     `json:"recovery_key"`
	Profile     ProfileDTO `json:"profile"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token   string     `json:"token"`
	Profile ProfileDTO `json:"profile"`
}

type RecoveryResetRequest struct {
	Email           string `json:"email" validate:"required,email"`
	RecoveryKey     string `json:"recovery_key" validate:"required,len=6"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type ProfileDTO struct {
	Email       string         `json:"email"`
	FullName    string         `json:"full_name"`
	AvatarURL   string         `json:"avatar_url"`
	Plan        string         `json:"plan"`
	IsPremium   bool           `json:"is_premium"`
	IsModerator bool           `json:"is_moderator"`
	UsageStats  map[string]int `json:"usage_stats"`
	JoinedAt    time.Time      `json:"joined_at"`
}

type UsageResponse struct {
	Plan      string         `json:"plan"`
	Limit     int            `json:"limit"`
	Unlimited bool           `json:"unlimited"`
	Usage     map[string]int `json:"usage"`
}
