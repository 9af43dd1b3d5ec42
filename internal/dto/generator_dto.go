// FILE: internal/dto/generator_dto.go
package dto

import "time"

// --- Generator DTOs ---

type GenerateProjectRequest struct {
	Tool      string `json:"tool" validate:"required"`
	Prompt    string `json:"prompt" validate:"required,min=3"`
	Version   string `json:"version"`
	Platform  string `json:"platform"`
	WithPack  bool   `json:"with_pack"`
	DeepMode  bool   `json:"deep_mode"`
	ProjectId string `json:"project_id"`
}

type ProjectFileDTO struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

type ProjectResponse struct {
	Id          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	VaultType   string           `json:"vault_type"`
	Files       []ProjectFileDTO `json:"files"`
	Steps       []string         `json:"steps"`
	Version     string           `json:"version"`
	Platform    string           `json:"platform"`
	CreatedAt   time.Time        `json:"created_at"`
}

type ProjectGuideRequest struct {
	Tool      string `json:"tool" validate:"required"`
	ProjectId string `json:"project_id" validate:"required"`
}

type DiagnoseRequest struct {
	Log string `json:"log" validate:"required,min=10"`
}

type DiagnoseResponse struct {
	Error    string `json:"error"`
	Cause    string `json:"cause"`
	Solution string `json:"solution"`
	Severity string `json:"severity"`
}

type MotdSearchRequest struct {
	ServerIP string `json:"server_ip" validate:"required,min=3"`
}

type MotdResponse struct {
	Id        string    `json:"id,omitempty"`
	Line1     string    `json:"line1"`
	Line2     string    `json:"line2"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type SkinRenderRequest struct {
	Username string `json:"username" validate:"required,min=2"`
	Prompt   string `json:"prompt"`
}

type SkinRenderResponse struct {
	Id        string    `json:"id"`
	Username  string    `json:"username"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

type AssistantRequest struct {
	Question string             `json:"question" validate:"required,min=2"`
	History  []AssistantTurnDTO `json:"history"`
}

type AssistantTurnDTO struct {
	Role string `json:"role" validate:"required,oneof=user assistant"`
	Text string `json:"text" validate:"required"`
}

type AssistantResponse struct {
	Answer string `json:"answer"`
}
