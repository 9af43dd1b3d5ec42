// FILE: internal/entity/vault_entity.go
package entity

import "time"

const (
	// ProjectVaultCap bounds each per-user project vault collection.
	ProjectVaultCap = 25
	// RenderVaultCap bounds the skin and MOTD vault collections.
	RenderVaultCap = 15
)

type ProjectFile struct {
	Path     string
	Content  string
	Language string
}

type GeneratedProject struct {
	Id          string
	Name        string
	Description string
	VaultType   string
	Files       []ProjectFile
	Steps       []string
	Version     string
	Platform    string
	CreatedAt   time.Time
}

type SkinRender struct {
	Id        string
	Username  string
	ImageURL  string
	CreatedAt time.Time
}

type MotdLine struct {
	Line1 string
	Line2 string
}

type MotdEntry struct {
	Id        string
	Prompt    string
	Motd      MotdLine
	CreatedAt time.Time
}
