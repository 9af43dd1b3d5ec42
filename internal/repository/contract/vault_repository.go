package contract

import (
	"context"

	"radiant-system-be/internal/entity"
)

// VaultRepository stores per-user generation artifacts. Every Save
// lands at the head of the owner's collection, dropping any prior entry
// with the same id, and evicts from the tail past the collection cap.
type VaultRepository interface {
	ListProjects(ctx context.Context, email, vaultType string) ([]entity.GeneratedProject, error)
	SaveProject(ctx context.Context, email string, project *entity.GeneratedProject) error
	DeleteProject(ctx context.Context, email, vaultType, id string) error

	ListSkins(ctx context.Context, email string) ([]entity.SkinRender, error)
	SaveSkin(ctx context.Context, email string, render *entity.SkinRender) error
	DeleteSkin(ctx context.Context, email, id string) error

	ListMotds(ctx context.Context, email string) ([]entity.MotdEntry, error)
	SaveMotd(ctx context.Context, email string, motd *entity.MotdEntry) error
	DeleteMotd(ctx context.Context, email, id string) error
}
