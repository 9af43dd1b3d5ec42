// FILE: internal/service/vault_service.go
package service

import (
	"context"
	"fmt"

	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/repository/contract"
)

type IVaultService interface {
	ListProjects(ctx context.Context, email, vaultType string) ([]dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, email, vaultType, id string) error
	ListSkins(ctx context.Context, email string) ([]dto.SkinRenderResponse, error)
	DeleteSkin(ctx context.Context, email, id string) error
	ListMotds(ctx context.Context, email string) ([]dto.MotdResponse, error)
	DeleteMotd(ctx context.Context, email, id string) error
}

type vaultService struct {
	vault contract.VaultRepository
}

func NewVaultService(vault contract.VaultRepository) IVaultService {
	return &vaultService{vault: vault}
}

var validVaultTypes = map[string]bool{
	"plugin":        true,
	"mod":           true,
	"skript":        true,
	"discord_bot":   true,
	"resource_pack": true,
}

func (s *vaultService) ListProjects(ctx context.Context, email, vaultType string) ([]dto.ProjectResponse, error) {
	if !validVaultTypes[vaultType] {
		return nil, fmt.Errorf("unknown vault type %q", vaultType)
	}
	projects, err := s.vault.ListProjects(ctx, email, vaultType)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, toProjectResponse(&projects[i]))
	}
	return out, nil
}

func (s *vaultService) DeleteProject(ctx context.Context, email, vaultType, id string) error {
	if !validVaultTypes[vaultType] {
		return fmt.Errorf("unknown vault type %q", vaultType)
	}
	return s.vault.DeleteProject(ctx, email, vaultType, id)
}

func (s *vaultService) ListSkins(ctx context.Context, email string) ([]dto.SkinRenderResponse, error) {
	skins, err := s.vault.ListSkins(ctx, email)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SkinRenderResponse, 0, len(skins))
	for _, skin := range skins {
		out = append(out, dto.SkinRenderResponse{
			Id:        skin.Id,
			Username:  skin.Username,
			ImageURL:  skin.ImageURL,
			CreatedAt: skin.CreatedAt,
		})
	}
	return out, nil
}

func (s *vaultService) DeleteSkin(ctx context.Context, email, id string) error {
	return s.vault.DeleteSkin(ctx, email, id)
}

func (s *vaultService) ListMotds(ctx context.Context, email string) ([]dto.MotdResponse, error) {
	motds, err := s.vault.ListMotds(ctx, email)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MotdResponse, 0, len(motds))
	for _, motd := range motds {
		out = append(out, dto.MotdResponse{
			Id:        motd.Id,
			Line1:     motd.Motd.Line1,
			Line2:     motd.Motd.Line2,
			CreatedAt: motd.CreatedAt,
		})
	}
	return out, nil
}

func (s *vaultService) DeleteMotd(ctx context.Context, email, id string) error {
	return s.vault.DeleteMotd(ctx, email, id)
}
