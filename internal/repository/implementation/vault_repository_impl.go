package implementation

import (
	"context"

	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/pkg/logger"
	"radiant-system-be/internal/repository/contract"
	"radiant-system-be/pkg/recordstore"
)

type VaultRepositoryImpl struct {
	projects *recordstore.Collection[entity.GeneratedProject]
	skins    *recordstore.Collection[entity.SkinRender]
	motds    *recordstore.Collection[entity.MotdEntry]
}

func NewVaultRepository(store recordstore.Store, log logger.ILogger) contract.VaultRepository {
	warn := warnFunc(log)
	return &VaultRepositoryImpl{
		projects: recordstore.NewCollection[entity.GeneratedProject](store, warn),
		skins:    recordstore.NewCollection[entity.SkinRender](store, warn),
		motds:    recordstore.NewCollection[entity.MotdEntry](store, warn),
	}
}

func (r *VaultRepositoryImpl) projectKey(email, vaultType string) string {
	return recordstore.Key(recordstore.CollectionVault, email, vaultType)
}

func (r *VaultRepositoryImpl) ListProjects(ctx context.Context, email, vaultType string) ([]entity.GeneratedProject, error) {
	return r.projects.Read(ctx, r.projectKey(email, vaultType))
}

func (r *VaultRepositoryImpl) SaveProject(ctx context.Context, email string, project *entity.GeneratedProject) error {
	key := r.projectKey(email, project.VaultType)
	items, err := r.projects.Read(ctx, key)
	if err != nil {
		return err
	}
	items = upsertHead(items, *project, func(p entity.GeneratedProject) bool {
		return p.Id == project.Id
	}, entity.ProjectVaultCap)
	return r.projects.Write(ctx, key, items)
}

func (r *VaultRepositoryImpl) DeleteProject(ctx context.Context, email, vaultType, id string) error {
	key := r.projectKey(email, vaultType)
	items, err := r.projects.Read(ctx, key)
	if err != nil {
		return err
	}
	items = removeWhere(items, func(p entity.GeneratedProject) bool { return p.Id == id })
	return r.projects.Write(ctx, key, items)
}

func (r *VaultRepositoryImpl) ListSkins(ctx context.Context, email string) ([]entity.SkinRender, error) {
	return r.skins.Read(ctx, recordstore.Key(recordstore.CollectionSkins, email))
}

func (r *VaultRepositoryImpl) SaveSkin(ctx context.Context, email string, render *entity.SkinRender) error {
	key := recordstore.Key(recordstore.CollectionSkins, email)
	items, err := r.skins.Read(ctx, key)
	if err != nil {
		return err
	}
	items = upsertHead(items, *render, func(s entity.SkinRender) bool {
		return s.Id == render.Id
	}, entity.RenderVaultCap)
	return r.skins.Write(ctx, key, items)
}

func (r *VaultRepositoryImpl) DeleteSkin(ctx context.Context, email, id string) error {
	key := recordstore.Key(recordstore.CollectionSkins, email)
	items, err := r.skins.Read(ctx, key)
	if err != nil {
		return err
	}
	items = removeWhere(items, func(s entity.SkinRender) bool { return s.Id == id })
	return r.skins.Write(ctx, key, items)
}

func (r *VaultRepositoryImpl) ListMotds(ctx context.Context, email string) ([]entity.MotdEntry, error) {
	return r.motds.Read(ctx, recordstore.Key(recordstore.CollectionMotds, email))
}

func (r *VaultRepositoryImpl) SaveMotd(ctx context.Context, email string, motd *entity.MotdEntry) error {
	key := recordstore.Key(recordstore.CollectionMotds, email)
	items, err := r.motds.Read(ctx, key)
	if err != nil {
		return err
	}
	items = upsertHead(items, *motd, func(m entity.MotdEntry) bool {
		return m.Id == motd.Id
	}, entity.RenderVaultCap)
	return r.motds.Write(ctx, key, items)
}

func (r *VaultRepositoryImpl) DeleteMotd(ctx context.Context, email, id string) error {
	key := recordstore.Key(recordstore.CollectionMotds, email)
	items, err := r.motds.Read(ctx, key)
	if err != nil {
		return err
	}
	items = removeWhere(items, func(m entity.MotdEntry) bool { return m.Id == id })
	return r.motds.Write(ctx, key, items)
}
