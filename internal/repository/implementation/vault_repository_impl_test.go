package implementation

import (
	"context"
	"fmt"
	"testing"

	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/pkg/logger"
	"radiant-system-be/pkg/recordstore"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

func TestVaultProjectCapEviction(t *testing.T) {
	repo := NewVaultRepository(recordstore.NewMemoryStore(), nopLogger{})
	ctx := context.Background()

	for i := 0; i < entity.ProjectVaultCap+3; i++ {
		err := repo.SaveProject(ctx, "a@x.com", &entity.GeneratedProject{
			Id:        fmt.Sprintf("p-%d", i),
			Name:      fmt.Sprintf("Project %d", i),
			VaultType: "plugin",
		})
		assert.NoError(t, err)
	}

	projects, err := repo.ListProjects(ctx, "a@x.com", "plugin")
	assert.NoError(t, err)
	assert.Len(t, projects, entity.ProjectVaultCap)

	// Newest first, the oldest three were evicted
	assert.Equal(t, fmt.Sprintf("p-%d", entity.ProjectVaultCap+2), projects[0].Id)
	last := projects[len(projects)-1]
	assert.Equal(t, "p-3", last.Id)
}

func TestVaultProjectRefinementMovesToHead(t *testing.T) {
	repo := NewVaultRepository(recordstore.NewMemoryStore(), nopLogger{})
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		err := repo.SaveProject(ctx, "a@x.com", &entity.GeneratedProject{Id: id, VaultType: "plugin"})
		assert.NoError(t, err)
	}

	// Re-saving an existing id drops the old entry and wins position 0
	err := repo.SaveProject(ctx, "a@x.com", &entity.GeneratedProject{Id: "a", Name: "refined", VaultType: "plugin"})
	assert.NoError(t, err)

	projects, err := repo.ListProjects(ctx, "a@x.com", "plugin")
	assert.NoError(t, err)
	assert.Len(t, projects, 3)
	assert.Equal(t, "a", projects[0].Id)
	assert.Equal(t, "refined", projects[0].Name)
	assert.Equal(t, "c", projects[1].Id)
	assert.Equal(t, "b", projects[2].Id)
}

func TestVaultTypesAreIsolated(t *testing.T) {
	repo := NewVaultRepository(recordstore.NewMemoryStore(), nopLogger{})
	ctx := context.Background()

	assert.NoError(t, repo.SaveProject(ctx, "a@x.com", &entity.GeneratedProject{Id: "p1", VaultType: "plugin"}))
	assert.NoError(t, repo.SaveProject(ctx, "a@x.com", &entity.GeneratedProject{Id: "m1", VaultType: "mod"}))

	plugins, err := repo.ListProjects(ctx, "a@x.com", "plugin")
	assert.NoError(t, err)
	assert.Len(t, plugins, 1)

	mods, err := repo.ListProjects(ctx, "a@x.com", "mod")
	assert.NoError(t, err)
	assert.Len(t, mods, 1)
	assert.Equal(t, "m1", mods[0].Id)
}

func TestVaultSkinCapAndDelete(t *testing.T) {
	repo := NewVaultRepository(recordstore.NewMemoryStore(), nopLogger{})
	ctx := context.Background()

	for i := 0; i < entity.RenderVaultCap+1; i++ {
		err := repo.SaveSkin(ctx, "a@x.com", &entity.SkinRender{
			Id:       fmt.Sprintf("s-%d", i),
			Username: "Steve",
		})
		assert.NoError(t, err)
	}

	skins, err := repo.ListSkins(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Len(t, skins, entity.RenderVaultCap)

	assert.NoError(t, repo.DeleteSkin(ctx, "a@x.com", skins[0].Id))
	skins, err = repo.ListSkins(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Len(t, skins, entity.RenderVaultCap-1)
}
