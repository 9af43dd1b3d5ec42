package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/entity"
	"radiant-system-be/pkg/genai"

	"github.com/stretchr/testify/assert"
)

// stubModelServer answers every generateContent call with the same text part.
func stubModelServer(reply string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": reply}},
				}},
			},
		})
	}))
}

func newGeneratorFixture(t *testing.T, reply string) (*fixture, IGeneratorService) {
	t.Helper()
	srv := stubModelServer(reply)
	t.Cleanup(srv.Close)

	f := newFixture()
	ai := genai.NewClient("test-key", genai.WithBaseURL(srv.URL), genai.WithHTTPClient(srv.Client()))
	quota := NewQuotaService(f.users, f.sessions)
	svc := NewGeneratorService(ai, quota, f.vault, f.pub, nopLogger{})
	return f, svc
}

const projectReply = `{"title":"Teleporter","files":[{"name":"plugin.yml","content":"name: Teleporter","language":"yaml"},{"name":"src/Main.java","content":"class Main {}","language":"java"}],"steps":["build","install"]}`

func TestGenerateProjectConsumesQuotaAndSaves(t *testing.T) {
	f, svc := newGeneratorFixture(t, projectReply)
	ctx := context.Background()
	seedUser(t, f, "a@x.com", entity.PlanBudget)

	resp, err := svc.GenerateProject(ctx, "a@x.com", &dto.GenerateProjectRequest{
		Tool:    "plugin",
		Prompt:  "teleport command",
		Version: "1.21",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Teleporter", resp.Name)
	assert.Len(t, resp.Files, 2)

	projects, err := f.vault.ListProjects(ctx, "a@x.com", "plugin")
	assert.NoError(t, err)
	assert.Len(t, projects, 1)

	user, err := f.users.FindOne(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, user.UsesOf(entity.ToolPluginGen))
}

func TestGenerateProjectArchivesFullResult(t *testing.T) {
	f, svc := newGeneratorFixture(t, projectReply)
	ctx := context.Background()
	seedUser(t, f, "a@x.com", entity.PlanBudget)

	resp, err := svc.GenerateProject(ctx, "a@x.com", &dto.GenerateProjectRequest{
		Tool:     "plugin",
		Prompt:   "teleport command",
		Version:  "1.21",
		Platform: "paper",
	})
	assert.NoError(t, err)

	// The model's steps and per-file language survive into the response...
	assert.Equal(t, []string{"build", "install"}, resp.Steps)
	assert.Equal(t, "1.21", resp.Version)
	assert.Equal(t, "paper", resp.Platform)
	assert.Equal(t, "yaml", resp.Files[0].Language)
	assert.Equal(t, "java", resp.Files[1].Language)

	// ...and into the archived entry.
	projects, err := f.vault.ListProjects(ctx, "a@x.com", "plugin")
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, []string{"build", "install"}, projects[0].Steps)
	assert.Equal(t, "1.21", projects[0].Version)
	assert.Equal(t, "paper", projects[0].Platform)
	assert.Equal(t, "java", projects[0].Files[1].Language)
}

func TestWriteGuideAppendsArchDocs(t *testing.T) {
	guideText := "# Deployment\nDrop the jar into plugins/ and restart."
	f, svc := newGeneratorFixture(t, guideText)
	ctx := context.Background()
	seedUser(t, f, "a@x.com", entity.PlanBudget)

	seeded := &entity.GeneratedProject{
		Id:        "p-1",
		Name:      "Teleporter",
		VaultType: "plugin",
		Files:     []entity.ProjectFile{{Path: "src/Main.java", Content: "class Main {}", Language: "java"}},
	}
	assert.NoError(t, f.vault.SaveProject(ctx, "a@x.com", seeded))

	resp, err := svc.WriteGuide(ctx, "a@x.com", &dto.ProjectGuideRequest{Tool: "plugin", ProjectId: "p-1"})
	assert.NoError(t, err)
	assert.Len(t, resp.Files, 2)
	assert.Equal(t, "ARCH_DOCS.md", resp.Files[1].Path)
	assert.Equal(t, guideText, resp.Files[1].Content)
	assert.Equal(t, "markdown", resp.Files[1].Language)

	// A second run replaces the guide instead of stacking another copy
	resp, err = svc.WriteGuide(ctx, "a@x.com", &dto.ProjectGuideRequest{Tool: "plugin", ProjectId: "p-1"})
	assert.NoError(t, err)
	assert.Len(t, resp.Files, 2)

	// Guides are free
	user, err := f.users.FindOne(ctx)
	assert.NoError(t, err)
	assert.Empty(t, user.UsageStats)

	_, err = svc.WriteGuide(ctx, "a@x.com", &dto.ProjectGuideRequest{Tool: "plugin", ProjectId: "stranger"})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestGenerateProjectRefinementIsFree(t *testing.T) {
	f, svc := newGeneratorFixture(t, projectReply)
	ctx := context.Background()
	seedUser(t, f, "a@x.com", entity.PlanBudget)

	first, err := svc.GenerateProject(ctx, "a@x.com", &dto.GenerateProjectRequest{
		Tool:   "plugin",
		Prompt: "teleport command",
	})
	assert.NoError(t, err)

	refined, err := svc.GenerateProject(ctx, "a@x.com", &dto.GenerateProjectRequest{
		Tool:      "plugin",
		Prompt:    "add cooldown",
		ProjectId: first.Id,
	})
	assert.NoError(t, err)

	// Same vault slot, same id, original creation date
	assert.Equal(t, first.Id, refined.Id)
	projects, err := f.vault.ListProjects(ctx, "a@x.com", "plugin")
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, first.CreatedAt.Unix(), projects[0].CreatedAt.Unix())

	// Only the initial generation was billed
	user, err := f.users.FindOne(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, user.UsesOf(entity.ToolPluginGen))
}

func TestGenerateProjectRefinementForeignId(t *testing.T) {
	f, svc := newGeneratorFixture(t, projectReply)
	seedUser(t, f, "a@x.com", entity.PlanBudget)

	_, err := svc.GenerateProject(context.Background(), "a@x.com", &dto.GenerateProjectRequest{
		Tool:      "plugin",
		Prompt:    "add cooldown",
		ProjectId: "not-in-the-vault",
	})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestGenerateProjectPremiumTool(t *testing.T) {
	f, svc := newGeneratorFixture(t, projectReply)
	seedUser(t, f, "a@x.com", entity.PlanBudget)

	_, err := svc.GenerateProject(context.Background(), "a@x.com", &dto.GenerateProjectRequest{
		Tool:   "mod",
		Prompt: "ore doubling mod",
	})
	assert.ErrorIs(t, err, ErrPremiumRequired)
}

func TestGenerateProjectUnknownTool(t *testing.T) {
	f, svc := newGeneratorFixture(t, projectReply)
	seedUser(t, f, "a@x.com", entity.PlanBudget)

	_, err := svc.GenerateProject(context.Background(), "a@x.com", &dto.GenerateProjectRequest{
		Tool:   "world_edit",
		Prompt: "anything",
	})
	assert.Error(t, err)
}

func TestDiagnose(t *testing.T) {
	reply := `{"error":"OutOfMemoryError","cause":"Too many entities","solution":"Cull entity farms","severity":"high"}`
	f, svc := newGeneratorFixture(t, reply)
	ctx := context.Background()
	seedUser(t, f, "a@x.com", entity.PlanBudget)

	resp, err := svc.Diagnose(ctx, "a@x.com", &dto.DiagnoseRequest{Log: "java.lang.OutOfMemoryError"})
	assert.NoError(t, err)
	assert.Equal(t, "OutOfMemoryError", resp.Error)
	assert.Equal(t, "high", resp.Severity)

	// Diagnostics are free, no counter moves.
	user, err := f.users.FindOne(ctx)
	assert.NoError(t, err)
	assert.Empty(t, user.UsageStats)
}

func TestSearchMotdSavesEntry(t *testing.T) {
	reply := `{"line1":"Welcome to the server","line2":"Season 5 is live"}`
	f, svc := newGeneratorFixture(t, reply)
	ctx := context.Background()
	seedUser(t, f, "a@x.com", entity.PlanBudget)

	resp, err := svc.SearchMotd(ctx, "a@x.com", &dto.MotdSearchRequest{ServerIP: "play.example.com"})
	assert.NoError(t, err)
	assert.Equal(t, "Welcome to the server", resp.Line1)

	motds, err := f.vault.ListMotds(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Len(t, motds, 1)
	assert.Equal(t, "play.example.com", motds[0].Prompt)
}

func TestRenderSkinSavesDataURI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"inlineData": map[string]string{"mimeType": "image/png", "data": "c2tpbg=="}},
					},
				}},
			},
		})
	}))
	t.Cleanup(srv.Close)

	f := newFixture()
	ai := genai.NewClient("test-key", genai.WithBaseURL(srv.URL), genai.WithHTTPClient(srv.Client()))
	svc := NewGeneratorService(ai, NewQuotaService(f.users, f.sessions), f.vault, f.pub, nopLogger{})
	ctx := context.Background()
	seedUser(t, f, "a@x.com", entity.PlanBudget)

	resp, err := svc.RenderSkin(ctx, "a@x.com", &dto.SkinRenderRequest{Username: "Steve"})
	assert.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,c2tpbg==", resp.ImageURL)

	skins, err := f.vault.ListSkins(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Len(t, skins, 1)
	assert.Equal(t, "Steve", skins[0].Username)
}

func TestAskAssistantIsUnbilled(t *testing.T) {
	f, svc := newGeneratorFixture(t, "Use paper instead of spigot.")
	ctx := context.Background()
	seedUser(t, f, "a@x.com", entity.PlanBudget)

	resp, err := svc.AskAssistant(ctx, &dto.AssistantRequest{
		Question: "How do I reduce tick lag?",
		History:  []dto.AssistantTurnDTO{{Role: "user", Text: "hello"}, {Role: "assistant", Text: "hi"}},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Use paper instead of spigot.", resp.Answer)

	user, err := f.users.FindOne(ctx)
	assert.NoError(t, err)
	assert.Empty(t, user.UsageStats)
}
