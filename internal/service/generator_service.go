// FILE: internal/service/generator_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/pkg/logger"
	"radiant-system-be/internal/repository/contract"
	"radiant-system-be/pkg/events"
	"radiant-system-be/pkg/genai"

	"github.com/google/uuid"
)

type IGeneratorService interface {
	GenerateProject(ctx context.Context, email string, req *dto.GenerateProjectRequest) (*dto.ProjectResponse, error)
	WriteGuide(ctx context.Context, email string, req *dto.ProjectGuideRequest) (*dto.ProjectResponse, error)
	Diagnose(ctx context.Context, email string, req *dto.DiagnoseRequest) (*dto.DiagnoseResponse, error)
	SearchMotd(ctx context.Context, email string, req *dto.MotdSearchRequest) (*dto.MotdResponse, error)
	RenderSkin(ctx context.Context, email string, req *dto.SkinRenderRequest) (*dto.SkinRenderResponse, error)
	AskAssistant(ctx context.Context, req *dto.AssistantRequest) (*dto.AssistantResponse, error)
}

type generatorService struct {
	ai             *genai.Client
	quota          IQuotaService
	vault          contract.VaultRepository
	eventPublisher events.Publisher
	logger         logger.ILogger
}

func NewGeneratorService(
	ai *genai.Client,
	quota IQuotaService,
	vault contract.VaultRepository,
	eventPublisher events.Publisher,
	log logger.ILogger,
) IGeneratorService {
	return &generatorService{
		ai:             ai,
		quota:          quota,
		vault:          vault,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

var projectTools = map[string]entity.ToolType{
	"plugin":        entity.ToolPluginGen,
	"mod":           entity.ToolModGen,
	"skript":        entity.ToolSkriptGen,
	"discord_bot":   entity.ToolDiscordBot,
	"resource_pack": entity.ToolResourcePck,
}

func (s *generatorService) GenerateProject(ctx context.Context, email string, req *dto.GenerateProjectRequest) (*dto.ProjectResponse, error) {
	tool, ok := projectTools[req.Tool]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", req.Tool)
	}
	vaultType := entity.VaultTypeOf(tool)

	// Refinements reuse the stored project as model context and are
	// not billed against the quota.
	var existing *entity.GeneratedProject
	if req.ProjectId != "" {
		projects, err := s.vault.ListProjects(ctx, email, vaultType)
		if err != nil {
			return nil, err
		}
		for i := range projects {
			if projects[i].Id == req.ProjectId {
				existing = &projects[i]
				break
			}
		}
		if existing == nil {
			return nil, ErrNotOwner
		}
	} else {
		if _, err := s.quota.ConsumeUse(ctx, email, tool); err != nil {
			return nil, err
		}
	}

	aiReq := &genai.ProjectRequest{
		Prompt:               req.Prompt,
		Category:             req.Tool,
		Version:              req.Version,
		Platform:             req.Platform,
		RequiresResourcePack: req.WithPack,
		Deep:                 req.DeepMode,
	}
	if existing != nil {
		for _, f := range existing.Files {
			aiReq.ExistingFiles = append(aiReq.ExistingFiles, genai.ProjectFile{
				Name:    f.Path,
				Content: f.Content,
			})
		}
	}

	result, err := s.ai.GenerateProject(ctx, aiReq)
	if err != nil {
		s.logger.Error("GeneratorService", "Project generation failed", map[string]interface{}{
			"email": email,
			"tool":  req.Tool,
			"error": err.Error(),
		})
		return nil, err
	}

	project := &entity.GeneratedProject{
		Id:          uuid.New().String(),
		Name:        result.Title,
		Description: req.Prompt,
		VaultType:   vaultType,
		Steps:       result.Steps,
		Version:     req.Version,
		Platform:    req.Platform,
		CreatedAt:   time.Now(),
	}
	if existing != nil {
		project.Id = existing.Id
		project.CreatedAt = existing.CreatedAt
	}
	for _, f := range result.Files {
		project.Files = append(project.Files, entity.ProjectFile{
			Path:     f.Name,
			Content:  f.Content,
			Language: f.Language,
		})
	}

	if err := s.vault.SaveProject(ctx, email, project); err != nil {
		return nil, err
	}

	s.publish(events.NewGenerationDone(email, req.Tool, project.Id))

	resp := toProjectResponse(project)
	return &resp, nil
}

// guideFileName is the synthesized documentation file written into the
// project's file set.
const guideFileName = "ARCH_DOCS.md"

// WriteGuide synthesizes deployment docs for an archived project and
// stores them as an ARCH_DOCS.md file alongside the generated sources.
// Like refinement, it is not billed.
func (s *generatorService) WriteGuide(ctx context.Context, email string, req *dto.ProjectGuideRequest) (*dto.ProjectResponse, error) {
	tool, ok := projectTools[req.Tool]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", req.Tool)
	}
	vaultType := entity.VaultTypeOf(tool)

	projects, err := s.vault.ListProjects(ctx, email, vaultType)
	if err != nil {
		return nil, err
	}
	var project *entity.GeneratedProject
	for i := range projects {
		if projects[i].Id == req.ProjectId {
			project = &projects[i]
			break
		}
	}
	if project == nil {
		return nil, ErrNotOwner
	}

	aiFiles := make([]genai.ProjectFile, 0, len(project.Files))
	for _, f := range project.Files {
		aiFiles = append(aiFiles, genai.ProjectFile{Name: f.Path, Content: f.Content, Language: f.Language})
	}

	guide, err := s.ai.WriteProjectGuide(ctx, aiFiles)
	if err != nil {
		s.logger.Error("GeneratorService", "Guide synthesis failed", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	guideFile := entity.ProjectFile{Path: guideFileName, Content: guide, Language: "markdown"}
	replaced := false
	for i := range project.Files {
		if project.Files[i].Path == guideFileName {
			project.Files[i] = guideFile
			replaced = true
			break
		}
	}
	if !replaced {
		project.Files = append(project.Files, guideFile)
	}

	if err := s.vault.SaveProject(ctx, email, project); err != nil {
		return nil, err
	}

	resp := toProjectResponse(project)
	return &resp, nil
}

// Diagnose is a free diagnostic tool, it never bills a quota use.
func (s *generatorService) Diagnose(ctx context.Context, email string, req *dto.DiagnoseRequest) (*dto.DiagnoseResponse, error) {
	diag, err := s.ai.DiagnoseCrash(ctx, req.Log)
	if err != nil {
		return nil, err
	}

	s.publish(events.NewGenerationDone(email, string(entity.ToolCrashDoctor), ""))

	return &dto.DiagnoseResponse{
		Error:    diag.Error,
		Cause:    diag.Cause,
		Solution: diag.Solution,
		Severity: diag.Severity,
	}, nil
}

// SearchMotd and RenderSkin fill the capped archives but are not quota
// billed; only project generation counts against the plan.
func (s *generatorService) SearchMotd(ctx context.Context, email string, req *dto.MotdSearchRequest) (*dto.MotdResponse, error) {
	motd, err := s.ai.SearchServerMOTD(ctx, req.ServerIP)
	if err != nil {
		return nil, err
	}

	entry := &entity.MotdEntry{
		Id:     uuid.New().String(),
		Prompt: req.ServerIP,
		Motd: entity.MotdLine{
			Line1: motd.Line1,
			Line2: motd.Line2,
		},
		CreatedAt: time.Now(),
	}
	if err := s.vault.SaveMotd(ctx, email, entry); err != nil {
		return nil, err
	}

	s.publish(events.NewGenerationDone(email, string(entity.ToolMotdStudio), entry.Id))

	return &dto.MotdResponse{
		Id:        entry.Id,
		Line1:     entry.Motd.Line1,
		Line2:     entry.Motd.Line2,
		CreatedAt: entry.CreatedAt,
	}, nil
}

func (s *generatorService) RenderSkin(ctx context.Context, email string, req *dto.SkinRenderRequest) (*dto.SkinRenderResponse, error) {
	prompt := req.Prompt
	if prompt == "" {
		prompt = fmt.Sprintf("Minecraft character skin showcase for player %s", req.Username)
	}

	imageURL, err := s.ai.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, err
	}

	render := &entity.SkinRender{
		Id:        uuid.New().String(),
		Username:  req.Username,
		ImageURL:  imageURL,
		CreatedAt: time.Now(),
	}
	if err := s.vault.SaveSkin(ctx, email, render); err != nil {
		return nil, err
	}

	s.publish(events.NewGenerationDone(email, string(entity.ToolSkinRender), render.Id))

	return &dto.SkinRenderResponse{
		Id:        render.Id,
		Username:  render.Username,
		ImageURL:  render.ImageURL,
		CreatedAt: render.CreatedAt,
	}, nil
}

func (s *generatorService) AskAssistant(ctx context.Context, req *dto.AssistantRequest) (*dto.AssistantResponse, error) {
	history := make([]genai.ChatTurn, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, genai.ChatTurn{Role: turn.Role, Text: turn.Text})
	}

	answer, err := s.ai.AskAssistant(ctx, req.Question, history)
	if err != nil {
		return nil, err
	}
	return &dto.AssistantResponse{Answer: answer}, nil
}

func (s *generatorService) publish(event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("GeneratorService", "Event publish failed", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}

func toProjectResponse(project *entity.GeneratedProject) dto.ProjectResponse {
	files := make([]dto.ProjectFileDTO, 0, len(project.Files))
	for _, f := range project.Files {
		files = append(files, dto.ProjectFileDTO{Path: f.Path, Content: f.Content, Language: f.Language})
	}
	return dto.ProjectResponse{
		Id:          project.Id,
		Name:        project.Name,
		Description: project.Description,
		VaultType:   project.VaultType,
		Files:       files,
		Steps:       project.Steps,
		Version:     project.Version,
		Platform:    project.Platform,
		CreatedAt:   project.CreatedAt,
	}
}
