package genai

import (
	"context"
	"encoding/json"
	"fmt"
)

const architectPersona = `You are the RADIANT SYSTEM SUPREME ARCHITECT. You produce strictly professional, enterprise-grade Minecraft and Discord server engineering output.`

var projectSchema = &Schema{
	Type: "object",
	Properties: map[string]*Schema{
		"title": {Type: "string"},
		"files": {
			Type: "array",
			Items: &Schema{
				Type: "object",
				Properties: map[string]*Schema{
					"name":     {Type: "string"},
					"content":  {Type: "string"},
					"language": {Type: "string"},
				},
				Required: []string{"name", "content", "language"},
			},
		},
		"steps": {
			Type:  "array",
			Items: &Schema{Type: "string"},
		},
	},
	Required: []string{"title", "files", "steps"},
}

var motdSchema = &Schema{
	Type: "object",
	Properties: map[string]*Schema{
		"line1": {Type: "string"},
		"line2": {Type: "string"},
	},
	Required: []string{"line1", "line2"},
}

var diagnosisSchema = &Schema{
	Type: "object",
	Properties: map[string]*Schema{
		"error":    {Type: "string"},
		"cause":    {Type: "string"},
		"solution": {Type: "string"},
		"severity": {Type: "string", Enum: []string{"low", "medium", "high", "critical"}},
	},
	Required: []string{"error", "cause", "solution", "severity"},
}

// GenerateProject produces a full project structure for a tool request.
// Deep mode uses the pro model with a large thinking budget; fast mode
// trades reasoning depth for latency.
func (c *Client) GenerateProject(ctx context.Context, req *ProjectRequest) (*ProjectResult, error) {
	version := req.Version
	if version == "" {
		version = "Latest"
	}
	platform := req.Platform
	if platform == "" {
		platform = "Standard"
	}
	rp := "NO"
	if req.RequiresResourcePack {
		rp = "YES"
	}

	contextBlock := fmt.Sprintf(
		"Target Version: %s\nPlatform: %s\nCategory: %s\nIncludes Resource Pack Integration: %s",
		version, platform, req.Category, rp,
	)
	if len(req.ExistingFiles) > 0 {
		existing, err := json.Marshal(req.ExistingFiles)
		if err != nil {
			return nil, err
		}
		contextBlock += fmt.Sprintf("\nProject Context: %s", string(existing))
	}

	prompt := fmt.Sprintf(`%s
TASK: %s.
CONTEXT: %s.

ULTIMATE ENGINEERING REQUIREMENTS:
1. ARCHITECTURE: Utilize advanced design patterns (Dependency Injection, Service Layers, Factory Pattern).
2. OPTIMIZATION: Zero-overhead logic, asynchronous data handling, and peak JVM/Node performance.
3. STRUCTURE: Return a FULL PROJECT structure. No snippets. Every file required for a professional deployment.
4. DOCUMENTATION: Include complex configuration files (YAML/JSON) with detailed internal commentary.
5. SAFETY: Implement robust error handling, null safety, and thread-safe operations.

Return strictly valid JSON conforming to the schema.`, architectPersona, req.Prompt, contextBlock)

	model := c.fastModel
	budget := 0
	if req.Deep {
		model = c.deepModel
		budget = 32768
	}

	payload := &generateRequest{
		Contents: userContent(prompt),
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   projectSchema,
			ThinkingConfig:   &ThinkingConfig{ThinkingBudget: budget},
		},
	}

	var result ProjectResult
	if err := c.generateJSON(ctx, model, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// WriteProjectGuide synthesizes deployment documentation for a set of
// generated files.
func (c *Client) WriteProjectGuide(ctx context.Context, files []ProjectFile) (string, error) {
	fileJson, err := json.Marshal(files)
	if err != nil {
		return "", err
	}
	prompt := fmt.Sprintf(`Synthesize a PEAK-LEVEL ARCH_DOCS.md for this project. Focus on advanced deployment instructions, performance tuning, and human-readable API documentation.
Files: %s`, string(fileJson))

	payload := &generateRequest{
		Contents: userContent(prompt),
		GenerationConfig: &GenerationConfig{
			ThinkingConfig: &ThinkingConfig{ThinkingBudget: 8000},
		},
	}
	return c.generate(ctx, c.deepModel, payload)
}

// SearchServerMOTD looks up live MOTD lines for a server address using
// grounded search.
func (c *Client) SearchServerMOTD(ctx context.Context, ip string) (*Motd, error) {
	prompt := fmt.Sprintf(
		"Search and extract live MOTD data for Minecraft IP: %s. Detect hex colors. Return as JSON {line1, line2}.", ip)

	payload := &generateRequest{
		Contents: userContent(prompt),
		Tools:    []*Tool{{GoogleSearch: &struct{}{}}},
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   motdSchema,
		},
	}

	var motd Motd
	if err := c.generateJSON(ctx, c.fastModel, payload, &motd); err != nil {
		return nil, err
	}
	return &motd, nil
}

// DiagnoseCrash analyzes a crash log and returns a structured verdict.
func (c *Client) DiagnoseCrash(ctx context.Context, crashLog string) (*Diagnosis, error) {
	prompt := fmt.Sprintf(
		"Perform an ATOMIC ANALYSIS of this system crash log: %s. Determine exact bytecode failure point and provide a high-level engineering fix.", crashLog)

	payload := &generateRequest{
		Contents: userContent(prompt),
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   diagnosisSchema,
			ThinkingConfig:   &ThinkingConfig{ThinkingBudget: 24000},
		},
	}

	var diag Diagnosis
	if err := c.generateJSON(ctx, c.deepModel, payload, &diag); err != nil {
		return nil, err
	}
	return &diag, nil
}

// AskAssistant answers a free-form engineering question with grounded
// search, replaying the prior turns of the conversation.
func (c *Client) AskAssistant(ctx context.Context, question string, history []ChatTurn) (string, error) {
	contents := make([]*Content, 0, len(history)+1)
	for _, turn := range history {
		role := RoleUser
		if turn.Role == "assistant" || turn.Role == RoleModel {
			role = RoleModel
		}
		contents = append(contents, &Content{
			Parts: []*Part{{Text: turn.Text}},
			Role:  role,
		})
	}
	contents = append(contents, &Content{
		Parts: []*Part{{Text: question}},
		Role:  RoleUser,
	})

	payload := &generateRequest{
		Contents: contents,
		SystemInstruction: &Content{
			Parts: []*Part{{Text: `You are the RADIANT SYSTEM ARCHITECT. You provide elite-level engineering advice, server optimization strategies, and complex logic troubleshooting. Always maintain a professional, high-fidelity engineering persona.`}},
		},
		Tools: []*Tool{{GoogleSearch: &struct{}{}}},
		GenerationConfig: &GenerationConfig{
			ThinkingConfig: &ThinkingConfig{ThinkingBudget: 16000},
		},
	}

	return c.generate(ctx, c.deepModel, payload)
}

// GenerateImage renders a cinematic image and returns it as a data URI.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	fullPrompt := fmt.Sprintf(
		"PEAK FIDELITY CINEMATIC RENDER: %s. Ultra-detailed, 4K texture mapping, professional lighting, photorealistic pixel accuracy.", prompt)

	payload := &generateRequest{
		Contents: userContent(fullPrompt),
	}

	return c.generateImage(ctx, "gemini-3-pro-image-preview", payload)
}
