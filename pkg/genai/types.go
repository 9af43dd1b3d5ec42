package genai

// Schema mirrors the Gemini responseSchema wire format.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type Content struct {
	Parts []*Part `json:"parts"`
	Role  string  `json:"role,omitempty"`
}

type ThinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type GenerationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema         `json:"responseSchema,omitempty"`
	ThinkingConfig   *ThinkingConfig `json:"thinkingConfig,omitempty"`
}

type Tool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type generateRequest struct {
	Contents          []*Content        `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
	Tools             []*Tool           `json:"tools,omitempty"`
}

type candidate struct {
	Content *Content `json:"content"`
}

type generateResponse struct {
	Candidates []*candidate `json:"candidates"`
}

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatTurn is one prior exchange in an assistant conversation.
type ChatTurn struct {
	Role string
	Text string
}

type ProjectRequest struct {
	Prompt               string
	Category             string
	Version              string
	Platform             string
	RequiresResourcePack bool
	ExistingFiles        []ProjectFile
	Deep                 bool
}

type ProjectFile struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

type ProjectResult struct {
	Title string        `json:"title"`
	Files []ProjectFile `json:"files"`
	Steps []string      `json:"steps"`
}

type Motd struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

type Diagnosis struct {
	Error    string `json:"error"`
	Cause    string `json:"cause"`
	Solution string `json:"solution"`
	Severity string `json:"severity"`
}
