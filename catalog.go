package modelhub

// ModelInfo describes one registry entry. Capabilities are descriptive
// tags, they do not change how calls behave.
type ModelInfo struct {
	ID           string   `json:"id" yaml:"id"`
	Provider     string   `json:"provider" yaml:"provider"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	APIVersion   string   `json:"apiVersion" yaml:"apiVersion"`
	Capabilities []string `json:"capabilities" yaml:"capabilities"`
}

const (
	CapabilityChat      = "chat"
	CapabilityReasoning = "reasoning"
	CapabilityVision    = "vision"
	CapabilityFast      = "fast"
)

// catalog holds the metadata side of the registry. Kept in lockstep with
// modelDefinitions, validated at construction.
var catalog = map[string]ModelInfo{
	"gpt-4.1": {
		ID:           "gpt-4.1",
		Provider:     "openai",
		Name:         "GPT-4.1",
		Description:  "Flagship general purpose model.",
		APIVersion:   "gpt-4.1",
		Capabilities: []string{CapabilityChat, CapabilityVision},
	},
	"gpt-4.1-mini": {
		ID:           "gpt-4.1-mini",
		Provider:     "openai",
		Name:         "GPT-4.1 Mini",
		Description:  "Smaller, faster GPT-4.1 tier.",
		APIVersion:   "gpt-4.1-mini",
		Capabilities: []string{CapabilityChat, CapabilityVision, CapabilityFast},
	},
	"claude-sonnet-4": {
		ID:           "claude-sonnet-4",
		Provider:     "anthropic",
		Name:         "Claude Sonnet 4",
		Description:  "Anthropic's balanced model with extended thinking.",
		APIVersion:   "claude-sonnet-4-0",
		Capabilities: []string{CapabilityChat, CapabilityReasoning, CapabilityVision},
	},
	"deepseek-r1-70b": {
		ID:           "deepseek-r1-70b",
		Provider:     "groq",
		Name:         "DeepSeek R1 70B",
		Description:  "DeepSeek R1 distilled onto Llama 70B, served by Groq.",
		APIVersion:   "deepseek-r1-distill-llama-70b",
		Capabilities: []string{CapabilityChat, CapabilityReasoning, CapabilityFast},
	},
	"qwen-qwq-32b": {
		ID:           "qwen-qwq-32b",
		Provider:     "groq",
		Name:         "Qwen QwQ 32B",
		Description:  "Qwen's QwQ reasoning model, served by Groq.",
		APIVersion:   "qwen-qwq-32b",
		Capabilities: []string{CapabilityChat, CapabilityReasoning, CapabilityFast},
	},
	"llama-3.3-70b": {
		ID:           "llama-3.3-70b",
		Provider:     "groq",
		Name:         "Llama 3.3 70B",
		Description:  "Llama 3.3 70B Versatile, served by Groq.",
		APIVersion:   "llama-3.3-70b-versatile",
		Capabilities: []string{CapabilityChat, CapabilityFast},
	},
	"grok-3": {
		ID:           "grok-3",
		Provider:     "xai",
		Name:         "Grok 3",
		Description:  "xAI's flagship chat model.",
		APIVersion:   "grok-3",
		Capabilities: []string{CapabilityChat},
	},
	"gemini-2.5-flash": {
		ID:           "gemini-2.5-flash",
		Provider:     "google",
		Name:         "Gemini 2.5 Flash",
		Description:  "Fast Gemini 2.5 tier with thinking.",
		APIVersion:   "gemini-2.5-flash",
		Capabilities: []string{CapabilityChat, CapabilityReasoning, CapabilityVision, CapabilityFast},
	},
	"gemini-2.5-pro": {
		ID:           "gemini-2.5-pro",
		Provider:     "google",
		Name:         "Gemini 2.5 Pro",
		Description:  "Gemini 2.5 Pro with thinking.",
		APIVersion:   "gemini-2.5-pro",
		Capabilities: []string{CapabilityChat, CapabilityReasoning, CapabilityVision},
	},
}

// Catalog returns metadata for every registry model in exposure order.
// It needs no credentials and builds no clients.
func Catalog() []ModelInfo {
	infos := make([]ModelInfo, 0, len(modelDefinitions))
	for _, def := range modelDefinitions {
		if info, ok := catalog[def.id]; ok {
			infos = append(infos, info)
		}
	}
	return infos
}

// Info returns metadata for one model id.
func Info(id string) (ModelInfo, bool) {
	info, ok := catalog[id]
	return info, ok
}
