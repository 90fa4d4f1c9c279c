package google

import (
	"context"

	"github.com/cfranzen/modelhub/internal/providers/provider"

	"google.golang.org/genai"
)

const (
	ProviderName     = "google"
	DefaultChatModel = "gemini-2.5-flash"
	DefaultBaseUrl   = "https://generativelanguage.googleapis.com"
)

const (
	RoleSystem = "system"
	RoleModel  = "model"
	RoleUser   = "user"
)

// CredentialKeys are the resolver keys for this provider, in order.
var CredentialKeys = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}

var (
	_ provider.Provider = (*GoogleProvider)(nil)
)

// Settings are fixed per provider instance and applied to every request.
// They are not per-call options.
type Settings struct {
	ResponseModalities []string
	ThinkingBudget     int32
	SafetySettings     []*genai.SafetySetting
}

func DefaultSettings() Settings {
	return Settings{
		ResponseModalities: []string{"TEXT"},
		ThinkingBudget:     1024,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		},
	}
}

type GoogleProvider struct {
	client   *genai.Client
	settings Settings
}

// use gemini
func NewGoogleProvider(settings Settings, opts ...provider.ProviderOption) (*GoogleProvider, error) {
	options := provider.GetProviderOptions(opts...)

	if options.Url == "" {
		options.Url = DefaultBaseUrl
	}

	config := &genai.ClientConfig{
		APIKey: options.Sk,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: options.Url,
		},
	}

	client, err := genai.NewClient(context.Background(), config)
	if err != nil {
		return nil, err
	}

	return &GoogleProvider{client: client, settings: settings}, nil
}

func (p *GoogleProvider) Settings() Settings {
	return p.settings
}
