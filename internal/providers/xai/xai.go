package xai

import (
	"github.com/cfranzen/modelhub/internal/providers/openai"
	"github.com/cfranzen/modelhub/internal/providers/provider"
)

const (
	ProviderName   = "xai"
	DefaultBaseUrl = "https://api.x.ai/v1"
)

// CredentialKeys are the resolver keys for this provider, in order. The
// GROK_API_KEY name is accepted for compatibility.
var CredentialKeys = []string{"XAI_API_KEY", "GROK_API_KEY"}

var (
	_ provider.Provider = (*XaiProvider)(nil)
)

// XaiProvider talks to x.ai over its openai-compatible api.
type XaiProvider struct {
	*openai.OpenaiProvider
}

func NewXaiProvider(opts ...provider.ProviderOption) (*XaiProvider, error) {
	options := provider.GetProviderOptions(opts...)
	if options.Url == "" {
		options.Url = DefaultBaseUrl
	}

	base, err := openai.NewOpenaiProvider(provider.WithOptions(options))
	if err != nil {
		return nil, err
	}

	return &XaiProvider{OpenaiProvider: base}, nil
}
