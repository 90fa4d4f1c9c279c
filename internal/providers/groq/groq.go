package groq

import (
	"github.com/cfranzen/modelhub/internal/providers/openai"
	"github.com/cfranzen/modelhub/internal/providers/provider"
)

const (
	ProviderName   = "groq"
	DefaultBaseUrl = "https://api.groq.com/openai/v1"
)

// CredentialKeys are the resolver keys for this provider, in order.
var CredentialKeys = []string{"GROQ_API_KEY"}

var (
	_ provider.Provider = (*GroqProvider)(nil)
)

// GroqProvider serves the high-throughput models over groq's
// openai-compatible api.
type GroqProvider struct {
	*openai.OpenaiProvider
}

func NewGroqProvider(opts ...provider.ProviderOption) (*GroqProvider, error) {
	options := provider.GetProviderOptions(opts...)
	if options.Url == "" {
		options.Url = DefaultBaseUrl
	}

	base, err := openai.NewOpenaiProvider(provider.WithOptions(options))
	if err != nil {
		return nil, err
	}

	return &GroqProvider{OpenaiProvider: base}, nil
}
