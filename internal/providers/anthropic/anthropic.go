package anthropic

import (
	"github.com/cfranzen/modelhub/internal/providers/provider"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	ProviderName     = "anthropic"
	DefaultChatModel = string(anthropic.ModelClaudeSonnet4_0)

	// the messages api requires max_tokens, applied when the caller sets none
	DefaultMaxTokens = int64(4096)
)

const (
	RoleSystem    = "system"
	RoleAssistant = "assistant"
	RoleUser      = "user"
)

// CredentialKeys are the resolver keys for this provider, in order.
var CredentialKeys = []string{"ANTHROPIC_API_KEY"}

var (
	_ provider.Provider = (*AnthropicProvider)(nil)
)

type AnthropicProvider struct {
	client *anthropic.Client
}

func NewAnthropicProvider(opts ...provider.ProviderOption) (*AnthropicProvider, error) {
	options := provider.GetProviderOptions(opts...)

	config := []option.RequestOption{
		option.WithAPIKey(options.Sk),
	}

	if options.Url != "" {
		config = append(config, option.WithBaseURL(options.Url))
	}

	client := anthropic.NewClient(config...)
	return &AnthropicProvider{
		client: &client,
	}, nil
}
