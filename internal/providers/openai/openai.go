package openai

import (
	"strings"

	"github.com/cfranzen/modelhub/internal/providers/provider"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const (
	ProviderName   = "openai"
	DefaultBaseUrl = "https://api.openai.com/v1"
)

// CredentialKeys are the resolver keys for this provider, in order.
var CredentialKeys = []string{"OPENAI_API_KEY"}

var (
	_ provider.Provider = (*OpenaiProvider)(nil)
)

type OpenaiProvider struct {
	options *provider.ProviderOptions
	client  openai.Client
}

func NewOpenaiProvider(opts ...provider.ProviderOption) (*OpenaiProvider, error) {
	options := provider.GetProviderOptions(opts...)
	openaiOpts := []option.RequestOption{
		option.WithAPIKey(options.Sk),
	}

	if options.Url == "" {
		options.Url = DefaultBaseUrl
	}

	url := options.Url
	if !strings.HasPrefix(url, "http") {
		url = "https://" + url
	}
	openaiOpts = append(openaiOpts, option.WithBaseURL(url))

	client := openai.NewClient(openaiOpts...)

	return &OpenaiProvider{
		options: options,
		client:  client,
	}, nil
}
