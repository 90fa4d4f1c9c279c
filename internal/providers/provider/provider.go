package provider

import (
	"context"

	"github.com/cfranzen/modelhub/types"
)

type ProviderOptions struct {
	Url string
	Sk  string
}

type ProviderOption func(*ProviderOptions) *ProviderOptions

// Provider is one configured backend client. Model routing happens above
// it, the provider only needs the provider-side model name carried in the
// chat options.
type Provider interface {
	Generate(ctx context.Context, messages []*types.Message, options ...types.ChatOption) (*types.Completion, error)
}

func WithOptions(options *ProviderOptions) ProviderOption {
	return func(opts *ProviderOptions) *ProviderOptions {
		return options
	}
}

func WithUrl(url string) ProviderOption {
	return func(opts *ProviderOptions) *ProviderOptions {
		opts.Url = url
		return opts
	}
}

func WithSk(sk string) ProviderOption {
	return func(opts *ProviderOptions) *ProviderOptions {
		opts.Sk = sk
		return opts
	}
}

func GetProviderOptions(opts ...ProviderOption) *ProviderOptions {
	all := &ProviderOptions{}
	for _, opt := range opts {
		all = opt(all)
	}

	return all
}
