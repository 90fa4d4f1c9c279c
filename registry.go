// Package modelhub exposes a fixed set of chat models from several
// providers behind one identifier-keyed registry. Providers are built
// eagerly at construction, a registry either has every model or does not
// exist.
package modelhub

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/cfranzen/modelhub/credentials"
	"github.com/cfranzen/modelhub/internal/providers/anthropic"
	"github.com/cfranzen/modelhub/internal/providers/google"
	"github.com/cfranzen/modelhub/internal/providers/groq"
	"github.com/cfranzen/modelhub/internal/providers/openai"
	"github.com/cfranzen/modelhub/internal/providers/provider"
	"github.com/cfranzen/modelhub/internal/providers/xai"
	"github.com/cfranzen/modelhub/types"
)

// DefaultModelID names the model returned by Registry.Default.
const DefaultModelID = "gpt-4.1"

// Model is a generation-capable handle bound to one provider-side model.
type Model interface {
	Generate(ctx context.Context, messages []*types.Message, options ...types.ChatOption) (*types.Completion, error)
}

type modelDefinition struct {
	id         string
	provider   string
	apiVersion string
	reasoning  bool // wrap with think-tag extraction
}

// modelDefinitions fixes the registry contents and the exposure order of
// ModelIDs. The catalog mirrors this table.
var modelDefinitions = []modelDefinition{
	{id: "gpt-4.1", provider: openai.ProviderName, apiVersion: "gpt-4.1"},
	{id: "gpt-4.1-mini", provider: openai.ProviderName, apiVersion: "gpt-4.1-mini"},
	{id: "claude-sonnet-4", provider: anthropic.ProviderName, apiVersion: "claude-sonnet-4-0"},
	{id: "deepseek-r1-70b", provider: groq.ProviderName, apiVersion: "deepseek-r1-distill-llama-70b", reasoning: true},
	{id: "qwen-qwq-32b", provider: groq.ProviderName, apiVersion: "qwen-qwq-32b", reasoning: true},
	{id: "llama-3.3-70b", provider: groq.ProviderName, apiVersion: "llama-3.3-70b-versatile"},
	{id: "grok-3", provider: xai.ProviderName, apiVersion: "grok-3"},
	{id: "gemini-2.5-flash", provider: google.ProviderName, apiVersion: "gemini-2.5-flash"},
	{id: "gemini-2.5-pro", provider: google.ProviderName, apiVersion: "gemini-2.5-pro"},
}

type Options struct {
	Credentials credentials.Source
	GoogleUrl   string
}

type Option func(*Options) *Options

func WithOptions(options *Options) Option {
	return func(opts *Options) *Options {
		return options
	}
}

func WithCredentials(src credentials.Source) Option {
	return func(opts *Options) *Options {
		opts.Credentials = src
		return opts
	}
}

func WithGoogleUrl(url string) Option {
	return func(opts *Options) *Options {
		opts.GoogleUrl = url
		return opts
	}
}

// Registry is an immutable name-keyed view over the configured models.
// Replace the whole value to change it, see Reloader.
type Registry struct {
	ids       []string
	models    map[string]Model
	defaultID string
}

// New builds every provider and binds every model, in table order. Any
// failure aborts, a partially working registry is never returned.
func New(opts ...Option) (*Registry, error) {
	options := &Options{}
	for _, opt := range opts {
		options = opt(options)
	}

	if options.Credentials == nil {
		options.Credentials = credentials.Default()
	}

	if err := validateCatalog(); err != nil {
		return nil, err
	}

	providers, err := buildProviders(options)
	if err != nil {
		return nil, err
	}

	reg := &Registry{
		models:    map[string]Model{},
		defaultID: DefaultModelID,
	}

	for _, def := range modelDefinitions {
		p, ok := providers[def.provider]
		if !ok {
			return nil, fmt.Errorf("init model %s fail, can not find provider %s", def.id, def.provider)
		}

		var m Model = &boundModel{provider: p, model: def.apiVersion}
		if def.reasoning {
			m = extractReasoning(m, ThinkTag)
		}

		reg.models[def.id] = m
		reg.ids = append(reg.ids, def.id)
	}

	return reg, nil
}

func buildProviders(options *Options) (map[string]provider.Provider, error) {
	providers := map[string]provider.Provider{}

	fail := func(name string, err error) error {
		return fmt.Errorf("provider %s init fail: %w", name, err)
	}

	sk, _ := credentials.First(options.Credentials, openai.CredentialKeys...)
	openaiProvider, err := openai.NewOpenaiProvider(provider.WithSk(sk))
	if err != nil {
		return nil, fail(openai.ProviderName, err)
	}
	providers[openai.ProviderName] = openaiProvider

	sk, _ = credentials.First(options.Credentials, anthropic.CredentialKeys...)
	anthropicProvider, err := anthropic.NewAnthropicProvider(provider.WithSk(sk))
	if err != nil {
		return nil, fail(anthropic.ProviderName, err)
	}
	providers[anthropic.ProviderName] = anthropicProvider

	sk, _ = credentials.First(options.Credentials, groq.CredentialKeys...)
	groqProvider, err := groq.NewGroqProvider(provider.WithSk(sk))
	if err != nil {
		return nil, fail(groq.ProviderName, err)
	}
	providers[groq.ProviderName] = groqProvider

	sk, _ = credentials.First(options.Credentials, xai.CredentialKeys...)
	xaiProvider, err := xai.NewXaiProvider(provider.WithSk(sk))
	if err != nil {
		return nil, fail(xai.ProviderName, err)
	}
	providers[xai.ProviderName] = xaiProvider

	sk, _ = credentials.First(options.Credentials, google.CredentialKeys...)
	googleOpts := []provider.ProviderOption{provider.WithSk(sk)}
	if options.GoogleUrl != "" {
		googleOpts = append(googleOpts, provider.WithUrl(options.GoogleUrl))
	}
	googleProvider, err := google.NewGoogleProvider(google.DefaultSettings(), googleOpts...)
	if err != nil {
		return nil, fail(google.ProviderName, err)
	}
	providers[google.ProviderName] = googleProvider

	return providers, nil
}

// validateCatalog checks the definition table and the catalog agree: same
// id set, same provider and api version per id, and a valid default.
// Every mismatch is reported, not only the first.
func validateCatalog() error {
	var err error

	defined := map[string]bool{}
	for _, def := range modelDefinitions {
		if defined[def.id] {
			err = multierr.Append(err, fmt.Errorf("model %s defined twice", def.id))
			continue
		}
		defined[def.id] = true

		info, ok := catalog[def.id]
		if !ok {
			err = multierr.Append(err, fmt.Errorf("model %s has no catalog entry", def.id))
			continue
		}
		if info.ID != def.id {
			err = multierr.Append(err, fmt.Errorf("model %s catalog entry carries id %s", def.id, info.ID))
		}
		if info.Provider != def.provider {
			err = multierr.Append(err, fmt.Errorf("model %s catalog provider %s, definition %s", def.id, info.Provider, def.provider))
		}
		if info.APIVersion != def.apiVersion {
			err = multierr.Append(err, fmt.Errorf("model %s catalog api version %s, definition %s", def.id, info.APIVersion, def.apiVersion))
		}
	}

	for id := range catalog {
		if !defined[id] {
			err = multierr.Append(err, fmt.Errorf("catalog entry %s has no definition", id))
		}
	}

	if !defined[DefaultModelID] {
		err = multierr.Append(err, fmt.Errorf("default model %s not defined", DefaultModelID))
	}

	return err
}

// Model returns the handle for id. Unknown ids are a caller error.
func (r *Registry) Model(id string) (Model, error) {
	if m, ok := r.models[id]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("model %s not found", id)
}

// Default returns the handle for DefaultModelID.
func (r *Registry) Default() Model {
	return r.models[r.defaultID]
}

func (r *Registry) DefaultModelID() string {
	return r.defaultID
}

// ModelIDs lists every model id in definition order.
func (r *Registry) ModelIDs() []string {
	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	return ids
}

func (r *Registry) Info(id string) (ModelInfo, bool) {
	if _, ok := r.models[id]; !ok {
		return ModelInfo{}, false
	}
	return Info(id)
}

func (r *Registry) Infos() []ModelInfo {
	return Catalog()
}

// Generate resolves id and generates in one call.
func (r *Registry) Generate(ctx context.Context, id string, messages []*types.Message, options ...types.ChatOption) (*types.Completion, error) {
	m, err := r.Model(id)
	if err != nil {
		return nil, err
	}
	return m.Generate(ctx, messages, options...)
}

// boundModel pins a provider-side model version onto a provider. The
// model option is appended last so it always wins.
type boundModel struct {
	provider provider.Provider
	model    string
}

func (m *boundModel) Generate(ctx context.Context, messages []*types.Message, options ...types.ChatOption) (*types.Completion, error) {
	optionsWithModel := append(options, types.ChatWithModel(m.model))
	return m.provider.Generate(ctx, messages, optionsWithModel...)
}
