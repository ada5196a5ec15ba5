// Package module wires the name generator to its configured model provider
package module

import (
	"strings"

	"seekdomains/internal/adapters/llm"
	"seekdomains/internal/adapters/llm/anthropic"
	"seekdomains/internal/adapters/llm/openai"
	"seekdomains/internal/modkit"
	"seekdomains/internal/modkit/httpkit"
	"seekdomains/internal/services/namegen"
)

// Ports exposes the generator for other modules
type Ports struct {
	Generator namegen.Generator
}

// Module defines the namegen module
type Module struct {
	opts  Options
	ports Ports
}

// New constructs the module; overrides win over env when non zero
func New(deps modkit.Deps, overrides Options) *Module {
	opts := FromConfig(deps.Cfg)
	if overrides.Provider != "" {
		opts.Provider = overrides.Provider
	}
	if overrides.Model != "" {
		opts.Model = overrides.Model
	}
	if overrides.Temperature != 0 {
		opts.Temperature = overrides.Temperature
	}

	opts.Provider = strings.ToLower(strings.TrimSpace(opts.Provider))

	c := completer(opts)
	if opts.Provider == ProviderOpenAI && opts.OpenAIKey == "" {
		deps.Log.Warn().Msg("OPENAI_API_KEY is empty, generation calls will fail upstream")
	}
	if opts.Provider == ProviderAnthropic && opts.AnthropicKey == "" {
		deps.Log.Warn().Msg("ANTHROPIC_API_KEY is empty, generation calls will fail upstream")
	}
	svc := namegen.New(c, namegen.Config{Model: opts.Model, Temperature: opts.Temperature}, deps.Metrics)

	return &Module{
		opts:  opts,
		ports: Ports{Generator: svc},
	}
}

func completer(o Options) llm.Completer {
	if o.Provider == ProviderAnthropic {
		return anthropic.New(anthropic.Options{
			APIKey:    o.AnthropicKey,
			BaseURL:   o.AnthropicBaseURL,
			Model:     o.Model,
			MaxTokens: o.AnthropicMaxTokens,
			Timeout:   o.Timeout,
		})
	}
	return openai.New(openai.Options{
		APIKey:  o.OpenAIKey,
		BaseURL: o.OpenAIBaseURL,
		Model:   o.Model,
		Timeout: o.Timeout,
	})
}

// Provider names the configured model provider
func (m *Module) Provider() string { return m.opts.Provider }

// Name returns the module name
func (m *Module) Name() string { return "namegen" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Typed returns the module ports without a type assertion
func (m *Module) Typed() Ports { return m.ports }

// MountRoutes is a no op, the module serves other modules only
func (m *Module) MountRoutes(_ httpkit.Router) {}
