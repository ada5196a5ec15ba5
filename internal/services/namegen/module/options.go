package module

import (
	"time"

	"seekdomains/internal/platform/config"
	"seekdomains/internal/services/namegen"
)

// Providers
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Options controls the name generator. Values may also be read from env
type Options struct {
	Provider    string
	Model       string
	Temperature float64
	Timeout     time.Duration

	OpenAIKey     string
	OpenAIBaseURL string

	AnthropicKey       string
	AnthropicBaseURL   string
	AnthropicMaxTokens int
}

// FromConfig reads options using the LLM_, OPENAI_ and ANTHROPIC_ prefixes
func FromConfig(cfg config.Conf) Options {
	llm := cfg.Prefix("LLM_")
	oa := cfg.Prefix("OPENAI_")
	an := cfg.Prefix("ANTHROPIC_")
	return Options{
		Provider:    llm.MayEnum("PROVIDER", ProviderOpenAI, ProviderOpenAI, ProviderAnthropic),
		Model:       llm.MayString("MODEL", namegen.DefaultModel),
		Temperature: llm.MayFloat64("TEMPERATURE", namegen.DefaultTemperature),
		Timeout:     llm.MayDuration("TIMEOUT", 60*time.Second),

		OpenAIKey:     oa.MayString("API_KEY", ""),
		OpenAIBaseURL: oa.MayString("BASE_URL", ""),

		AnthropicKey:       an.MayString("API_KEY", ""),
		AnthropicBaseURL:   an.MayString("BASE_URL", ""),
		AnthropicMaxTokens: an.MayInt("MAX_TOKENS", 1024),
	}
}
