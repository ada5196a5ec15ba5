// Package anthropic implements llm.Completer over the Anthropic Messages API
package anthropic

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"seekdomains/internal/adapters/llm"
	perr "seekdomains/internal/platform/errors"
	"seekdomains/internal/platform/logger"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	defaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 1024
	defaultTimeout   = 60 * time.Second

	// appended to the system block when the caller wants json only
	jsonOnly = "Respond with a single JSON object and nothing else."
)

// Options configures the Client
type Options struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Client wraps the Anthropic SDK client
type Client struct {
	api       sdk.Client
	model     string
	maxTokens int64
	log       logger.Logger
}

// New builds a Client; retries are disabled so a generation is one attempt
func New(o Options) *Client {
	if o.Model == "" {
		o.Model = defaultModel
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = defaultMaxTokens
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	opts := []option.RequestOption{
		option.WithAPIKey(o.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: o.Timeout}),
		option.WithMaxRetries(0),
	}
	if u := strings.TrimSpace(o.BaseURL); u != "" {
		opts = append(opts, option.WithBaseURL(u))
	}
	return &Client{
		api:       sdk.NewClient(opts...),
		model:     o.Model,
		maxTokens: int64(o.MaxTokens),
		log:       *logger.Named("anthropic"),
	}
}

// Complete sends one message request and returns the concatenated text blocks
func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	model := req.Model
	if model == "" || strings.HasPrefix(model, "gpt-") {
		// a shared LLM_MODEL default names an openai model
		model = c.model
	}

	system, turns := llm.Split(req.Messages)
	if req.JSONMode {
		system = strings.TrimSpace(system + "\n\n" + jsonOnly)
	}

	params := sdk.MessageNewParams{
		Model:       sdk.Model(model),
		MaxTokens:   c.maxTokens,
		Temperature: sdk.Float(req.Temperature),
	}
	if system != "" {
		params.System = []sdk.TextBlockParam{{Text: system}}
	}
	for _, m := range turns {
		block := sdk.NewTextBlock(m.Content)
		if m.Role == llm.RoleAssistant {
			params.Messages = append(params.Messages, sdk.NewAssistantMessage(block))
			continue
		}
		params.Messages = append(params.Messages, sdk.NewUserMessage(block))
	}

	start := time.Now()
	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		c.log.Warn().Err(err).Str("model", model).Dur("elapsed", time.Since(start)).Msg("messages call failed")
		return "", perr.Wrapf(err, perr.ErrorCodeGeneration, "anthropic completion (%s)", statusOf(err))
	}
	c.log.Debug().
		Str("model", string(msg.Model)).
		Int64("input_tokens", msg.Usage.InputTokens).
		Int64("output_tokens", msg.Usage.OutputTokens).
		Dur("elapsed", time.Since(start)).
		Msg("messages call")

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", perr.Generationf("anthropic completion returned no text")
	}
	return b.String(), nil
}

func statusOf(err error) string {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		return http.StatusText(apiErr.StatusCode)
	}
	return "transport"
}
