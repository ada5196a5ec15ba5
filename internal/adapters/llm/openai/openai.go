// Package openai implements llm.Completer over OpenAI compatible chat completions
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"seekdomains/internal/adapters/llm"
	perr "seekdomains/internal/platform/errors"
	"seekdomains/internal/platform/logger"

	goopenai "github.com/sashabaranov/go-openai"
)

const (
	defaultModel   = "gpt-4o"
	defaultTimeout = 60 * time.Second
)

// Options configures the Client
type Options struct {
	APIKey  string
	BaseURL string // empty means api.openai.com
	Model   string
	Timeout time.Duration
}

// Client wraps a go-openai client
type Client struct {
	api   *goopenai.Client
	model string
	log   logger.Logger
}

// New builds a Client with defaults applied
func New(o Options) *Client {
	if o.Model == "" {
		o.Model = defaultModel
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	cfg := goopenai.DefaultConfig(o.APIKey)
	if u := strings.TrimSpace(o.BaseURL); u != "" {
		cfg.BaseURL = strings.TrimRight(u, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: o.Timeout}
	return &Client{
		api:   goopenai.NewClientWithConfig(cfg),
		model: o.Model,
		log:   *logger.Named("openai"),
	}
}

// Complete sends one chat completion and returns the first choice content
func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}
	msgs := make([]goopenai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, goopenai.ChatCompletionMessage{Role: string(m.Role), Content: m.Content})
	}
	in := goopenai.ChatCompletionRequest{
		Model:       model,
		Messages:    msgs,
		Temperature: float32(req.Temperature),
	}
	if req.JSONMode {
		in.ResponseFormat = &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, in)
	if err != nil {
		c.log.Warn().Err(err).Str("model", model).Dur("elapsed", time.Since(start)).Msg("chat completion failed")
		return "", perr.Wrapf(err, perr.ErrorCodeGeneration, "openai completion (%s)", statusOf(err))
	}
	c.log.Debug().
		Str("model", resp.Model).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Dur("elapsed", time.Since(start)).
		Msg("chat completion")

	if len(resp.Choices) == 0 {
		return "", perr.Generationf("openai completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// statusOf names the upstream status for an error, if any
func statusOf(err error) string {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return http.StatusText(apiErr.HTTPStatusCode)
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return http.StatusText(reqErr.HTTPStatusCode)
	}
	return "transport"
}
