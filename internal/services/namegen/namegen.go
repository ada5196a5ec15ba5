// Package namegen turns a free text brand request into candidate domain names via a language model
package namegen

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"seekdomains/internal/adapters/llm"
	"seekdomains/internal/core/normalize"
	perr "seekdomains/internal/platform/errors"
	"seekdomains/internal/platform/logger"
	"seekdomains/internal/platform/metrics"
)

const (
	DefaultModel       = "gpt-4o"
	DefaultTemperature = 0.5
)

// Config carries the model knobs
type Config struct {
	Model       string
	Temperature float64
}

// Input is one generation request; everything but Request is optional
type Input struct {
	Request      string
	SimilarTo    string
	WordLength   string
	AcceptedTLDs string
}

// Generator produces candidate names
type Generator interface {
	Generate(ctx context.Context, in Input) ([]string, error)
}

// Service implements Generator on top of an llm.Completer
type Service struct {
	llm     llm.Completer
	cfg     Config
	metrics *metrics.Metrics
	now     func() time.Time
}

// New constructs the generator; m may be nil
func New(c llm.Completer, cfg Config, m *metrics.Metrics) *Service {
	if c == nil {
		panic("namegen.Service requires a non nil Completer")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	return &Service{llm: c, cfg: cfg, metrics: m, now: time.Now}
}

// response is the only accepted model output shape
type response struct {
	DomainNames *[]*string `json:"domain_names"`
}

// Generate runs a single model call and returns normalized, de-duplicated names
func (s *Service) Generate(ctx context.Context, in Input) ([]string, error) {
	if strings.TrimSpace(in.Request) == "" {
		return nil, perr.WithField(perr.Validationf("request content is missing"), "request")
	}
	log := logger.C(ctx).With().Str("component", "namegen").Logger()

	start := s.now()
	content, err := s.llm.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: userPrompt(in)},
		},
		Model:       s.cfg.Model,
		JSONMode:    true,
		Temperature: s.cfg.Temperature,
	})
	elapsed := s.now().Sub(start)
	if err != nil {
		s.metrics.ObserveGeneration(elapsed, 0)
		return nil, asGeneration(err)
	}

	raw, err := Decode(content)
	if err != nil {
		s.metrics.ObserveGeneration(elapsed, 0)
		log.Warn().Err(err).Int("content_len", len(content)).Msg("unusable model output")
		return nil, err
	}
	names := normalize.Domains(raw)
	s.metrics.ObserveGeneration(elapsed, len(names))

	log.Info().
		Int("raw", len(raw)).
		Int("kept", len(names)).
		Dur("elapsed", elapsed).
		Msg("generated candidates")
	return names, nil
}

// Decode strictly parses model content into the domain_names list
// fenced content is unwrapped first; any other shape is a generation error
func Decode(content string) ([]string, error) {
	body := llm.Unfence(content)
	dec := json.NewDecoder(bytes.NewReader([]byte(body)))
	dec.DisallowUnknownFields()

	var r response
	if err := dec.Decode(&r); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeGeneration, "model output is not the expected json object")
	}
	if dec.More() {
		return nil, perr.Generationf("model output has trailing data")
	}
	if r.DomainNames == nil {
		return nil, perr.Generationf("model output is missing domain_names")
	}
	out := make([]string, 0, len(*r.DomainNames))
	for i, n := range *r.DomainNames {
		if n == nil {
			return nil, perr.Generationf("model output domain_names[%d] is null", i)
		}
		out = append(out, *n)
	}
	return out, nil
}

func asGeneration(err error) error {
	if perr.CodeOf(err) != perr.ErrorCodeUnknown {
		return err
	}
	return perr.Wrap(err, perr.ErrorCodeGeneration, "name generation failed")
}
