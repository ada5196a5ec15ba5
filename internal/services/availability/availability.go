// Package availability checks candidate names against a registrar in bulk batches
package availability

import (
	"context"
	"strings"
	"time"

	"seekdomains/internal/adapters/registrar"
	"seekdomains/internal/core/normalize"
	perr "seekdomains/internal/platform/errors"
	"seekdomains/internal/platform/logger"
	"seekdomains/internal/platform/metrics"

	"golang.org/x/time/rate"
)

// DefaultBatchSize is the registrar bulk check limit
const DefaultBatchSize = 20

// Config carries batching and pacing knobs
// RPS <= 0 disables pacing
type Config struct {
	BatchSize int
	RPS       float64
	Burst     int
}

// Checker is consumed by the api and the cli
type Checker interface {
	Check(ctx context.Context, names []string) ([]string, error)
	CheckOne(ctx context.Context, domain string) (bool, error)
}

// Service implements Checker over a registrar.Registrar
type Service struct {
	reg     registrar.Registrar
	cfg     Config
	limiter *rate.Limiter
	metrics *metrics.Metrics
}

// New constructs the checker; m may be nil
func New(reg registrar.Registrar, cfg Config, m *metrics.Metrics) *Service {
	if reg == nil {
		panic("availability.Service requires a non nil Registrar")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	lim := rate.NewLimiter(rate.Inf, 0)
	if cfg.RPS > 0 {
		if cfg.Burst <= 0 {
			cfg.Burst = 1
		}
		lim = rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)
	}
	return &Service{reg: reg, cfg: cfg, limiter: lim, metrics: m}
}

// Check runs one registrar call per contiguous batch, in order, and concatenates the results
// the first failing batch aborts the whole check; nothing partial is returned
func (s *Service) Check(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	log := logger.C(ctx).With().Str("component", "availability").Str("provider", s.reg.Name()).Logger()

	var out []string
	batches := 0
	for start := 0; start < len(names); start += s.cfg.BatchSize {
		end := min(start+s.cfg.BatchSize, len(names))
		batch := names[start:end]

		if err := s.limiter.Wait(ctx); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeAvailability, "registrar pacing interrupted")
		}

		t0 := time.Now()
		avail, err := s.reg.Available(ctx, batch)
		s.metrics.ObserveRegistrarCall(s.reg.Name(), err, len(avail))
		if err != nil {
			log.Error().Err(err).Int("batch", batches).Int("size", len(batch)).Msg("bulk check failed")
			return nil, asAvailability(err)
		}
		log.Debug().
			Int("batch", batches).
			Int("size", len(batch)).
			Int("available", len(avail)).
			Dur("elapsed", time.Since(t0)).
			Msg("bulk check")
		out = append(out, avail...)
		batches++
	}

	log.Info().Int("names", len(names)).Int("batches", batches).Int("available", len(out)).Msg("availability checked")
	return out, nil
}

// CheckOne checks a single name; the answer is membership in the checked result
func (s *Service) CheckOne(ctx context.Context, domain string) (bool, error) {
	d, err := normalize.Domain(domain)
	if err != nil {
		return false, perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, "invalid domain"), "domain")
	}
	avail, err := s.Check(ctx, []string{d})
	if err != nil {
		return false, err
	}
	for _, a := range avail {
		if strings.EqualFold(a, d) {
			return true, nil
		}
	}
	return false, nil
}

func asAvailability(err error) error {
	if perr.CodeOf(err) != perr.ErrorCodeUnknown {
		return err
	}
	return perr.Wrap(err, perr.ErrorCodeAvailability, "availability check failed")
}
