// Package service contains the domains read and write workflows
package service

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"seekdomains/internal/modkit/repokit"
	perr "seekdomains/internal/platform/errors"
	"seekdomains/internal/platform/logger"
	"seekdomains/internal/platform/metrics"
	pnet "seekdomains/internal/platform/net"
	"seekdomains/internal/services/api/domains/domain"
	"seekdomains/internal/services/api/domains/repo"
	"seekdomains/internal/services/availability"
	"seekdomains/internal/services/namegen"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 64
	MaxPageSize     = 500
)

// Service defines the domains service contract
type Service interface {
	domain.ServicePort
}

// Options tunes paging and exposes seams for tests
type Options struct {
	DefaultPageSize int
	MaxPageSize     int

	// Shuffle permutes a fetched page; nil uses math/rand/v2
	Shuffle func(n int, swap func(i, j int))
	// NewID mints search request ids; nil uses uuid v4
	NewID func() string
	// Now stamps rows; nil uses time.Now
	Now func() time.Time
}

// Svc implements the domains service
type Svc struct {
	Repo    repo.Repo
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	gen     namegen.Generator
	checker availability.Checker
	metrics *metrics.Metrics
	opts    Options
}

// New constructs a domains service; m may be nil
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], gen namegen.Generator, chk availability.Checker, m *metrics.Metrics, opts Options) *Svc {
	if db == nil {
		panic("domains.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("domains.Service requires a non nil Repo binder")
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = DefaultPageSize
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = MaxPageSize
	}
	if opts.DefaultPageSize > opts.MaxPageSize {
		opts.DefaultPageSize = opts.MaxPageSize
	}
	if opts.Shuffle == nil {
		opts.Shuffle = rand.Shuffle
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Svc{
		Repo:    binder.Bind(db),
		binder:  binder,
		db:      db,
		gen:     gen,
		checker: chk,
		metrics: m,
		opts:    opts,
	}
}

// EnsureSchema bootstraps the result store tables
func (s *Svc) EnsureSchema(ctx context.Context) error { return s.Repo.EnsureSchema(ctx) }

// lengthOps maps wire operators to SQL; anything else drops the length filter
var lengthOps = map[string]string{
	domain.OpEq: "=",
	domain.OpGt: ">",
	domain.OpLt: "<",
}

// List returns one shuffled page of stored domains plus page metadata
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.ListResult, error) {
	page, size := 1, s.opts.DefaultPageSize
	if in.Page != nil {
		page = *in.Page
	}
	if in.PageSize != nil {
		size = *in.PageSize
	}
	switch {
	case page < 1:
		return domain.ListResult{}, perr.WithField(perr.Validationf("page must be at least 1"), "page")
	case size < 1 || size > s.opts.MaxPageSize:
		return domain.ListResult{}, perr.WithField(perr.Validationf("page_size must be between 1 and %d", s.opts.MaxPageSize), "page_size")
	case in.CharLength != nil && *in.CharLength < 0:
		return domain.ListResult{}, perr.WithField(perr.Validationf("char_length must be 0 or greater"), "char_length")
	}

	f := repo.Filter{
		SearchRequestID: strings.TrimSpace(in.SearchRequestID),
		TLD:             strings.ToLower(strings.TrimPrefix(strings.TrimSpace(in.TLD), ".")),
	}
	if in.CharLength != nil && *in.CharLength != 0 {
		if op, ok := lengthOps[in.CharLengthOp]; ok {
			f.Length, f.LengthOp = *in.CharLength, op
		}
	}

	rows, err := s.Repo.List(ctx, f, size, (page-1)*size)
	if err != nil {
		return domain.ListResult{}, err
	}
	total, err := s.Repo.Count(ctx, f)
	if err != nil {
		return domain.ListResult{}, err
	}

	out := make([]domain.DomainRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.DomainRow{Domain: r.Domain, PriorityInRanking: r.PriorityInRanking, CreatedAt: r.CreatedAt})
	}
	s.opts.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return domain.ListResult{
		Domains: out,
		Pagination: domain.Pagination{
			CurrentPage: page,
			PageSize:    size,
			TotalPages:  (total + size - 1) / size,
			TotalCount:  total,
		},
	}, nil
}

// GenerateAndCheck runs the write path: record request, generate, check, persist
func (s *Svc) GenerateAndCheck(ctx context.Context, in domain.GenerateInput) (domain.GenerateResult, error) {
	if strings.TrimSpace(in.Request) == "" {
		return domain.GenerateResult{}, perr.WithField(perr.Validationf("request content is missing"), "request")
	}
	if s.gen == nil || s.checker == nil {
		return domain.GenerateResult{}, perr.Unavailablef("name generation is not configured")
	}

	id := s.opts.NewID()
	ctx = pnet.WithRequest(ctx, "", id)
	ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), pnet.SearchID(ctx))
	log := logger.C(ctx).With().Str("component", "domains").Logger()

	if err := s.Repo.RecordRequest(ctx, id, in.Request, s.opts.Now()); err != nil {
		return domain.GenerateResult{}, err
	}

	names, err := s.gen.Generate(ctx, namegen.Input{
		Request:      in.Request,
		SimilarTo:    in.SimilarTo,
		WordLength:   in.WordLength.String(),
		AcceptedTLDs: in.AcceptedTLDs.String(),
	})
	if err != nil {
		return domain.GenerateResult{}, err
	}

	avail, err := s.checker.Check(ctx, names)
	if err != nil {
		return domain.GenerateResult{}, err
	}

	now := s.opts.Now()
	stored, err := s.Repo.RecordAvailable(ctx, avail, id, now)
	if err != nil {
		return domain.GenerateResult{}, err
	}
	s.metrics.ObserveStored(stored)

	log.Info().
		Int("candidates", len(names)).
		Int("available", len(avail)).
		Int("stored", stored).
		Msg("generate and check done")

	out := make([]domain.DomainRow, 0, len(avail))
	for _, d := range avail {
		out = append(out, domain.DomainRow{Domain: d, CreatedAt: now.UTC()})
	}
	return domain.GenerateResult{Domains: out, SearchRequestID: id, DomainsFound: len(avail)}, nil
}

// Check answers whether one domain is available right now
func (s *Svc) Check(ctx context.Context, in domain.CheckInput) (domain.CheckResult, error) {
	d := strings.TrimSpace(in.Domain)
	if d == "" {
		return domain.CheckResult{}, perr.WithField(perr.Validationf("domain is required"), "domain")
	}
	if s.checker == nil {
		return domain.CheckResult{}, perr.Unavailablef("availability checking is not configured")
	}
	ok, err := s.checker.CheckOne(ctx, d)
	if err != nil {
		return domain.CheckResult{}, err
	}
	return domain.CheckResult{Domain: d, Available: ok}, nil
}
