// Package api provides the HTTP API for the application
package api

import (
	"context"
	"fmt"
	"time"

	"seekdomains/internal/platform/config"
	"seekdomains/internal/platform/logger"
	"seekdomains/internal/platform/metrics"
	phttp "seekdomains/internal/platform/net/http"
	"seekdomains/internal/platform/net/middleware"
	"seekdomains/internal/platform/store"

	"seekdomains/internal/modkit"
	"seekdomains/internal/modkit/httpkit"
	"seekdomains/internal/modkit/swaggerkit"

	availmod "seekdomains/internal/services/availability/module"
	domainsmod "seekdomains/internal/services/api/domains/module"
	metamod "seekdomains/internal/services/api/meta/module"
	namegenmod "seekdomains/internal/services/namegen/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Metrics        *metrics.Metrics
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
	CORSOrigins    []string
	// RequestTimeout bounds each request; generation plus registrar batches can be slow
	RequestTimeout time.Duration

	// LLM and Registrar override env provider selection when non zero
	LLM       namegenmod.Options
	Registrar availmod.Options
}

// Mount builds every module, ensures the result schema and mounts routes onto r
// domain routes live at the root, meta under /api/v1
func Mount(ctx context.Context, r phttp.Router, opt Options) error {
	if opt.Store == nil || opt.Store.SQL == nil {
		return fmt.Errorf("api: store is required")
	}
	deps := modkit.Deps{
		Cfg:     opt.Config,
		DB:      opt.Store.SQL,
		Dialect: opt.Store.Dialect,
		Metrics: opt.Metrics,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	gen := namegenmod.New(deps, opt.LLM)
	chk := availmod.New(deps, opt.Registrar)
	w, err := domainsmod.WiringFrom(gen, chk)
	if err != nil {
		return fmt.Errorf("api: wire domains: %w", err)
	}
	domains := domainsmod.New(deps, w)
	if err := domains.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("api: ensure schema: %w", err)
	}
	meta := metamod.New(deps, metamod.Providers{LLM: gen.Provider(), Registrar: chk.Provider()})

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORS:      middleware.CORSOptions{AllowedOrigins: opt.CORSOrigins, AllowCredentials: true},
		AccessLog: middleware.AccessLogOptions{Slow: 5 * time.Second, Observe: opt.Metrics.ObserveHTTP},
		Timeout:   opt.RequestTimeout,
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics {
		r.Handle("/metrics", opt.Metrics.Handler())
	}

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		meta.MountRoutes(api)
	})
	r.Group(func(root httpkit.Router) {
		root.Use(stack...)
		domains.MountRoutes(root)
	})
	return nil
}
