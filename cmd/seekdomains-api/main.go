// @title         Seekdomains API
// @version       0.1.0
// @description   Generate brandable domain names, check availability and browse stored results

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"seekdomains/internal/modkit/repokit"
	"seekdomains/internal/platform/config"
	"seekdomains/internal/platform/config/raw"
	"seekdomains/internal/platform/logger"
	"seekdomains/internal/platform/metrics"
	phttp "seekdomains/internal/platform/net/http"
	"seekdomains/internal/platform/store"

	"seekdomains/internal/services/api"
)

var defaultOrigins = []string{
	"http://www.seeking.domains",
	"https://www.seeking.domains",
	"https://seeking.domains",
	"http://seeking.domains",
	"https://seeking-domains.vercel.app",
	"https://be.seeking.domains",
}

func main() {
	// .env before anything reads the environment
	dotenvErr := raw.LoadDotenv()

	// bring up logging early
	l := logger.Get()
	if dotenvErr != nil {
		l.Warn().Err(dotenvErr).Msg("dotenv load failed")
	}

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.FromConfig(root), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	err = api.Mount(ctx, srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		Logger:         l,
		Metrics:        metrics.New(),
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		EnableMetrics:  apiCfg.MayBool("METRICS", true),
		CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", defaultOrigins),
		RequestTimeout: apiCfg.MayDuration("REQUEST_TIMEOUT", 2*time.Minute),
	})
	if err != nil {
		l.Panic().Err(err).Msg("api mount failed")
	}

	go func() {
		<-ctx.Done()
		l.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			l.Error().Err(err).Msg("http shutdown")
		}
	}()

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
