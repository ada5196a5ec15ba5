package cli

import (
	"context"
	"strings"

	"seekdomains/internal/modkit"
	"seekdomains/internal/platform/config"
	perr "seekdomains/internal/platform/errors"
	"seekdomains/internal/platform/logger"
	"seekdomains/internal/platform/store"
	"seekdomains/internal/services/api/domains/domain"

	availmod "seekdomains/internal/services/availability/module"
	domainsmod "seekdomains/internal/services/api/domains/module"
	namegenmod "seekdomains/internal/services/namegen/module"
)

// openOpts selects what a command needs from the runtime
type openOpts struct {
	// pipeline wires the model and the registrar; list and migrate skip both
	pipeline  bool
	llm       string
	model     string
	registrar string
}

func (o openOpts) validate() error {
	switch strings.ToLower(o.llm) {
	case "", namegenmod.ProviderOpenAI, namegenmod.ProviderAnthropic:
	default:
		return perr.WithField(perr.Validationf("unknown llm provider %q", o.llm), "llm")
	}
	switch strings.ToLower(o.registrar) {
	case "", availmod.ProviderNamecheap, availmod.ProviderWhois:
	default:
		return perr.WithField(perr.Validationf("unknown registrar %q", o.registrar), "registrar")
	}
	return nil
}

// app is the opened runtime a command works against
type app struct {
	svc   domain.ServicePort
	close func()
}

// opener builds an app; tests swap it for an in-memory one
type opener func(ctx context.Context, o openOpts) (*app, error)

// openApp opens the configured store, ensures the schema and wires the domains module
func openApp(ctx context.Context, o openOpts) (*app, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	root := config.New()
	l := logger.Get()

	st, err := store.Open(ctx, store.FromConfig(root), store.WithLogger(*l))
	if err != nil {
		return nil, err
	}
	if err := st.Guard(ctx); err != nil {
		_ = st.Close(ctx)
		return nil, err
	}

	deps := modkit.Deps{
		Log:     *l,
		Cfg:     root,
		DB:      st.SQL,
		Dialect: st.Dialect,
	}

	var w domainsmod.Wiring
	if o.pipeline {
		gen := namegenmod.New(deps, namegenmod.Options{Provider: o.llm, Model: o.model})
		chk := availmod.New(deps, availmod.Options{Provider: o.registrar})
		if w, err = domainsmod.WiringFrom(gen, chk); err != nil {
			_ = st.Close(ctx)
			return nil, err
		}
		l.Debug().Str("llm", gen.Provider()).Str("registrar", chk.Provider()).Msg("pipeline wired")
	}

	mod := domainsmod.New(deps, w)
	if err := mod.EnsureSchema(ctx); err != nil {
		_ = st.Close(ctx)
		return nil, err
	}
	return &app{
		svc: mod.Service(),
		close: func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		},
	}, nil
}
