// Package module wires the availability checker to its configured registrar
package module

import (
	"strings"

	"seekdomains/internal/adapters/registrar"
	"seekdomains/internal/adapters/registrar/namecheap"
	"seekdomains/internal/adapters/registrar/whois"
	"seekdomains/internal/modkit"
	"seekdomains/internal/modkit/httpkit"
	"seekdomains/internal/services/availability"
)

// Ports exposes the checker for other modules
type Ports struct {
	Checker availability.Checker
}

// Module defines the availability module
type Module struct {
	opts  Options
	reg   registrar.Registrar
	ports Ports
}

// New constructs the module; a non empty override provider wins over env
func New(deps modkit.Deps, overrides Options) *Module {
	opts := FromConfig(deps.Cfg)
	if overrides.Provider != "" {
		opts.Provider = overrides.Provider
	}
	if overrides.BatchSize > 0 {
		opts.BatchSize = overrides.BatchSize
	}

	opts.Provider = strings.ToLower(strings.TrimSpace(opts.Provider))

	reg := provider(opts)
	if opts.Provider == ProviderNamecheap && (opts.NamecheapKey == "" || opts.NamecheapUser == "") {
		deps.Log.Warn().Msg("NAMECHEAP_API_KEY or NAMECHEAP_API_USER is empty, availability checks will fail upstream")
	}
	svc := availability.New(reg, availability.Config{
		BatchSize: opts.BatchSize,
		RPS:       opts.RPS,
		Burst:     opts.Burst,
	}, deps.Metrics)

	return &Module{opts: opts, reg: reg, ports: Ports{Checker: svc}}
}

func provider(o Options) registrar.Registrar {
	if o.Provider == ProviderWhois {
		return whois.New(whois.Options{Timeout: o.Timeout})
	}
	return namecheap.New(namecheap.Options{
		APIUser:  o.NamecheapUser,
		APIKey:   o.NamecheapKey,
		ClientIP: o.NamecheapClientIP,
		Sandbox:  o.NamecheapSandbox,
		Endpoint: o.NamecheapEndpoint,
		Timeout:  o.Timeout,
	})
}

// Provider names the active registrar
func (m *Module) Provider() string { return m.reg.Name() }

// Name returns the module name
func (m *Module) Name() string { return "availability" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Typed returns the module ports without a type assertion
func (m *Module) Typed() Ports { return m.ports }

// MountRoutes is a no op, the module serves other modules only
func (m *Module) MountRoutes(_ httpkit.Router) {}
