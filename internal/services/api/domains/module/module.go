// Package module wires the domains API into HTTP via modkit
package module

import (
	"context"
	"net/http"

	"seekdomains/internal/modkit"
	"seekdomains/internal/modkit/httpkit"
	kitmod "seekdomains/internal/modkit/module"
	"seekdomains/internal/platform/strings"
	"seekdomains/internal/services/api/domains/domain"
	"seekdomains/internal/services/availability"
	"seekdomains/internal/services/namegen"

	domainshttp "seekdomains/internal/services/api/domains/http"
	"seekdomains/internal/services/api/domains/repo"
	"seekdomains/internal/services/api/domains/service"
)

// Ports exposes the service port for cross-module lookups
type Ports struct {
	Service domain.ServicePort
}

// Wiring carries the pipeline collaborators owned by other modules
// either may be nil; the generate and check routes then answer 503
type Wiring struct {
	Generator namegen.Generator
	Checker   availability.Checker
}

// WiringFrom resolves the generator and checker from the modules that own them
func WiringFrom(mods ...kitmod.Module) (Wiring, error) {
	gen, err := kitmod.Find[namegen.Generator](mods...)
	if err != nil {
		return Wiring{}, err
	}
	chk, err := kitmod.Find[availability.Checker](mods...)
	if err != nil {
		return Wiring{}, err
	}
	return Wiring{Generator: gen, Checker: chk}, nil
}

// Module implements the domains module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *service.Svc
}

// New constructs the domains module; routes mount at the root unless a prefix is given
func New(deps modkit.Deps, w Wiring, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("domains")}, opts...)...)

	o := FromConfig(deps.Cfg)
	svc := service.New(deps.DB, repo.NewFor(deps.Dialect), w.Generator, w.Checker, deps.Metrics, service.Options{
		DefaultPageSize: o.DefaultPageSize,
		MaxPageSize:     o.MaxPageSize,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		domainshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	mount := func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	}
	if m.prefix == "" || m.prefix == "/" {
		r.Group(func(g httpkit.Router) {
			g.Use(m.mws...)
			mount(g)
		})
		return
	}
	httpkit.MountUnder(r, m.Prefix(), m.mws, mount)
}

// EnsureSchema creates the result tables when missing
func (m *Module) EnsureSchema(ctx context.Context) error { return m.svc.EnsureSchema(ctx) }

// Name is the module name
func (m *Module) Name() string { return strings.MustString(m.name, "module name") }

// Prefix is the module route prefix, "/" when mounted at the root
func (m *Module) Prefix() string {
	if m.prefix == "" || m.prefix == "/" {
		return "/"
	}
	return strings.MustPrefix(m.prefix)
}

// Middlewares is the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Service returns the typed service port
func (m *Module) Service() domain.ServicePort { return m.ports.Service }
