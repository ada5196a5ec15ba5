package module

import (
	"net/http"

	modkit "seekdomains/internal/modkit"
	"seekdomains/internal/modkit/httpkit"
	"seekdomains/internal/platform/config"
	"seekdomains/internal/services/api/domains/service"
)

// Option is a configuration option for the domains module
type Option = modkit.Option

// WithPrefix sets the route prefix for the module
func WithPrefix(prefix string) Option { return modkit.WithPrefix(prefix) }

// WithMiddlewares sets the middlewares for the module
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return modkit.WithMiddlewares(mw...)
}

// WithRegister sets the register function for the module
func WithRegister(fn func(httpkit.Router)) Option { return modkit.WithRegister(fn) }

// Options controls listing behavior. Values may also be read from env
type Options struct {
	DefaultPageSize int
	MaxPageSize     int
}

// FromConfig reads options using the CORE_API_ prefix
func FromConfig(cfg config.Conf) Options {
	api := cfg.Prefix("CORE_API_")
	return Options{
		DefaultPageSize: api.MayInt("DEFAULT_PAGE_SIZE", service.DefaultPageSize),
		MaxPageSize:     api.MayInt("MAX_PAGE_SIZE", service.MaxPageSize),
	}
}
