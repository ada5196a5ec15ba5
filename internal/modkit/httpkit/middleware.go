package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"seekdomains/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack; zero value is usable
type StackOptions struct {
	CORS      middleware.CORSOptions
	AccessLog middleware.AccessLogOptions
	// Timeout bounds each request context, 0 means 30s
	Timeout time.Duration
}

// CommonStack returns the baseline middleware slice, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability
		middleware.AccessLogZerolog(o.AccessLog),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// cross-origin
		middleware.CORS(o.CORS),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(timeout),
	}
}
