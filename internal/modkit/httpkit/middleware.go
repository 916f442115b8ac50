package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"scriptdrill/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack; zero values pick the defaults
type StackOptions struct {
	// Origins feeds CORS; empty allows any origin
	Origins []string
	// Timeout bounds a request; defaults to 30s
	Timeout time.Duration
	// Slow marks access log lines at warn level; defaults to 2s
	Slow time.Duration
	// Heartbeat is the liveness path answered before routing; defaults to /ping
	Heartbeat string
}

// CommonStack returns the baseline middleware slice mounted on the root router
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Slow <= 0 {
		o.Slow = 2 * time.Second
	}
	if o.Heartbeat == "" {
		o.Heartbeat = "/ping"
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestLog,

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{
			Slow: o.Slow,
			Skip: []string{o.Heartbeat, "/meta/health"},
		}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat(o.Heartbeat),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
