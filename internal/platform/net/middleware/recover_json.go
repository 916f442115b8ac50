package middleware

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"runtime/debug"

	perr "scriptdrill/internal/platform/errors"
	"scriptdrill/internal/platform/logger"
	pnet "scriptdrill/internal/platform/net"
)

// RecoverJSON converts panics into a JSON 500 envelope and logs the stack with request id
// http.ErrAbortHandler is re-panicked so net/http can abort the connection
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}

			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Str("request_id", reqID).
				Interface("panic", v).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msgf("panic recovered\n\t%s", debug.Stack())

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			status, body := pnet.Error(perr.PanicErrf("panic recovered"), reqID)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)
			_ = stdjson.NewEncoder(w).Encode(body)
		}()
		next.ServeHTTP(w, r)
	})
}
