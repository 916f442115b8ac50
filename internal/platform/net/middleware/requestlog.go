package middleware

import (
	"net/http"

	"scriptdrill/internal/platform/logger"
	pnet "scriptdrill/internal/platform/net"
)

// RequestLog copies the chi request id into the logger context and echoes it as X-Request-ID
// Mount it after RequestID so logger.C(ctx) carries request_id everywhere downstream
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := pnet.RequestID(r.Context())
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequest(r.Context(), id)))
	})
}
