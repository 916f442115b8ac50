package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler mounts chi's pprof bundle under prefix ("/debug") when enabled
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	// chi's profiler expects to own the path, so strip our prefix first
	h := stdhttp.StripPrefix(prefix, mw.Profiler())
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
}
