package httpkit

import (
	"net/http"

	pstrings "scriptdrill/internal/platform/strings"
)

// MountUnder mounts a subrouter at prefix and applies per-module middlewares
// a root prefix ("" or "/") mounts an inline group instead of a subrouter
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	attach := func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	}
	if p := pstrings.RoutePrefix(prefix); p != "" {
		r.Route(p, attach)
		return
	}
	r.Group(attach)
}
