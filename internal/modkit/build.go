package modkit

import (
	"net/http"

	"scriptdrill/internal/modkit/httpkit"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:   c.name,
		Prefix: c.prefix,
		Mw:     append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:  c.ports,
	}
}

// Mount attaches routes under the built prefix with the built middleware
func (b Built) Mount(r httpkit.Router, routes func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, routes)
}
