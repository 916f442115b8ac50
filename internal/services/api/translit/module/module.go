// Package module wires transliteration into the API using modkit
package module

import (
	modkit "scriptdrill/internal/modkit"
	"scriptdrill/internal/modkit/httpkit"
	str "scriptdrill/internal/platform/strings"

	translithttp "scriptdrill/internal/services/api/translit/http"
	translitsvc "scriptdrill/internal/services/api/translit/service"
)

// Module implements the transliteration module
type Module struct {
	b     modkit.Built
	svc   translitsvc.Service
	ports Ports
}

// New constructs the transliteration module; it mounts at the API root
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("translit"), modkit.WithPrefix("/")}, opts...)...)
	return &Module{
		b:     b,
		svc:   translitsvc.New(deps.Gateway, deps.Gateway),
		ports: Ports{Converter: deps.Gateway},
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		translithttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
