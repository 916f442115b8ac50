// Package module wires meta endpoints into the API using a tiny module
package module

import (
	modkit "scriptdrill/internal/modkit"
	"scriptdrill/internal/modkit/httpkit"
	str "scriptdrill/internal/platform/strings"

	metahttp "scriptdrill/internal/services/api/meta/http"
)

// ServiceName is reported by the meta endpoints
const ServiceName = "scriptdrill-api"

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	hd := metahttp.Deps{
		ServiceName: ServiceName,
		Instance:    deps.Instance,
		StartedAt:   deps.Started,
	}
	if deps.Corpus != nil {
		hd.Corpus = deps.Corpus
	}
	if deps.Gateway != nil {
		hd.Translit = deps.Gateway
		hd.Engine = deps.Gateway.Engine()
	}
	return &Module{b: b, deps: hd}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, m.deps)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
