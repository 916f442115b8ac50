// Package module wires word lists into the API using modkit
package module

import (
	modkit "scriptdrill/internal/modkit"
	"scriptdrill/internal/modkit/httpkit"
	str "scriptdrill/internal/platform/strings"

	"scriptdrill/internal/services/api/wordlist/domain"
	wordlisthttp "scriptdrill/internal/services/api/wordlist/http"
	wordlistsvc "scriptdrill/internal/services/api/wordlist/service"
)

// Ports are the sibling ports this module consumes
type Ports struct {
	// Converter overrides deps.Gateway, normally the translit module's port
	Converter domain.Converter
}

// Module implements the word list module
type Module struct {
	b   modkit.Built
	svc wordlistsvc.Service
}

// New constructs the word list module; it mounts at the API root
func New(deps modkit.Deps, o wordlistsvc.Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("wordlist"), modkit.WithPrefix("/")}, opts...)...)

	var conv domain.Converter = deps.Gateway
	if p, ok := b.Ports.(Ports); ok && p.Converter != nil {
		conv = p.Converter
	}
	return &Module{
		b:   b,
		svc: wordlistsvc.New(deps.Corpus, conv, deps.Rand, o),
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		wordlisthttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Ports returns the module ports
func (m *Module) Ports() any { return nil }
