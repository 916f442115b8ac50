package module

import "scriptdrill/internal/services/api/translit/domain"

// Ports is what the module exports to its siblings
type Ports struct {
	Converter domain.Converter
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
