// Package service contains the transliteration workflow
package service

import (
	"context"

	"scriptdrill/internal/adapters/translit"
	"scriptdrill/internal/core/normalize"
	"scriptdrill/internal/core/script"
	perr "scriptdrill/internal/platform/errors"
	"scriptdrill/internal/platform/logger"
	"scriptdrill/internal/services/api/translit/domain"
)

// Service defines the transliteration service contract
type Service interface {
	domain.ServicePort
}

// Svc implements Service over a converter and a script catalog
type Svc struct {
	conv    domain.Converter
	catalog domain.Catalog
}

// New constructs a transliteration service
func New(conv domain.Converter, catalog domain.Catalog) *Svc {
	if conv == nil {
		panic("translit.Service requires a non nil Converter")
	}
	if catalog == nil {
		panic("translit.Service requires a non nil Catalog")
	}
	return &Svc{conv: conv, catalog: catalog}
}

// Translate converts the cleaned in.Text; empty text is "" and never reaches the converter
func (s *Svc) Translate(ctx context.Context, in domain.ConvertInput) (string, error) {
	text := normalize.Text(in.Text)
	if text == "" {
		return "", nil
	}
	from, to := script.Canonical(in.From), script.Canonical(in.To)
	if from == "" {
		return "", perr.WithField(perr.Validationf("from is required when text is set"), "from")
	}
	if to == "" {
		return "", perr.WithField(perr.Validationf("to is required when text is set"), "to")
	}
	ctx = logger.WithRoute(ctx, "translate")
	out, err := s.conv.Convert(ctx, from, to, text)
	if err != nil {
		logger.C(ctx).Debug().Err(err).Str("from", from).Str("to", to).Int("bytes", len(text)).Msg("translate failed")
		return "", err
	}
	return out, nil
}

// Scripts returns the deployment's advertised script tags
func (s *Svc) Scripts() []string {
	if out := s.catalog.Scripts(); out != nil {
		return out
	}
	return []string{}
}

// LatinSchemes returns the romanization scheme names
func (s *Svc) LatinSchemes() []string { return translit.LatinSchemes() }
