package domain

import "context"

// Converter is the gateway surface the endpoints need
type Converter interface {
	Convert(ctx context.Context, from, to, text string) (string, error)
	ConvertAll(ctx context.Context, from, to string, words []string) ([]string, error)
}

// Catalog lists what a deployment advertises
type Catalog interface {
	Scripts() []string
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Translate(ctx context.Context, in ConvertInput) (string, error)
	Scripts() []string
	LatinSchemes() []string
}
