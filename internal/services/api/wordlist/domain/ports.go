package domain

import (
	"context"

	"scriptdrill/internal/core/corpus"
)

// Corpus is the read side of the loaded word index
type Corpus interface {
	Bucket(locale, tag string) (*corpus.Bucket, error)
	Locales() []corpus.LocaleInfo
}

// Converter transliterates word batches
type Converter interface {
	ConvertAll(ctx context.Context, from, to string, words []string) ([]string, error)
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Locales() []LocaleInfo
	Wordlist(ctx context.Context, in Request) (Response, error)
}
