// Package modkit provides module wiring and core deps
package modkit

import (
	"errors"
	"time"

	"scriptdrill/internal/adapters/translit"
	"scriptdrill/internal/core/corpus"
	"scriptdrill/internal/core/sampler"
	"scriptdrill/internal/platform/config"
	"scriptdrill/internal/platform/logger"

	"github.com/google/uuid"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf

	// Corpus is the read-only word index built once at startup
	Corpus *corpus.Index
	// Gateway converts between scripts and caches converters per pair
	Gateway *translit.Gateway
	// Rand feeds the word sampler; must be safe for concurrent use
	Rand sampler.Source

	Instance uuid.UUID
	Started  time.Time
}

// Validate reports the first missing dependency a serving module would trip over
func (d Deps) Validate() error {
	switch {
	case d.Corpus == nil:
		return errors.New("modkit: corpus index is required")
	case d.Gateway == nil:
		return errors.New("modkit: transliteration gateway is required")
	case d.Rand == nil:
		return errors.New("modkit: random source is required")
	}
	return nil
}

// Logger returns d.Log or the named fallback when tests leave it unset
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Named(component)
}
