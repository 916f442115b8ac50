// Package service contains the word list workflow: sample, convert, filter, convert, annotate
package service

import (
	"context"
	"strings"

	"scriptdrill/internal/core/direction"
	"scriptdrill/internal/core/features"
	"scriptdrill/internal/core/fonts"
	"scriptdrill/internal/core/sampler"
	"scriptdrill/internal/core/script"
	perr "scriptdrill/internal/platform/errors"
	"scriptdrill/internal/platform/logger"
	"scriptdrill/internal/services/api/wordlist/domain"

	"golang.org/x/text/cases"
)

// Options tunes sampling
type Options struct {
	// Size is the number of words drawn per request
	Size int
	// Weighted draws proportionally to corpus frequency
	Weighted bool
}

// Service defines the word list service contract
type Service interface {
	domain.ServicePort
}

// Svc implements Service
type Svc struct {
	corpus domain.Corpus
	conv   domain.Converter
	rand   sampler.Source
	opts   Options
}

// New constructs a word list service
func New(c domain.Corpus, conv domain.Converter, src sampler.Source, o Options) *Svc {
	if c == nil {
		panic("wordlist.Service requires a non nil Corpus")
	}
	if conv == nil {
		panic("wordlist.Service requires a non nil Converter")
	}
	if src == nil {
		panic("wordlist.Service requires a non nil random Source")
	}
	if o.Size <= 0 {
		o.Size = sampler.DefaultSize
	}
	return &Svc{corpus: c, conv: conv, rand: src, opts: o}
}

// Locales lists every loaded locale with its significant scripts
func (s *Svc) Locales() []domain.LocaleInfo { return s.corpus.Locales() }

// Wordlist samples one bucket and pairs each kept word with its target script form
func (s *Svc) Wordlist(ctx context.Context, in domain.Request) (domain.Response, error) {
	ctx = logger.WithRoute(ctx, "wordlist")
	specs, err := filterSpecs(in)
	if err != nil {
		return domain.Response{}, err
	}

	b, err := s.corpus.Bucket(strings.TrimSpace(in.Lang), script.Canonical(in.Script))
	if err != nil {
		return domain.Response{}, err
	}
	from := script.Canonical(in.From)
	if from == "" || isAutodetect(from) {
		from = b.Script
	}
	to := script.Canonical(in.To)

	words, err := b.Sample(s.rand, s.opts.Size, s.opts.Weighted)
	if err != nil {
		return domain.Response{}, perr.Wrap(err, perr.ErrorCodeUnknown, "sample words")
	}

	src := words
	if from != b.Script {
		if src, err = s.conv.ConvertAll(ctx, b.Script, from, words); err != nil {
			return domain.Response{}, err
		}
	}
	kept := features.Apply(src, specs...)

	dst, err := s.conv.ConvertAll(ctx, from, to, kept)
	if err != nil {
		return domain.Response{}, err
	}
	if len(dst) != len(kept) {
		return domain.Response{}, perr.Newf(perr.ErrorCodeUnavailable, "converter returned %d words for %d", len(dst), len(kept))
	}

	pairs := make([]domain.Pair, len(kept))
	for i := range kept {
		pairs[i] = domain.Pair{kept[i], dst[i]}
	}

	logger.C(ctx).Debug().
		Str("lang", in.Lang).
		Str("bucket", b.Script).
		Str("from", from).
		Str("to", to).
		Int("sampled", len(words)).
		Int("kept", len(kept)).
		Msg("wordlist built")

	return domain.Response{
		From:     side(from, kept),
		To:       side(to, dst),
		Wordlist: pairs,
	}, nil
}

func side(tag string, words []string) domain.Side {
	fs := fonts.For(tag)
	if fs == nil {
		fs = []string{}
	}
	return domain.Side{Script: tag, Dir: direction.Detect(words), Fonts: fs}
}

func isAutodetect(s string) bool {
	return cases.Fold().String(s) == domain.Autodetect
}

// filterSpecs resolves the request switches into filter passes
func filterSpecs(in domain.Request) ([]features.Spec, error) {
	dims := []struct {
		field string
		raw   *int
		tags  features.Set
	}{
		{"withConjuncts", in.WithConjuncts, features.Conjunct},
		{"withIndepVowels", in.WithIndepVowels, features.IndepVowel},
	}
	var specs []features.Spec
	for _, d := range dims {
		if d.raw == nil {
			continue
		}
		m, err := features.ParseMode(*d.raw)
		if err != nil {
			return nil, perr.WithField(perr.Validationf("%s must be one of [0 1 2]", d.field), d.field)
		}
		if sp, ok := m.Spec(d.tags); ok {
			specs = append(specs, sp)
		}
	}
	return specs, nil
}
