// Package translit converts text between writing systems.
//
// A Gateway fronts one Engine (the in-process Brahmic engine or a remote
// Aksharamukha-compatible service). Converters are built per script pair and
// memoized for the life of the process
package translit

import (
	"context"
	"slices"

	perr "scriptdrill/internal/platform/errors"
	"scriptdrill/internal/platform/logger"
)

// Pair is the cache key for one conversion direction
type Pair struct {
	From string
	To   string
}

func (p Pair) String() string { return p.From + "->" + p.To }

// Converter converts text for one fixed pair
type Converter interface {
	Convert(ctx context.Context, text string) (string, error)
}

// BatchConverter is implemented by converters that can convert many words in one round trip
type BatchConverter interface {
	ConvertAll(ctx context.Context, words []string) ([]string, error)
}

// ConverterFunc adapts a function to Converter
type ConverterFunc func(ctx context.Context, text string) (string, error)

// Convert implements Converter
func (f ConverterFunc) Convert(ctx context.Context, text string) (string, error) { return f(ctx, text) }

// Factory builds the converter for a pair
type Factory func(ctx context.Context, p Pair) (Converter, error)

// Engine is a transliteration backend
type Engine interface {
	Name() string
	Supports(tag string) bool
	Converter(ctx context.Context, p Pair) (Converter, error)
}

// Pinger is implemented by engines that can check their backend
type Pinger interface {
	Ping(ctx context.Context) error
}

// identity is used for same-script pairs
var identity = ConverterFunc(func(_ context.Context, text string) (string, error) { return text, nil })

// Gateway is the transliteration port used by the HTTP modules
type Gateway struct {
	engine  Engine
	cache   *Cache
	scripts []string
	log     *logger.Logger
}

// NewGateway wraps engine with a converter cache. scripts is the advertised script list
func NewGateway(engine Engine, scripts []string) *Gateway {
	g := &Gateway{
		engine:  engine,
		scripts: slices.Clone(scripts),
		log:     logger.Named("translit"),
	}
	g.cache = NewCache(g.build)
	return g
}

func (g *Gateway) build(ctx context.Context, p Pair) (Converter, error) {
	if p.From == p.To {
		return identity, nil
	}
	if !g.engine.Supports(p.From) {
		return nil, perr.WithField(perr.InvalidArgf("%s engine cannot read script %q", g.engine.Name(), p.From), "from")
	}
	if !g.engine.Supports(p.To) {
		return nil, perr.WithField(perr.InvalidArgf("%s engine cannot write script %q", g.engine.Name(), p.To), "to")
	}
	c, err := g.engine.Converter(ctx, p)
	if err != nil {
		return nil, err
	}
	g.log.Debug().Str("engine", g.engine.Name()).Str("pair", p.String()).Msg("converter built")
	return c, nil
}

// Engine returns the engine name
func (g *Gateway) Engine() string { return g.engine.Name() }

// Scripts returns the advertised script tags
func (g *Gateway) Scripts() []string { return slices.Clone(g.scripts) }

// Supports reports whether the engine can convert from or to tag
func (g *Gateway) Supports(tag string) bool { return g.engine.Supports(tag) }

// Convert transliterates text. Unsupported pairs fail with an InvalidArgument error
func (g *Gateway) Convert(ctx context.Context, from, to, text string) (string, error) {
	c, err := g.cache.Get(ctx, Pair{From: from, To: to})
	if err != nil {
		return "", perr.WithOp(err, "translit.convert")
	}
	out, err := c.Convert(ctx, text)
	return out, perr.WithOp(err, "translit.convert")
}

// ConvertAll transliterates each word, in one round trip when the converter supports it
func (g *Gateway) ConvertAll(ctx context.Context, from, to string, words []string) ([]string, error) {
	if len(words) == 0 {
		return []string{}, nil
	}
	c, err := g.cache.Get(ctx, Pair{From: from, To: to})
	if err != nil {
		return nil, perr.WithOp(err, "translit.convert_all")
	}
	if bc, ok := c.(BatchConverter); ok {
		out, err := bc.ConvertAll(ctx, words)
		return out, perr.WithOp(err, "translit.convert_all")
	}
	out := make([]string, len(words))
	for i, w := range words {
		if out[i], err = c.Convert(ctx, w); err != nil {
			return nil, perr.WithOp(err, "translit.convert_all")
		}
	}
	return out, nil
}

// Cached is the number of memoized converters
func (g *Gateway) Cached() int { return g.cache.Len() }

// Ping checks the engine backend; in-process engines are always up
func (g *Gateway) Ping(ctx context.Context) error {
	if p, ok := g.engine.(Pinger); ok {
		return perr.WithOp(p.Ping(ctx), "translit.ping")
	}
	return nil
}
