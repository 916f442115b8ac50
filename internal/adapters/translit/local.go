package translit

import (
	"context"
	"slices"
	"strings"
	"unicode"

	perr "scriptdrill/internal/platform/errors"
)

// The major Brahmic blocks share the ISCII-derived layout: the same letter sits at
// the same offset in each 128 code point block
const blockSize = 0x80

type block struct {
	tag  string
	base rune
	tab  *unicode.RangeTable
}

var blocks = []block{
	{"Deva", 0x0900, unicode.Devanagari},
	{"Beng", 0x0980, unicode.Bengali},
	{"Guru", 0x0A00, unicode.Gurmukhi},
	{"Gujr", 0x0A80, unicode.Gujarati},
	{"Orya", 0x0B00, unicode.Oriya},
	{"Taml", 0x0B80, unicode.Tamil},
	{"Telu", 0x0C00, unicode.Telugu},
	{"Knda", 0x0C80, unicode.Kannada},
	{"Mlym", 0x0D00, unicode.Malayalam},
}

func blockOf(tag string) (block, bool) {
	i := slices.IndexFunc(blocks, func(b block) bool { return b.tag == tag })
	if i < 0 {
		return block{}, false
	}
	return blocks[i], true
}

// Local is the in-process engine: Brahmic to Brahmic by block offset, and Brahmic to
// ISO 15919 romanization
type Local struct{}

// NewLocal returns the in-process engine
func NewLocal() *Local { return &Local{} }

// Name implements Engine
func (*Local) Name() string { return "local" }

// Supports implements Engine
func (*Local) Supports(tag string) bool {
	_, ok := blockOf(tag)
	return ok || isRoman(tag)
}

// Tags lists every tag the engine accepts
func (*Local) Tags() []string {
	out := make([]string, 0, len(blocks)+len(romanTags))
	for _, b := range blocks {
		out = append(out, b.tag)
	}
	return append(out, romanTags...)
}

// Converter implements Engine
func (l *Local) Converter(_ context.Context, p Pair) (Converter, error) {
	src, ok := blockOf(p.From)
	if !ok {
		return nil, unsupported(l, p)
	}
	if isRoman(p.To) {
		return ConverterFunc(func(_ context.Context, text string) (string, error) {
			return romanize(src, text), nil
		}), nil
	}
	dst, ok := blockOf(p.To)
	if !ok {
		return nil, unsupported(l, p)
	}
	return ConverterFunc(func(_ context.Context, text string) (string, error) {
		return shift(src, dst, text), nil
	}), nil
}

// shift moves every rune of src's block to the same offset in dst's block.
// When dst has nothing there the source rune is kept. Shared signs such as the
// danda live only in the Devanagari block and are kept as is
func shift(src, dst block, text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		off := r - src.base
		if off < 0 || off >= blockSize {
			sb.WriteRune(r)
			continue
		}
		t := dst.base + off
		if unicode.Is(dst.tab, t) {
			sb.WriteRune(t)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func unsupported(e Engine, p Pair) error {
	return perr.InvalidArgf("%s engine cannot convert %s", e.Name(), p)
}
