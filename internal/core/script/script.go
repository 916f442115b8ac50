// Package script classifies words by Unicode writing system.
// A word gets exactly one ISO 15924 tag, or Zyyy when it carries no script of its
// own or mixes several. Common and Inherited runes (digits, punctuation, joiners,
// combining marks shared across scripts) never decide the tag
package script

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/rangetable"
)

// Tag is an ISO 15924 script code or a gateway-specific synonym from a RemapTable
type Tag = string

const (
	// Common is the fallback for empty, script-less or mixed-script words
	Common Tag = "Zyyy"
	// Inherited marks runes that take the script of their base character
	Inherited Tag = "Zinh"
	// Unknown covers runes that belong to no script table
	Unknown Tag = "Zzzz"
)

// span is a run of consecutive runes sharing one script
type span struct {
	lo, hi rune
	name   string
}

// spans flattens unicode.Scripts into one sorted slice so lookups are a single binary search
var spans = sync.OnceValue(func() []span {
	names := make([]string, 0, len(unicode.Scripts))
	for name := range unicode.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []span
	for _, name := range names {
		rangetable.Visit(unicode.Scripts[name], func(r rune) {
			if n := len(out); n > 0 && out[n-1].name == name && out[n-1].hi == r-1 {
				out[n-1].hi = r
				return
			}
			out = append(out, span{lo: r, hi: r, name: name})
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].lo < out[j].lo })
	return out
})

// scriptOf returns the Unicode long script name of r, "" when r is in no table
func scriptOf(r rune) string {
	ss := spans()
	i := sort.Search(len(ss), func(i int) bool { return ss[i].hi >= r })
	if i < len(ss) && ss[i].lo <= r {
		return ss[i].name
	}
	return ""
}

// Classifier resolves words to tags. It is immutable and safe for concurrent use
type Classifier struct {
	supported map[Tag]struct{}
	remap     RemapTable
}

// Option configures a Classifier
type Option func(*Classifier)

// WithSupported restricts canonical codes to tags the gateway understands,
// enabling the registered-alias fallback for scripts outside that set
func WithSupported(tags ...Tag) Option {
	return func(c *Classifier) {
		if len(tags) == 0 {
			return
		}
		c.supported = make(map[Tag]struct{}, len(tags))
		for _, t := range tags {
			c.supported[t] = struct{}{}
		}
	}
}

// WithRemap applies a remap table to every resolved tag
func WithRemap(t RemapTable) Option {
	return func(c *Classifier) { c.remap = t }
}

// New builds a Classifier
func New(opts ...Option) *Classifier {
	c := &Classifier{}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Classify returns the single script tag of word or Common
func (c *Classifier) Classify(word string) Tag {
	found := ""
	for _, r := range word {
		name := scriptOf(r)
		switch name {
		case "Common", "Inherited":
			continue
		case "":
			name = "Unknown"
		}
		if found == "" {
			found = name
			continue
		}
		if name != found {
			return Common
		}
	}
	if found == "" {
		return Common
	}
	return c.resolve(found)
}

// resolve maps a long script name to its tag, applying alias fallback then remapping
func (c *Classifier) resolve(name string) Tag {
	e, ok := codes[name]
	if !ok {
		return Unknown
	}
	tag := e.code
	if c.supported != nil {
		if _, ok := c.supported[tag]; !ok {
			for _, alias := range e.aliases {
				if _, ok := c.supported[alias]; ok {
					tag = alias
					break
				}
			}
		}
	}
	return c.remap.Apply(tag)
}

// Canonical normalizes user supplied tags: "deva" and "DEVA" become "Deva".
// Anything that is not a registered four letter code is returned trimmed but otherwise untouched,
// gateway names such as "Burmese" or "ISO" pass through
func Canonical(s string) Tag {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return s
	}
	sc, err := language.ParseScript(s)
	if err != nil {
		return s
	}
	return sc.String()
}

// CodeOf returns the ISO 15924 code for a Unicode long script name such as "Devanagari"
func CodeOf(name string) (Tag, bool) {
	e, ok := codes[name]
	return e.code, ok
}
