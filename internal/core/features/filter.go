package features

import "fmt"

// Polarity says whether matching words are dropped or kept
type Polarity uint8

const (
	Exclude Polarity = iota
	Require
)

func (p Polarity) String() string {
	if p == Require {
		return "require"
	}
	return "exclude"
}

// Mode is the request-level switch for one dimension: 0 exclude, 1 no constraint, 2 require
type Mode int

const (
	ModeExclude Mode = 0
	ModeNone    Mode = 1
	ModeRequire Mode = 2
)

// ParseMode validates a raw request value
func ParseMode(v int) (Mode, error) {
	switch m := Mode(v); m {
	case ModeExclude, ModeNone, ModeRequire:
		return m, nil
	default:
		return ModeNone, fmt.Errorf("features: mode %d not in {0,1,2}", v)
	}
}

// Spec is one resolved filter dimension
type Spec struct {
	Tags     Set
	Polarity Polarity
}

// Spec resolves m against a tag set; ok is false for ModeNone
func (m Mode) Spec(tags Set) (Spec, bool) {
	switch m {
	case ModeExclude:
		return Spec{Tags: tags, Polarity: Exclude}, true
	case ModeRequire:
		return Spec{Tags: tags, Polarity: Require}, true
	default:
		return Spec{}, false
	}
}

// Filter keeps words without a matching rune (Exclude) or with one (Require).
// A result that would be empty is replaced by the input, unchanged
func Filter(words []string, tags Set, p Polarity) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if Has(w, tags) == (p == Require) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return words
	}
	return out
}

// Apply runs every Exclude spec, then every Require spec, each with Filter's no-op-on-empty rule
func Apply(words []string, specs ...Spec) []string {
	for _, pass := range [...]Polarity{Exclude, Require} {
		for _, s := range specs {
			if s.Polarity == pass {
				words = Filter(words, s.Tags, s.Polarity)
			}
		}
	}
	return words
}
