// Package direction decides the dominant writing direction of a word list
package direction

import "golang.org/x/text/unicode/bidi"

// Dir is "ltr" or "rtl", the value browsers accept in a dir attribute
type Dir string

const (
	LTR Dir = "ltr"
	RTL Dir = "rtl"
)

// Counts tallies strong directional runes
type Counts struct {
	LTR int
	RTL int
}

// Add counts the strong runes of s: class L toward LTR, classes R and AL toward RTL
func (c *Counts) Add(s string) {
	for _, r := range s {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			c.LTR++
		case bidi.R, bidi.AL:
			c.RTL++
		}
	}
}

// Dir is RTL only when right-to-left runes strictly outnumber left-to-right ones
func (c Counts) Dir() Dir {
	if c.RTL > c.LTR {
		return RTL
	}
	return LTR
}

// Detect sums over the whole list, not per word, so a few loan words do not flip it
func Detect(words []string) Dir {
	var c Counts
	for _, w := range words {
		c.Add(w)
	}
	return c.Dir()
}
