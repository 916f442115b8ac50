// Package udfreq counts word forms in CoNLL-U treebanks and writes the
// "form\tcount" files the corpus loader reads
package udfreq

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

const scannerBufSize = 4 * 1024 * 1024

// CoNLL-U columns
const (
	colID   = 0
	colForm = 1
	colUPOS = 3
)

// DefaultSkip are the UPOS tags that are not words
var DefaultSkip = []string{"PUNCT", "SYM", "X"}

// Entry is one output row
type Entry struct {
	Form  string
	Count int
}

// Stats summarizes what Read saw
type Stats struct {
	Tokens    int
	Skipped   int
	Malformed int
}

// Counter accumulates form counts across files. Not safe for concurrent use
type Counter struct {
	// Ranges also counts multiword range lines (1-2) and empty nodes (1.1).
	// Their UPOS is usually "_" so the surface form is counted next to its parts
	Ranges bool

	counts map[string]int
	skip   map[string]struct{}
}

// NewCounter skips the given UPOS tags, DefaultSkip when none are given
func NewCounter(skip ...string) *Counter {
	if len(skip) == 0 {
		skip = DefaultSkip
	}
	c := &Counter{counts: map[string]int{}, skip: make(map[string]struct{}, len(skip))}
	for _, s := range skip {
		c.skip[s] = struct{}{}
	}
	return c
}

// Read counts every word token of one CoNLL-U stream.
// Comment lines are ignored, and so are multiword ranges and empty nodes unless Ranges is set
func (c *Counter) Read(r io.Reader) (Stats, error) {
	var st Stats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), scannerBufSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) <= colUPOS {
			st.Malformed++
			continue
		}
		if !c.Ranges && strings.ContainsAny(cols[colID], "-.") {
			continue
		}
		if _, ok := c.skip[cols[colUPOS]]; ok {
			st.Skipped++
			continue
		}
		c.counts[cols[colForm]]++
		st.Tokens++
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("udfreq: scan: %w", err)
	}
	return st, nil
}

// Len is the number of distinct forms
func (c *Counter) Len() int { return len(c.counts) }

// Entries returns counts sorted by count desc, then form
func (c *Counter) Entries() []Entry {
	out := make([]Entry, 0, len(c.counts))
	for f, n := range c.counts {
		out = append(out, Entry{Form: f, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Form < out[j].Form
	})
	return out
}

// WriteTo writes "form\tcount" lines in Entries order
func (c *Counter) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, e := range c.Entries() {
		k, err := fmt.Fprintf(bw, "%s\t%d\n", e.Form, e.Count)
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}
