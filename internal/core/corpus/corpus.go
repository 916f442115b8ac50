// Package corpus builds per-locale word buckets keyed by script.
//
// Source files hold one word per line, optionally followed by a tab and an
// integer weight. Lines are NFC normalized. A line whose weight cannot be read
// is kept whole as the word with weight 1, so a bad line never fails startup.
// Buckets below the significance threshold stay loaded and addressable; they are
// only left out of the locale's advertised script list
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"scriptdrill/internal/core/sampler"
	"scriptdrill/internal/core/script"
)

// DefaultThreshold is the bucket share a script must exceed to be significant
const DefaultThreshold = 0.05

const scannerBufSize = 1024 * 1024

// Word is one corpus entry
type Word struct {
	Form   string
	Weight int
}

// ParseLine reads one source line. ok is false for blank lines.
// Counts above sampler.MaxWeight are capped
func ParseLine(line string) (w Word, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Word{}, false
	}
	line = norm.NFC.String(line)

	if i := strings.LastIndexByte(line, '\t'); i >= 0 {
		form := strings.TrimSpace(line[:i])
		n, err := strconv.Atoi(strings.TrimSpace(line[i+1:]))
		if err == nil && n > 0 && form != "" {
			return Word{Form: form, Weight: min(n, sampler.MaxWeight)}, true
		}
	}
	return Word{Form: line, Weight: 1}, true
}

// Bucket holds the words of one (locale, script) pair in file order
type Bucket struct {
	Script  script.Tag
	Forms   []string
	weights []int
	cum     sampler.Weights
}

// Len is the number of words in the bucket
func (b *Bucket) Len() int { return len(b.Forms) }

// Weight is the summed weight of the bucket
func (b *Bucket) Weight() int64 { return b.cum.Total() }

// Sample draws k forms with replacement, by weight when weighted is set
func (b *Bucket) Sample(src sampler.Source, k int, weighted bool) ([]string, error) {
	var w sampler.Weights
	if weighted {
		w = b.cum
	}
	return sampler.Draw(src, b.Forms, w, k)
}

func (b *Bucket) add(w Word) {
	b.Forms = append(b.Forms, w.Form)
	b.weights = append(b.weights, w.Weight)
}

func (b *Bucket) seal() error {
	cum, err := sampler.NewWeights(b.weights)
	if err != nil {
		return err
	}
	b.cum = cum
	return nil
}

// Locale is the immutable corpus of one locale
type Locale struct {
	Name        string
	Total       int
	Significant []script.Tag
	buckets     map[script.Tag]*Bucket
}

// Bucket returns the bucket for tag
func (l *Locale) Bucket(tag script.Tag) (*Bucket, bool) {
	b, ok := l.buckets[tag]
	return b, ok
}

// Scripts returns every loaded script tag, significant or not, sorted
func (l *Locale) Scripts() []script.Tag {
	out := make([]script.Tag, 0, len(l.buckets))
	for t := range l.buckets {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Counts returns bucket sizes keyed by script
func (l *Locale) Counts() map[script.Tag]int {
	out := make(map[script.Tag]int, len(l.buckets))
	for t, b := range l.buckets {
		out[t] = b.Len()
	}
	return out
}

// Build reads one locale source and classifies every word into a bucket
func Build(name string, r io.Reader, c *script.Classifier, threshold float64) (*Locale, error) {
	if threshold < 0 || threshold >= 1 {
		return nil, fmt.Errorf("corpus: threshold %v outside [0,1)", threshold)
	}

	l := &Locale{Name: name, buckets: map[script.Tag]*Bucket{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), scannerBufSize)
	for sc.Scan() {
		w, ok := ParseLine(sc.Text())
		if !ok {
			continue
		}
		tag := c.Classify(w.Form)
		b := l.buckets[tag]
		if b == nil {
			b = &Bucket{Script: tag}
			l.buckets[tag] = b
		}
		b.add(w)
		l.Total++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", name, err)
	}

	for _, b := range l.buckets {
		if err := b.seal(); err != nil {
			return nil, fmt.Errorf("corpus: %s/%s: %w", name, b.Script, err)
		}
	}
	l.Significant = significant(l.buckets, l.Total, threshold)
	return l, nil
}

// significant picks tags whose share exceeds threshold, largest first then by tag.
// The largest bucket always qualifies when there is any word
func significant(buckets map[script.Tag]*Bucket, total int, threshold float64) []script.Tag {
	if total == 0 {
		return []script.Tag{}
	}
	tags := make([]script.Tag, 0, len(buckets))
	for t := range buckets {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		ni, nj := buckets[tags[i]].Len(), buckets[tags[j]].Len()
		if ni != nj {
			return ni > nj
		}
		return tags[i] < tags[j]
	})

	out := tags[:1:1]
	for _, t := range tags[1:] {
		if float64(buckets[t].Len())/float64(total) > threshold {
			out = append(out, t)
		}
	}
	return out
}
