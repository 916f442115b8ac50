package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"scriptdrill/internal/core/script"
	perr "scriptdrill/internal/platform/errors"
)

// LocaleInfo is the public view of one locale
type LocaleInfo struct {
	Locale  string       `json:"locale"`
	Scripts []script.Tag `json:"scripts"`
}

// LocaleStats reports bucket sizes for one locale
type LocaleStats struct {
	Locale      string             `json:"locale"`
	Total       int                `json:"total"`
	Significant []script.Tag       `json:"significant"`
	Buckets     map[script.Tag]int `json:"buckets"`
}

// Index is the read-only locale -> script -> bucket container built at startup.
// Each locale owns its buckets; nothing is shared between locales
type Index struct {
	locales map[string]*Locale
	names   []string
}

// NewIndex assembles an index; a repeated locale name is an error
func NewIndex(ls ...*Locale) (*Index, error) {
	ix := &Index{locales: make(map[string]*Locale, len(ls))}
	for _, l := range ls {
		if _, dup := ix.locales[l.Name]; dup {
			return nil, fmt.Errorf("corpus: duplicate locale %q", l.Name)
		}
		ix.locales[l.Name] = l
		ix.names = append(ix.names, l.Name)
	}
	sort.Strings(ix.names)
	return ix, nil
}

// Len is the number of loaded locales
func (ix *Index) Len() int { return len(ix.names) }

// Locales lists every locale with its significant scripts, sorted by locale
func (ix *Index) Locales() []LocaleInfo {
	out := make([]LocaleInfo, 0, len(ix.names))
	for _, n := range ix.names {
		out = append(out, LocaleInfo{Locale: n, Scripts: append([]script.Tag(nil), ix.locales[n].Significant...)})
	}
	return out
}

// Locale returns one locale, a validation error when it is not loaded
func (ix *Index) Locale(name string) (*Locale, error) {
	l, ok := ix.locales[name]
	if !ok {
		return nil, perr.WithField(perr.Validationf("unknown locale %q", name), "lang")
	}
	return l, nil
}

// Bucket returns the words of one (locale, script) pair
func (ix *Index) Bucket(locale string, tag script.Tag) (*Bucket, error) {
	l, err := ix.Locale(locale)
	if err != nil {
		return nil, err
	}
	b, ok := l.Bucket(tag)
	if !ok {
		return nil, perr.WithField(perr.Validationf("locale %q has no %q words", locale, tag), "script")
	}
	return b, nil
}

// Stats reports bucket sizes per locale, sorted by locale
func (ix *Index) Stats() []LocaleStats {
	out := make([]LocaleStats, 0, len(ix.names))
	for _, n := range ix.names {
		l := ix.locales[n]
		out = append(out, LocaleStats{
			Locale:      n,
			Total:       l.Total,
			Significant: append([]script.Tag(nil), l.Significant...),
			Buckets:     l.Counts(),
		})
	}
	return out
}

// Options configures LoadDir
type Options struct {
	Classifier *script.Classifier
	Threshold  float64
	// Workers bounds parallel file loads; 0 means GOMAXPROCS
	Workers int
}

// LocaleName derives the locale from a data file name: "ta.tsv" and "ta" are both "ta"
func LocaleName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadDir builds one locale per regular, non-hidden file in dir, in parallel
func LoadDir(ctx context.Context, dir string, opts Options) (*Index, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("corpus: read dir %s: %w", dir, err)
	}
	if opts.Classifier == nil {
		opts.Classifier = script.New()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}

	out := make([]*Locale, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			l, err := loadFile(path, opts)
			if err != nil {
				return err
			}
			out[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewIndex(out...)
}

func loadFile(path string, opts Options) (*Locale, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()
	return Build(LocaleName(path), f, opts.Classifier, opts.Threshold)
}
