// Command scriptdrill-udfreq builds a word frequency file from CoNLL-U treebanks
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"scriptdrill/internal/core/udfreq"
)

func main() {
	var (
		out     = flag.String("o", "-", "output path or '-' for stdout")
		skip    = flag.String("skip", strings.Join(udfreq.DefaultSkip, ","), "comma separated UPOS tags to ignore")
		ranges  = flag.Bool("ranges", false, "also count multiword range lines and empty nodes")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "usage: %s [-o out.tsv] in1.conllu [in2.conllu ...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	c := udfreq.NewCounter(splitTags(*skip)...)
	c.Ranges = *ranges
	var total udfreq.Stats
	for _, path := range flag.Args() {
		st, err := readFile(c, path)
		must(err)
		if st.Malformed > 0 {
			_, _ = fmt.Fprintf(os.Stderr, "warn: %s: %d malformed token lines\n", path, st.Malformed)
		}
		if *verbose {
			_, _ = fmt.Fprintf(os.Stderr, "%s: %d tokens, %d skipped\n", path, st.Tokens, st.Skipped)
		}
		total.Tokens += st.Tokens
		total.Skipped += st.Skipped
		total.Malformed += st.Malformed
	}

	if *out == "-" {
		w := bufio.NewWriter(os.Stdout)
		_, err := c.WriteTo(w)
		must(err)
		must(w.Flush())
	} else {
		must(writeFile(c, *out))
	}

	if *verbose {
		_, _ = fmt.Fprintf(os.Stderr, "%d forms from %d tokens (%d skipped) -> %s\n", c.Len(), total.Tokens, total.Skipped, *out)
	}
}

func readFile(c *udfreq.Counter, path string) (udfreq.Stats, error) {
	f, err := os.Open(path) //nolint:gosec // paths come from the command line
	if err != nil {
		return udfreq.Stats{}, err
	}
	defer func() { _ = f.Close() }()
	st, err := c.Read(f)
	if err != nil {
		return st, fmt.Errorf("%s: %w", path, err)
	}
	return st, nil
}

func writeFile(c *udfreq.Counter, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path) //nolint:gosec
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if _, err := c.WriteTo(w); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, strings.ToUpper(t))
		}
	}
	return tags
}

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
