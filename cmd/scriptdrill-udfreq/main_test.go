package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"scriptdrill/internal/core/udfreq"
	kit "scriptdrill/internal/platform/testkit"
)

func TestSplitTags(t *testing.T) {
	got := splitTags(" punct, SYM,,x ")
	if want := []string{"PUNCT", "SYM", "X"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("splitTags = %v, want %v", got, want)
	}
	if splitTags("") != nil {
		t.Fatal("empty input should give no tags")
	}
}

func TestReadAndWriteFile(t *testing.T) {
	dir := kit.WriteFiles(t, map[string]string{
		"a.conllu": "# sent_id = 1\n1\tघर\tघर\tNOUN\t_\t_\t0\troot\t_\t_\n2\t।\t।\tPUNCT\t_\t_\t1\tpunct\t_\t_\n",
		"b.conllu": "1-2\tघरमें\t_\t_\t_\t_\t_\t_\t_\t_\n1\tघर\tघर\tNOUN\t_\t_\t0\troot\t_\t_\n2\tमें\tमें\tADP\t_\t_\t1\tcase\t_\t_\n",
	})

	c := udfreq.NewCounter()
	for _, f := range []string{"a.conllu", "b.conllu"} {
		if _, err := readFile(c, filepath.Join(dir, f)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := readFile(c, filepath.Join(dir, "missing.conllu")); err == nil {
		t.Fatal("expected error for missing input")
	}

	out := filepath.Join(dir, "nested", "hi.tsv")
	if err := writeFile(c, out); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "घर\t2\nमें\t1\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}
