package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"scriptdrill/internal/core/corpus"
	"scriptdrill/internal/core/sampler"
	"scriptdrill/internal/core/script"
	perr "scriptdrill/internal/platform/errors"
	"scriptdrill/internal/services/api/wordlist/domain"
)

type call struct {
	from, to string
	n        int
}

// tagConv prefixes each word with the target tag and records calls
type tagConv struct {
	calls []call
	err   error
}

func (c *tagConv) ConvertAll(_ context.Context, from, to string, words []string) ([]string, error) {
	c.calls = append(c.calls, call{from, to, len(words)})
	if c.err != nil {
		return nil, c.err
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = to + ":" + w
	}
	return out, nil
}

func newIndex(t *testing.T) *corpus.Index {
	t.Helper()
	l, err := corpus.Build("hi", strings.NewReader("आम\nकल\nक्या\n"), script.New(), corpus.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}
	ix, err := corpus.NewIndex(l)
	if err != nil {
		t.Fatal(err)
	}
	return ix
}

func ptr(v int) *int { return &v }

func TestWordlist_Flow(t *testing.T) {
	cases := []struct {
		name      string
		in        domain.Request
		wantCalls []call
		wantFrom  string
	}{
		{
			name:      "autodetect converts once",
			in:        domain.Request{To: "Taml", Lang: "hi", Script: "Deva", From: "AutoDetect"},
			wantCalls: []call{{"Deva", "Taml", 20}},
			wantFrom:  "Deva",
		},
		{
			name:      "explicit source converts twice",
			in:        domain.Request{To: "ISO", Lang: "hi", Script: "deva", From: "Beng"},
			wantCalls: []call{{"Deva", "Beng", 20}, {"Beng", "ISO", 20}},
			wantFrom:  "Beng",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conv := &tagConv{}
			s := New(newIndex(t), conv, sampler.NewLocked(1, 2), Options{Size: 20})
			out, err := s.Wordlist(context.Background(), tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if len(conv.calls) != len(tc.wantCalls) {
				t.Fatalf("calls = %+v", conv.calls)
			}
			for i, c := range tc.wantCalls {
				if conv.calls[i] != c {
					t.Fatalf("call %d = %+v, want %+v", i, conv.calls[i], c)
				}
			}
			if out.From.Script != tc.wantFrom || len(out.Wordlist) != 20 {
				t.Fatalf("from=%s len=%d", out.From.Script, len(out.Wordlist))
			}
			for _, p := range out.Wordlist {
				if p[1] != tc.in.To+":"+p[0] {
					t.Fatalf("pair %q not aligned", p)
				}
			}
		})
	}
}

func TestWordlist_Filters(t *testing.T) {
	cases := []struct {
		name string
		cj   *int
		iv   *int
		want func(string) bool
	}{
		{"exclude conjuncts", ptr(0), nil, func(w string) bool { return w != "क्या" }},
		{"require conjuncts", ptr(2), nil, func(w string) bool { return w == "क्या" }},
		{"require indep vowels", nil, ptr(2), func(w string) bool { return w == "आम" }},
		{"no constraint", ptr(1), ptr(1), func(string) bool { return true }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(newIndex(t), &tagConv{}, sampler.NewLocked(3, 4), Options{Size: 60})
			out, err := s.Wordlist(context.Background(), domain.Request{
				To: "Deva", Lang: "hi", Script: "Deva", WithConjuncts: tc.cj, WithIndepVowels: tc.iv,
			})
			if err != nil {
				t.Fatal(err)
			}
			if len(out.Wordlist) == 0 {
				t.Fatal("empty word list")
			}
			for _, p := range out.Wordlist {
				if !tc.want(p[0]) {
					t.Fatalf("word %q should have been filtered", p[0])
				}
			}
		})
	}
}

func TestWordlist_Errors(t *testing.T) {
	down := perr.Unavailablef("engine down")
	cases := []struct {
		name string
		in   domain.Request
		conv error
		code perr.ErrorCode
	}{
		{"unknown locale", domain.Request{To: "ISO", Lang: "xx", Script: "Deva"}, nil, perr.ErrorCodeValidation},
		{"unknown bucket", domain.Request{To: "ISO", Lang: "hi", Script: "Arab"}, nil, perr.ErrorCodeValidation},
		{"bad mode", domain.Request{To: "ISO", Lang: "hi", Script: "Deva", WithIndepVowels: ptr(5)}, nil, perr.ErrorCodeValidation},
		{"converter down", domain.Request{To: "ISO", Lang: "hi", Script: "Deva"}, down, perr.ErrorCodeUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(newIndex(t), &tagConv{err: tc.conv}, sampler.NewLocked(1, 1), Options{})
			_, err := s.Wordlist(context.Background(), tc.in)
			if !perr.IsCode(err, tc.code) {
				t.Fatalf("err = %v, want code %v", err, tc.code)
			}
			if tc.conv != nil && !errors.Is(err, tc.conv) {
				t.Fatalf("converter error not passed through: %v", err)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	s := New(newIndex(t), &tagConv{}, sampler.NewLocked(1, 1), Options{})
	if s.opts.Size != sampler.DefaultSize {
		t.Fatalf("Size = %d", s.opts.Size)
	}
	if got := s.Locales(); len(got) != 1 || got[0].Locale != "hi" {
		t.Fatalf("Locales = %+v", got)
	}
}
