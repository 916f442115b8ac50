package service

import (
	"context"
	"testing"

	perr "scriptdrill/internal/platform/errors"
	"scriptdrill/internal/services/api/translit/domain"
)

type fakeConv struct {
	calls int
	got   [3]string
}

func (f *fakeConv) Convert(_ context.Context, from, to, text string) (string, error) {
	f.calls++
	f.got = [3]string{from, to, text}
	return "<" + text + ">", nil
}

func (f *fakeConv) ConvertAll(context.Context, string, string, []string) ([]string, error) {
	return nil, nil
}

type catalog []string

func (c catalog) Scripts() []string { return c }

func TestTranslate(t *testing.T) {
	cases := []struct {
		name      string
		in        domain.ConvertInput
		want      string
		wantCalls int
		wantField string
	}{
		{"empty text", domain.ConvertInput{From: "Deva", To: "Latn"}, "", 0, ""},
		{"empty text without pair", domain.ConvertInput{}, "", 0, ""},
		{"canonical tags", domain.ConvertInput{From: "deva", To: "TAML", Text: "क"}, "<क>", 1, ""},
		{"controls dropped before convert", domain.ConvertInput{From: "Deva", To: "Taml", Text: "\x00क\x07"}, "<क>", 1, ""},
		{"format chars passed through", domain.ConvertInput{From: "Deva", To: "Taml", Text: "क\u200dष"}, "<क\u200dष>", 1, ""},
		{"only control chars", domain.ConvertInput{From: "Deva", To: "Taml", Text: "\x00\x07\u0085"}, "", 0, ""},
		{"missing from", domain.ConvertInput{To: "Taml", Text: "क"}, "", 0, "from"},
		{"missing to", domain.ConvertInput{From: "Deva", Text: "क"}, "", 0, "to"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conv := &fakeConv{}
			got, err := New(conv, catalog{"Deva"}).Translate(context.Background(), tc.in)
			if tc.wantField != "" {
				if !perr.IsCode(err, perr.ErrorCodeValidation) || perr.WireFrom(err).Field != tc.wantField {
					t.Fatalf("err = %v, want validation on %s", err, tc.wantField)
				}
				return
			}
			if err != nil || got != tc.want || conv.calls != tc.wantCalls {
				t.Fatalf("got %q, %v (calls %d)", got, err, conv.calls)
			}
			if tc.wantCalls > 0 && (conv.got[0] != "Deva" || conv.got[1] != "Taml" || "<"+conv.got[2]+">" != tc.want) {
				t.Fatalf("converter saw %v", conv.got)
			}
		})
	}
}

func TestScripts(t *testing.T) {
	if got := New(&fakeConv{}, catalog(nil)).Scripts(); got == nil || len(got) != 0 {
		t.Fatalf("nil catalog should list as empty, got %#v", got)
	}
	if got := New(&fakeConv{}, catalog{"Deva"}).LatinSchemes(); len(got) == 0 {
		t.Fatal("no latin schemes")
	}
}
