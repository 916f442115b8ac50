package translit

import (
	"context"
	"testing"

	perr "scriptdrill/internal/platform/errors"
)

func convertLocal(t *testing.T, from, to, text string) string {
	t.Helper()
	c, err := NewLocal().Converter(context.Background(), Pair{From: from, To: to})
	if err != nil {
		t.Fatalf("Converter(%s->%s): %v", from, to, err)
	}
	out, err := c.Convert(context.Background(), text)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestLocal_Shift(t *testing.T) {
	cases := []struct {
		from, to, in, want string
	}{
		{"Deva", "Taml", "नमस्ते", "நமஸ்தே"},
		{"Deva", "Beng", "कमल", "কমল"},
		{"Beng", "Deva", "কমল", "कमल"},
		{"Deva", "Guru", "कमल", "ਕਮਲ"},
		// Tamil has no kha, the source rune is kept
		{"Deva", "Taml", "ख", "ख"},
		// text outside the source block passes through
		{"Deva", "Telu", "क 1!", "క 1!"},
		// the danda is shared and stays put
		{"Deva", "Knda", "क।", "ಕ।"},
		{"Taml", "Deva", "௧", "१"},
	}
	for _, tc := range cases {
		if got := convertLocal(t, tc.from, tc.to, tc.in); got != tc.want {
			t.Fatalf("%s->%s %q = %q, want %q", tc.from, tc.to, tc.in, got, tc.want)
		}
	}
}

func TestLocal_Romanize(t *testing.T) {
	cases := []struct {
		from, in, want string
	}{
		{"Deva", "नमस्ते", "namastē"},
		{"Deva", "भारत", "bhārata"},
		{"Deva", "अंक", "aṁka"},
		{"Deva", "कि", "ki"},
		{"Deva", "राम।", "rāma."},
		{"Taml", "தமிழ்", "tamiḻ"},
		{"Mlym", "മല", "mala"},
		{"Deva", "क ख", "ka kha"},
		{"Deva", "१२", "12"},
	}
	for _, tc := range cases {
		if got := convertLocal(t, tc.from, "ISO", tc.in); got != tc.want {
			t.Fatalf("%s->ISO %q = %q, want %q", tc.from, tc.in, got, tc.want)
		}
	}
	if got := convertLocal(t, "Deva", "Latn", "क"); got != "ka" {
		t.Fatalf("Latn alias = %q", got)
	}
}

func TestLocal_Supports(t *testing.T) {
	l := NewLocal()
	for _, tag := range []string{"Deva", "Taml", "Mlym", "ISO", "Latn"} {
		if !l.Supports(tag) {
			t.Fatalf("Supports(%s) = false", tag)
		}
	}
	for _, tag := range []string{"Syre", "Arab", "", "deva"} {
		if l.Supports(tag) {
			t.Fatalf("Supports(%q) = true", tag)
		}
	}
	if n := len(l.Tags()); n != len(blocks)+len(romanTags) {
		t.Fatalf("Tags len = %d", n)
	}
}

func TestLocal_Unsupported(t *testing.T) {
	l := NewLocal()
	for _, p := range []Pair{{"Latn", "Deva"}, {"Deva", "Arab"}, {"ISO", "Taml"}} {
		_, err := l.Converter(context.Background(), p)
		if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Fatalf("Converter(%s) err = %v", p, err)
		}
	}
}
