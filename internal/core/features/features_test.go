package features

import (
	"reflect"
	"testing"
)

func TestCategoryOf(t *testing.T) {
	cases := []struct {
		r    rune
		want Category
	}{
		{0x094D, Virama},
		{0x0985, VowelIndependent},
		{0x09CE, ConsonantDead},
		{0x0BCD, PureKiller},
		{0x0D7A, ConsonantDead},
		{0x1039, InvisibleStacker},
		{0x103B, ConsonantMedial},
		{0x17D2, InvisibleStacker},
		{0x0F90, ConsonantSubjoined},
		{0x0915, Other},
		{'a', Other},
		{0x0D3C, PureKiller},
		{0xA9C0, Virama},
		{0xFFFF, Other},
	}
	for _, tc := range cases {
		if got := CategoryOf(tc.r); got != tc.want {
			t.Fatalf("CategoryOf(%U) = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestTableSorted(t *testing.T) {
	for i := range table {
		if table[i].lo > table[i].hi {
			t.Fatalf("span %d inverted: %U..%U", i, table[i].lo, table[i].hi)
		}
		if i > 0 && table[i-1].hi >= table[i].lo {
			t.Fatalf("span %d overlaps previous: %U..%U", i, table[i].lo, table[i].hi)
		}
	}
}

func TestSets(t *testing.T) {
	if !Conjunct.Has(Virama) || !Conjunct.Has(PureKiller) || Conjunct.Has(VowelIndependent) {
		t.Fatal("Conjunct membership wrong")
	}
	if !IndepVowel.Has(VowelIndependent) || IndepVowel.Has(Virama) {
		t.Fatal("IndepVowel membership wrong")
	}
	if Of().Has(Other) {
		t.Fatal("empty set has Other")
	}
}

func TestFilter(t *testing.T) {
	words := []string{"क्ष", "कख", "अम", "पत्र"}
	cases := []struct {
		name string
		in   []string
		tags Set
		p    Polarity
		want []string
	}{
		{"exclude conjuncts", words, Conjunct, Exclude, []string{"कख", "अम"}},
		{"require conjuncts", words, Conjunct, Require, []string{"क्ष", "पत्र"}},
		{"require vowels", words, IndepVowel, Require, []string{"अम"}},
		{"exclude would empty", []string{"क्ष", "पत्र"}, Conjunct, Exclude, []string{"क्ष", "पत्र"}},
		{"require would empty", []string{"कख"}, IndepVowel, Require, []string{"कख"}},
		{"empty input", nil, Conjunct, Exclude, nil},
		{"tamil pulli excluded", []string{"தமிழ்", "கடல", "இது"}, Conjunct, Exclude, []string{"கடல", "இது"}},
		{"tamil pulli required", []string{"தமிழ்", "கடல", "க்ஷ"}, Conjunct, Require, []string{"தமிழ்", "க்ஷ"}},
		{"myanmar asat required", []string{"က်", "က"}, Conjunct, Require, []string{"က်"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(tc.in, tc.tags, tc.p)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Filter = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestApply_ExcludeBeforeRequire(t *testing.T) {
	words := []string{"अक्ष", "अम", "कख"}
	got := Apply(words, Spec{Tags: IndepVowel, Polarity: Require}, Spec{Tags: Conjunct, Polarity: Exclude})
	if want := []string{"अम"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Apply = %v, want %v", got, want)
	}

	// exclude runs first and keeps "कख"; require then falls back to it.
	// Running require first would have kept "अक्ष" instead
	words = []string{"अक्ष", "कख"}
	got = Apply(words, Spec{Tags: IndepVowel, Polarity: Require}, Spec{Tags: Conjunct, Polarity: Exclude})
	if want := []string{"कख"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Apply = %v, want %v", got, want)
	}
}

func TestApply_NoSpecs(t *testing.T) {
	words := []string{"a", "b"}
	if got := Apply(words); !reflect.DeepEqual(got, words) {
		t.Fatalf("Apply() = %v", got)
	}
}

func TestMode(t *testing.T) {
	for _, v := range []int{0, 1, 2} {
		if _, err := ParseMode(v); err != nil {
			t.Fatalf("ParseMode(%d): %v", v, err)
		}
	}
	if _, err := ParseMode(3); err == nil {
		t.Fatal("ParseMode(3) should fail")
	}
	if _, ok := ModeNone.Spec(Conjunct); ok {
		t.Fatal("ModeNone should not produce a spec")
	}
	if s, ok := ModeExclude.Spec(Conjunct); !ok || s.Polarity != Exclude || s.Tags != Conjunct {
		t.Fatalf("ModeExclude.Spec = %+v %v", s, ok)
	}
	if s, ok := ModeRequire.Spec(IndepVowel); !ok || s.Polarity != Require {
		t.Fatalf("ModeRequire.Spec = %+v %v", s, ok)
	}
}
