// Package features filters word lists by Indic syllabic category.
// Two dimensions are offered to drills: conjunct formation (virama-class signs,
// medials, subjoined and dead consonants) and independent vowels
package features

import "sort"

// Category is an Indic_Syllabic_Category value. Only the values drills filter on are tracked
type Category uint8

const (
	Other Category = iota
	Virama
	InvisibleStacker
	PureKiller
	ConsonantMedial
	ConsonantSubjoined
	ConsonantDead
	VowelIndependent
)

var categoryNames = [...]string{
	Other:              "Other",
	Virama:             "Virama",
	InvisibleStacker:   "Invisible_Stacker",
	PureKiller:         "Pure_Killer",
	ConsonantMedial:    "Consonant_Medial",
	ConsonantSubjoined: "Consonant_Subjoined",
	ConsonantDead:      "Consonant_Dead",
	VowelIndependent:   "Vowel_Independent",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Other"
}

// Set is a bitmask of categories
type Set uint16

// Of builds a Set
func Of(cs ...Category) Set {
	var s Set
	for _, c := range cs {
		s |= 1 << c
	}
	return s
}

// Has reports whether c is in s
func (s Set) Has(c Category) bool { return s&(1<<c) != 0 }

var (
	// Conjunct groups the categories that mark consonant stacking
	// PureKiller is the only vowel killer in Tamil, Khmer (U+17D1), Myanmar (U+103A) and Tibetan (U+0F84)
	Conjunct = Of(Virama, InvisibleStacker, PureKiller, ConsonantMedial, ConsonantSubjoined, ConsonantDead)
	// IndepVowel is the independent vowel letters
	IndepVowel = Of(VowelIndependent)
)

type span struct {
	lo, hi rune
	cat    Category
}

// table is sorted by lo and non-overlapping
var table = []span{
	// Devanagari
	{0x0904, 0x0914, VowelIndependent},
	{0x094D, 0x094D, Virama},
	{0x0960, 0x0961, VowelIndependent},
	{0x0972, 0x0977, VowelIndependent},
	// Bengali
	{0x0985, 0x098C, VowelIndependent},
	{0x098F, 0x0990, VowelIndependent},
	{0x0993, 0x0994, VowelIndependent},
	{0x09CD, 0x09CD, Virama},
	{0x09CE, 0x09CE, ConsonantDead},
	{0x09E0, 0x09E1, VowelIndependent},
	// Gurmukhi
	{0x0A05, 0x0A0A, VowelIndependent},
	{0x0A0F, 0x0A10, VowelIndependent},
	{0x0A13, 0x0A14, VowelIndependent},
	{0x0A4D, 0x0A4D, Virama},
	{0x0A75, 0x0A75, ConsonantMedial},
	// Gujarati
	{0x0A85, 0x0A8D, VowelIndependent},
	{0x0A8F, 0x0A91, VowelIndependent},
	{0x0A93, 0x0A94, VowelIndependent},
	{0x0ACD, 0x0ACD, Virama},
	{0x0AE0, 0x0AE1, VowelIndependent},
	// Oriya
	{0x0B05, 0x0B0C, VowelIndependent},
	{0x0B0F, 0x0B10, VowelIndependent},
	{0x0B13, 0x0B14, VowelIndependent},
	{0x0B4D, 0x0B4D, Virama},
	{0x0B60, 0x0B61, VowelIndependent},
	// Tamil
	{0x0B85, 0x0B8A, VowelIndependent},
	{0x0B8E, 0x0B90, VowelIndependent},
	{0x0B92, 0x0B94, VowelIndependent},
	{0x0BCD, 0x0BCD, PureKiller},
	// Telugu
	{0x0C05, 0x0C0C, VowelIndependent},
	{0x0C0E, 0x0C10, VowelIndependent},
	{0x0C12, 0x0C14, VowelIndependent},
	{0x0C4D, 0x0C4D, Virama},
	{0x0C60, 0x0C61, VowelIndependent},
	// Kannada
	{0x0C85, 0x0C8C, VowelIndependent},
	{0x0C8E, 0x0C90, VowelIndependent},
	{0x0C92, 0x0C94, VowelIndependent},
	{0x0CCD, 0x0CCD, Virama},
	{0x0CE0, 0x0CE1, VowelIndependent},
	// Malayalam
	{0x0D05, 0x0D0C, VowelIndependent},
	{0x0D0E, 0x0D10, VowelIndependent},
	{0x0D12, 0x0D14, VowelIndependent},
	{0x0D3B, 0x0D3C, PureKiller},
	{0x0D4D, 0x0D4D, Virama},
	{0x0D54, 0x0D56, ConsonantDead},
	{0x0D5F, 0x0D61, VowelIndependent},
	{0x0D7A, 0x0D7F, ConsonantDead},
	// Sinhala
	{0x0D85, 0x0D96, VowelIndependent},
	{0x0DCA, 0x0DCA, Virama},
	// Tibetan
	{0x0F84, 0x0F84, PureKiller},
	{0x0F8D, 0x0F97, ConsonantSubjoined},
	{0x0F99, 0x0FBC, ConsonantSubjoined},
	// Myanmar
	{0x1021, 0x102A, VowelIndependent},
	{0x1039, 0x1039, InvisibleStacker},
	{0x103A, 0x103A, PureKiller},
	{0x103B, 0x103E, ConsonantMedial},
	{0x1052, 0x1055, VowelIndependent},
	{0x105E, 0x1060, ConsonantMedial},
	{0x1082, 0x1082, ConsonantMedial},
	// Khmer
	{0x17A3, 0x17B3, VowelIndependent},
	{0x17D1, 0x17D1, PureKiller},
	{0x17D2, 0x17D2, InvisibleStacker},
	// Balinese
	{0x1B05, 0x1B12, VowelIndependent},
	{0x1B44, 0x1B44, Virama},
	// Javanese
	{0xA984, 0xA988, VowelIndependent},
	{0xA98C, 0xA98E, VowelIndependent},
	{0xA9BE, 0xA9BF, ConsonantMedial},
	{0xA9C0, 0xA9C0, Virama},
}

// CategoryOf returns the syllabic category of r, Other when untracked
func CategoryOf(r rune) Category {
	i := sort.Search(len(table), func(i int) bool { return table[i].hi >= r })
	if i < len(table) && table[i].lo <= r {
		return table[i].cat
	}
	return Other
}

// Has reports whether any rune of word falls in tags
func Has(word string, tags Set) bool {
	for _, r := range word {
		if tags.Has(CategoryOf(r)) {
			return true
		}
	}
	return false
}
