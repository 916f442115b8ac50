// Package fonts maps script tags to web font families a drill page can load
package fonts

import "slices"

var families = map[string][]string{
	"Arab":    {"Noto Naskh Arabic", "Noto Sans Arabic"},
	"Armn":    {"Noto Sans Armenian"},
	"Avst":    {"Noto Sans Avestan"},
	"Avestan": {"Noto Sans Avestan"},
	"Bali":    {"Noto Sans Balinese"},
	"Beng":    {"Noto Sans Bengali", "Noto Serif Bengali"},
	"Brah":    {"Noto Sans Brahmi"},
	"Burmese": {"Noto Sans Myanmar"},
	"Copt":    {"Noto Sans Coptic"},
	"Qaac":    {"Noto Sans Coptic"},
	"Cyrl":    {"Noto Sans"},
	"Deva":    {"Noto Sans Devanagari", "Noto Serif Devanagari"},
	"Ethi":    {"Noto Sans Ethiopic"},
	"Geor":    {"Noto Sans Georgian"},
	"Gran":    {"Noto Sans Grantha"},
	"Grek":    {"Noto Sans"},
	"Gujr":    {"Noto Sans Gujarati"},
	"Guru":    {"Noto Sans Gurmukhi"},
	"Hebr":    {"Noto Sans Hebrew"},
	"Java":    {"Noto Sans Javanese"},
	"Khmr":    {"Noto Sans Khmer"},
	"Knda":    {"Noto Sans Kannada"},
	"Laoo":    {"Noto Sans Lao"},
	"Latn":    {"Noto Sans"},
	"Mlym":    {"Noto Sans Malayalam"},
	"Mymr":    {"Noto Sans Myanmar"},
	"Orya":    {"Noto Sans Oriya"},
	"Shrd":    {"Noto Sans Sharada"},
	"Sidd":    {"Noto Sans Siddham"},
	"Sinh":    {"Noto Sans Sinhala"},
	"Syrc":    {"Noto Sans Syriac"},
	"Syre":    {"Noto Sans Syriac Estrangela", "Noto Sans Syriac"},
	"Taml":    {"Noto Sans Tamil", "Noto Serif Tamil"},
	"Telu":    {"Noto Sans Telugu"},
	"Thaa":    {"Noto Sans Thaana"},
	"Thai":    {"Noto Sans Thai"},
	"Tibt":    {"Noto Serif Tibetan"},
	"Tirh":    {"Noto Sans Tirhuta"},
}

// For returns the font families for tag, nil when none are known.
// The slice is a copy
func For(tag string) []string {
	return slices.Clone(families[tag])
}

// Known lists the tags with font hints
func Known() []string {
	out := make([]string, 0, len(families))
	for k := range families {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
