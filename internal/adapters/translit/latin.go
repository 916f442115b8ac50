package translit

import "slices"

// latinSchemes are the romanization schemes offered next to native scripts:
// the Indic Latin schemes followed by the Semitic ISO ones
var latinSchemes = []string{
	"IAST", "IASTPali", "ISO", "ISOPali", "HK", "Titus", "Velthuis", "ITRANS",
	"SLP1", "WX", "Kolkata", "RomanReadable", "RomanColloquial", "IPA", "RomanSemitic",
	"ISO259", "HebrewSBL", "ISO233", "PersianDMG",
}

// LatinSchemes returns the romanization scheme names
func LatinSchemes() []string { return slices.Clone(latinSchemes) }
