package translit

import (
	"slices"
	"strings"
)

// romanTags are the target names for ISO 15919 output
var romanTags = []string{"ISO", "Latn"}

func isRoman(tag string) bool { return slices.Contains(romanTags, tag) }

// offsets within a Brahmic block
const (
	offVirama = 0x4D
	offNukta  = 0x3C
)

// consonants by block offset
var romanConsonants = map[rune]string{
	0x15: "k", 0x16: "kh", 0x17: "g", 0x18: "gh", 0x19: "ṅ",
	0x1A: "c", 0x1B: "ch", 0x1C: "j", 0x1D: "jh", 0x1E: "ñ",
	0x1F: "ṭ", 0x20: "ṭh", 0x21: "ḍ", 0x22: "ḍh", 0x23: "ṇ",
	0x24: "t", 0x25: "th", 0x26: "d", 0x27: "dh", 0x28: "n", 0x29: "ṉ",
	0x2A: "p", 0x2B: "ph", 0x2C: "b", 0x2D: "bh", 0x2E: "m",
	0x2F: "y", 0x30: "r", 0x31: "ṟ", 0x32: "l", 0x33: "ḷ", 0x34: "ḻ", 0x35: "v",
	0x36: "ś", 0x37: "ṣ", 0x38: "s", 0x39: "h",
}

// independent vowels
var romanVowels = map[rune]string{
	0x05: "a", 0x06: "ā", 0x07: "i", 0x08: "ī", 0x09: "u", 0x0A: "ū",
	0x0B: "r̥", 0x0C: "l̥", 0x0D: "ê", 0x0E: "e", 0x0F: "ē", 0x10: "ai",
	0x11: "ô", 0x12: "o", 0x13: "ō", 0x14: "au", 0x60: "r̥̄", 0x61: "l̥̄",
}

// dependent vowel signs
var romanMatras = map[rune]string{
	0x3E: "ā", 0x3F: "i", 0x40: "ī", 0x41: "u", 0x42: "ū", 0x43: "r̥", 0x44: "r̥̄",
	0x45: "ê", 0x46: "e", 0x47: "ē", 0x48: "ai", 0x49: "ô", 0x4A: "o", 0x4B: "ō", 0x4C: "au",
	0x62: "l̥", 0x63: "l̥̄",
}

// other signs
var romanSigns = map[rune]string{
	0x01: "m̐", 0x02: "ṁ", 0x03: "ḥ", 0x3D: "'", 0x50: "oṁ", 0x64: ".", 0x65: "..",
	0x66: "0", 0x67: "1", 0x68: "2", 0x69: "3", 0x6A: "4",
	0x6B: "5", 0x6C: "6", 0x6D: "7", 0x6E: "8", 0x6F: "9",
}

// Devanagari dandas used inside other blocks' text
var romanDanda = map[rune]string{0x0964: ".", 0x0965: ".."}

// romanize writes ISO 15919 for text in src's block. A consonant carries an
// inherent "a" unless a vowel sign or virama follows it
func romanize(src block, text string) string {
	var sb strings.Builder
	sb.Grow(len(text) * 2)
	pending := false
	flush := func() {
		if pending {
			sb.WriteByte('a')
			pending = false
		}
	}
	for _, r := range text {
		off := r - src.base
		if off < 0 || off >= blockSize {
			flush()
			if s, ok := romanDanda[r]; ok {
				sb.WriteString(s)
				continue
			}
			sb.WriteRune(r)
			continue
		}
		switch {
		case off == offNukta:
			// keeps the pending inherent vowel
		case off == offVirama:
			pending = false
		case romanMatras[off] != "":
			pending = false
			sb.WriteString(romanMatras[off])
		case romanConsonants[off] != "":
			flush()
			sb.WriteString(romanConsonants[off])
			pending = true
		case romanVowels[off] != "":
			flush()
			sb.WriteString(romanVowels[off])
		case romanSigns[off] != "":
			flush()
			sb.WriteString(romanSigns[off])
		default:
			flush()
			sb.WriteRune(r)
		}
	}
	flush()
	return sb.String()
}
