// Package normalize cleans free text before it is handed to a transliteration engine
// Only two things change: controls and invalid UTF-8 are dropped (Sanitize),
// then the text is put in NFC so precomposed and decomposed input convert alike.
// Everything else the user typed, format characters and line breaks included, passes through
package normalize

import "golang.org/x/text/unicode/norm"

// Text returns s sanitized and in NFC. Safe for concurrent use
func Text(s string) string {
	if s == "" {
		return ""
	}
	return norm.NFC.String(Sanitize(s))
}
