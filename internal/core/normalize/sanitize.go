package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize removes what no engine should see:
// NUL and other ASCII controls except '\n', '\r', '\t', DEL, C1 controls U+0080..U+009F,
// and invalid UTF-8 bytes.
// Returns s unchanged when nothing needs cleaning
func Sanitize(s string) string {
	if s == "" {
		return s
	}

	n := len(s)
	i := 0

	// fast path: scan to the first bad byte or rune
	for i < n {
		b := s[i]
		if b < 0x80 {
			if dropASCII(b) {
				break
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || isC1(r) {
			break
		}
		i += size
	}
	if i == n {
		return s
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(s[:i])
	for i < n {
		c := s[i]
		if c < 0x80 {
			if !dropASCII(c) {
				b.WriteByte(c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		if !isC1(r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func dropASCII(b byte) bool {
	if b == '\n' || b == '\r' || b == '\t' {
		return false
	}
	return b < 0x20 || b == 0x7F
}

func isC1(r rune) bool { return r >= 0x80 && r <= 0x9F }
