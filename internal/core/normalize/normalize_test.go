package normalize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"empty", "", ""},
		{"identity", "नमस्ते world", "नमस्ते world"},
		{"invalid utf8 dropped", string([]byte{0xff, 'k', 'a', 0x80}), "ka"},
		{"controls dropped", "a\x00b\x07c\x7f", "abc"},
		{"c1 dropped", "a\u0085b", "ab"},
		{"nfc composes", "\u0928\u093c", "\u0929"},
		{"composition exclusions decompose", "\u0958", "\u0915\u093c"},
		{"format chars kept", "\ufeffक\u200bख", "\ufeffक\u200bख"},
		{"zwj and zwnj kept", "क्\u200dष क्\u200cष", "क्\u200dष क्\u200cष"},
		{"bidi marks kept", "\u200fשלום\u200e", "\u200fשלום\u200e"},
		{"fullwidth kept", "ＡＢＣ１", "ＡＢＣ１"},
		{"line endings kept", "a\r\nb\rc", "a\r\nb\rc"},
		{"tabs kept", "a\tb", "a\tb"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Text(tc.in); got != tc.out {
				t.Fatalf("Text(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestSanitize_FastPathReturnsInput(t *testing.T) {
	s := "clean text रा"
	if got := Sanitize(s); got != s {
		t.Fatalf("Sanitize = %q", got)
	}
}

func TestText_Concurrent(t *testing.T) {
	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 100 {
				if got := Text("\x07\u0928\u093c\u200b"); got != "\u0929\u200b" {
					t.Errorf("Text = %q", got)
					return
				}
			}
		}()
	}
	for range 8 {
		<-done
	}
}
