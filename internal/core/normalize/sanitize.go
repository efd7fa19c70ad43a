package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops NUL, DEL, ASCII and C1 controls (keeping tab and line
// breaks) and invalid UTF-8 bytes. Clean input is returned as is
func Sanitize(s string) string {
	if s == "" || isClean(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if dropRune(r) {
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

func isClean(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if dropRune(r) {
			return false
		}
	}
	return true
}

func dropRune(r rune) bool {
	switch {
	case r == '\n' || r == '\r' || r == '\t':
		return false
	case r < 0x20, r == 0x7F:
		return true
	case r >= 0x80 && r <= 0x9F: // C1
		return true
	}
	return false
}
