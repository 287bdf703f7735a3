package redact

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a transcript token for wordlist comparison:
// lowercased with every non-letter rune removed, so "Hell!!" and "hell"
// compare equal. An empty result is valid and simply never matches.
func Normalize(token string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(token) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
