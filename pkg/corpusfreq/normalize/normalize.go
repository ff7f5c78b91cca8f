// Package normalize lowercases text, strips diacritics and removes punctuation
// so that tokens compare equal regardless of case or accents.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// punct matches anything that is not a word character or whitespace.
// Go's \w and \s are ASCII-only, so the Unicode classes are spelled out.
// U+001C..U+001F are the information separators, which count as whitespace.
var punct = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Z}\v\x{1c}-\x{1f}\x{85}]`)

// Text lowercases s, removes accents and strips punctuation.
func Text(s string) string {
	s = strings.ToLower(s)
	s = StripAccents(s)
	// Compatibility decomposition can surface upper-case letters (e.g. ℌ -> H).
	s = strings.ToLower(s)
	return punct.ReplaceAllString(s, "")
}

// StripAccents decomposes s (NFKD) and drops every rune with a non-zero
// canonical combining class.
func StripAccents(s string) string {
	decomposed := norm.NFKD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if isCombining(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isCombining(r rune) bool {
	return norm.NFD.PropertiesString(string(r)).CCC() != 0
}

// IsSpace reports whether r separates tokens in normalized text. It extends
// unicode.IsSpace with the information separators kept by Text.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Fields splits normalized text into words around runs of IsSpace.
func Fields(s string) []string {
	return strings.FieldsFunc(s, IsSpace)
}
