// Package textutil provides text canonicalization helpers.
package textutil

import (
	"regexp"
	"strings"
)

var (
	alefVariants = regexp.MustCompile("[أإآ]")
	nonWord      = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// Normalize canonicalizes raw text for comparison: lower-cases it, folds
// Arabic letter variants to a single canonical form, strips punctuation and
// symbols, and trims surrounding whitespace. Empty input yields empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = alefVariants.ReplaceAllString(text, "ا")
	text = strings.ReplaceAll(text, "ة", "ه")
	text = strings.ReplaceAll(text, "ى", "ي")
	text = nonWord.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
