// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wordfreq turns raw body text into cleaned word tokens and
// aggregates them into filtered, ranked frequency tables. Everything
// here is a pure function of its inputs: no retained state, so
// independent documents can be processed concurrently without
// coordination.
package wordfreq

import (
	"strings"
	"unicode"
)

// punctuation is the fixed set stripped from token edges. It matches
// the ASCII punctuation characters; Unicode punctuation such as curly
// quotes is left in place and rejects the token in the letter check.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Clean strips leading and trailing punctuation from a raw token and
// returns the lowercased result. The second return is false when the
// token is rejected: empty after stripping, containing a decimal digit
// anywhere, or not purely alphabetic once internal hyphens and
// apostrophes are ignored. This keeps "well-known" and "o'clock" while
// dropping "3rd" and "c++".
func Clean(raw string) (string, bool) {
	cleaned := strings.Trim(raw, punctuation)
	if cleaned == "" {
		return "", false
	}
	for _, r := range cleaned {
		if unicode.IsDigit(r) {
			return "", false
		}
	}
	for _, r := range cleaned {
		if r == '-' || r == '\'' {
			continue
		}
		if !unicode.IsLetter(r) {
			return "", false
		}
	}
	return strings.ToLower(cleaned), true
}

// Tokenize splits body text on whitespace and cleans each candidate,
// emitting survivors in original order. The same text always yields
// the same sequence. Markup in the source is not stripped; tags
// tokenize as ordinary text and mostly fall to the cleaner's
// non-alphabetic check.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, raw := range fields {
		if tok, ok := Clean(raw); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
