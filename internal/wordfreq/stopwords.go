// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wordfreq

import (
	"os"
	"strings"
)

// Stopwords is a set of lowercase words excluded from frequency results.
type Stopwords map[string]struct{}

// Contains reports whether word is in the set. Safe on a nil set.
func (s Stopwords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// LoadStopwords reads a newline-delimited word list: one word per
// line, blank lines ignored, entries lowercased. A missing or
// unreadable file yields an empty set rather than an error — running
// without stopword filtering is the deliberate permissive default.
func LoadStopwords(path string) Stopwords {
	data, err := os.ReadFile(path)
	if err != nil {
		return Stopwords{}
	}
	return ParseStopwords(string(data))
}

// ParseStopwords builds a set from newline-delimited list content.
func ParseStopwords(content string) Stopwords {
	set := make(Stopwords)
	for _, line := range strings.Split(content, "\n") {
		word := strings.ToLower(strings.TrimSpace(line))
		if word != "" {
			set[word] = struct{}{}
		}
	}
	return set
}
