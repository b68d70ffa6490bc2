// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package header extracts metadata fields from the loosely structured
// header block of a Project Gutenberg plain text. Gutenberg headers are
// not a fixed grammar — fields vary in count and order across books —
// so extraction is heuristic rather than a strict parse.
package header

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/krchristie/gutenwords/pkg/types"
)

// authorPattern matches the start of the author field: the literal
// "author:" at a line start, case-insensitive, with optional leading
// horizontal whitespace. Trailing \s* also consumes whitespace after
// the colon so the block search below starts at the value.
var authorPattern = regexp.MustCompile(`(?im)^[ \t]*author:\s*`)

// nextHeaderPattern matches a metadata-style header line such as
// "Release Date: " or "Language: ": letters, spaces, and hyphens
// followed by a colon and whitespace.
var nextHeaderPattern = regexp.MustCompile(`(?m)^[ \t]*[A-Za-z][A-Za-z -]*:\s`)

// Title returns the value of the first "Title:" header line: the text
// after the first colon on the first line whose trimmed prefix equals
// "title:" (case-insensitive), surrounding whitespace removed. The
// second return is false when no such line exists, which is expected
// for non-conforming texts and is not an error.
func Title(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		low := strings.ToLower(strings.TrimSpace(line))
		if strings.HasPrefix(low, "title:") {
			_, value, _ := strings.Cut(line, ":")
			return strings.TrimSpace(value), true
		}
	}
	return "", false
}

// AuthorBlock returns the author metadata block starting at the first
// "Author:" header. The value of the field may span several physical
// lines, so the block end falls through three boundary signals in
// order: the next metadata-style header line, else the next blank
// line, else the end of the document. The result keeps the leading
// "Author:" label and is right-trimmed.
//
// An author block that itself contains a colon-terminated line which
// is not a true header (e.g. "Author: Smith, J.: the elder") truncates
// early at that line. This is a known limitation of the heuristic,
// accepted in exchange for tolerating the header variability of real
// Gutenberg texts.
func AuthorBlock(text string) (string, bool) {
	loc := authorPattern.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	start, end := loc[0], loc[1]
	rest := text[end:]

	if hdr := nextHeaderPattern.FindStringIndex(rest); hdr != nil {
		return trimRight(text[start : end+hdr[0]]), true
	}

	if blank := strings.Index(rest, "\n\n"); blank != -1 {
		return trimRight(text[start : end+blank]), true
	}

	return trimRight(text[start:]), true
}

// ParseContributors splits an author block into contributor names.
// The field label is dropped, the value is split on line breaks,
// semicolons, and the word "and", and each name splits into given and
// family parts on its last space. A single-word name becomes a
// mononym (empty given). Results preserve source order; no identity
// resolution is attempted across spelling variants.
func ParseContributors(block string) []types.Contributor {
	_, value, found := strings.Cut(block, ":")
	if !found {
		value = block
	}

	var contributors []types.Contributor
	for _, name := range splitNames(value) {
		fields := strings.Fields(name)
		if len(fields) == 0 {
			continue
		}
		c := types.Contributor{
			Given:  strings.Join(fields[:len(fields)-1], " "),
			Family: fields[len(fields)-1],
		}
		contributors = append(contributors, c)
	}
	return contributors
}

// splitNames breaks the author field value into one string per name.
func splitNames(value string) []string {
	value = strings.ReplaceAll(value, "\n", ";")
	value = strings.ReplaceAll(value, " and ", ";")
	var names []string
	for _, part := range strings.Split(value, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
