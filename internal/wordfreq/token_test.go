// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wordfreq

import (
	"reflect"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantTok  string
		wantKept bool
	}{
		{"plain word", "cat", "cat", true},
		{"lowercased", "Cat", "cat", true},
		{"trailing comma stripped", "Well-known,", "well-known", true},
		{"internal apostrophe kept", "don't", "don't", true},
		{"internal hyphen kept", "o'clock", "o'clock", true},
		{"wrapping quotes stripped", "\"hello\"", "hello", true},
		{"digit anywhere rejected", "3rd", "", false},
		{"digit in middle rejected", "ab3cd", "", false},
		{"pure punctuation rejected", "---", "", false},
		{"empty rejected", "", "", false},
		{"internal symbol rejected", "a+b", "", false},
		{"unicode letters kept", "café", "café", true},
		{"curly apostrophe rejected", "don’t", "", false},
		{"parenthesized word", "(however)", "however", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kept := Clean(tt.raw)
			if kept != tt.wantKept {
				t.Fatalf("Clean(%q) kept = %v, want %v", tt.raw, kept, tt.wantKept)
			}
			if got != tt.wantTok {
				t.Errorf("Clean(%q) = %q, want %q", tt.raw, got, tt.wantTok)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"order preserved left to right",
			"The quick, brown fox!",
			[]string{"the", "quick", "brown", "fox"},
		},
		{
			"rejected candidates dropped in place",
			"chapter 1 begins --- here",
			[]string{"chapter", "begins", "here"},
		},
		{
			"newlines are whitespace",
			"one\ntwo\tthree",
			[]string{"one", "two", "three"},
		},
		{
			"markup degrades to text",
			"<p>hello</p> world",
			[]string{"world"},
		},
		{
			"empty text",
			"",
			nil,
		},
		{
			"nothing survives",
			"123 456 +++",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// Tokenize must be restartable: the same input always yields the same
// sequence, with no state carried between calls.
func TestTokenizeDeterministic(t *testing.T) {
	text := "It was the best of times, it was the worst of times."
	first := Tokenize(text)
	second := Tokenize(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Tokenize not deterministic: %v vs %v", first, second)
	}
}
