// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wordfreq

import (
	"reflect"
	"testing"

	"github.com/krchristie/gutenwords/pkg/types"
)

func TestFrequency(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		opts   Options
		want   []types.WordCount
	}{
		{
			"empty input yields empty table",
			nil,
			Options{MinCount: 1},
			nil,
		},
		{
			"counts distinct tokens",
			[]string{"cat", "dog", "cat"},
			Options{},
			[]types.WordCount{{Word: "cat", Count: 2}, {Word: "dog", Count: 1}},
		},
		{
			"min count is inclusive",
			[]string{"cat", "cat", "dog"},
			Options{MinCount: 2},
			[]types.WordCount{{Word: "cat", Count: 2}},
		},
		{
			"top-k excludes words that clear min count",
			[]string{"cat", "dog", "cat", "cat", "dog"},
			Options{MinCount: 2, TopK: 1},
			[]types.WordCount{{Word: "cat", Count: 3}},
		},
		{
			"stopwords dropped regardless of count",
			[]string{"the", "the", "fox"},
			Options{MinCount: 1, Stopwords: Stopwords{"the": {}}},
			[]types.WordCount{{Word: "fox", Count: 1}},
		},
		{
			"everything filtered out yields empty table",
			[]string{"rare"},
			Options{MinCount: 2},
			nil,
		},
		{
			"top-k larger than table keeps everything",
			[]string{"a", "b", "a"},
			Options{MinCount: 1, TopK: 10},
			[]types.WordCount{{Word: "a", Count: 2}, {Word: "b", Count: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Frequency(tt.tokens, tt.opts)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Frequency() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Ties among equal counts keep the order in which each word first
// appeared during counting, not alphabetical order.
func TestFrequencyTopKTieOrder(t *testing.T) {
	tokens := []string{"zebra", "apple", "zebra", "apple", "mango", "mango", "mango"}
	got := Frequency(tokens, Options{MinCount: 1, TopK: 3})

	want := []types.WordCount{
		{Word: "mango", Count: 3},
		{Word: "zebra", Count: 2},
		{Word: "apple", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Frequency() = %v, want %v (ties in first-seen order)", got, want)
	}
}

func TestFrequencyTopKDescending(t *testing.T) {
	tokens := []string{"a", "b", "b", "c", "c", "c"}
	got := Frequency(tokens, Options{MinCount: 1, TopK: 3})
	for i := 1; i < len(got); i++ {
		if got[i].Count > got[i-1].Count {
			t.Fatalf("counts not descending: %v", got)
		}
	}
}

// With no top-k the table carries first-seen order; callers wanting
// display order must sort explicitly.
func TestFrequencyNoTopKFirstSeenOrder(t *testing.T) {
	tokens := []string{"dog", "cat", "dog"}
	got := Frequency(tokens, Options{MinCount: 1})
	want := []types.WordCount{{Word: "dog", Count: 2}, {Word: "cat", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Frequency() = %v, want %v", got, want)
	}
}

// Two full pipeline runs over the same text yield identical tables: no
// hidden state is carried between calls.
func TestPipelineRoundTrip(t *testing.T) {
	text := "The cat sat. The cat sat again; the dog watched the cat."
	opts := Options{MinCount: 2, Stopwords: Stopwords{"the": {}}, TopK: 10}

	first := Frequency(Tokenize(text), opts)
	second := Frequency(Tokenize(text), opts)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("pipeline not reproducible: %v vs %v", first, second)
	}
	want := []types.WordCount{
		{Word: "cat", Count: 3},
		{Word: "sat", Count: 2},
	}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("pipeline = %v, want %v", first, want)
	}
}
