// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wordfreq

import (
	"sort"

	"github.com/krchristie/gutenwords/pkg/types"
)

// Options holds the filters applied when aggregating token counts.
type Options struct {
	// MinCount is the inclusive occurrence threshold: a word survives
	// when its count is at least MinCount. Zero keeps everything.
	MinCount int

	// Stopwords are excluded from the result regardless of count.
	// A nil set excludes nothing.
	Stopwords Stopwords

	// TopK, when positive, truncates the result to the K highest-count
	// words. Zero returns all surviving words.
	TopK int
}

// Frequency counts each distinct token in the sequence and applies the
// minimum-count threshold, the stopword exclusion, and optional top-K
// truncation. With TopK set the result is ordered by descending count,
// ties kept in the order each word first appeared during counting;
// otherwise the result carries first-seen order and callers needing
// display order sort explicitly. An empty token sequence, or one where
// every word is filtered out, yields an empty table.
func Frequency(tokens []string, opts Options) []types.WordCount {
	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	table := make([]types.WordCount, 0, len(order))
	for _, word := range order {
		count := counts[word]
		if count < opts.MinCount {
			continue
		}
		if opts.Stopwords.Contains(word) {
			continue
		}
		table = append(table, types.WordCount{Word: word, Count: count})
	}

	if opts.TopK > 0 {
		// Stable sort on count only preserves first-seen order among ties.
		sort.SliceStable(table, func(i, j int) bool {
			return table[i].Count > table[j].Count
		})
		if len(table) > opts.TopK {
			table = table[:opts.TopK]
		}
	}

	return table
}
