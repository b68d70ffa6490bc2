// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wordfreq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStopwords(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Stopwords
	}{
		{
			name: "one word per line, lowercased",
			setup: func(t *testing.T) string {
				return writeStopwords(t, "The\nand\nOF\n")
			},
			want: Stopwords{"the": {}, "and": {}, "of": {}},
		},
		{
			name: "blank lines and padding ignored",
			setup: func(t *testing.T) string {
				return writeStopwords(t, "\n  the  \n\n\nand\n   \n")
			},
			want: Stopwords{"the": {}, "and": {}},
		},
		{
			name: "empty file yields empty set",
			setup: func(t *testing.T) string {
				return writeStopwords(t, "")
			},
			want: Stopwords{},
		},
		{
			name: "missing file yields empty set",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist.txt")
			},
			want: Stopwords{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LoadStopwords(tt.setup(t))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadStopwordsUnreadableFile(t *testing.T) {
	path := writeStopwords(t, "the\n")
	require.NoError(t, os.Chmod(path, 0o000))
	t.Cleanup(func() { os.Chmod(path, 0o644) })

	// Unreadable files fall back to the empty set, not an error.
	got := LoadStopwords(path)
	assert.Empty(t, got)
}

func TestStopwordsContains(t *testing.T) {
	set := ParseStopwords("the\nand\n")
	assert.True(t, set.Contains("the"))
	assert.False(t, set.Contains("fox"))

	var nilSet Stopwords
	assert.False(t, nilSet.Contains("the"), "nil set excludes nothing")
}

func writeStopwords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stopwords.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
