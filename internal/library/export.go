// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/krchristie/gutenwords/pkg/types"
)

// ExportEntry holds one book with its contributors and stored word
// counts for export.
type ExportEntry struct {
	ID           int                 `json:"id" yaml:"id"`
	Title        string              `json:"title" yaml:"title"`
	Contributors []types.Contributor `json:"contributors,omitempty" yaml:"contributors,omitempty"`
	WordCounts   []types.WordCount   `json:"word_counts,omitempty" yaml:"word_counts,omitempty"`
}

// ExportYAML writes the full library to libraryDir/index/export.yaml.
func (s *Store) ExportYAML(ctx context.Context) error {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return err
	}

	path := filepath.Join(s.libraryDir, indexDir, "export.yaml")
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the full library to libraryDir/index/export.json.
func (s *Store) ExportJSON(ctx context.Context) error {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return err
	}

	path := filepath.Join(s.libraryDir, indexDir, "export.json")
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context) ([]ExportEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT gutenberg_id, title FROM books ORDER BY gutenberg_id`)
	if err != nil {
		return nil, fmt.Errorf("querying books for export: %w", err)
	}
	defer rows.Close()

	var entries []ExportEntry
	for rows.Next() {
		var e ExportEntry
		if err := rows.Scan(&e.ID, &e.Title); err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range entries {
		contributors, err := s.Contributors(ctx, entries[i].ID)
		if err != nil {
			return nil, err
		}
		counts, err := s.wordCounts(ctx, entries[i].ID)
		if err != nil {
			return nil, err
		}
		entries[i].Contributors = contributors
		entries[i].WordCounts = counts
	}

	return entries, nil
}
