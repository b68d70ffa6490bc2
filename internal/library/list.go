// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/krchristie/gutenwords/pkg/types"
)

// ListEntry is one row of the library listing: a display label plus the
// book ID it resolves to.
type ListEntry struct {
	ID    int    `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// List returns display labels for every stored book, ordered by title.
// Labels take the form "Title (Family)" for one contributor,
// "Title (Family et al.)" for several, and "Title (Unknown Author)"
// when no contributor is linked. Leading articles are stripped from
// the title for display only.
func (s *Store) List(ctx context.Context) ([]ListEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT gutenberg_id, title FROM books ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	var books []BookRecord
	for rows.Next() {
		var rec BookRecord
		if err := rows.Scan(&rec.ID, &rec.Title); err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries := make([]ListEntry, 0, len(books))
	for _, rec := range books {
		contributors, err := s.Contributors(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ListEntry{
			ID:    rec.ID,
			Label: displayLabel(rec.Title, contributors),
		})
	}
	return entries, nil
}

// displayLabel formats "Title (Suffix)" with the leading article
// removed from the title.
func displayLabel(title string, contributors []types.Contributor) string {
	suffix := "Unknown Author"
	if len(contributors) > 0 {
		suffix = strings.TrimSpace(contributors[0].Family)
		if len(contributors) > 1 {
			suffix += " et al."
		}
	}
	return fmt.Sprintf("%s (%s)", stripLeadingArticle(title), suffix)
}

// stripLeadingArticle drops a leading "A ", "An ", or "The " from a
// title, case-insensitively. Display only; stored titles keep them.
func stripLeadingArticle(title string) string {
	clean := strings.TrimSpace(title)
	low := strings.ToLower(clean)
	for _, article := range []string{"a ", "an ", "the "} {
		if strings.HasPrefix(low, article) {
			return clean[len(article):]
		}
	}
	return clean
}
