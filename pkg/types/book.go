// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Contributor is a single credited author of a book. Matching against
// stored contributors is exact on both fields; spelling variants create
// separate records.
type Contributor struct {
	// Given holds the first and middle names. Empty for mononym
	// authors (stored as NULL in the library).
	Given string `json:"given,omitempty" yaml:"given,omitempty"`

	// Family is the last name, or the full name for mononym authors.
	Family string `json:"family" yaml:"family"`
}

// DisplayName returns "Given Family", or just Family for mononyms.
func (c Contributor) DisplayName() string {
	if c.Given == "" {
		return c.Family
	}
	return c.Given + " " + c.Family
}

// Book holds metadata and file paths for a fetched Gutenberg text.
type Book struct {
	// ID is the numeric Project Gutenberg identifier.
	ID int `json:"id" yaml:"id"`

	// SourceURL is the URL from which the text was downloaded.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// TextPath is the local filesystem path to the downloaded text.
	TextPath string `json:"text_path" yaml:"text_path"`

	// Title is the book title extracted from the header, empty when
	// no Title: line was found.
	Title string `json:"title" yaml:"title"`

	// AuthorBlock is the raw author metadata block from the header,
	// empty when no Author: line was found.
	AuthorBlock string `json:"author_block,omitempty" yaml:"author_block,omitempty"`

	// Contributors lists the credited authors in source order.
	Contributors []Contributor `json:"contributors,omitempty" yaml:"contributors,omitempty"`

	// FetchedAt is when the text was downloaded.
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}

// WordCount is one entry of a frequency table.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}
