// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library persists books, contributors, and computed word
// frequencies in a local SQLite database.
package library

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/krchristie/gutenwords/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "library.db"
)

// Store manages the library SQLite database.
type Store struct {
	db         *sql.DB
	libraryDir string
}

// NewStore opens or creates the library database at
// libraryDir/index/library.db, creating the schema if it does not exist.
func NewStore(cfg types.LibraryConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.LibraryDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, libraryDir: cfg.LibraryDir}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS books (
			gutenberg_id INTEGER PRIMARY KEY,
			title TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS contributors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			given TEXT,
			family TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS book_contributors (
			gutenberg_id INTEGER NOT NULL REFERENCES books(gutenberg_id),
			contributor_id INTEGER NOT NULL REFERENCES contributors(id),
			position INTEGER NOT NULL,
			PRIMARY KEY (gutenberg_id, contributor_id)
		)`,
		`CREATE TABLE IF NOT EXISTS word_counts (
			gutenberg_id INTEGER NOT NULL REFERENCES books(gutenberg_id),
			word TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (gutenberg_id, word)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_book_contributors_id ON book_contributors(gutenberg_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveBook upserts the book record and its contributor links.
// Contributors are matched exactly on given and family names; a new
// spelling creates a new contributor record. Link order follows the
// slice order of book.Contributors.
func (s *Store) SaveBook(ctx context.Context, book *types.Book) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO books (gutenberg_id, title) VALUES (?, ?)
		 ON CONFLICT(gutenberg_id) DO UPDATE SET title=excluded.title`,
		book.ID, book.Title,
	)
	if err != nil {
		return fmt.Errorf("upserting book: %w", err)
	}

	for position, c := range book.Contributors {
		contributorID, err := getOrCreateContributor(ctx, tx, c)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO book_contributors (gutenberg_id, contributor_id, position)
			 VALUES (?, ?, ?)`,
			book.ID, contributorID, position+1,
		)
		if err != nil {
			return fmt.Errorf("linking contributor %s: %w", c.Family, err)
		}
	}

	return tx.Commit()
}

// getOrCreateContributor looks up a contributor by exact name match,
// inserting a new record when absent. Mononyms store NULL given names.
func getOrCreateContributor(ctx context.Context, tx *sql.Tx, c types.Contributor) (int64, error) {
	given := sql.NullString{String: c.Given, Valid: c.Given != ""}

	var id int64
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM contributors WHERE given IS ? AND family = ?`,
		given, c.Family,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("looking up contributor: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO contributors (given, family) VALUES (?, ?)`,
		given, c.Family,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting contributor: %w", err)
	}
	return res.LastInsertId()
}

// StoreWordCounts writes the frequency table for a book. Rows are
// keyed by (gutenberg_id, word) with last-write-wins on recomputation.
func (s *Store) StoreWordCounts(ctx context.Context, bookID int, counts []types.WordCount) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO word_counts (gutenberg_id, word, count) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, wc := range counts {
		if _, err := stmt.ExecContext(ctx, bookID, wc.Word, wc.Count); err != nil {
			return fmt.Errorf("inserting count for %q: %w", wc.Word, err)
		}
	}

	return tx.Commit()
}

// BookRecord is a stored book row.
type BookRecord struct {
	ID    int    `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// LookupBook returns the stored book record and its word counts,
// ordered by descending count. A nil record means the book is not in
// the library; nil counts mean no frequencies have been stored yet.
// Both are normal states, not errors.
func (s *Store) LookupBook(ctx context.Context, bookID int) (*BookRecord, []types.WordCount, error) {
	var rec BookRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT gutenberg_id, title FROM books WHERE gutenberg_id = ?`, bookID,
	).Scan(&rec.ID, &rec.Title)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("looking up book: %w", err)
	}

	counts, err := s.wordCounts(ctx, bookID)
	if err != nil {
		return nil, nil, err
	}
	return &rec, counts, nil
}

func (s *Store) wordCounts(ctx context.Context, bookID int) ([]types.WordCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, count FROM word_counts WHERE gutenberg_id = ?
		 ORDER BY count DESC, rowid`, bookID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying word counts: %w", err)
	}
	defer rows.Close()

	var counts []types.WordCount
	for rows.Next() {
		var wc types.WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("scanning word count: %w", err)
		}
		counts = append(counts, wc)
	}
	return counts, rows.Err()
}

// Contributors returns the contributors linked to a book in link order.
func (s *Store) Contributors(ctx context.Context, bookID int) ([]types.Contributor, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.given, c.family
		 FROM book_contributors bc
		 JOIN contributors c ON bc.contributor_id = c.id
		 WHERE bc.gutenberg_id = ?
		 ORDER BY bc.position`, bookID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying contributors: %w", err)
	}
	defer rows.Close()

	var contributors []types.Contributor
	for rows.Next() {
		var given sql.NullString
		var c types.Contributor
		if err := rows.Scan(&given, &c.Family); err != nil {
			return nil, fmt.Errorf("scanning contributor: %w", err)
		}
		if given.Valid {
			c.Given = given.String
		}
		contributors = append(contributors, c)
	}
	return contributors, rows.Err()
}
