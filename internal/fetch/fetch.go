// Package fetch downloads Project Gutenberg plain texts and creates
// metadata records.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/krchristie/gutenwords/internal/header"
	"github.com/krchristie/gutenwords/internal/httputil"
	"github.com/krchristie/gutenwords/pkg/types"
)

const (
	rawDir      = "raw"
	metadataDir = "metadata"
)

// textURLBase is the Gutenberg plain-text endpoint. Declared as a var
// so tests can substitute an httptest server.
var textURLBase = "https://www.gutenberg.org/cache/epub/"

// ParseBookID normalizes a book identifier to its numeric form. It
// accepts bare numbers and the "pg"-prefixed form used in Gutenberg
// filenames ("pg84", "PG84", "84").
func ParseBookID(identifier string) (int, error) {
	s := strings.TrimSpace(strings.ToLower(identifier))
	s = strings.TrimPrefix(s, "pg")
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("unrecognized book identifier %q: want a numeric Gutenberg ID", identifier)
	}
	return id, nil
}

// TextURL returns the canonical URL of the plain-text file for a book.
func TextURL(id int) string {
	return fmt.Sprintf("%s%d/pg%d.txt", textURLBase, id, id)
}

// TextPath returns the local path of the downloaded text for a book.
func TextPath(cfg types.FetchConfig, id int) string {
	return filepath.Join(cfg.BooksDir, rawDir, fmt.Sprintf("pg%d.txt", id))
}

// MetadataPath returns the local path of the YAML metadata sidecar.
func MetadataPath(cfg types.FetchConfig, id int) string {
	return filepath.Join(cfg.BooksDir, metadataDir, fmt.Sprintf("pg%d.yaml", id))
}

// BatchResult holds the outcome of a batch fetch run.
type BatchResult struct {
	Downloaded int
	Skipped    int
	Failed     int
	Books      []*types.Book
}

// Total returns the total number of identifiers processed.
func (r BatchResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any books failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// FetchBook downloads the plain text for one identifier, extracts the
// header fields, and writes a metadata sidecar. If the text already
// exists on disk the download is skipped and the stored metadata is
// returned; the skipped return value reports which path was taken.
func FetchBook(ctx context.Context, client *http.Client, identifier string, cfg types.FetchConfig, w io.Writer) (book *types.Book, skipped bool, err error) {
	id, err := ParseBookID(identifier)
	if err != nil {
		return nil, false, err
	}

	textPath := TextPath(cfg, id)
	metaPath := MetadataPath(cfg, id)

	if _, err := os.Stat(textPath); err == nil {
		fmt.Fprintf(w, "skipped: pg%d (already exists)\n", id)
		b, readErr := readMetadata(metaPath)
		if readErr != nil {
			b = &types.Book{ID: id, TextPath: textPath}
		}
		return b, true, nil
	}

	for _, dir := range []string{
		filepath.Join(cfg.BooksDir, rawDir),
		filepath.Join(cfg.BooksDir, metadataDir),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, false, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	url := TextURL(id)
	fmt.Fprintf(w, "downloading: pg%d\n", id)

	if err := downloadFile(ctx, client, url, textPath, cfg); err != nil {
		return nil, false, fmt.Errorf("downloading pg%d: %w", id, err)
	}

	b := &types.Book{
		ID:        id,
		SourceURL: url,
		TextPath:  textPath,
		FetchedAt: time.Now().UTC(),
	}

	// Populate header fields from the downloaded text. Absence of a
	// title or author block is expected for non-conforming texts.
	data, err := os.ReadFile(textPath)
	if err != nil {
		return nil, false, fmt.Errorf("reading downloaded text: %w", err)
	}
	text := string(data)
	if title, ok := header.Title(text); ok {
		b.Title = title
	}
	if block, ok := header.AuthorBlock(text); ok {
		b.AuthorBlock = block
		b.Contributors = header.ParseContributors(block)
	}

	if err := writeMetadata(b, metaPath); err != nil {
		return nil, false, fmt.Errorf("writing metadata for pg%d: %w", id, err)
	}

	return b, false, nil
}

// FetchBatch processes multiple identifiers, printing per-item status
// and returning a summary. It continues after individual failures and
// applies a delay between consecutive downloads.
func FetchBatch(ctx context.Context, client *http.Client, identifiers []string, cfg types.FetchConfig, w io.Writer) BatchResult {
	var result BatchResult
	for i, id := range identifiers {
		if i > 0 && cfg.DownloadDelay > 0 {
			time.Sleep(cfg.DownloadDelay)
		}
		book, wasSkipped, err := FetchBook(ctx, client, id, cfg, w)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", id, err)
			result.Failed++
			continue
		}
		if wasSkipped {
			result.Skipped++
		} else {
			result.Downloaded++
		}
		result.Books = append(result.Books, book)
	}
	fmt.Fprintf(w, "\nBatch summary: %d downloaded, %d skipped, %d failed (total: %d)\n",
		result.Downloaded, result.Skipped, result.Failed, result.Total())
	return result
}

// ReadText loads the stored plain text for a book.
func ReadText(cfg types.FetchConfig, id int) (string, error) {
	data, err := os.ReadFile(TextPath(cfg, id))
	if err != nil {
		return "", fmt.Errorf("reading text for pg%d: %w", id, err)
	}
	return string(data), nil
}

// downloadFile fetches url to destPath using a temporary file so a
// failed download never leaves a partial text behind. Throttled
// responses are retried by httputil.DoWithRetry.
func downloadFile(ctx context.Context, client *http.Client, url, destPath string, cfg types.FetchConfig) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "text/plain")

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// writeMetadata writes a Book record to a YAML sidecar file.
func writeMetadata(book *types.Book, path string) error {
	data, err := yaml.Marshal(book)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// readMetadata reads a Book record from a YAML sidecar file.
func readMetadata(path string) (*types.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var book types.Book
	if err := yaml.Unmarshal(data, &book); err != nil {
		return nil, err
	}
	return &book, nil
}
