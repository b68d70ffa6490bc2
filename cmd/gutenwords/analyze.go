// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krchristie/gutenwords/internal/fetch"
	"github.com/krchristie/gutenwords/internal/header"
	"github.com/krchristie/gutenwords/internal/library"
	"github.com/krchristie/gutenwords/internal/wordfreq"
	"github.com/krchristie/gutenwords/pkg/types"
)

const (
	defaultMinCount = 5
	defaultTopK     = 10
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [book-ids...]",
	Short: "Compute and store word frequencies for Gutenberg books",
	Long: `Analyze runs the full pipeline for each book ID: download the text
(cached), extract the title and author block from the header, tokenize
the body, aggregate filtered word frequencies, and store the top words
in the library. Books with stored frequencies are reported from the
library unless --refresh is given.

Contributor names are parsed heuristically from the author block; use
--contributor to override them when the header is non-conforming.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 20s)")
	analyzeCmd.Flags().Duration("delay", 0, "delay between consecutive downloads (default 1s)")
	analyzeCmd.Flags().String("books-dir", "books", "base directory for books")
	analyzeCmd.Flags().String("library-dir", "library", "base directory for the library (contains index/)")
	analyzeCmd.Flags().Int("min-count", defaultMinCount, "minimum occurrence count for a word to be kept")
	analyzeCmd.Flags().Int("top", defaultTopK, "number of highest-count words to store")
	analyzeCmd.Flags().String("stopwords", "stopwords.txt", "path to a newline-delimited stopword list")
	analyzeCmd.Flags().Bool("refresh", false, "recompute even when stored frequencies exist")
	analyzeCmd.Flags().StringArray("contributor", nil, "contributor name override (repeatable, last word is the family name)")
	analyzeCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

// analysisResult is the per-book output of an analyze run.
type analysisResult struct {
	ID         int               `json:"id"`
	Title      string            `json:"title"`
	FromStore  bool              `json:"from_store"`
	WordCounts []types.WordCount `json:"word_counts"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more Gutenberg book IDs (e.g. 84 or pg84)")
	}

	fetchCfg := fetchConfig(cmd)
	analysisCfg := types.AnalysisConfig{
		MinCount:      configInt(cmd, "min-count", "analysis.min_count"),
		TopK:          configInt(cmd, "top", "analysis.top_k"),
		StopwordsPath: configString(cmd, "stopwords", "analysis.stopwords_path"),
	}
	libraryCfg := types.LibraryConfig{
		LibraryDir: configString(cmd, "library-dir", "library.library_dir"),
	}
	refresh, _ := cmd.Flags().GetBool("refresh")
	overrides, _ := cmd.Flags().GetStringArray("contributor")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := library.NewStore(libraryCfg)
	if err != nil {
		return err
	}
	defer store.Close()

	client := &http.Client{Timeout: fetchCfg.Timeout}
	ctx := context.Background()

	var results []analysisResult
	failed := 0
	for _, arg := range args {
		result, err := analyzeBook(ctx, client, store, arg, fetchCfg, analysisCfg, refresh, overrides, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stdout, "failed:  %s (%v)\n", arg, err)
			failed++
			continue
		}
		results = append(results, *result)
		if !jsonOutput {
			printWordCounts(os.Stdout, result)
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d book(s) failed analysis", failed)
	}
	return nil
}

// analyzeBook runs the pipeline for a single identifier, writing
// per-step progress to w.
func analyzeBook(ctx context.Context, client *http.Client, store *library.Store, identifier string, fetchCfg types.FetchConfig, analysisCfg types.AnalysisConfig, refresh bool, overrides []string, w io.Writer) (*analysisResult, error) {
	id, err := fetch.ParseBookID(identifier)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "processing: pg%d\n", id)

	rec, stored, err := store.LookupBook(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec != nil && len(stored) > 0 && !refresh {
		fmt.Fprintf(w, "pg%d found in library, using stored frequencies\n", id)
		return &analysisResult{ID: id, Title: rec.Title, FromStore: true, WordCounts: stored}, nil
	}

	if _, _, err := fetch.FetchBook(ctx, client, identifier, fetchCfg, w); err != nil {
		return nil, err
	}
	text, err := fetch.ReadText(fetchCfg, id)
	if err != nil {
		return nil, err
	}

	book := &types.Book{ID: id, SourceURL: fetch.TextURL(id), TextPath: fetch.TextPath(fetchCfg, id)}
	if title, ok := header.Title(text); ok {
		book.Title = title
		fmt.Fprintf(w, "detected title: %s\n", title)
	} else {
		fmt.Fprintf(w, "no title header found\n")
	}
	if block, ok := header.AuthorBlock(text); ok {
		book.AuthorBlock = block
		book.Contributors = header.ParseContributors(block)
	}
	if len(overrides) > 0 {
		book.Contributors = parseContributorOverride(overrides)
	}

	if err := store.SaveBook(ctx, book); err != nil {
		return nil, err
	}

	tokens := wordfreq.Tokenize(text)
	stopwords := wordfreq.LoadStopwords(analysisCfg.StopwordsPath)
	fmt.Fprintf(w, "tokenized %d words, loaded %d stopwords\n", len(tokens), len(stopwords))

	counts := wordfreq.Frequency(tokens, wordfreq.Options{
		MinCount:  analysisCfg.MinCount,
		Stopwords: stopwords,
		TopK:      analysisCfg.TopK,
	})
	if len(counts) == 0 {
		fmt.Fprintf(w, "no words survived filtering for pg%d\n", id)
		return &analysisResult{ID: id, Title: book.Title, WordCounts: counts}, nil
	}

	if err := store.StoreWordCounts(ctx, id, counts); err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "stored top %d word frequencies for pg%d\n", len(counts), id)

	return &analysisResult{ID: id, Title: book.Title, WordCounts: counts}, nil
}

func printWordCounts(w *os.File, result *analysisResult) {
	source := "computed"
	if result.FromStore {
		source = "stored"
	}
	fmt.Fprintf(w, "\npg%d  %s  (%s)\n", result.ID, result.Title, source)
	for _, wc := range result.WordCounts {
		fmt.Fprintf(w, "  %-20s %d\n", wc.Word, wc.Count)
	}
	fmt.Fprintln(w)
}

// parseContributorOverride splits a full name into given and family
// parts on the last space, matching header.ParseContributors.
func parseContributorOverride(names []string) []types.Contributor {
	var contributors []types.Contributor
	for _, name := range names {
		fields := strings.Fields(name)
		if len(fields) == 0 {
			continue
		}
		contributors = append(contributors, types.Contributor{
			Given:  strings.Join(fields[:len(fields)-1], " "),
			Family: fields[len(fields)-1],
		})
	}
	return contributors
}
