package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/krchristie/gutenwords/internal/fetch"
	"github.com/krchristie/gutenwords/pkg/types"
)

const (
	defaultTimeout   = 20 * time.Second
	defaultDelay     = 1 * time.Second
	defaultUserAgent = "gutenwords/0.1"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [book-ids...]",
	Short: "Download Project Gutenberg texts",
	Long: `Fetch downloads the plain-text file for each Gutenberg book ID,
extracts the header metadata, and writes a YAML metadata record
alongside the text. Existing texts are skipped.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 20s)")
	fetchCmd.Flags().Duration("delay", 0, "delay between consecutive downloads (default 1s)")
	fetchCmd.Flags().String("books-dir", "books", "base directory for books")

	rootCmd.AddCommand(fetchCmd)
}

func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = defaultDelay
	}

	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		DownloadDelay: delay,
		BooksDir:      configString(cmd, "books-dir", "fetch.books_dir"),
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more Gutenberg book IDs (e.g. 84 or pg84)")
	}

	cfg := fetchConfig(cmd)
	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	result := fetch.FetchBatch(context.Background(), client, args, cfg, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d book(s) failed to download", result.Failed)
	}
	return nil
}
