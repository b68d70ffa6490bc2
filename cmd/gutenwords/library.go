// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krchristie/gutenwords/internal/fetch"
	"github.com/krchristie/gutenwords/internal/library"
	"github.com/krchristie/gutenwords/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Inspect the stored library (list, show, export)",
	Long: `Library reads the local SQLite store built by analyze. Use subcommands
to list stored books, show one book's contributors and word counts, or
export the whole library.`,
}

// --- list subcommand ---

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored books with display labels",
	RunE:  runLibraryList,
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	store, err := openLibrary(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("Library is empty.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%-8d %s\n", e.ID, e.Label)
	}
	fmt.Fprintf(os.Stdout, "\n%d book(s)\n", len(entries))
	return nil
}

// --- show subcommand ---

var libraryShowCmd = &cobra.Command{
	Use:   "show [book-id]",
	Short: "Show a stored book's contributors and word counts",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryShow,
}

// shownBook is the JSON shape of library show output.
type shownBook struct {
	ID           int                 `json:"id"`
	Title        string              `json:"title"`
	Contributors []types.Contributor `json:"contributors,omitempty"`
	WordCounts   []types.WordCount   `json:"word_counts,omitempty"`
}

func runLibraryShow(cmd *cobra.Command, args []string) error {
	id, err := fetch.ParseBookID(args[0])
	if err != nil {
		return err
	}

	store, err := openLibrary(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	rec, counts, err := store.LookupBook(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("book pg%d is not in the library", id)
	}
	contributors, err := store.Contributors(ctx, id)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(shownBook{ID: rec.ID, Title: rec.Title, Contributors: contributors, WordCounts: counts})
	}

	fmt.Fprintf(os.Stdout, "pg%d  %s\n", rec.ID, rec.Title)
	for _, c := range contributors {
		fmt.Fprintf(os.Stdout, "  author: %s\n", c.DisplayName())
	}
	if len(counts) == 0 {
		fmt.Println("  no stored word counts")
		return nil
	}
	fmt.Println()
	for _, wc := range counts {
		fmt.Fprintf(os.Stdout, "  %-20s %d\n", wc.Word, wc.Count)
	}
	return nil
}

// --- export subcommand ---

var libraryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library to YAML or JSON",
	RunE:  runLibraryExport,
}

func runLibraryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openLibrary(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background()); err != nil {
			return err
		}
		fmt.Println("Exported to library/index/export.yaml")
	case "json":
		if err := store.ExportJSON(context.Background()); err != nil {
			return err
		}
		fmt.Println("Exported to library/index/export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func openLibrary(cmd *cobra.Command) (*library.Store, error) {
	cfg := types.LibraryConfig{
		LibraryDir: configString(cmd, "library-dir", "library.library_dir"),
	}
	return library.NewStore(cfg)
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	libraryCmd.PersistentFlags().String("library-dir", "library", "base directory for the library (contains index/)")

	libraryListCmd.Flags().Bool("json", false, "output as JSON")
	libraryShowCmd.Flags().Bool("json", false, "output as JSON")
	libraryExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryShowCmd)
	libraryCmd.AddCommand(libraryExportCmd)

	rootCmd.AddCommand(libraryCmd)
}
