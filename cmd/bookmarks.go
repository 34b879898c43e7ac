package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/user/hip/internal/bookmarks"
	"github.com/user/hip/internal/config"
	"github.com/user/hip/internal/storage"
)

var (
	bookmarksJSON bool
	addFields     []string
	exportDir     string
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Manage saved event bookmarks",
}

// openBookmarkStore wires the SQLite store behind the bookmark list.
// The returned cleanup closes the database.
func openBookmarkStore() (*bookmarks.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := storage.NewStore(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	return bookmarks.NewStore(store, cfg.Logger()), func() { store.Close() }, nil
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved bookmarks, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openBookmarkStore()
		if err != nil {
			return err
		}
		defer cleanup()

		records := store.List()
		if bookmarksJSON {
			return store.Export(os.Stdout)
		}
		if len(records) == 0 {
			fmt.Println("No bookmarks saved.")
			return nil
		}
		for i, r := range records {
			fmt.Printf("%d. %s (%s)\n", i+1, r.Title, r.Date)
		}
		return nil
	},
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add <title> <date>",
	Short: "Save a bookmark",
	Long:  "Save an event bookmark. Extra fields can be attached with repeated --field key=value flags and are stored as-is.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openBookmarkStore()
		if err != nil {
			return err
		}
		defer cleanup()

		record := bookmarks.Record{Title: args[0], Date: args[1]}
		for _, f := range addFields {
			key, value, found := strings.Cut(f, "=")
			if !found {
				return fmt.Errorf("invalid --field %q, expected key=value", f)
			}
			if record.Extra == nil {
				record.Extra = make(map[string]any)
			}
			record.Extra[key] = value
		}

		added, err := store.Add(record)
		if err != nil {
			return fmt.Errorf("failed to save bookmark: %w", err)
		}
		if !added {
			fmt.Println("Already bookmarked.")
			return nil
		}
		fmt.Printf("Bookmarked: %s (%s)\n", record.Title, record.Date)
		return nil
	},
}

var bookmarksClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all saved bookmarks",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openBookmarkStore()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := store.Clear(); err != nil {
			return fmt.Errorf("failed to clear bookmarks: %w", err)
		}
		fmt.Println("Bookmarks cleared.")
		return nil
	},
}

var bookmarksExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export bookmarks to a timestamped JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openBookmarkStore()
		if err != nil {
			return err
		}
		defer cleanup()

		path, err := store.ExportToFile(exportDir, time.Now())
		if err != nil {
			return fmt.Errorf("failed to export bookmarks: %w", err)
		}
		fmt.Printf("Exported to %s\n", path)
		return nil
	},
}

func init() {
	bookmarksListCmd.Flags().BoolVarP(&bookmarksJSON, "json", "j", false, "Output as JSON")
	bookmarksAddCmd.Flags().StringArrayVar(&addFields, "field", nil, "Extra field as key=value (repeatable)")
	bookmarksExportCmd.Flags().StringVarP(&exportDir, "out", "o", ".", "Directory to write the export file to")

	bookmarksCmd.AddCommand(bookmarksListCmd)
	bookmarksCmd.AddCommand(bookmarksAddCmd)
	bookmarksCmd.AddCommand(bookmarksClearCmd)
	bookmarksCmd.AddCommand(bookmarksExportCmd)
	rootCmd.AddCommand(bookmarksCmd)
}
