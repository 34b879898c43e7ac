package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/hip/internal/api"
	"github.com/user/hip/internal/bookmarks"
	"github.com/user/hip/internal/config"
	"github.com/user/hip/internal/dateutil"
	"github.com/user/hip/internal/storage"
	"github.com/user/hip/internal/tui"
)

var (
	flagDate string
	flagMMDD string
)

var rootCmd = &cobra.Command{
	Use:   "hip",
	Short: "History quiz and bookmarks TUI",
	Long:  "A terminal client for the history site: play the daily quiz and keep a bookmark list of events.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := cfg.Logger()

		store, err := storage.NewStore(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer store.Close()

		client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
		bmStore := bookmarks.NewStore(store, logger)

		return tui.Run(client, bmStore, resolveDayKey(), cfg.Quiz.Count, cfg.API.Timeout)
	},
}

// resolveDayKey turns the --date/--mmdd flags into a day key. With no
// flags the quiz covers today's date.
func resolveDayKey() string {
	if flagMMDD != "" {
		return flagMMDD
	}
	key, _ := dateutil.CompactDayKey(dateutil.DefaultToToday(flagDate))
	return key
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Date to scope the quiz to (YYYY-MM-DD, default: today)")
	rootCmd.PersistentFlags().StringVar(&flagMMDD, "mmdd", "", "Day key to scope the quiz to (MM-DD, overrides --date)")
}
